// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappers(t *testing.T) {
	base := New("base problem")
	wrapped := fmt.Errorf("outer: %w", base)

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))

	var perr *fs.PathError
	assert.False(t, As(wrapped, &perr))

	joined := Join(base, New("second"))
	assert.True(t, Is(joined, base))
	assert.Nil(t, Join(nil, nil))
}

func TestLog(t *testing.T) {
	err := New("logged")
	assert.Equal(t, err, Log(err))
	assert.NoError(t, Log(nil))

	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, "v", Log1("v", New("oops")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })

	assert.Equal(t, 7, Must1(7, nil))
	assert.Panics(t, func() { Must1(0, New("boom")) })
}
