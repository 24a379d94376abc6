// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettingsDefaults(t *testing.T) {
	var s Settings
	s.Defaults()
	assert.Equal(t, float32(18), s.TouchSlop)
	assert.Equal(t, float32(1), s.MouseSlop)
	assert.Equal(t, time.Duration(0), s.DragStartDelay)
}

func TestSettingsSaveOpen(t *testing.T) {
	defer SetCurrent(Current())

	fnm := filepath.Join(t.TempDir(), "settings.toml")

	s := Settings{TouchSlop: 24, MouseSlop: 2, DragStartDelay: 150 * time.Millisecond}
	SetCurrent(s)
	assert.NoError(t, Save(fnm))

	SetCurrent(Settings{})
	assert.NoError(t, Open(fnm))
	assert.Equal(t, s, Current())
}

func TestSettingsOpenOverlaysDefaults(t *testing.T) {
	defer SetCurrent(Current())

	fnm := filepath.Join(t.TempDir(), "settings.toml")
	assert.NoError(t, os.WriteFile(fnm, []byte("TouchSlop = 30\n"), 0666))

	assert.NoError(t, Open(fnm))
	got := Current()
	assert.Equal(t, float32(30), got.TouchSlop)
	assert.Equal(t, MouseSlop, got.MouseSlop) // untouched fields keep defaults
}

func TestSettingsOpenErrors(t *testing.T) {
	defer SetCurrent(Current())
	before := Current()

	assert.Error(t, Open(filepath.Join(t.TempDir(), "missing.toml")))

	fnm := filepath.Join(t.TempDir(), "bad.toml")
	assert.NoError(t, os.WriteFile(fnm, []byte("TouchSlop = ["), 0666))
	assert.Error(t, Open(fnm))

	assert.Equal(t, before, Current()) // failed opens change nothing
}

func TestSettingsWatch(t *testing.T) {
	defer SetCurrent(Current())

	fnm := filepath.Join(t.TempDir(), "settings.toml")
	var s Settings
	s.Defaults()
	SetCurrent(s)
	assert.NoError(t, Save(fnm))

	stop, err := Watch(fnm)
	assert.NoError(t, err)
	defer stop()

	assert.NoError(t, os.WriteFile(fnm, []byte("TouchSlop = 33\n"), 0666))

	assert.Eventually(t, func() bool {
		return Current().TouchSlop == 33
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSettingsWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "settings.toml"))
	assert.Error(t, err)
}
