// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetZero()
	assert.Equal(t, Vector2{}, v)

	assert.Equal(t, "(3, -4)", Vec2(3, -4).String())
}

func TestVector2Ops(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)

	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(5, 6), a.AddScalar(2))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(2, 3), a.SubScalar(1))
	assert.Equal(t, Vec2(3, -8), a.Mul(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vec2(3, -2), a.Div(b))
	assert.Equal(t, Vec2(1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vector2{}, a.DivScalar(0))
	assert.Equal(t, Vec2(1, 2), b.Abs())
	assert.Equal(t, Vec2(-3, -4), a.Negate())
	assert.Equal(t, Vec2(1, -2), a.Min(b))
	assert.Equal(t, Vec2(3, 4), a.Max(b))

	v := Vec2(1, 1)
	v.SetAdd(Vec2(2, 3))
	assert.Equal(t, Vec2(3, 4), v)
	v.SetSub(Vec2(1, 1))
	assert.Equal(t, Vec2(2, 3), v)
}

func TestVector2Length(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(25), v.LengthSquared())
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(25), v.DistanceToSquared(Vec2(0, 0)))
	assert.Equal(t, float32(5), v.DistanceTo(Vec2(0, 0)))
	assert.InDelta(t, 2.8284271, Vec2(2, 2).Length(), 1e-6)
}

func TestMath(t *testing.T) {
	assert.Equal(t, float32(2), Abs(-2))
	assert.Equal(t, float32(2), Abs(2))
	assert.Equal(t, float32(5), Hypot(3, 4))
	assert.Equal(t, float32(4), Max(2, 4))
	assert.Equal(t, float32(2), Min(2, 4))
	assert.Equal(t, float32(3), Sqrt(9))
}
