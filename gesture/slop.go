// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"strconv"

	"github.com/sanihaq/left-press-draggable/events"
	"github.com/sanihaq/left-press-draggable/math32"
)

// TouchSlop is the default distance in pixels a touch contact must
// travel before it counts as a drag.
const TouchSlop float32 = 18

// MouseSlop is the default distance in pixels a mouse pointer must
// travel before it counts as a drag. Precise devices need far less
// room than fingers.
const MouseSlop float32 = 1

// HitSlop returns the drag recognition distance for the given kind of
// device, from the current [Settings]: [Settings.MouseSlop] for mice
// and [Settings.TouchSlop] for everything else.
func HitSlop(d events.Devices) float32 {
	s := Current()
	if d == events.Mouse {
		return s.MouseSlop
	}
	return s.TouchSlop
}

// AcceptFunc reports whether the movement a contact has accumulated
// while unresolved is enough to recognize a drag, given the slop
// distance for the contact's device. The movement must strictly
// exceed the slop; movement equal to it is not enough.
type AcceptFunc func(pending math32.Vector2, slop float32) bool

// DistanceAccept recognizes a drag once the total accumulated
// movement in any direction exceeds the slop.
func DistanceAccept(pending math32.Vector2, slop float32) bool {
	return pending.Length() > slop
}

// HorizontalAccept recognizes a drag once the accumulated movement
// along the x axis exceeds the slop.
func HorizontalAccept(pending math32.Vector2, slop float32) bool {
	return math32.Abs(pending.X) > slop
}

// VerticalAccept recognizes a drag once the accumulated movement
// along the y axis exceeds the slop.
func VerticalAccept(pending math32.Vector2, slop float32) bool {
	return math32.Abs(pending.Y) > slop
}

// Axes is the set of movement directions a drag recognizer responds to.
type Axes int32

const (
	// AllAxes recognizes drags in any direction.
	AllAxes Axes = iota

	// Horizontal recognizes only drags along the x axis.
	Horizontal

	// Vertical recognizes only drags along the y axis.
	Vertical
)

var axesNames = []string{"AllAxes", "Horizontal", "Vertical"}

func (a Axes) String() string {
	if a < 0 || int(a) >= len(axesNames) {
		return "Axes(" + strconv.Itoa(int(a)) + ")"
	}
	return axesNames[a]
}

// acceptFuncs is the fixed mapping from axes to acceptance checks.
var acceptFuncs = map[Axes]AcceptFunc{
	AllAxes:    DistanceAccept,
	Horizontal: HorizontalAccept,
	Vertical:   VerticalAccept,
}

// AcceptFor returns the acceptance check for the given axes,
// defaulting to [DistanceAccept].
func AcceptFor(a Axes) AcceptFunc {
	if f, ok := acceptFuncs[a]; ok {
		return f
	}
	return DistanceAccept
}
