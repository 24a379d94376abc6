// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draggable provides a drag source gated on the mouse buttons
// that pressed it, built on [gesture.MultiDrag]. A [Draggable] is
// configuration only; call [Draggable.Recognizer] and feed the result
// the host's pointer events.
package draggable

import (
	"time"

	"github.com/sanihaq/left-press-draggable/events"
	"github.com/sanihaq/left-press-draggable/gesture"
	"github.com/sanihaq/left-press-draggable/math32"
)

// Draggable describes a drag source and which mouse buttons are
// allowed to drag it. The zero value starts left button drags in any
// direction with no hold delay. It holds no gesture state of its own
// beyond the count of drags in flight.
type Draggable struct {

	// Data is the payload carried on each [Drag] that starts.
	Data any

	// Axis restricts recognized drags to one axis.
	// [gesture.AllAxes] places no restriction.
	Axis gesture.Axes

	// Buttons is the list of mouse buttons that may begin a drag,
	// reduced to one mask by [Draggable.Recognizer]. A nil list
	// allows only [events.Left]. An explicitly empty list allows no
	// buttons: contacts are still claimed, but no drag ever starts.
	Buttons []events.Buttons

	// Delay is how long a contact must be held down before its
	// movement may begin a drag.
	Delay time.Duration

	// MaxDrags limits how many drags of this source may be in flight
	// at once. Contacts recognized over the limit are claimed but
	// start nothing. Zero means no limit.
	MaxDrags int

	// OnDragStarted is called when a drag begins.
	OnDragStarted func(d *Drag)

	// OnDragUpdate is called each time a drag moves.
	OnDragUpdate func(d *Drag)

	// OnDragEnd is called when a drag's contact lifts.
	OnDragEnd func(d *Drag)

	// OnDragCanceled is called when a drag's contact is terminated
	// by the system.
	OnDragCanceled func(d *Drag)

	active int
}

// Recognizer returns a new recognizer for the Draggable's current
// configuration, wired to its callbacks. Later changes to the
// configuration do not affect recognizers already returned.
func (dr *Draggable) Recognizer() *gesture.MultiDrag {
	var md *gesture.MultiDrag
	switch dr.Axis {
	case gesture.Horizontal:
		md = gesture.NewHorizontalMultiDrag(dr.startDrag)
	case gesture.Vertical:
		md = gesture.NewVerticalMultiDrag(dr.startDrag)
	default:
		md = gesture.NewMultiDrag(dr.startDrag)
	}
	md.Buttons = dr.buttonMask()
	md.Delay = dr.Delay
	return md
}

// ActiveDrags returns how many drags of this source are in flight.
func (dr *Draggable) ActiveDrags() int {
	return dr.active
}

// buttonMask reduces the allowed button list to one mask.
func (dr *Draggable) buttonMask() events.Buttons {
	if dr.Buttons == nil {
		return events.Left
	}
	return events.Mask(dr.Buttons...)
}

func (dr *Draggable) startDrag(origin math32.Vector2) gesture.Dragger {
	if dr.MaxDrags > 0 && dr.active >= dr.MaxDrags {
		return nil
	}
	dr.active++
	d := &Drag{Data: dr.Data, Origin: origin, Pos: origin, owner: dr}
	if dr.OnDragStarted != nil {
		dr.OnDragStarted(d)
	}
	return d
}

// Drag is one in-flight drag of a [Draggable]'s payload.
type Drag struct {
	// Data is the payload of the Draggable this drag came from.
	Data any

	// Origin is where the initiating contact first pressed.
	Origin math32.Vector2

	// Pos is the current pointer position.
	Pos math32.Vector2

	// Delta is the movement of the latest update.
	Delta math32.Vector2

	owner *Draggable
}

// Update records the movement and calls the Draggable's
// OnDragUpdate. It implements [gesture.Dragger].
func (d *Drag) Update(pos, delta math32.Vector2) {
	d.Pos = pos
	d.Delta = delta
	if d.owner.OnDragUpdate != nil {
		d.owner.OnDragUpdate(d)
	}
}

// End completes the drag and calls the Draggable's OnDragEnd.
// It implements [gesture.Dragger].
func (d *Drag) End() {
	d.owner.active--
	if d.owner.OnDragEnd != nil {
		d.owner.OnDragEnd(d)
	}
}

// Cancel abandons the drag and calls the Draggable's OnDragCanceled.
// It implements [gesture.Dragger].
func (d *Drag) Cancel() {
	d.owner.active--
	if d.owner.OnDragCanceled != nil {
		d.owner.OnDragCanceled(d)
	}
}
