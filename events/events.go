// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer events consumed by gesture
// recognition, and a lock-free [Queue] for feeding them in from
// another goroutine.
package events

import (
	"fmt"
	"time"

	"github.com/sanihaq/left-press-draggable/math32"
)

// Types is the type of a pointer event.
type Types int32

const (
	// UnknownType is an unset event type, which recognizers ignore.
	UnknownType Types = iota

	// Down is a new pointer contact pressing onto the surface.
	Down

	// Move is a position change of a contact that is down.
	Move

	// Up is a contact lifting off the surface normally.
	Up

	// Cancel is a contact terminated abnormally by the system, for
	// example when the window loses the pointer grab mid gesture.
	Cancel
)

var typeNames = []string{"UnknownType", "Down", "Move", "Up", "Cancel"}

func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Types(" + fmt.Sprint(int(t)) + ")"
	}
	return typeNames[t]
}

// PointerID identifies one pointer contact for its lifetime. All events
// of one press, move, release sequence carry the same ID. IDs may be
// reused by the platform after the contact ends.
type PointerID int64

// Pointer is one pointer input event, from a mouse, touch, stylus, or
// trackpad contact.
type Pointer struct {
	// Typ is the type of event.
	Typ Types

	// ID is the contact this event belongs to.
	ID PointerID

	// Pos is the pointer position in window coordinates.
	Pos math32.Vector2

	// Delta is the movement since the previous event of this contact.
	// It is zero on Down. Hosts that only track positions can set it
	// to the difference from the previous position.
	Delta math32.Vector2

	// Buttons is the mouse buttons held down as of this event.
	// Touch contacts report [Left].
	Buttons Buttons

	// Device is the kind of device that produced the contact.
	Device Devices

	// Time is when the event occurred.
	Time time.Time
}

// NewPointer returns a new pointer event of the given type, stamped
// with the current time.
func NewPointer(typ Types, id PointerID, pos math32.Vector2, buttons Buttons, device Devices) *Pointer {
	return &Pointer{Typ: typ, ID: id, Pos: pos, Buttons: buttons, Device: device, Time: time.Now()}
}

// NewPointerDown returns a new [Down] event for a contact pressed with
// the given buttons.
func NewPointerDown(id PointerID, pos math32.Vector2, buttons Buttons, device Devices) *Pointer {
	return NewPointer(Down, id, pos, buttons, device)
}

// NewPointerMove returns a new [Move] event with the given movement
// delta.
func NewPointerMove(id PointerID, pos, delta math32.Vector2, buttons Buttons, device Devices) *Pointer {
	e := NewPointer(Move, id, pos, buttons, device)
	e.Delta = delta
	return e
}

// NewPointerUp returns a new [Up] event at the position the contact
// lifted.
func NewPointerUp(id PointerID, pos math32.Vector2, buttons Buttons, device Devices) *Pointer {
	return NewPointer(Up, id, pos, buttons, device)
}

// NewPointerCancel returns a new [Cancel] event for the given contact.
func NewPointerCancel(id PointerID) *Pointer {
	return NewPointer(Cancel, id, math32.Vector2{}, NoButtons, UnknownDevice)
}

func (e *Pointer) String() string {
	return fmt.Sprintf("%v{ID: %v, Pos: %v, Buttons: %v, Device: %v}", e.Typ, e.ID, e.Pos, e.Buttons, e.Device)
}
