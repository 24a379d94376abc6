// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gesture recognizes drags on pointer contacts, gated on the
// mouse buttons the contacts were pressed with. The [MultiDrag]
// recognizer tracks any number of simultaneous contacts, resolving
// each one independently through an [Arena] so that it can compete
// with other recognizers in a host toolkit.
package gesture

import (
	"time"

	"github.com/sanihaq/left-press-draggable/events"
	"github.com/sanihaq/left-press-draggable/math32"
)

// Dragger handles the movement of one contact after it has been
// recognized as a drag.
type Dragger interface {
	// Update is called for each movement of the dragging contact,
	// with the current position and the movement since the previous
	// event.
	Update(pos, delta math32.Vector2)

	// End is called once when the dragging contact lifts.
	End()

	// Cancel is called once when the dragging contact is terminated
	// by the system.
	Cancel()
}

// StartFunc is called once when a contact is recognized as a drag,
// with the position where the contact first pressed. It may return a
// [Dragger] to receive the rest of the contact's movement, or nil to
// decline the drag, which stops tracking the contact.
type StartFunc func(origin math32.Vector2) Dragger

// MultiDrag recognizes drags on any number of simultaneous pointer
// contacts. Each contact resolves on its own: it becomes a drag when
// the movement it accumulates passes the acceptance check, and it
// stops being tracked when it lifts or is cancelled first.
//
// Only contacts pressed with a whitelisted mouse button can start a
// drag. Whether a contact qualifies is decided once, from the button
// state of its Down event. A contact pressed with the wrong buttons
// is still tracked and still claims itself in the [Arena] when it
// moves far enough, so no other recognizer treats it as something
// else, but its drag never starts.
//
// MultiDrag is not safe for concurrent use: feed it events from one
// goroutine, typically via an [events.Queue].
type MultiDrag struct {

	// Start is called when a contact is recognized as a drag.
	Start StartFunc

	// Accept decides when a contact's accumulated movement is enough
	// to recognize a drag. nil means [DistanceAccept].
	Accept AcceptFunc

	// Buttons is the mask of mouse buttons that may start a drag.
	// The zero mask never starts drags but still claims contacts;
	// the constructors set [events.Left].
	Buttons events.Buttons

	// Delay is how long a contact must be held down before its
	// movement may start a drag. Movement during the delay
	// accumulates without starting anything. Zero uses
	// [Settings.DragStartDelay].
	Delay time.Duration

	// Slop returns the drag recognition distance for a device kind.
	// nil means [HitSlop].
	Slop func(d events.Devices) float32

	// Arena decides contact ownership between competing recognizers.
	// nil means a [BasicArena] private to this recognizer.
	Arena Arena

	pointers map[events.PointerID]*pointerState
}

// pointerState tracks one contact from its press until it resolves
// and, if it became a drag, until it ends.
type pointerState struct {
	origin   math32.Vector2
	device   events.Devices
	down     time.Time
	buttonOK bool           // pressed with a whitelisted button, fixed at Down
	pending  math32.Vector2 // movement accumulated while unresolved
	entry    Entry
	accepted bool
	client   Dragger
}

// NewMultiDrag returns a recognizer that starts a drag when a contact
// pressed with the left mouse button moves past the slop distance in
// any direction.
func NewMultiDrag(start StartFunc) *MultiDrag {
	return &MultiDrag{Start: start, Accept: DistanceAccept, Buttons: events.Left}
}

// NewHorizontalMultiDrag returns a recognizer like [NewMultiDrag]
// that only responds to movement along the x axis.
func NewHorizontalMultiDrag(start StartFunc) *MultiDrag {
	return &MultiDrag{Start: start, Accept: HorizontalAccept, Buttons: events.Left}
}

// NewVerticalMultiDrag returns a recognizer like [NewMultiDrag]
// that only responds to movement along the y axis.
func NewVerticalMultiDrag(start StartFunc) *MultiDrag {
	return &MultiDrag{Start: start, Accept: VerticalAccept, Buttons: events.Left}
}

// HandleEvent processes one pointer event. Events for contacts the
// recognizer is not tracking are ignored, as are unknown event types.
func (md *MultiDrag) HandleEvent(e *events.Pointer) {
	switch e.Typ {
	case events.Down:
		md.contactDown(e)
	case events.Move:
		md.contactMove(e)
	case events.Up:
		md.contactUp(e)
	case events.Cancel:
		md.contactCancel(e)
	}
}

func (md *MultiDrag) contactDown(e *events.Pointer) {
	if _, ok := md.pointers[e.ID]; ok {
		return // repeated Down for a live contact
	}
	if md.pointers == nil {
		md.pointers = map[events.PointerID]*pointerState{}
	}
	ps := &pointerState{
		origin:   e.Pos,
		device:   e.Device,
		down:     e.Time,
		buttonOK: e.Buttons.HasAny(md.Buttons),
	}
	// the state must be registered before Add, as an arena is free to
	// award the contact during it
	md.pointers[e.ID] = ps
	ps.entry = md.arena().Add(e.ID, md)
}

func (md *MultiDrag) contactMove(e *events.Pointer) {
	ps, ok := md.pointers[e.ID]
	if !ok {
		return
	}
	if ps.client != nil {
		ps.client.Update(e.Pos, e.Delta)
		return
	}
	ps.pending.SetAdd(e.Delta)
	md.checkResolution(ps, e.Time)
}

// checkResolution claims the contact once it has accumulated enough
// movement. Movement before Delay has elapsed accumulates without
// claiming.
func (md *MultiDrag) checkResolution(ps *pointerState, now time.Time) {
	if d := md.delay(); d > 0 && now.Sub(ps.down) < d {
		return
	}
	if md.accept()(ps.pending, md.slop(ps.device)) {
		ps.entry.Resolve(Accepted)
	}
}

func (md *MultiDrag) contactUp(e *events.Pointer) {
	ps, ok := md.pointers[e.ID]
	if !ok {
		return
	}
	if ps.client != nil {
		client := ps.client
		delete(md.pointers, e.ID)
		client.End()
		return
	}
	ps.entry.Resolve(Rejected)
	delete(md.pointers, e.ID)
}

func (md *MultiDrag) contactCancel(e *events.Pointer) {
	ps, ok := md.pointers[e.ID]
	if !ok {
		return
	}
	if ps.client != nil {
		client := ps.client
		delete(md.pointers, e.ID)
		client.Cancel()
		return
	}
	ps.entry.Resolve(Rejected)
	delete(md.pointers, e.ID)
}

// AcceptGesture starts the drag for the given contact if the buttons
// it was pressed with were whitelisted. A contact that won with the
// wrong buttons is swallowed: it stays claimed, so no other
// recognizer can act on it, but no drag starts and the contact is
// dropped. AcceptGesture implements [Member].
func (md *MultiDrag) AcceptGesture(id events.PointerID) {
	ps, ok := md.pointers[id]
	if !ok || ps.accepted {
		return
	}
	ps.accepted = true
	if !ps.buttonOK || md.Start == nil {
		delete(md.pointers, id)
		return
	}
	client := md.Start(ps.origin)
	if client == nil {
		delete(md.pointers, id)
		return
	}
	ps.client = client
}

// RejectGesture stops tracking the given contact.
// RejectGesture implements [Member].
func (md *MultiDrag) RejectGesture(id events.PointerID) {
	delete(md.pointers, id)
}

func (md *MultiDrag) arena() Arena {
	if md.Arena == nil {
		md.Arena = &BasicArena{}
	}
	return md.Arena
}

func (md *MultiDrag) accept() AcceptFunc {
	if md.Accept == nil {
		return DistanceAccept
	}
	return md.Accept
}

func (md *MultiDrag) slop(d events.Devices) float32 {
	if md.Slop == nil {
		return HitSlop(d)
	}
	return md.Slop(d)
}

func (md *MultiDrag) delay() time.Duration {
	if md.Delay > 0 {
		return md.Delay
	}
	return Current().DragStartDelay
}
