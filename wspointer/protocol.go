// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wspointer carries pointer events over a websocket, for
// hosts whose input arrives from another process, such as a remote
// display client. A [Server] feeds the events it receives into an
// [events.Queue] for the gesture goroutine to drain.
package wspointer

import (
	"github.com/sanihaq/left-press-draggable/events"
	"github.com/sanihaq/left-press-draggable/math32"
)

// Wire message types.
const (
	TypeDown   = "down"
	TypeMove   = "move"
	TypeUp     = "up"
	TypeCancel = "cancel"
)

// Message is one pointer event on the wire.
type Message struct {
	T       string  `json:"t"`
	ID      int64   `json:"id"`
	X       float32 `json:"x,omitempty"`
	Y       float32 `json:"y,omitempty"`
	DX      float32 `json:"dx,omitempty"`
	DY      float32 `json:"dy,omitempty"`
	Buttons int32   `json:"buttons,omitempty"`
	Device  string  `json:"device,omitempty"`
}

var deviceForName = map[string]events.Devices{
	"mouse":    events.Mouse,
	"touch":    events.Touch,
	"stylus":   events.Stylus,
	"trackpad": events.Trackpad,
}

var nameForDevice = map[events.Devices]string{
	events.Mouse:    "mouse",
	events.Touch:    "touch",
	events.Stylus:   "stylus",
	events.Trackpad: "trackpad",
}

// DeviceFor returns the device kind named on the wire,
// [events.UnknownDevice] for anything unrecognized.
func DeviceFor(name string) events.Devices {
	return deviceForName[name]
}

// DeviceName returns the wire name of a device kind,
// or the empty string for an unrecognized kind.
func DeviceName(d events.Devices) string {
	return nameForDevice[d]
}

// Encode converts a pointer event to its wire message.
func Encode(e *events.Pointer) Message {
	m := Message{
		ID:      int64(e.ID),
		X:       e.Pos.X,
		Y:       e.Pos.Y,
		Buttons: int32(e.Buttons),
		Device:  DeviceName(e.Device),
	}
	switch e.Typ {
	case events.Down:
		m.T = TypeDown
	case events.Move:
		m.T = TypeMove
		m.DX = e.Delta.X
		m.DY = e.Delta.Y
	case events.Up:
		m.T = TypeUp
	case events.Cancel:
		m.T = TypeCancel
	}
	return m
}

// Decode converts a wire message to a pointer event, stamped with the
// current time. It returns nil for unknown message types.
func Decode(m *Message) *events.Pointer {
	var typ events.Types
	switch m.T {
	case TypeDown:
		typ = events.Down
	case TypeMove:
		typ = events.Move
	case TypeUp:
		typ = events.Up
	case TypeCancel:
		typ = events.Cancel
	default:
		return nil
	}
	e := events.NewPointer(typ, events.PointerID(m.ID), math32.Vec2(m.X, m.Y), events.Buttons(m.Buttons), DeviceFor(m.Device))
	e.Delta = math32.Vec2(m.DX, m.DY)
	return e
}
