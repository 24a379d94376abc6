// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay records pointer event traces and plays them back
// into a gesture recognizer. Traces are YAML files, so recorded
// interactions can be kept in a repo, edited by hand, and rerun to
// reproduce gesture behavior exactly.
package replay

import (
	"os"
	"time"

	"github.com/sanihaq/left-press-draggable/events"
	"github.com/sanihaq/left-press-draggable/math32"
	"gopkg.in/yaml.v3"
)

// Handler consumes pointer events. [gesture.MultiDrag] implements it.
type Handler interface {
	HandleEvent(e *events.Pointer)
}

// Duration is a [time.Duration] that reads and writes itself in
// [time.Duration.String] form in trace files.
type Duration time.Duration

// MarshalYAML implements a YAML Marshaler for Duration
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements a YAML Unmarshaler for Duration
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	td, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(td)
	return nil
}

// Event is one recorded pointer event. Move deltas are not stored:
// they are recomputed from successive positions on playback.
type Event struct {
	T       string   `yaml:"t"`
	ID      int64    `yaml:"id"`
	X       float32  `yaml:"x"`
	Y       float32  `yaml:"y"`
	Buttons int32    `yaml:"buttons,omitempty"`
	Device  string   `yaml:"device,omitempty"`
	At      Duration `yaml:"at,omitempty"` // offset from the start of the trace
}

// Trace is a recorded sequence of pointer events.
type Trace struct {
	Name   string  `yaml:"name,omitempty"`
	Events []Event `yaml:"events"`
}

var typeForName = map[string]events.Types{
	"down":   events.Down,
	"move":   events.Move,
	"up":     events.Up,
	"cancel": events.Cancel,
}

var nameForType = map[events.Types]string{
	events.Down:   "down",
	events.Move:   "move",
	events.Up:     "up",
	events.Cancel: "cancel",
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

// Open reads a trace from the given YAML file.
func Open(filename string) (*Trace, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	tr := &Trace{}
	if err := yaml.Unmarshal(b, tr); err != nil {
		return nil, err
	}
	return tr, nil
}

// Save writes the trace to the given YAML file.
func (tr *Trace) Save(filename string) error {
	b, err := yaml.Marshal(tr)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Add appends one pointer event at the given offset from the start
// of the trace. Events of unknown type are dropped.
func (tr *Trace) Add(e *events.Pointer, at time.Duration) {
	name, ok := nameForType[e.Typ]
	if !ok {
		return
	}
	tr.Events = append(tr.Events, Event{
		T:       name,
		ID:      int64(e.ID),
		X:       e.Pos.X,
		Y:       e.Pos.Y,
		Buttons: int32(e.Buttons),
		Device:  nameForDevice[e.Device],
		At:      Duration(at),
	})
}

// decode converts the recorded event to a pointer event, without a
// delta or a final timestamp. It returns nil for unknown types.
func (ev *Event) decode() *events.Pointer {
	typ, ok := typeForName[ev.T]
	if !ok {
		return nil
	}
	return events.NewPointer(typ, events.PointerID(ev.ID), math32.Vec2(ev.X, ev.Y), events.Buttons(ev.Buttons), deviceForName[ev.Device])
}

// Run plays the trace into a handler. Event times are synthesized
// from the recorded offsets against one base time, and move deltas
// are recomputed from successive positions per contact, so a trace
// drives slop and hold-delay logic the same way on every run.
func (tr *Trace) Run(h Handler) {
	base := time.Now()
	prev := map[events.PointerID]math32.Vector2{}
	for i := range tr.Events {
		e := tr.Events[i].decode()
		if e == nil {
			continue
		}
		switch e.Typ {
		case events.Down:
			prev[e.ID] = e.Pos
		case events.Move:
			if p, ok := prev[e.ID]; ok {
				e.Delta = e.Pos.Sub(p)
			}
			prev[e.ID] = e.Pos
		case events.Up, events.Cancel:
			delete(prev, e.ID)
		}
		e.Time = base.Add(time.Duration(tr.Events[i].At))
		h.HandleEvent(e)
	}
}

// Recorder copies the events it handles into a trace, passing them
// on to an optional downstream handler. Offsets are taken from the
// event times, relative to the first event recorded.
type Recorder struct {
	Trace Trace
	Next  Handler

	start time.Time
}

// HandleEvent records one pointer event. Recorder implements
// [Handler], so it can sit between an event source and a recognizer.
func (r *Recorder) HandleEvent(e *events.Pointer) {
	if r.start.IsZero() {
		r.start = e.Time
	}
	r.Trace.Add(e, e.Time.Sub(r.start))
	if r.Next != nil {
		r.Next.HandleEvent(e)
	}
}
