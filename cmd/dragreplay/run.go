// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sanihaq/left-press-draggable/base/errors"
	"github.com/sanihaq/left-press-draggable/draggable"
	"github.com/sanihaq/left-press-draggable/events"
	"github.com/sanihaq/left-press-draggable/gesture"
	"github.com/sanihaq/left-press-draggable/replay"
	"github.com/sanihaq/left-press-draggable/wspointer"
)

type options struct {
	axis     string
	buttons  string
	slop     float64
	delay    time.Duration
	settings string
	trace    string
	listen   string
	record   string
}

// run wires the recognizer and drives it from the trace or the feed.
func run(opts options) error {
	if opts.settings != "" {
		if err := gesture.Open(opts.settings); err != nil {
			return err
		}
	}

	md, err := recognizer(opts)
	if err != nil {
		return err
	}

	switch {
	case opts.trace != "":
		tr, err := replay.Open(opts.trace)
		if err != nil {
			return err
		}
		fmt.Printf("replaying %d events\n", len(tr.Events))
		tr.Run(md)
		return nil
	case opts.listen != "":
		return serve(opts, md)
	}
	return errors.New("nothing to do: pass -trace or -listen")
}

// recognizer builds the configured recognizer, with its resolutions
// reported on stdout.
func recognizer(opts options) (*gesture.MultiDrag, error) {
	axis, err := parseAxis(opts.axis)
	if err != nil {
		return nil, err
	}
	buttons, err := parseButtons(opts.buttons)
	if err != nil {
		return nil, err
	}

	rep := &reporter{}
	dr := &draggable.Draggable{
		Axis:    axis,
		Buttons: buttons,
		Delay:   opts.delay,
		OnDragStarted: func(d *draggable.Drag) {
			rep.startedNow = true
			fmt.Printf("drag started at %s\n", d.Origin)
		},
		OnDragUpdate: func(d *draggable.Drag) {
			fmt.Printf("drag moved to %s\n", d.Pos)
		},
		OnDragEnd: func(d *draggable.Drag) {
			fmt.Printf("drag ended at %s\n", d.Pos)
		},
		OnDragCanceled: func(d *draggable.Drag) {
			fmt.Printf("drag canceled at %s\n", d.Pos)
		},
	}

	md := dr.Recognizer()
	md.Arena = rep
	if opts.slop > 0 {
		s := float32(opts.slop)
		md.Slop = func(events.Devices) float32 { return s }
	}
	return md, nil
}

func parseAxis(s string) (gesture.Axes, error) {
	switch s {
	case "any":
		return gesture.AllAxes, nil
	case "horizontal":
		return gesture.Horizontal, nil
	case "vertical":
		return gesture.Vertical, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

func parseButtons(s string) ([]events.Buttons, error) {
	if s == "" {
		return []events.Buttons{}, nil
	}
	var bs []events.Buttons
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "left":
			bs = append(bs, events.Left)
		case "right":
			bs = append(bs, events.Right)
		case "middle":
			bs = append(bs, events.Middle)
		default:
			return nil, fmt.Errorf("unknown button %q", name)
		}
	}
	return bs, nil
}

// serve feeds the recognizer from a websocket pointer feed until
// interrupted, recording the feed if asked to.
func serve(opts options, md *gesture.MultiDrag) error {
	if opts.settings != "" {
		stop, err := gesture.Watch(opts.settings)
		if err != nil {
			return err
		}
		defer stop()
	}

	var h replay.Handler = md
	var rec *replay.Recorder
	if opts.record != "" {
		rec = &replay.Recorder{Next: md}
		h = rec
	}

	q := &events.Queue{}
	q.Init()
	mux := http.NewServeMux()
	mux.Handle("/pointer", wspointer.NewServer(q))
	server := &http.Server{Addr: opts.listen, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()
	fmt.Printf("listening on ws://%s/pointer\n", opts.listen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tick := time.NewTicker(4 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if rec != nil {
				fmt.Printf("recording %d events to %s\n", len(rec.Trace.Events), opts.record)
				return rec.Trace.Save(opts.record)
			}
			return nil
		case err := <-errCh:
			return err
		case <-tick.C:
			for e := q.NextEvent(); e != nil; e = q.NextEvent() {
				h.HandleEvent(e)
			}
		}
	}
}

// reporter is an arena wrapper that reports contacts claimed without
// a drag, which otherwise resolve silently. The recognizer runs the
// start callback synchronously inside Resolve, so whether a drag
// started is known as soon as it returns.
type reporter struct {
	arena      gesture.BasicArena
	startedNow bool
}

// Add implements [gesture.Arena].
func (r *reporter) Add(id events.PointerID, m gesture.Member) gesture.Entry {
	return &reportingEntry{entry: r.arena.Add(id, m), id: id, r: r}
}

type reportingEntry struct {
	entry gesture.Entry
	id    events.PointerID
	r     *reporter
}

// Resolve implements [gesture.Entry].
func (e *reportingEntry) Resolve(d gesture.Disposition) {
	e.r.startedNow = false
	e.entry.Resolve(d)
	switch {
	case d == gesture.Rejected:
		fmt.Printf("contact %d: no drag\n", e.id)
	case !e.r.startedNow:
		fmt.Printf("contact %d: claimed, buttons not allowed\n", e.id)
	}
}
