// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main replays pointer traces, or serves a live websocket
// pointer feed, through a button-filtered drag recognizer, and
// reports how each contact resolves.
package main

import (
	"flag"
	"os"

	"github.com/sanihaq/left-press-draggable/base/errors"
)

func main() {
	opts := options{}
	flag.StringVar(&opts.axis, "axis", "any", "drag axis: any, horizontal, or vertical")
	flag.StringVar(&opts.buttons, "buttons", "left", "comma-separated buttons that may start a drag: left, right, middle; empty allows none")
	flag.Float64Var(&opts.slop, "slop", 0, "fixed slop distance, overriding the per-device settings")
	flag.DurationVar(&opts.delay, "delay", 0, "how long a contact must be held before it may start a drag")
	flag.StringVar(&opts.settings, "settings", "", "TOML settings file to load")
	flag.StringVar(&opts.trace, "trace", "", "YAML pointer trace to replay")
	flag.StringVar(&opts.listen, "listen", "", "address to serve the websocket pointer feed on, such as :8372")
	flag.StringVar(&opts.record, "record", "", "YAML file to record the pointer feed to, with -listen")
	flag.Parse()

	if err := run(opts); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
