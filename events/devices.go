// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Devices is the kind of device that produced a pointer contact.
// It determines how far a contact must travel before it counts
// as a drag.
type Devices int32

const (
	// UnknownDevice is a pointer device of unrecognized kind.
	// It gets the conservative touch slop.
	UnknownDevice Devices = iota

	// Mouse is a precise pointing device.
	Mouse

	// Touch is a finger on a touchscreen.
	Touch

	// Stylus is a pen on a tablet or touchscreen.
	Stylus

	// Trackpad is a trackpad driving the system pointer.
	Trackpad
)

var deviceNames = []string{"UnknownDevice", "Mouse", "Touch", "Stylus", "Trackpad"}

func (d Devices) String() string {
	if d < 0 || int(d) >= len(deviceNames) {
		return "Devices(" + strconv.Itoa(int(d)) + ")"
	}
	return deviceNames[d]
}
