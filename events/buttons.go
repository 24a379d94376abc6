// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"strconv"
	"strings"
)

// Buttons is a bitmask of the mouse buttons held down on a pointer
// contact, one bit per button. The bit values follow the W3C pointer
// events convention, so masks translate directly to and from browser
// and platform button state.
type Buttons int32

const (
	// NoButtons is the empty button mask. A whitelist of NoButtons
	// matches no contact.
	NoButtons Buttons = 0

	// Left is the primary mouse button. Touch contacts report Left.
	Left Buttons = 1 << (iota - 1)

	// Right is the secondary mouse button.
	Right

	// Middle is the wheel or middle mouse button.
	Middle
)

// Mask returns the union of the given buttons as one mask.
func Mask(buttons ...Buttons) Buttons {
	var m Buttons
	for _, b := range buttons {
		m |= b
	}
	return m
}

// Has returns whether the mask includes the given button.
func (bs Buttons) Has(b Buttons) bool {
	return bs&b != 0
}

// HasAny returns whether the mask and the other given mask share
// any button.
func (bs Buttons) HasAny(other Buttons) bool {
	return bs&other != 0
}

func (bs Buttons) String() string {
	if bs == NoButtons {
		return "NoButtons"
	}
	names := make([]string, 0, 3)
	if bs.Has(Left) {
		names = append(names, "Left")
	}
	if bs.Has(Right) {
		names = append(names, "Right")
	}
	if bs.Has(Middle) {
		names = append(names, "Middle")
	}
	if rest := bs &^ (Left | Right | Middle); rest != 0 {
		names = append(names, "Buttons("+strconv.Itoa(int(rest))+")")
	}
	return strings.Join(names, "|")
}
