// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"strconv"

	"github.com/sanihaq/left-press-draggable/events"
)

// Disposition is a recognizer's claim on a pointer contact.
type Disposition int32

const (
	// Accepted claims the contact for the resolving member.
	Accepted Disposition = iota

	// Rejected gives the contact up.
	Rejected
)

var dispositionNames = []string{"Accepted", "Rejected"}

func (d Disposition) String() string {
	if d < 0 || int(d) >= len(dispositionNames) {
		return "Disposition(" + strconv.Itoa(int(d)) + ")"
	}
	return dispositionNames[d]
}

// Member competes for the ownership of pointer contacts in an [Arena].
// [MultiDrag] is a Member.
type Member interface {
	// AcceptGesture tells the member it has won the competition for
	// the given contact and now owns it.
	AcceptGesture(id events.PointerID)

	// RejectGesture tells the member it has lost the competition for
	// the given contact and must not act on it.
	RejectGesture(id events.PointerID)
}

// Entry is a member's handle on the competition for one contact.
type Entry interface {
	// Resolve declares the member's claim on the contact. Only the
	// first resolution of an entry has an effect; later calls are
	// no-ops.
	Resolve(d Disposition)
}

// Arena decides which member owns each pointer contact. A toolkit
// with its own gesture disambiguation can implement Arena to let drag
// recognizers compete with the rest of its gesture system; standalone
// recognizers fall back on a [BasicArena] of their own.
type Arena interface {
	// Add enters the member into the competition for the given
	// contact and returns the member's entry handle.
	Add(id events.PointerID, m Member) Entry
}

// BasicArena is a minimal [Arena]: the first member to resolve
// [Accepted] wins the contact and every other member is rejected,
// while a member that resolves [Rejected] drops out alone. There is
// no default winner; an unclaimed contact stays unclaimed. The zero
// value is ready to use. BasicArena is not safe for concurrent use.
type BasicArena struct {
	contests map[events.PointerID][]Member
}

// Add enters the member into the competition for the given contact.
func (a *BasicArena) Add(id events.PointerID, m Member) Entry {
	if a.contests == nil {
		a.contests = map[events.PointerID][]Member{}
	}
	a.contests[id] = append(a.contests[id], m)
	return &basicEntry{arena: a, id: id, member: m}
}

// basicEntry is one member's handle on a [BasicArena] contact.
type basicEntry struct {
	arena  *BasicArena
	id     events.PointerID
	member Member
	done   bool
}

func (e *basicEntry) Resolve(d Disposition) {
	if e.done {
		return
	}
	e.done = true
	e.arena.resolve(e.id, e.member, d)
}

// resolve applies one member's claim to the contest for a contact.
// The contest is updated before any member callback runs, so that
// reentrant resolutions see the decided state.
func (a *BasicArena) resolve(id events.PointerID, m Member, d Disposition) {
	members, ok := a.contests[id]
	if !ok {
		return
	}
	idx := -1
	for i, o := range members {
		if o == m {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if d == Rejected {
		members = append(members[:idx], members[idx+1:]...)
		if len(members) == 0 {
			delete(a.contests, id)
		} else {
			a.contests[id] = members
		}
		m.RejectGesture(id)
		return
	}
	delete(a.contests, id)
	m.AcceptGesture(id)
	for _, o := range members {
		if o != m {
			o.RejectGesture(id)
		}
	}
}
