/*
Package arena holds display strings in a slot table, addressed by
generation-checked handles.

Text values share their display string by holding a handle into an arena.
Rebuilding a value writes the new content into the slot, and every holder
of the handle reads the update on its next access. A released slot is
recycled through a free list; its generation is bumped, so stale handles
never observe the new occupant.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package arena

import (
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to lingua.arena .
func tracer() tracing.Trace {
	return tracing.Select("lingua.arena")
}

// Handle addresses a slot in an Arena. The zero value is the nil handle.
type Handle struct {
	index uint32 // slot index + 1
	gen   uint32
}

// Nil is the handle which does not address any slot.
var Nil = Handle{}

// IsNil returns true for the nil handle.
func (h Handle) IsNil() bool {
	return h.index == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "Handle(nil)"
	}
	return fmt.Sprintf("Handle(%d/%d)", h.index-1, h.gen)
}

type slot struct {
	content string
	gen     uint32
	live    bool
}

// Arena is a table of string slots. It is safe for concurrent use.
type Arena struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32
	live  int
}

// New creates an arena with room for size slots before it has to grow.
func New(size int) *Arena {
	if size < 0 {
		size = 0
	}
	return &Arena{slots: make([]slot, 0, size)}
}

// Alloc stores s in a fresh slot and returns its handle.
func (a *Arena) Alloc(s string) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()
	var i uint32
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		i = uint32(len(a.slots) - 1)
	}
	sl := &a.slots[i]
	sl.content = s
	sl.live = true
	a.live++
	return Handle{index: i + 1, gen: sl.gen}
}

func (a *Arena) lookup(h Handle) *slot {
	if h.IsNil() || int(h.index) > len(a.slots) {
		return nil
	}
	sl := &a.slots[h.index-1]
	if !sl.live || sl.gen != h.gen {
		return nil
	}
	return sl
}

// Get returns the content of the slot addressed by h. The flag is false
// for the nil handle and for stale handles.
func (a *Arena) Get(h Handle) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if sl := a.lookup(h); sl != nil {
		return sl.content, true
	}
	return "", false
}

// Set overwrites the content of the slot addressed by h. It returns false
// if h is stale.
func (a *Arena) Set(h Handle, s string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	sl := a.lookup(h)
	if sl == nil {
		tracer().P("handle", h).Debugf("arena: set on stale handle")
		return false
	}
	sl.content = s
	return true
}

// Valid returns true if h addresses a live slot.
func (a *Arena) Valid(h Handle) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lookup(h) != nil
}

// Release frees the slot addressed by h. Releasing a stale handle is a
// no-op and returns false.
func (a *Arena) Release(h Handle) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	sl := a.lookup(h)
	if sl == nil {
		return false
	}
	sl.content = ""
	sl.live = false
	sl.gen++
	a.free = append(a.free, h.index-1)
	a.live--
	return true
}

// Len returns the number of live slots.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.live
}

// Cap returns the number of slots allocated so far, live or free.
func (a *Arena) Cap() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.slots)
}
