/*
Package loctable implements a localization table: a process-wide map from
(namespace, key) to a shared, mutable display string.

Display strings live in an arena and are handed out as arena handles.
Updating a translation writes the arena slot in place, so every text value
holding the handle sees the new translation. A monotonic revision counter
is bumped once for every effective translation change, and by clients for
every effective culture change. Text values compare their stamp against the
revision to find out whether they are stale.

Every entry remembers a hash of its source string. Registering a different
source for an existing (namespace, key) is an identity collision: it is
logged, and the first registered source wins.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package loctable

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/emirpasic/gods/maps/hashbidimap"
	"github.com/npillmayer/lingua/arena"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to lingua.loctable .
func tracer() tracing.Trace {
	return tracing.Select("lingua.loctable")
}

// ID identifies a table entry.
type ID struct {
	Namespace string
	Key       string
}

func (id ID) String() string {
	return fmt.Sprintf("[%s] %s", id.Namespace, id.Key)
}

// Entry is used for loading translations in bulk.
type Entry struct {
	Namespace   string
	Key         string
	Source      string
	Translation string // empty: display the source
}

type entry struct {
	sourceHash uint64
	source     string
	display    arena.Handle
}

// Table is a localization table. It is safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	arena    *arena.Arena
	entries  map[ID]*entry
	reverse  *hashbidimap.Map // ID ⇔ arena.Handle
	revision atomic.Uint64
}

// New creates a localization table which stores its display strings in a.
func New(a *arena.Arena) *Table {
	if a == nil {
		a = arena.New(64)
	}
	return &Table{
		arena:   a,
		entries: make(map[ID]*entry),
		reverse: hashbidimap.New(),
	}
}

// Hash is the hash function for source strings.
func Hash(source string) uint64 {
	return xxhash.Sum64String(source)
}

// Arena returns the arena holding the table's display strings.
func (t *Table) Arena() *arena.Arena {
	return t.arena
}

// Revision returns the current global revision.
func (t *Table) Revision() uint64 {
	return t.revision.Load()
}

// BumpRevision increments the global revision and returns the new value.
// Clients call it once for every effective culture change.
func (t *Table) BumpRevision() uint64 {
	r := t.revision.Add(1)
	tracer().Debugf("revision is now %d", r)
	return r
}

// Find looks up the display string of an entry. If expectedSourceHash is
// not 0 it has to match the hash of the entry's source string.
func (t *Table) Find(namespace, key string, expectedSourceHash uint64) (arena.Handle, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[ID{namespace, key}]
	if !ok {
		return arena.Nil, false
	}
	if expectedSourceHash != 0 && e.sourceHash != expectedSourceHash {
		tracer().P("id", ID{namespace, key}).Debugf("source hash mismatch")
		return arena.Nil, false
	}
	return e.display, true
}

// GetOrCreate returns the display string of an entry, creating the entry
// with source as its display string if it does not exist. If the entry
// exists with a different source, the collision is logged and the existing
// entry is returned unchanged.
func (t *Table) GetOrCreate(namespace, key, source string) arena.Handle {
	id := ID{namespace, key}
	hash := Hash(source)
	t.mu.RLock()
	e, ok := t.entries[id]
	t.mu.RUnlock()
	if ok {
		t.checkCollision(id, e, hash, source)
		return e.display
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok = t.entries[id]; ok { // lost a race
		t.checkCollision(id, e, hash, source)
		return e.display
	}
	e = t.insert(id, source, hash, source)
	return e.display
}

func (t *Table) insert(id ID, source string, hash uint64, display string) *entry {
	e := &entry{sourceHash: hash, source: source, display: t.arena.Alloc(display)}
	t.entries[id] = e
	t.reverse.Put(id, e.display)
	tracer().P("id", id).Debugf("new table entry")
	return e
}

func (t *Table) checkCollision(id ID, e *entry, hash uint64, source string) bool {
	if e.sourceHash == hash {
		return false
	}
	tracer().P("id", id).P("warning", "collision").Infof(
		"source text collision: registered %q, ignoring %q", e.source, source)
	return true
}

// Source returns the source string of an entry.
func (t *Table) Source(namespace, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e, ok := t.entries[ID{namespace, key}]; ok {
		return e.source, true
	}
	return "", false
}

// UpdateDisplayString sets the translation of an existing entry. It returns
// false if there is no such entry. The revision is bumped if the display
// string actually changes.
func (t *Table) UpdateDisplayString(namespace, key, display string) bool {
	t.mu.RLock()
	e, ok := t.entries[ID{namespace, key}]
	t.mu.RUnlock()
	if !ok {
		return false
	}
	if current, _ := t.arena.Get(e.display); current == display {
		return true
	}
	t.arena.Set(e.display, display)
	t.BumpRevision()
	return true
}

// Load registers a batch of entries. New entries are created, existing
// entries with a matching source get their translation updated, colliding
// entries are logged and skipped. The revision is bumped at most once, if
// any existing display string changed. Load returns the number of entries
// created or updated.
func (t *Table) Load(entries []Entry) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, changed := 0, false
	for _, le := range entries {
		id := ID{le.Namespace, le.Key}
		hash := Hash(le.Source)
		display := le.Translation
		if display == "" {
			display = le.Source
		}
		e, ok := t.entries[id]
		if !ok {
			t.insert(id, le.Source, hash, display)
			n++
			continue
		}
		if t.checkCollision(id, e, hash, le.Source) {
			continue
		}
		if current, _ := t.arena.Get(e.display); current != display {
			t.arena.Set(e.display, display)
			changed = true
			n++
		}
	}
	if changed {
		t.BumpRevision()
	}
	tracer().Infof("loaded %d of %d table entries", n, len(entries))
	return n
}

// TableID finds the entry a display string belongs to.
func (t *Table) TableID(h arena.Handle) (ID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id, ok := t.reverse.GetKey(h); ok {
		return id.(ID), true
	}
	return ID{}, false
}

// IsTableString reports whether h is the display string of a table entry.
func (t *Table) IsTableString(h arena.Handle) bool {
	_, ok := t.TableID(h)
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Clear removes all entries and releases their display strings. The
// revision is not reset.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.entries {
		t.arena.Release(e.display)
	}
	t.entries = make(map[ID]*entry)
	t.reverse.Clear()
}
