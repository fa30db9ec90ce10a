/*
Package breakiter manages break iterators bound to a culture.

A Pool hands out iterators for grapheme, word, line, sentence and title
boundaries. Clients refer to iterators by non-owning handles:

  pool := breakiter.NewPool()
  h, err := pool.CreateIterator(c, breakiter.Line)
  it := pool.Iterator(h)
  it.SetString("Hello World")
  for pos := it.MoveToNext(); pos != breakiter.Done; pos = it.MoveToNext() {
      ...
  }
  pool.DestroyIterator(h)

Break engines (segmenters with their UAX breakers) are expensive to set
up, so the pool keeps them in object pools, one per culture and kind.
Destroying an iterator returns its engine. Handles are generation-checked:
a destroyed handle stays harmless, destroying it again is a no-op.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package breakiter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/lingua"
	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/grapheme"
	"github.com/npillmayer/lingua/segment"
	"github.com/npillmayer/lingua/uax14"
	"github.com/npillmayer/lingua/uax29"
	"github.com/npillmayer/schuko/tracing"
	"go.trai.ch/zerr"
)

// tracer traces to lingua.segment .
func tracer() tracing.Trace {
	return tracing.Select("lingua.segment")
}

// Errors returned by a Pool.
var (
	ErrUnknownKind = errors.New("breakiter: unknown iterator kind")
	ErrPoolClosed  = errors.New("breakiter: pool closed")
)

// Handle refers to an iterator of a Pool. The zero value refers to no
// iterator.
type Handle struct {
	index uint32 // slot index + 1
	gen   uint32
}

// IsNil returns true for the zero handle.
func (h Handle) IsNil() bool { return h.index == 0 }

func (h Handle) String() string {
	if h.IsNil() {
		return "Iterator(nil)"
	}
	return fmt.Sprintf("Iterator(%d/%d)", h.index-1, h.gen)
}

type engineKey struct {
	culture string
	kind    Kind
}

type slot struct {
	gen  uint32
	it   *Iterator
	from *pool.ObjectPool
}

// Pool is the registry of live iterators. It is safe for concurrent use;
// a single iterator is not.
type Pool struct {
	mu      sync.Mutex
	ctx     context.Context
	slots   []slot
	free    []uint32
	live    *hashset.Set // of Handle
	engines map[engineKey]*pool.ObjectPool
	closed  bool
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{
		ctx:     context.Background(),
		live:    hashset.New(),
		engines: make(map[engineKey]*pool.ObjectPool),
	}
}

// CreateIterator creates an iterator of the given kind for culture c.
// A nil culture selects the invariant culture's rules.
func (p *Pool) CreateIterator(c *culture.Culture, kind Kind) (Handle, error) {
	if kind < 0 || kind >= numKinds {
		return Handle{}, zerr.With(ErrUnknownKind, "kind", int(kind))
	}
	name := culture.InvariantName
	if c != nil {
		name = c.Name()
	}
	key := engineKey{culture: name, kind: kind}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return Handle{}, ErrPoolClosed
	}
	engines, ok := p.engines[key]
	if !ok {
		engines = newEnginePool(p.ctx, c, kind)
		p.engines[key] = engines
	}
	p.mu.Unlock()
	// borrowing may construct an engine; do not hold the lock
	o, err := engines.BorrowObject(p.ctx)
	if err != nil {
		return Handle{}, zerr.With(zerr.Wrap(err, "cannot create break engine"), "culture", name)
	}
	it := newIterator(kind, name, o.(*segment.Segmenter))
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		_ = engines.ReturnObject(p.ctx, o)
		return Handle{}, ErrPoolClosed
	}
	var h Handle
	if n := len(p.free); n > 0 {
		i := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[i].it, p.slots[i].from = it, engines
		h = Handle{index: i + 1, gen: p.slots[i].gen}
	} else {
		p.slots = append(p.slots, slot{it: it, from: engines})
		h = Handle{index: uint32(len(p.slots))}
	}
	p.live.Add(h)
	tracer().P("culture", name).Debugf("created %s iterator %v", kind, h)
	return h, nil
}

// Iterator returns the iterator for h, or nil if h is stale.
func (p *Pool) Iterator(h Handle) *Iterator {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.live.Contains(h) {
		return nil
	}
	return p.slots[h.index-1].it
}

// DestroyIterator releases the iterator for h and returns its break engine
// to the pool. Destroying a stale handle does nothing.
func (p *Pool) DestroyIterator(h Handle) {
	p.mu.Lock()
	if !p.live.Contains(h) {
		p.mu.Unlock()
		return
	}
	p.live.Remove(h)
	s := &p.slots[h.index-1]
	it, from := s.it, s.from
	s.it, s.from = nil, nil
	s.gen++
	p.free = append(p.free, h.index-1)
	p.mu.Unlock()
	it.SetString("")
	if err := from.ReturnObject(p.ctx, it.engine); err != nil {
		tracer().Errorf("cannot return break engine: %v", err)
	}
	it.engine = nil
	tracer().Debugf("destroyed %s iterator %v", it.kind, h)
}

// Live returns the number of live iterators.
func (p *Pool) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live.Size()
}

// Close destroys all live iterators and the break engine pools.
// Creating iterators on a closed pool fails with ErrPoolClosed.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	var handles []Handle
	for _, v := range p.live.Values() {
		handles = append(handles, v.(Handle))
	}
	p.mu.Unlock()
	for _, h := range handles {
		p.DestroyIterator(h)
	}
	p.mu.Lock()
	p.closed = true
	engines := p.engines
	p.engines = nil
	p.mu.Unlock()
	for _, e := range engines {
		e.Close(p.ctx)
	}
}

func newEnginePool(ctx context.Context, c *culture.Culture, kind Kind) *pool.ObjectPool {
	loose := false
	if c != nil {
		switch c.TwoLetterISOLanguageName() {
		case "ja", "zh":
			loose = true
		}
	}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return segment.NewSegmenter(newBreaker(kind, loose)), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // unbounded
	config.BlockWhenExhausted = false
	return pool.NewObjectPool(ctx, factory, config)
}

func newBreaker(kind Kind, loose bool) lingua.UnicodeBreaker {
	switch kind {
	case Word, Title:
		return uax29.NewWordBreaker(1)
	case Line:
		if loose {
			return uax14.NewLooseLineWrap()
		}
		return uax14.NewLineWrap()
	case Sentence:
		return uax29.NewSentenceBreaker()
	}
	return grapheme.NewBreaker(1)
}
