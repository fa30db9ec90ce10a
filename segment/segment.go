/*
Package segment is about Unicode text segmenting.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the 'segments' of a file.
Clients are able to get runes of the segment by calling Bytes() or Text().
Unlike Scanner, segmenters are calculating a 'penalty' for breaking
at this segment. Penalties are numeric values and reflect costs, where
negative values are to be interpreted as negative costs, i.e. merits.

Clients instantiate a UnicodeBreaker object and use it as the
breaking engine for a segmenter. Multiple breaking engines may be
supplied (where the first one is called the primary breaker and any
following breaker is a secondary breaker).

  breaker1 := ...
  breaker2 := ...
  segmenter := segment.NewSegmenter(breaker1, breaker2)
  segmenter.Init(...)
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

An example for an UnicodeBreaker is "uax29.WordBreaker", a breaker
implementing the UAX#29 word breaking algorithm.

How it works

Text values handled by this module are short (labels, messages, paragraphs),
so the segmenter reads its input completely on the first call to Next().
For every rune r read, the segmenter will fire up all the rules which
start with r. It is not uncommon that the lifetime of a lot of rules
overlap and all those rules are adding breaking information. Penalties are
collected for every position between runes and aggregated; only then break
opportunities are decided. Rules therefore may revise decisions for
positions behind the most recent rune, as long as they are still active.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package segment

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lingua"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to lingua.segment .
func tracer() tracing.Trace {
	return tracing.Select("lingua.segment")
}

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// segments it into smaller parts, called segments.
//
// What makes up a segment is defined by a breaker function of type
// UnicodeBreaker; the default UnicodeBreaker breaks the input into words,
// using whitespace as boundaries. For more sophisticated breakers see
// sub-packages grapheme, uax29 and uax14.
type Segmenter struct {
	reader        io.RuneReader
	breakers      []lingua.UnicodeBreaker
	text          []byte   // complete input
	offsets       []int    // byte offset of every rune, plus len(text)
	totals        [][2]int // aggregated penalty after rune i, per primary/secondary breaker
	pos           int      // index of next rune to segment
	activeSegment []byte
	lastPenalties [2]int
	maxInputLen   int
	breakOnZero   [2]bool
	prepared      bool
	err           error
}

// MaxInputSize is the maximum number of bytes a segmenter will read.
const MaxInputSize = 1024 * 1024

// ErrTooLong flags an input exceeding MaxInputSize.
// ErrNotInitialized is returned if a segmenter's Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("segmenter: input too long")
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter by providing breaking logic (UnicodeBreaker).
// Clients may provide more than one UnicodeBreaker. Specifying no
// UnicodeBreaker results in getting a SimpleWordBreaker, which will
// break on whitespace.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter(breakers ...lingua.UnicodeBreaker) *Segmenter {
	s := &Segmenter{maxInputLen: MaxInputSize}
	if len(breakers) == 0 {
		breakers = []lingua.UnicodeBreaker{NewSimpleWordBreaker()}
	}
	s.breakers = breakers
	return s
}

// Resetter is implemented by breakers which hold state between runs.
// A segmenter resets its breakers on Init().
type Resetter interface {
	Reset()
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	s.text = s.text[:0]
	s.offsets = s.offsets[:0]
	s.totals = s.totals[:0]
	s.pos = 0
	s.activeSegment = nil
	s.lastPenalties = [2]int{}
	s.prepared = false
	s.err = nil
	for _, b := range s.breakers {
		if r, ok := b.(Resetter); ok {
			r.Reset()
		}
	}
}

// InitFromString is a shortcut for Init(strings.NewReader(text)).
func (s *Segmenter) InitFromString(text string) {
	s.Init(strings.NewReader(text))
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// BreakOnZero sets wether a penalty of 0 is to be treated as a valid
// breakpoint, separately for the primary and the secondary breakers.
func (s *Segmenter) BreakOnZero(forP1, forP2 bool) {
	s.breakOnZero[0] = forP1
	s.breakOnZero[1] = forP2
}

// Penalties >= InfinitePenalty are considered too bad for being a break opportunity.
func isPossibleBreak(p int, breakOnZero bool) bool {
	if p >= lingua.InfinitePenalty {
		return false
	}
	if !breakOnZero && p == 0 {
		return false
	}
	return true
}

// Next gets the next segment, together with the accumulated penalty for this break.
//
// Next() advances the Segmenter to the next segment, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	if !s.prepared {
		if err := s.prepare(); err != nil {
			s.setErr(err)
			s.activeSegment = nil
			return false
		}
	}
	n := len(s.offsets) - 1 // number of runes
	if s.pos >= n {
		s.activeSegment = nil
		return false
	}
	end := n - 1
	for i := s.pos; i < n-1; i++ {
		if s.isBreakAfter(i) {
			end = i
			break
		}
	}
	s.activeSegment = s.text[s.offsets[s.pos]:s.offsets[end+1]]
	s.lastPenalties[0] = lingua.Bounded(s.totals[end][0])
	s.lastPenalties[1] = lingua.Bounded(s.totals[end][1])
	tracer().P("length", len(s.activeSegment)).Debugf("Next() = %q", string(s.activeSegment))
	s.pos = end + 1
	return true
}

func (s *Segmenter) isBreakAfter(i int) bool {
	p0 := lingua.Bounded(s.totals[i][0])
	if isPossibleBreak(p0, s.breakOnZero[0]) {
		return true
	}
	if len(s.breakers) > 1 {
		return isPossibleBreak(lingua.Bounded(s.totals[i][1]), s.breakOnZero[1])
	}
	return false
}

// Bytes returns the most recent segment generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Init(). No allocation is performed.
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

// Penalties returns the last penalties a segmenter calculated.
// Two penalties are returned. The first one is the penalty returned from the
// primary breaker, the second one is the aggregate of all penalties of all the
// secondary breakers (if any).
func (s *Segmenter) Penalties() (int, int) {
	return s.lastPenalties[0], s.lastPenalties[1]
}

func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// prepare reads all of the input and lets the breakers compute penalties
// for every position.
func (s *Segmenter) prepare() error {
	s.prepared = true
	var runes []rune
	for {
		r, sz, err := s.reader.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			tracer().P("rune", fmt.Sprintf("%#U", r)).Errorf("ReadRune() error: %s", err)
			return err
		}
		if r == utf8.RuneError && sz == 1 {
			r = '�'
		}
		s.offsets = append(s.offsets, len(s.text))
		s.text = utf8.AppendRune(s.text, r)
		runes = append(runes, r)
		if len(s.text) > s.maxInputLen {
			return ErrTooLong
		}
	}
	s.offsets = append(s.offsets, len(s.text))
	s.totals = append(s.totals, make([][2]int, len(runes))...)
	for i, r := range runes {
		s.proceed(i, r)
	}
	s.proceed(len(runes), 0) // eot
	return nil
}

func (s *Segmenter) proceed(i int, r rune) {
	for b, breaker := range s.breakers {
		sel := 1
		if b == 0 {
			sel = 0
		}
		cpClass := breaker.CodePointClassFor(r)
		breaker.StartRulesFor(r, cpClass)
		breaker.ProceedWithRune(r, cpClass)
		for k, p := range breaker.Penalties() {
			j := i - k
			if j < 0 {
				break
			}
			if j >= len(s.totals) { // after eot
				continue
			}
			s.totals[j][sel] += p
		}
	}
}

// Boundaries returns the byte offsets of all segment ends, using the
// breakers of s. The result does not include position 0. Positions of
// breaks with a penalty ≤ InfiniteMerits are flagged as mandatory.
func (s *Segmenter) Boundaries(text string) (ends []int, mandatory []bool) {
	s.InitFromString(text)
	pos := 0
	for s.Next() {
		pos += len(s.Bytes())
		p0, p1 := s.Penalties()
		ends = append(ends, pos)
		mandatory = append(mandatory, p0 <= lingua.InfiniteMerits || p1 <= lingua.InfiniteMerits)
	}
	return
}

// --- Simple word breaker ---------------------------------------------------

// SimpleWordBreaker is a UnicodeBreaker which breaks at transitions between
// whitespace and non-whitespace.
type SimpleWordBreaker struct {
	previous  int
	penalties []int
}

// NewSimpleWordBreaker creates a breaker for whitespace-delimited words.
func NewSimpleWordBreaker() *SimpleWordBreaker {
	return &SimpleWordBreaker{previous: sot, penalties: make([]int, 2)}
}

const (
	sot = iota - 1
	nonSpace
	space
	eot
)

// CodePointClassFor is part of interface UnicodeBreaker.
func (swb *SimpleWordBreaker) CodePointClassFor(r rune) int {
	if r == 0 {
		return eot
	}
	if unicode.IsSpace(r) {
		return space
	}
	return nonSpace
}

// StartRulesFor is part of interface UnicodeBreaker.
func (swb *SimpleWordBreaker) StartRulesFor(rune, int) {}

// ProceedWithRune is part of interface UnicodeBreaker.
func (swb *SimpleWordBreaker) ProceedWithRune(r rune, cpClass int) {
	swb.penalties[0], swb.penalties[1] = 0, 0
	if swb.previous != sot && cpClass != swb.previous {
		swb.penalties[1] = -100
	}
	swb.previous = cpClass
}

// LongestActiveMatch is part of interface UnicodeBreaker.
func (swb *SimpleWordBreaker) LongestActiveMatch() int { return 0 }

// Penalties is part of interface UnicodeBreaker.
func (swb *SimpleWordBreaker) Penalties() []int { return swb.penalties }

// Reset is part of interface Resetter.
func (swb *SimpleWordBreaker) Reset() { swb.previous = sot }
