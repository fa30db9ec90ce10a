/*
Package wordwrap finds wrap points for paragraphs of text.

A Wrapper walks a string line by line. Each call to ProcessLine emits the
span of the next line, measured by a caller-supplied predicate which
decides if a piece of text fits into the line. Break candidates come from
UAX#14 line breaking, supported by UAX#29 word boundaries inside scripts
which are segmented by dictionary, like Thai or Katakana. If no candidate
fits, lines are broken between grapheme clusters.

  spans, err := wordwrap.WordWrap(pool, c, text, wordwrap.FitsWidth(40, nil))

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package wordwrap

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lingua/breakiter"
	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/uax11"
	"github.com/npillmayer/lingua/uax29"
	"github.com/npillmayer/schuko/tracing"
	"go.trai.ch/zerr"
)

// tracer traces to lingua.segment .
func tracer() tracing.Trace {
	return tracing.Select("lingua.segment")
}

// Fits reports whether a piece of text fits into a line. It has to be
// monotone: if a string fits, every prefix of it fits as well.
type Fits func(string) bool

// FitsWidth returns a predicate measuring text in terms of UAX#11 `en`s.
// A nil context selects uax11.LatinContext.
func FitsWidth(width int, context *uax11.Context) Fits {
	if context == nil {
		context = uax11.LatinContext
	}
	return func(s string) bool {
		return uax11.TextWidth(s, context) <= width
	}
}

// Span is the byte range [Start,End) of a line. Whitespace and line
// terminators at the line break are not part of it.
type Span struct {
	Start, End int
}

// Text returns the line of s which sp denotes.
func (sp Span) Text(s string) string {
	return s[sp.Start:sp.End]
}

// Wrapper splits a string into lines. A Wrapper holds iterators from a
// breakiter.Pool and must be closed after use.
type Wrapper struct {
	pool       *breakiter.Pool
	text       string
	fits       Fits
	start      int
	handles    [3]breakiter.Handle
	line, word *breakiter.Iterator
	graphemes  *breakiter.Iterator
}

// New creates a Wrapper for text, using break iterators of culture c.
func New(pool *breakiter.Pool, c *culture.Culture, text string, fits Fits) (*Wrapper, error) {
	w := &Wrapper{pool: pool, text: text, fits: fits}
	for i, kind := range []breakiter.Kind{breakiter.Line, breakiter.Word, breakiter.Grapheme} {
		h, err := pool.CreateIterator(c, kind)
		if err != nil {
			w.Close()
			return nil, zerr.Wrap(err, "word wrapper needs break iterators")
		}
		w.handles[i] = h
	}
	w.line = pool.Iterator(w.handles[0])
	w.word = pool.Iterator(w.handles[1])
	w.graphemes = pool.Iterator(w.handles[2])
	w.line.SetString(text)
	w.word.SetString(text)
	w.graphemes.SetString(text)
	return w, nil
}

// Close returns the iterators of w to the pool.
func (w *Wrapper) Close() {
	for i, h := range w.handles {
		if !h.IsNil() {
			w.pool.DestroyIterator(h)
			w.handles[i] = breakiter.Handle{}
		}
	}
}

// StartIndex is the byte position where the next line starts.
func (w *Wrapper) StartIndex() int {
	return w.start
}

// ProcessLine finds the next line. It returns false if the text is
// exhausted.
//
// The predicate given to New must accept at least one grapheme cluster,
// otherwise lines are broken after the first rune.
//
// Leading whitespace of the next line is skipped after a soft break only.
// After a mandatory break (a line terminator) the next line starts right
// behind the terminator, keeping indentation and empty lines.
func (w *Wrapper) ProcessLine() (Span, bool) {
	if w.start >= len(w.text) {
		return Span{}, false
	}
	start := w.start
	end := len(w.text) // end of region to wrap
	term, next := findTerminator(w.text, start)
	if term >= 0 {
		if w.fits(w.text[start:term]) {
			w.start = next
			sp := Span{Start: start, End: trimRight(w.text, start, term)}
			tracer().Debugf("line %v ends at mandatory break", sp)
			return sp, true
		}
		end = term
	}
	wrap := w.wrapIndex(start, end)
	var brk int
	switch {
	case wrap == len(w.text):
		brk = wrap
	default:
		limit := wrap
		if r, size := utf8.DecodeRuneInString(w.text[wrap:]); isSpace(r) {
			limit += size
		}
		if b := w.lineCandidate(limit); b > start {
			brk = b
		} else if b := w.graphemes.MoveToCandidateBefore(limit); b > start {
			brk = b
		} else {
			brk = wrap
		}
	}
	sp := Span{Start: start, End: trimRight(w.text, start, brk)}
	if term >= 0 && brk >= term { // the mandatory break consumes the terminator
		w.start = next
	} else {
		w.start = skipSpace(w.text, brk)
	}
	tracer().Debugf("line %v, wrap index %d", sp, wrap)
	return sp, true
}

// wrapIndex is the largest rune boundary in (start,end] such that the text
// from start fits. It is at least one rune past start.
func (w *Wrapper) wrapIndex(start, end int) int {
	var offsets []int
	for i := range w.text[start:end] {
		if i > 0 {
			offsets = append(offsets, start+i)
		}
	}
	offsets = append(offsets, end)
	n := sort.Search(len(offsets), func(i int) bool {
		return !w.fits(w.text[start:offsets[i]])
	})
	if n == 0 {
		return offsets[0] // hard break after the first rune
	}
	return offsets[n-1]
}

// lineCandidate is the latest break candidate at or before limit.
// Word boundaries count only within dictionary-segmented scripts.
func (w *Wrapper) lineCandidate(limit int) int {
	b := w.line.MoveToCandidateBefore(limit)
	wb := w.word.MoveToCandidateBefore(limit)
	for wb > b && wb != breakiter.Done {
		if isDictionaryBoundary(w.text, wb) {
			return wb
		}
		wb = w.word.MoveToPrevious()
	}
	return b
}

func isDictionaryBoundary(s string, i int) bool {
	if i <= 0 || i >= len(s) {
		return false
	}
	before, _ := utf8.DecodeLastRuneInString(s[:i])
	after, _ := utf8.DecodeRuneInString(s[i:])
	return uax29.IsDictionaryScript(before) && uax29.IsDictionaryScript(after)
}

// WordWrap splits s into lines which fit, using the break iterators of
// culture c.
func WordWrap(pool *breakiter.Pool, c *culture.Culture, s string, fits Fits) ([]Span, error) {
	w, err := New(pool, c, s, fits)
	if err != nil {
		return nil, err
	}
	defer w.Close()
	var spans []Span
	for {
		sp, ok := w.ProcessLine()
		if !ok {
			return spans, nil
		}
		spans = append(spans, sp)
	}
}

// Lines is a shortcut returning the text of the spans WordWrap finds.
func Lines(pool *breakiter.Pool, c *culture.Culture, s string, fits Fits) ([]string, error) {
	spans, err := WordWrap(pool, c, s, fits)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, sp := range spans {
		lines = append(lines, sp.Text(s))
	}
	return lines, nil
}

// --- Helpers ---------------------------------------------------------------

// findTerminator finds the first line terminator at or after start. It
// returns its position and the position after it, with CR+LF counting as
// one terminator, or -1 if there is none.
func findTerminator(s string, start int) (int, int) {
	i := strings.IndexFunc(s[start:], isTerminator)
	if i < 0 {
		return -1, -1
	}
	i += start
	r, size := utf8.DecodeRuneInString(s[i:])
	next := i + size
	if r == '\r' && next < len(s) && s[next] == '\n' {
		next++
	}
	return i, next
}

func isTerminator(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) && !isTerminator(r) && r != 0xa0 && r != 0x202f
}

func trimRight(s string, start, end int) int {
	for end > start {
		r, size := utf8.DecodeLastRuneInString(s[start:end])
		if !isSpace(r) {
			break
		}
		end -= size
	}
	return end
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isSpace(r) {
			break
		}
		i += size
	}
	return i
}
