/*
Package uax29 implements Unicode Annex #29 word and sentence breaking.

Content

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences.
It defines code-point classes and sets of rules
for how to place break points and break inhibitors.
This package is about word breaking and sentence breaking; grapheme
breaking lives in package grapheme.

Word classes are derived from Unicode general categories and scripts.
Letters of scripts which need a dictionary for word segmentation (Han,
Hiragana, Thai, Lao, Khmer, Myanmar) are of class Other, resulting in
one segment per code-point.

Typical Usage

Clients instantiate a WordBreaker object and use it as the
breaking engine for a segmenter.

  onWords := uax29.NewWordBreaker(1)
  segmenter := segment.NewSegmenter(onWords)
  segmenter.Init(...)
  for segmenter.Next() ...

Sentence breaking works the same way, using NewSentenceBreaker.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package uax29

import (
	"github.com/npillmayer/lingua"
	"github.com/npillmayer/lingua/emoji"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to lingua.segment .
func tracer() tracing.Trace {
	return tracing.Select("lingua.segment")
}

// === Word Breaker ==============================================

// WordBreaker is a Breaker type used by a segment.Segmenter to break text
// up according to UAX#29 / Words.
// It implements the lingua.UnicodeBreaker interface.
type WordBreaker struct {
	rules         map[UAX29Class][]lingua.NfaStateFn // we manage a set of NFAs
	publisher     *lingua.DefaultRunePublisher       // we use the rune publishing mechanism
	longestMatch  int                                // longest active match for any rule of this word breaker
	penalties     []int                              // returned to the segmenter: penalties to insert
	weight        int                                // will multiply penalties by this factor
	previousClass UAX29Class                         // class of previously read rune
	blockedRI     bool                               // are rules for Regional_Indicator currently blocked?
}

// NewWordBreaker creates a a new UAX#29 word breaker.
//
// weight is a multiplying factor for penalties. It must be 0…w…5 and will
// be capped for values outside this range.
func NewWordBreaker(weight int) *WordBreaker {
	wb := &WordBreaker{weight: capw(weight), previousClass: sot}
	wb.publisher = lingua.NewRunePublisher()
	wb.rules = map[UAX29Class][]lingua.NfaStateFn{
		CRClass:                 {rule_NewLine},
		LFClass:                 {rule_NewLine},
		NewlineClass:            {rule_NewLine},
		ZWJClass:                {rule_WB3c, rule_WB4},
		WSegSpaceClass:          {rule_WB3d},
		ExtendClass:             {rule_WB4},
		FormatClass:             {rule_WB4},
		ALetterClass:            {rule_WB5, rule_WB6_7, rule_WB9, rule_WB13a},
		Hebrew_LetterClass:      {rule_WB5, rule_WB6_7, rule_WB7a, rule_WB7bc, rule_WB9, rule_WB13a},
		NumericClass:            {rule_WB8, rule_WB10, rule_WB11, rule_WB13a},
		ExtendNumLetClass:       {rule_WB13a, rule_WB13b},
		KatakanaClass:           {rule_WB13, rule_WB13a},
		Regional_IndicatorClass: {rule_WB15},
	}
	return wb
}

// For word breaking we need just a single emoji class.
// We append it after the last UAX#29 class, which is ZWJ.
const emojiPictographic UAX29Class = ZWJClass + 1

// CodePointClassFor returns the UAX#29 word code-point class for a rune (= code-point).
// (Interface lingua.UnicodeBreaker)
func (wb *WordBreaker) CodePointClassFor(r rune) int {
	c := ClassForRune(r)
	if c == Other && emoji.IsPictographic(r) {
		return int(emojiPictographic)
	}
	return int(c)
}

// StartRulesFor starts all recognizers where the starting symbol is rune r.
// r is of code-point-class cpClass.
// (Interface lingua.UnicodeBreaker)
func (wb *WordBreaker) StartRulesFor(r rune, cpClass int) {
	c := UAX29Class(cpClass)
	if c == Regional_IndicatorClass && wb.blockedRI {
		tracer().Debugf("regional indicators blocked")
		return
	}
	if rules := wb.rules[c]; len(rules) > 0 {
		tracer().P("class", c).Debugf("starting %d rule(s) for class %s", len(rules), c)
		for _, rule := range rules {
			rec := lingua.NewPooledRecognizer(cpClass, rule)
			rec.UserData = wb
			wb.publisher.SubscribeMe(rec)
		}
	}
}

// ProceedWithRune is a signal:
// A new code-point has been read and this breaker receives a message to
// consume it.
// (Interface lingua.UnicodeBreaker)
func (wb *WordBreaker) ProceedWithRune(r rune, cpClass int) {
	c := UAX29Class(cpClass)
	wb.longestMatch, wb.penalties = wb.publisher.PublishRuneEvent(r, cpClass)
	tracer().P("class", c).Debugf("rune %#U done with |match|=%d and p=%v", r, wb.longestMatch, wb.penalties)
	wb.previousClass = c
	setPenalty1(wb, penalty999)
	if wb.weight > 1 {
		for i := range wb.penalties {
			wb.penalties[i] *= wb.weight
		}
	}
}

// LongestActiveMatch collects
// from all active recognizers information about current match length
// and return the longest one for all still active recognizers.
// (Interface lingua.UnicodeBreaker)
func (wb *WordBreaker) LongestActiveMatch() int {
	return wb.longestMatch
}

// Penalties gets all active penalties for all active recognizers combined.
// Index 0 belongs to the most recently read rune, i.e., represents
// the penalty for breaking after it.
// (Interface lingua.UnicodeBreaker)
func (wb *WordBreaker) Penalties() []int {
	return wb.penalties
}

// Reset drops all active recognizers. Segmenters call it on Init().
func (wb *WordBreaker) Reset() {
	wb.publisher.Reset()
	wb.longestMatch = 0
	wb.penalties = nil
	wb.previousClass = sot
	wb.blockedRI = false
}

// Penalties (inter-word optional break, suppress break and mandatory break).
const (
	PenaltyForBreak        = 50
	PenaltyToSuppressBreak = 10000
	PenaltyForMustBreak    = -10000
	penalty999             = 10
)

// --- Rules ------------------------------------------------------------

func rule_NewLine(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if c == LFClass || c == NewlineClass {
		return lingua.DoAccept(rec, PenaltyForMustBreak, PenaltyForMustBreak)
	} else if c == CRClass {
		rec.MatchLen++
		return rule_CRLF
	}
	return lingua.DoAbort(rec)
}

func rule_CRLF(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if UAX29Class(cpClass) == LFClass {
		return lingua.DoAccept(rec, PenaltyForMustBreak, 3*PenaltyToSuppressBreak) // CR+LF
	}
	return lingua.DoAccept(rec, 0, PenaltyForMustBreak, PenaltyForMustBreak) // CR
}

// ZWJ x \p{Extended_Pictographic}
func rule_WB3c(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB3c
}

func finish_WB3c(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if UAX29Class(cpClass) == emojiPictographic {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// WSegSpace x WSegSpace
func rule_WB3d(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB3d
}

func finish_WB3d(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if UAX29Class(cpClass) == WSegSpaceClass {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// Rule WB4 lets rules skip over Extend, Format and ZWJ.
func checkIgnoredCharacters(rec *lingua.Recognizer, c UAX29Class) bool {
	if c == ExtendClass || c == FormatClass || c == ZWJClass {
		rec.MatchLen++
		return true
	}
	return false
}

// AHLetter x AHLetter
func rule_WB5(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB5_10
}

// ... x AHLetter
func finish_WB5_10(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB5_10
	}
	if c == ALetterClass || c == Hebrew_LetterClass {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// AHLetter x (MidLetter | MidNumLet | Single_Quote) x AHLetter
func rule_WB6_7(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return cont_WB6_7
}

func cont_WB6_7(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return cont_WB6_7
	}
	if c == MidLetterClass || c == MidNumLetClass || c == Single_QuoteClass {
		rec.MatchLen++
		rec.Expect = rec.MatchLen // position of the middle character
		return finish_WB6_7
	}
	return lingua.DoAbort(rec)
}

func finish_WB6_7(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB6_7
	}
	if c == ALetterClass || c == Hebrew_LetterClass {
		return lingua.DoAccept(rec, suppressAroundMiddle(rec)...)
	}
	return lingua.DoAbort(rec)
}

// Hebrew_Letter x Single_Quote
func rule_WB7a(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB7a
}

func finish_WB7a(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB7a
	}
	if c == Single_QuoteClass {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// Hebrew_Letter x Double_Quote x Hebrew_Letter
func rule_WB7bc(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return cont_WB7bc
}

func cont_WB7bc(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return cont_WB7bc
	}
	if c == Double_QuoteClass {
		rec.MatchLen++
		return finish_WB7bc
	}
	return lingua.DoAbort(rec)
}

func finish_WB7bc(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB7bc
	}
	if c == Hebrew_LetterClass {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// Numeric x Numeric
func rule_WB8(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB8_9
}

// AHLetter x Numeric
func rule_WB9(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB8_9
}

func finish_WB8_9(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB8_9
	}
	if c == NumericClass {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// Numeric x AHLetter
func rule_WB10(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB5_10
}

// Numeric x (MidNum | MidNumLet | Single_Quote) x Numeric
func rule_WB11(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return cont_WB11
}

func cont_WB11(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return cont_WB11
	}
	if c == MidNumClass || c == MidNumLetClass || c == Single_QuoteClass {
		rec.MatchLen++
		rec.Expect = rec.MatchLen // position of the middle character
		return finish_WB11
	}
	return lingua.DoAbort(rec)
}

func finish_WB11(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB11
	}
	if c == NumericClass {
		return lingua.DoAccept(rec, suppressAroundMiddle(rec)...)
	}
	return lingua.DoAbort(rec)
}

// Katakana x Katakana
func rule_WB13(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB13
}

func finish_WB13(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB13
	}
	if c == KatakanaClass {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// (AHLetter | Numeric | Katakana | ExtendNumLet) x ExtendNumLet
func rule_WB13a(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB13a
}

func finish_WB13a(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB13a
	}
	if c == ExtendNumLetClass {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// ExtendNumLet x (AHLetter | Numeric | Katakana)
func rule_WB13b(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_WB13b
}

func finish_WB13b(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB13b
	}
	switch c {
	case ALetterClass, Hebrew_LetterClass, NumericClass, KatakanaClass:
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// RI x RI, pairwise. While a pair is open, new RI rules are blocked.
func rule_WB15(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	rec.UserData.(*WordBreaker).blockedRI = true
	return finish_WB15
}

func finish_WB15(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if checkIgnoredCharacters(rec, c) {
		return finish_WB15
	}
	rec.UserData.(*WordBreaker).blockedRI = false
	if c == Regional_IndicatorClass {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// Rule WB4: Ignore Format and Extend characters, except after sot, CR,
// LF, and Newline.
func rule_WB4(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX29Class(cpClass)
	if c == ExtendClass || c == FormatClass || c == ZWJClass {
		prev := rec.UserData.(*WordBreaker).previousClass
		if prev != LFClass && prev != NewlineClass && prev != CRClass && prev != sot {
			return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
		}
	}
	return lingua.DoAbort(rec)
}

// --- Helpers ---------------------------------------------------------------

// suppressAroundMiddle creates penalties for a match of the form
// X (Mid) Y, suppressing breaks on both sides of the middle character.
// rec.Expect holds the match position of the middle character.
func suppressAroundMiddle(rec *lingua.Recognizer) []int {
	p := make([]int, rec.MatchLen-rec.Expect+1+2)
	p[len(p)-1] = PenaltyToSuppressBreak
	p[1] = PenaltyToSuppressBreak
	return p
}

func setPenalty1(wb *WordBreaker, p int) {
	if len(wb.penalties) == 0 {
		wb.penalties = append(wb.penalties, 0, p)
	} else if len(wb.penalties) == 1 {
		wb.penalties = append(wb.penalties, p)
	} else if wb.penalties[1] == 0 {
		wb.penalties[1] = p
	}
}

func capw(w int) int {
	if w < 0 {
		return 0
	}
	if w > 5 {
		return 5
	}
	return w
}
