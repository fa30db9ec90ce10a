/*
Package uax14 implements Unicode Annex #14 line breaking.

Contents

UAX#14 is the Unicode Annex for Line Breaking (Line Wrap).
It defines a bunch of code-point classes and a set of rules
for how to place break points / break inhibitors.

Typical Usage

Clients instantiate a UAX#14 line breaker object and use it as the
breaking engine for a segmenter.

  breaker := uax14.NewLineWrap()
  segmenter := segment.NewSegmenter(breaker)
  segmenter.Init(...)
  for segmenter.Next() {
    ... // do something with segmenter.Text() or segmenter.Bytes()
  }

Status

The breaker distinguishes a subset of the UAX#14 classes and implements
the pair-table rules LB4–LB31 for them, without the rules for Hebrew
letters, inseparables, contingent breaks and Hangul jamo sequences.
Scripts of class SA (Thai, Lao, Khmer, Myanmar) do not get break
opportunities between words; clients have to consult a word breaker for
them.

For Chinese and Japanese text, NewLooseLineWrap resolves class CJ to ID
instead of NS, allowing breaks before small kana.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package uax14

import (
	"unicode"

	"github.com/npillmayer/lingua"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to lingua.segment .
func tracer() tracing.Trace {
	return tracing.Select("lingua.segment")
}

// === UAX#14 Line Breaker ==============================================

// LineWrap is a type used by a segment.Segmenter to break lines
// up according to UAX#14. It implements the lingua.UnicodeBreaker interface.
type LineWrap struct {
	publisher    *lingua.DefaultRunePublisher
	longestMatch int   // longest active match of a rule
	penalties    []int // returned to the segmenter: penalties to insert
	rules        map[UAX14Class][]lingua.NfaStateFn
	lastClass    UAX14Class // we have to remember the last code-point class
	blockedRI    bool       // are rules for Regional_Indicator currently blocked?
	substituted  bool       // has the code-point class been substituted?
	shadow       UAX14Class // class before substitution
	loose        bool       // resolve CJ to ID
}

// NewLineWrap creates a new UAX#14 line breaker.
//
// Usage:
//
//   linewrap := NewLineWrap()
//   segmenter := segment.NewSegmenter(linewrap)
//   segmenter.Init(...)
//   for segmenter.Next() ...
func NewLineWrap() *LineWrap {
	uax14 := &LineWrap{lastClass: sot}
	uax14.publisher = lingua.NewRunePublisher()
	uax14.rules = map[UAX14Class][]lingua.NfaStateFn{
		NLClass:  {rule_05_NewLine, rule_LB6},
		LFClass:  {rule_05_NewLine, rule_LB6},
		BKClass:  {rule_05_NewLine, rule_LB6},
		CRClass:  {rule_05_NewLine, rule_LB6},
		SPClass:  {rule_LB7},
		ZWClass:  {rule_LB7},
		WJClass:  {rule_glueBefore, rule_glueAfter},
		GLClass:  {rule_LB12a, rule_glueAfter},
		CLClass:  {rule_glueBefore, rule_LB16},
		CPClass:  {rule_glueBefore, rule_LB16},
		EXClass:  {rule_glueBefore},
		ISClass:  {rule_glueBefore},
		SYClass:  {rule_glueBefore},
		OPClass:  {rule_LB14, rule_pairs},
		QUClass:  {rule_glueBefore, rule_glueAfter, rule_LB15},
		B2Class:  {rule_LB17},
		BAClass:  {rule_glueBefore},
		HYClass:  {rule_glueBefore},
		NSClass:  {rule_glueBefore},
		BBClass:  {rule_glueAfter},
		ALClass:  {rule_pairs},
		NUClass:  {rule_pairs},
		IDClass:  {rule_pairs},
		PRClass:  {rule_pairs},
		POClass:  {rule_pairs},
		RIClass:  {rule_LB30a},
		ZWJClass: {rule_glueAfter},
	}
	return uax14
}

// NewLooseLineWrap creates a UAX#14 line breaker which allows breaks
// before small kana and the prolonged sound mark, as is customary for
// Chinese and Japanese text.
func NewLooseLineWrap() *LineWrap {
	uax14 := NewLineWrap()
	uax14.loose = true
	return uax14
}

// CodePointClassFor returns the UAX#14 code-point class for a rune (= code-point).
//
// Interface lingua.UnicodeBreaker
func (uax14 *LineWrap) CodePointClassFor(r rune) int {
	c := ClassForRune(r)
	c = resolveSomeClasses(r, c, uax14.loose)
	cnew, shadow := substituteSomeClasses(c, uax14.lastClass)
	uax14.substituted = (c != cnew)
	uax14.shadow = shadow
	return int(cnew)
}

// StartRulesFor starts all recognizers where the starting symbol is rune r.
// r is of code-point-class cpClass.
//
// Interface lingua.UnicodeBreaker
func (uax14 *LineWrap) StartRulesFor(r rune, cpClass int) {
	c := UAX14Class(cpClass)
	if c == RIClass && uax14.blockedRI {
		return
	}
	uax14.startRules(c, cpClass)
	if uax14.substituted && uax14.shadow == ZWJClass { // LB8a applies to the original class
		uax14.startRules(ZWJClass, cpClass)
	}
}

func (uax14 *LineWrap) startRules(c UAX14Class, cpClass int) {
	if rules := uax14.rules[c]; len(rules) > 0 {
		tracer().P("class", c).Debugf("starting %d rule(s) for class %s", len(rules), c)
		for _, rule := range rules {
			rec := lingua.NewPooledRecognizer(cpClass, rule)
			rec.UserData = uax14
			uax14.publisher.SubscribeMe(rec)
		}
	}
}

// LB1 Assign a line breaking class to each code point of the input.
// Resolve AI, CB, CJ, SA, SG, and XX into other line breaking classes
// depending on criteria outside the scope of this algorithm.
//
// In the absence of such criteria all characters with a specific combination of
// original class and General_Category property value are resolved as follows:
//
//   Resolved   Original    General_Category
//   AL         AI, XX      Any
//   CM         SA          Only Mn or Mc
//   AL         SA          Any except Mn and Mc
//   NS         CJ          Any (ID for loose line breaking)
func resolveSomeClasses(r rune, c UAX14Class, loose bool) UAX14Class {
	switch c {
	case AIClass, XXClass:
		return ALClass
	case SAClass:
		if unicode.In(r, unicode.Mn, unicode.Mc) {
			return CMClass
		}
		return ALClass
	case CJClass:
		if loose {
			return IDClass
		}
		return NSClass
	}
	return c
}

// LB9: Do not break a combining character sequence;
// treat it as if it has the line breaking class of the base character in all
// of the following rules. Treat ZWJ as if it were CM.
//
//    X (CM | ZWJ)* ⟼ X.
//
// where X is any line break class except BK, CR, LF, NL, SP, or ZW.
//
// LB10: Treat any remaining combining mark or ZWJ as AL.
func substituteSomeClasses(c UAX14Class, lastClass UAX14Class) (UAX14Class, UAX14Class) {
	shadow := c
	if c == CMClass || c == ZWJClass {
		switch lastClass {
		case sot, BKClass, CRClass, LFClass, NLClass, SPClass, ZWClass:
			c = ALClass
		default:
			c = lastClass
		}
	}
	return c, shadow
}

// ProceedWithRune is part of interface lingua.UnicodeBreaker.
// A new code-point has been read and this breaker receives a message to
// consume it.
func (uax14 *LineWrap) ProceedWithRune(r rune, cpClass int) {
	c := UAX14Class(cpClass)
	uax14.longestMatch, uax14.penalties = uax14.publisher.PublishRuneEvent(r, cpClass)
	if uax14.substituted && uax14.lastClass == c { // LB9: do not break before a combining mark
		setPenalty1(uax14, PenaltyToSuppressBreak)
	}
	setPenalty1(uax14, PenaltyForBreak) // LB31
	tracer().P("class", c).Debugf("rune %#U done with p=%v", r, uax14.penalties)
	if c == eot { // start all over again
		c = sot
	}
	uax14.lastClass = c
}

// LongestActiveMatch is part of interface lingua.UnicodeBreaker
func (uax14 *LineWrap) LongestActiveMatch() int {
	return uax14.longestMatch
}

// Penalties gets all active penalties for all active recognizers combined.
// Index 0 belongs to the most recently read rune.
//
// Interface lingua.UnicodeBreaker
func (uax14 *LineWrap) Penalties() []int {
	return uax14.penalties
}

// Reset drops all active recognizers. Segmenters call it on Init().
func (uax14 *LineWrap) Reset() {
	uax14.publisher.Reset()
	uax14.longestMatch = 0
	uax14.penalties = nil
	uax14.lastClass = sot
	uax14.blockedRI = false
	uax14.substituted = false
}

// Penalties (optional break, suppress break and mandatory break).
const (
	PenaltyForBreak        = 50
	PenaltyToSuppressBreak = 5000
	PenaltyForMustBreak    = -10000
)

// --- Rules ------------------------------------------------------------

// LB4, LB5: BK !, CR LF !, CR !, LF !, NL !
func rule_05_NewLine(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if UAX14Class(cpClass) == CRClass {
		rec.MatchLen++
		return rule_05_CRLF
	}
	return lingua.DoAccept(rec, PenaltyForMustBreak)
}

func rule_05_CRLF(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if UAX14Class(cpClass) == LFClass {
		return lingua.DoAccept(rec, PenaltyForMustBreak, PenaltyToSuppressBreak)
	}
	return lingua.DoAccept(rec, 0, PenaltyForMustBreak)
}

// LB6: × ( BK | CR | LF | NL )
func rule_LB6(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
}

// LB7: × SP, × ZW
func rule_LB7(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
}

// × X, for LB11 (WJ), LB13 (CL, CP, EX, IS, SY), LB19 (QU) and LB21 (BA, HY, NS)
func rule_glueBefore(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
}

// X ×, for LB8a (ZWJ), LB11 (WJ), LB12 (GL), LB19 (QU) and LB21 (BB)
func rule_glueAfter(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_glueAfter
}

func finish_glueAfter(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if UAX14Class(cpClass) == eot {
		return lingua.DoAbort(rec)
	}
	return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
}

// LB12a: [^SP BA HY] × GL
func rule_LB12a(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	switch rec.UserData.(*LineWrap).lastClass {
	case SPClass, BAClass, HYClass, sot:
		return lingua.DoAbort(rec)
	}
	return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
}

// LB14: OP SP* ×
func rule_LB14(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_LB14
}

func finish_LB14(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	switch UAX14Class(cpClass) {
	case SPClass:
		rec.MatchLen++
		return finish_LB14
	case eot:
		return lingua.DoAbort(rec)
	}
	return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
}

// LB15: QU SP* × OP
func rule_LB15(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.Expect = int(OPClass)
	rec.MatchLen++
	return finish_spacesThenExpected
}

// LB16: (CL | CP) SP* × NS
func rule_LB16(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.Expect = int(NSClass)
	rec.MatchLen++
	return finish_spacesThenExpected
}

// LB17: B2 SP* × B2
func rule_LB17(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.Expect = int(B2Class)
	rec.MatchLen++
	return finish_spacesThenExpected
}

func finish_spacesThenExpected(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := UAX14Class(cpClass)
	if c == SPClass {
		rec.MatchLen++
		return finish_spacesThenExpected
	}
	if c == UAX14Class(rec.Expect) {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// pairs lists the left-hand classes X for rules X × Y, keyed by Y.
//
//   LB23   AL × NU, NU × AL
//   LB23a  PR × ID, ID × PO
//   LB24   (PR | PO) × AL, AL × (PR | PO)
//   LB25   (CL | CP | NU) × (PO | PR), (PO | PR) × (OP | NU),
//          (HY | IS | NU | SY) × NU
//   LB28   AL × AL
//   LB29   IS × AL
//   LB30   (AL | NU) × OP, CP × (AL | NU)
var pairs = map[UAX14Class][]UAX14Class{
	ALClass: {ALClass, NUClass, PRClass, POClass, ISClass, CPClass},
	NUClass: {ALClass, NUClass, PRClass, POClass, HYClass, ISClass, SYClass, CPClass},
	IDClass: {PRClass},
	POClass: {IDClass, ALClass, CLClass, CPClass, NUClass},
	PRClass: {ALClass, CLClass, CPClass, NUClass},
	OPClass: {PRClass, POClass, ALClass, NUClass},
}

func rule_pairs(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	left := rec.UserData.(*LineWrap).lastClass
	for _, c := range pairs[UAX14Class(cpClass)] {
		if c == left {
			return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
		}
	}
	return lingua.DoAbort(rec)
}

// LB30a: RI × RI, pairwise
func rule_LB30a(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	rec.UserData.(*LineWrap).blockedRI = true
	return finish_LB30a
}

func finish_LB30a(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	uax14 := rec.UserData.(*LineWrap)
	uax14.blockedRI = false
	if UAX14Class(cpClass) == RIClass {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAbort(rec)
}

// ---------------------------------------------------------------------------

func setPenalty1(uax14 *LineWrap, p int) {
	if len(uax14.penalties) == 0 {
		uax14.penalties = append(uax14.penalties, 0, p)
	} else if len(uax14.penalties) == 1 {
		uax14.penalties = append(uax14.penalties, p)
	} else if uax14.penalties[1] == 0 {
		uax14.penalties[1] = p
	}
}
