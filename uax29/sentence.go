package uax29

import (
	"unicode"

	"github.com/npillmayer/lingua"
)

// SentenceClass is the type for UAX#29 sentence break classes.
type SentenceClass int

// Sentence break classes. CR, LF and the other paragraph separators are
// kept apart to be able to handle CR+LF.
const (
	SOther SentenceClass = iota
	SCR
	SLF
	SSep
	SSp
	SLower
	SUpper
	SOLetter
	SNumeric
	SATerm
	SSTerm
	SClose
	SContinue
	SExtend
	SFormat
	sEOT
)

var sentenceClassNames = [...]string{"Other", "CR", "LF", "Sep", "Sp", "Lower",
	"Upper", "OLetter", "Numeric", "ATerm", "STerm", "Close", "SContinue",
	"Extend", "Format", "eot"}

func (c SentenceClass) String() string {
	if c < 0 || int(c) >= len(sentenceClassNames) {
		return "SentenceClass(?)"
	}
	return sentenceClassNames[c]
}

var (
	ATerm = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x002e, Hi: 0x002e, Stride: 1},
		{Lo: 0x2024, Hi: 0x2024, Stride: 1},
		{Lo: 0xfe52, Hi: 0xfe52, Stride: 1},
		{Lo: 0xff0e, Hi: 0xff0e, Stride: 1},
	}, LatinOffset: 1}
	STerm = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0021, Hi: 0x0021, Stride: 1},
		{Lo: 0x003f, Hi: 0x003f, Stride: 1},
		{Lo: 0x0589, Hi: 0x0589, Stride: 1},
		{Lo: 0x061f, Hi: 0x061f, Stride: 1},
		{Lo: 0x06d4, Hi: 0x06d4, Stride: 1},
		{Lo: 0x0700, Hi: 0x0702, Stride: 1},
		{Lo: 0x0964, Hi: 0x0965, Stride: 1},
		{Lo: 0x203c, Hi: 0x203d, Stride: 1},
		{Lo: 0x2047, Hi: 0x2049, Stride: 1},
		{Lo: 0x3002, Hi: 0x3002, Stride: 1},
		{Lo: 0xfe56, Hi: 0xfe57, Stride: 1},
		{Lo: 0xff01, Hi: 0xff01, Stride: 1},
		{Lo: 0xff1f, Hi: 0xff1f, Stride: 1},
		{Lo: 0xff61, Hi: 0xff61, Stride: 1},
	}, LatinOffset: 2}
	SContinueTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x002c, Hi: 0x002d, Stride: 1},
		{Lo: 0x003a, Hi: 0x003b, Stride: 1},
		{Lo: 0x055d, Hi: 0x055d, Stride: 1},
		{Lo: 0x060c, Hi: 0x060d, Stride: 1},
		{Lo: 0x07f8, Hi: 0x07f8, Stride: 1},
		{Lo: 0x1802, Hi: 0x1802, Stride: 1},
		{Lo: 0x1808, Hi: 0x1808, Stride: 1},
		{Lo: 0x2013, Hi: 0x2014, Stride: 1},
		{Lo: 0x3001, Hi: 0x3001, Stride: 1},
		{Lo: 0xfe10, Hi: 0xfe11, Stride: 1},
		{Lo: 0xfe13, Hi: 0xfe13, Stride: 1},
		{Lo: 0xfe31, Hi: 0xfe32, Stride: 1},
		{Lo: 0xfe50, Hi: 0xfe51, Stride: 1},
		{Lo: 0xfe55, Hi: 0xfe55, Stride: 1},
		{Lo: 0xfe58, Hi: 0xfe58, Stride: 1},
		{Lo: 0xfe63, Hi: 0xfe63, Stride: 1},
		{Lo: 0xff0c, Hi: 0xff0d, Stride: 1},
		{Lo: 0xff1a, Hi: 0xff1b, Stride: 1},
		{Lo: 0xff64, Hi: 0xff64, Stride: 1},
	}, LatinOffset: 2}
)

// SentenceClassForRune gets the UAX#29 sentence break class for a code-point.
func SentenceClassForRune(r rune) SentenceClass {
	switch r {
	case 0:
		return sEOT
	case '\r':
		return SCR
	case '\n':
		return SLF
	case 0x85, 0x2028, 0x2029:
		return SSep
	case '"', '\'':
		return SClose
	case 0x200c, 0x200d:
		return SExtend
	}
	switch {
	case unicode.Is(ATerm, r):
		return SATerm
	case unicode.Is(STerm, r):
		return SSTerm
	case unicode.Is(SContinueTable, r):
		return SContinue
	case unicode.IsSpace(r):
		return SSp
	case unicode.IsLower(r):
		return SLower
	case unicode.IsUpper(r) || unicode.IsTitle(r):
		return SUpper
	case unicode.IsLetter(r):
		return SOLetter
	case unicode.Is(unicode.Nd, r):
		return SNumeric
	case unicode.In(r, unicode.Ps, unicode.Pe, unicode.Pi, unicode.Pf):
		return SClose
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc):
		return SExtend
	case unicode.Is(unicode.Cf, r):
		return SFormat
	}
	return SOther
}

// SentenceBreaker is a Breaker type used by a segment.Segmenter to break
// text up according to UAX#29 / Sentences.
// It implements the lingua.UnicodeBreaker interface.
//
// The rules are a subset of UAX#29 sentence boundaries: a sentence ends
// after a terminator, optionally followed by closing punctuation and
// spaces, and after paragraph separators. Abbreviations and decimal
// numbers (ATerm followed by a lower-case letter or a digit) do not end
// a sentence. SB8's look-ahead over arbitrary characters is not
// implemented.
type SentenceBreaker struct {
	publisher     *lingua.DefaultRunePublisher
	longestMatch  int
	penalties     []int
	previousClass SentenceClass
}

// NewSentenceBreaker creates a new UAX#29 sentence breaker.
func NewSentenceBreaker() *SentenceBreaker {
	return &SentenceBreaker{
		publisher:     lingua.NewRunePublisher(),
		previousClass: SOther,
	}
}

// CodePointClassFor is part of interface lingua.UnicodeBreaker.
func (sb *SentenceBreaker) CodePointClassFor(r rune) int {
	return int(SentenceClassForRune(r))
}

// StartRulesFor is part of interface lingua.UnicodeBreaker.
func (sb *SentenceBreaker) StartRulesFor(r rune, cpClass int) {
	var rule lingua.NfaStateFn
	switch c := SentenceClass(cpClass); c {
	case SCR, SLF, SSep:
		rule = rule_SB4
	case SATerm, SSTerm:
		rule = rule_SB11
	default:
		return
	}
	rec := lingua.NewPooledRecognizer(cpClass, rule)
	rec.UserData = &sentenceMatch{before: sb.previousClass}
	sb.publisher.SubscribeMe(rec)
}

// ProceedWithRune is part of interface lingua.UnicodeBreaker.
func (sb *SentenceBreaker) ProceedWithRune(r rune, cpClass int) {
	sb.longestMatch, sb.penalties = sb.publisher.PublishRuneEvent(r, cpClass)
	c := SentenceClass(cpClass)
	if c != SExtend && c != SFormat {
		sb.previousClass = c
	}
	tracer().P("class", c).Debugf("rune %#U done with |match|=%d and p=%v", r, sb.longestMatch, sb.penalties)
}

// LongestActiveMatch is part of interface lingua.UnicodeBreaker.
func (sb *SentenceBreaker) LongestActiveMatch() int {
	return sb.longestMatch
}

// Penalties is part of interface lingua.UnicodeBreaker.
func (sb *SentenceBreaker) Penalties() []int {
	return sb.penalties
}

// Reset drops all active recognizers.
func (sb *SentenceBreaker) Reset() {
	sb.publisher.Reset()
	sb.longestMatch = 0
	sb.penalties = nil
	sb.previousClass = SOther
}

// --- Rules ------------------------------------------------------------

type sentenceMatch struct {
	before   SentenceClass // class before the terminator
	term     SentenceClass // ATerm or STerm
	extended bool          // seen Close or Sp after the terminator
}

// ParaSep ÷ , with CR x LF
func rule_SB4(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if SentenceClass(cpClass) == SCR {
		rec.MatchLen++
		return finish_SB3
	}
	return lingua.DoAccept(rec, PenaltyForMustBreak)
}

func finish_SB3(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if SentenceClass(cpClass) == SLF {
		return lingua.DoAccept(rec, 0, PenaltyToSuppressBreak)
	}
	return lingua.DoAccept(rec, 0, PenaltyForMustBreak)
}

// SATerm Close* Sp* ÷
func rule_SB11(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	m := rec.UserData.(*sentenceMatch)
	m.term = SentenceClass(cpClass)
	rec.MatchLen++
	return cont_SB11
}

func cont_SB11(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	m := rec.UserData.(*sentenceMatch)
	c := SentenceClass(cpClass)
	switch c {
	case SExtend, SFormat: // SB5
		rec.MatchLen++
		return cont_SB11
	case SATerm, SSTerm: // SB8a: SATerm x SATerm
		if !m.extended {
			m.term = c
			rec.MatchLen++
			return cont_SB11
		}
	case SClose: // SB9
		if !m.extended || rec.Expect == int(SClose) {
			m.extended = true
			rec.Expect = int(SClose)
			rec.MatchLen++
			return cont_SB11
		}
	case SSp: // SB9, SB10
		m.extended = true
		rec.Expect = int(SSp)
		rec.MatchLen++
		return cont_SB11
	case SCR, SLF, SSep, sEOT: // SB4 handles separators
		return lingua.DoAbort(rec)
	case SContinue: // SB8a
		return lingua.DoAbort(rec)
	case SLower: // SB8
		if m.term == SATerm {
			return lingua.DoAbort(rec)
		}
	case SNumeric: // SB6
		if m.term == SATerm && !m.extended {
			return lingua.DoAbort(rec)
		}
	case SUpper: // SB7
		if m.term == SATerm && !m.extended && m.before == SUpper {
			return lingua.DoAbort(rec)
		}
	}
	return lingua.DoAccept(rec, 0, PenaltyForBreak)
}
