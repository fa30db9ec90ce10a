package grapheme

import (
	"github.com/npillmayer/lingua"
)

// Breaker is a type to be used by a segment.Segmenter to break text
// up according to UAX#29 / Graphemes.
// It implements the lingua.UnicodeBreaker interface.
type Breaker struct {
	publisher    *lingua.DefaultRunePublisher
	longestMatch int
	penalties    []int
	rules        map[GraphemeClass][]lingua.NfaStateFn
	blocked      map[GraphemeClass]bool
	weight       int
}

// NewBreaker creates a new UAX#29 grapheme breaker.
//
// Usage:
//
//   onGraphemes := NewBreaker(1)
//   segmenter := segment.NewSegmenter(onGraphemes)
//   segmenter.Init(...)
//   for segmenter.Next() ...
//
// weight is a multiplying factor for penalties. It must be 0…w…5 and will
// be capped for values outside this range.
func NewBreaker(weight int) *Breaker {
	gb := &Breaker{weight: capw(weight)}
	gb.publisher = lingua.NewRunePublisher()
	gb.rules = map[GraphemeClass][]lingua.NfaStateFn{
		CRClass:                {rule_NewLine},
		LFClass:                {rule_NewLine},
		ControlClass:           {rule_Control},
		LClass:                 {rule_GB6},
		VClass:                 {rule_GB7},
		LVClass:                {rule_GB7},
		LVTClass:               {rule_GB8},
		TClass:                 {rule_GB8},
		ExtendClass:            {rule_GB9},
		ZWJClass:               {rule_GB9},
		SpacingMarkClass:       {rule_GB9a},
		PictographicClass:      {rule_GB11},
		RegionalIndicatorClass: {rule_GB12},
	}
	gb.blocked = make(map[GraphemeClass]bool)
	return gb
}

// CodePointClassFor returns the grapheme code-point class for a rune (= code-point).
// (Interface lingua.UnicodeBreaker)
func (gb *Breaker) CodePointClassFor(r rune) int {
	return int(ClassForRune(r))
}

// StartRulesFor starts all recognizers where the starting symbol is rune r.
// r is of code-point-class cpClass.
// (Interface lingua.UnicodeBreaker)
func (gb *Breaker) StartRulesFor(r rune, cpClass int) {
	c := GraphemeClass(cpClass)
	if gb.blocked[c] {
		return
	}
	if rules := gb.rules[c]; len(rules) > 0 {
		tracer().P("class", c).Debugf("starting %d rule(s)", len(rules))
		for _, rule := range rules {
			rec := lingua.NewPooledRecognizer(cpClass, rule)
			rec.UserData = gb
			gb.publisher.SubscribeMe(rec)
		}
	}
}

// Helper: do not start any recognizers for this grapheme class, until
// unblocked again.
func (gb *Breaker) block(c GraphemeClass) {
	gb.blocked[c] = true
}

// Helper: stop blocking new recognizers for this grapheme class.
func (gb *Breaker) unblock(c GraphemeClass) {
	gb.blocked[c] = false
}

// ProceedWithRune is a signal to a Breaker:
// A new code-point has been read and this breaker receives a message to consume it.
// (Interface lingua.UnicodeBreaker)
func (gb *Breaker) ProceedWithRune(r rune, cpClass int) {
	c := GraphemeClass(cpClass)
	gb.longestMatch, gb.penalties = gb.publisher.PublishRuneEvent(r, cpClass)
	tracer().P("class", c).Debugf("rune %+q done with |match|=%d and %v", r, gb.longestMatch, gb.penalties)
	setPenalty1(gb, penalty999) // GB999: Any ÷ Any
	if gb.weight > 1 {
		for i := range gb.penalties {
			gb.penalties[i] *= gb.weight
		}
	}
}

// LongestActiveMatch collects information from
// all active recognizers about current match length
// and returns the longest one for all still active recognizers.
// (Interface lingua.UnicodeBreaker)
func (gb *Breaker) LongestActiveMatch() int {
	return max(1, gb.longestMatch)
}

// Penalties gets all active penalties for all active recognizers combined.
// Index 0 belongs to the most recently read rune, i.e., represents
// the penalty for breaking after it.
// (Interface lingua.UnicodeBreaker)
func (gb *Breaker) Penalties() []int {
	return gb.penalties
}

// Reset drops all active recognizers. Segmenters call it on Init().
func (gb *Breaker) Reset() {
	gb.publisher.Reset()
	gb.longestMatch = 0
	gb.penalties = nil
	for c := range gb.blocked {
		delete(gb.blocked, c)
	}
}

// --- Rules ------------------------------------------------------------

// GlueBREAK, JOIN and BANG set default penalty values.
const (
	GlueBREAK  int = -500
	GlueJOIN   int = 10000
	GlueBANG   int = -20000
	penalty999 int = -10
)

func rule_NewLine(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := GraphemeClass(cpClass)
	if c == LFClass {
		return lingua.DoAccept(rec, GlueBANG, GlueBANG)
	} else if c == CRClass {
		rec.MatchLen++
		return rule_CRLF
	}
	return lingua.DoAbort(rec)
}

func rule_CRLF(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := GraphemeClass(cpClass)
	if c == LFClass {
		return lingua.DoAccept(rec, GlueBANG, 3*GlueJOIN) // accept CR+LF
	}
	return lingua.DoAccept(rec, 0, GlueBANG, GlueBANG) // accept CR
}

func rule_Control(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	return lingua.DoAccept(rec, GlueBANG, GlueBANG)
}

// L x (L | V | LV | LVT)
func rule_GB6(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_GB6
}

func finish_GB6(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := GraphemeClass(cpClass)
	if c == LClass || c == VClass || c == LVClass || c == LVTClass {
		return lingua.DoAccept(rec, 0, GlueJOIN)
	}
	return lingua.DoAbort(rec)
}

// (LV | V) x (V | T)
func rule_GB7(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_GB7
}

func finish_GB7(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	c := GraphemeClass(cpClass)
	if c == VClass || c == TClass {
		return lingua.DoAccept(rec, 0, GlueJOIN)
	}
	return lingua.DoAbort(rec)
}

// (LVT | T) x T
func rule_GB8(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return finish_GB8
}

func finish_GB8(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if GraphemeClass(cpClass) == TClass {
		return lingua.DoAccept(rec, 0, GlueJOIN)
	}
	return lingua.DoAbort(rec)
}

// x (Extend | ZWJ)
func rule_GB9(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	return lingua.DoAccept(rec, 0, GlueJOIN)
}

// x SpacingMark
func rule_GB9a(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	return lingua.DoAccept(rec, 0, GlueJOIN)
}

// ExtPict Extend* ZWJ x ExtPict
func rule_GB11(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	return cont_GB11
}

func cont_GB11(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	switch GraphemeClass(cpClass) {
	case ZWJClass:
		rec.MatchLen++
		return finish_GB11
	case ExtendClass:
		rec.MatchLen++
		return cont_GB11
	}
	return lingua.DoAbort(rec)
}

func finish_GB11(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	if GraphemeClass(cpClass) == PictographicClass {
		return lingua.DoAccept(rec, 0, GlueJOIN)
	}
	return lingua.DoAbort(rec)
}

// RI x RI, pairwise
func rule_GB12(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	rec.MatchLen++
	gb := rec.UserData.(*Breaker)
	gb.block(RegionalIndicatorClass)
	return finish_GB12
}

func finish_GB12(rec *lingua.Recognizer, r rune, cpClass int) lingua.NfaStateFn {
	gb := rec.UserData.(*Breaker)
	gb.unblock(RegionalIndicatorClass)
	if GraphemeClass(cpClass) == RegionalIndicatorClass {
		return lingua.DoAccept(rec, 0, GlueJOIN)
	}
	return lingua.DoAbort(rec)
}

// ---------------------------------------------------------------------------

func capw(w int) int {
	if w < 0 {
		return 0
	}
	if w > 5 {
		return 5
	}
	return w
}

func setPenalty1(gb *Breaker, p int) {
	if len(gb.penalties) == 0 {
		gb.penalties = append(gb.penalties, 0, p)
	} else if len(gb.penalties) == 1 {
		gb.penalties = append(gb.penalties, p)
	} else if gb.penalties[1] == 0 {
		gb.penalties[1] = p
	}
}
