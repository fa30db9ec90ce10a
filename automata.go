package lingua

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// UnicodeBreaker represents a logic to split up Unicode sequences into
// smaller parts. Segmenters use them to supply breaking logic.
//
// Penalties() reports break penalties for the most recent rune events.
// Index 0 belongs to the most recently read rune, i.e., represents the
// penalty for breaking after it; index 1 is the position between the
// previous rune and the current one, and so on.
type UnicodeBreaker interface {
	CodePointClassFor(rune) int
	StartRulesFor(rune, int)
	ProceedWithRune(rune, int)
	LongestActiveMatch() int
	Penalties() []int
}

// NfaStateFn represents a state in a non-deterministic finite automaton.
// Functions of type NfaStateFn try to match a rune (Unicode code-point),
// given together with its code-point class. Classes are defined by the
// breaking algorithm, e.g. UAX#29 "ALetter" for 'A' and 'é'.
//
// After matching a rune, a NfaStateFn must return another NfaStateFn,
// which will then in turn be called to process the next rune. Matching
// stops as soon as a NfaStateFn returns nil.
type NfaStateFn func(*Recognizer, rune, int) NfaStateFn

// A Recognizer is an automaton recognizing sequences of runes. Its main
// functionality is performed by an embedded NfaStateFn.
//
// State functions must increment MatchLen with each matched rune. Failing
// to do so may result in incorrect splits of text.
//
// Semantics of Expect and UserData are up to the client.
type Recognizer struct {
	Expect    int         // semantics are up to the client
	MatchLen  int         // length of active match
	UserData  interface{} // clients may need to store additional information
	penalties []int       // set by DoAccept()
	nextStep  NfaStateFn
}

// NewRecognizer creates a new Recognizer. Clients should rather call
// NewPooledRecognizer().
func NewRecognizer(codePointClass int, next NfaStateFn) *Recognizer {
	return &Recognizer{Expect: codePointClass, nextStep: next}
}

// Recognizers are short-lived objects, created for nearly every rune of
// input. We pool them to avoid a flood of small allocations.
type recognizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRecognizerPool *recognizerPool

func init() {
	globalRecognizerPool = &recognizerPool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Recognizer{}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // unbounded
	config.BlockWhenExhausted = false
	globalRecognizerPool.opool = pool.NewObjectPool(globalRecognizerPool.ctx, factory, config)
}

// NewPooledRecognizer returns a Recognizer from the pool, pre-filled with
// an expected code-point class and a state function.
func NewPooledRecognizer(cpClass int, stateFn NfaStateFn) *Recognizer {
	o, err := globalRecognizerPool.opool.BorrowObject(globalRecognizerPool.ctx)
	if err != nil {
		CT().Errorf("recognizer pool: %v", err)
		return NewRecognizer(cpClass, stateFn)
	}
	rec := o.(*Recognizer)
	rec.Expect = cpClass
	rec.nextStep = stateFn
	return rec
}

func (rec *Recognizer) releaseIntoPool() {
	rec.penalties = nil
	rec.Expect = 0
	rec.MatchLen = 0
	rec.UserData = nil
	rec.nextStep = nil
	_ = globalRecognizerPool.opool.ReturnObject(globalRecognizerPool.ctx, rec)
}

func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil rule]"
	}
	return fmt.Sprintf("[%d -> done=%v]", rec.Expect, rec.Done())
}

// Unsubscribed signals to a Recognizer that it has been unsubscribed from
// a RunePublisher, usually after its NfaStateFn has returned nil.
//
// Interface RuneSubscriber
func (rec *Recognizer) Unsubscribed() {
	rec.releaseIntoPool()
}

// Done reports whether the Recognizer has stopped matching runes.
// With MatchLength() > 0 it has accepted a sequence of runes, otherwise
// it has aborted.
//
// Interface RuneSubscriber
func (rec *Recognizer) Done() bool {
	return rec.nextStep == nil
}

// MatchLength is part of interface RuneSubscriber.
func (rec *Recognizer) MatchLength() int {
	return rec.MatchLen
}

// RuneEvent is part of interface RuneSubscriber.
func (rec *Recognizer) RuneEvent(r rune, codePointClass int) []int {
	if rec.nextStep != nil {
		rec.nextStep = rec.nextStep(rec, r, codePointClass)
	}
	if rec.Done() && rec.MatchLen > 0 { // accepted a match
		return rec.penalties
	}
	return nil
}

// --- Standard Recognizer Rules ----------------------------------------

// DoAbort returns a state function which signals abort.
func DoAbort(rec *Recognizer) NfaStateFn {
	rec.MatchLen = 0
	return nil
}

// DoAccept returns a state function which signals accept, together with break
// penalties for matched runes (in reverse sequence).
func DoAccept(rec *Recognizer, penalties ...int) NfaStateFn {
	rec.MatchLen++
	rec.penalties = penalties
	CT().Debugf("ACCEPT with %v", rec.penalties)
	return nil
}
