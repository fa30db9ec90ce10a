package lingua

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- ad hoc type for testing purposes----------------------------------

type item struct { // will implement RuneSubscriber
	done         bool
	penalties    []int
	unsubscribed bool
}

func (it *item) Done() bool                                 { return it.done }
func (it *item) Unsubscribed()                              { it.unsubscribed = true }
func (it *item) RuneEvent(r rune, codePointClass int) []int { return it.penalties }
func (it *item) MatchLength() int                           { return 1 }

// ----------------------------------------------------------------------

func TestPublisherUnsubscribesDone(t *testing.T) {
	pub := &DefaultRunePublisher{}
	it1, it2 := &item{done: true}, &item{done: false}
	pub.SubscribeMe(it1).SubscribeMe(it2)
	if pub.Len() != 2 {
		t.Fatalf("expected 2 subscribers, have %d", pub.Len())
	}
	longest, _ := pub.PublishRuneEvent('a', 0)
	if longest != 1 {
		t.Errorf("expected longest active match of 1, is %d", longest)
	}
	if pub.Len() != 1 || !it1.unsubscribed || it2.unsubscribed {
		t.Errorf("expected exactly the done subscriber to be removed")
	}
}

func TestPublisherAggregatesPenalties(t *testing.T) {
	pub := NewRunePublisher()
	pub.SubscribeMe(&item{done: true, penalties: []int{10, 20}})
	pub.SubscribeMe(&item{done: true, penalties: []int{1, 2, 3}})
	_, p := pub.PublishRuneEvent('a', 0)
	if len(p) != 3 || p[0] != 11 || p[1] != 22 || p[2] != 3 {
		t.Errorf("expected penalties [11 22 3], have %v", p)
	}
	pub.SubscribeMe(&item{done: true, penalties: []int{5, 7}})
	pub.SubscribeMe(&item{done: true, penalties: []int{6}})
	pub.SetPenaltyAggregator(MaxPenalties)
	_, p = pub.PublishRuneEvent('b', 0)
	if len(p) != 2 || p[0] != 6 || p[1] != 7 {
		t.Errorf("expected max-aggregated penalties [6 7], have %v", p)
	}
}

func TestRecognizerAccept(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	var second NfaStateFn = func(rec *Recognizer, r rune, c int) NfaStateFn {
		if r == 'b' {
			return DoAccept(rec, 0, InfinitePenalty)
		}
		return DoAbort(rec)
	}
	first := func(rec *Recognizer, r rune, c int) NfaStateFn {
		rec.MatchLen++
		return second
	}
	rec := NewPooledRecognizer(0, first)
	if p := rec.RuneEvent('a', 0); p != nil || rec.Done() {
		t.Fatalf("recognizer should be active after first rune")
	}
	p := rec.RuneEvent('b', 0)
	if !rec.Done() || rec.MatchLength() != 2 || len(p) != 2 || p[1] != InfinitePenalty {
		t.Errorf("expected accept of 'ab' with penalties [0 %d], have %v", InfinitePenalty, p)
	}
	rec.Unsubscribed()
}

func TestBounded(t *testing.T) {
	if Bounded(30000) != InfinitePenalty || Bounded(-5000) != InfiniteMerits || Bounded(50) != 50 {
		t.Errorf("penalties not clipped correctly")
	}
}
