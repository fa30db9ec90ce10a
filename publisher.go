package lingua

// A RuneSubscriber is a receiver of rune events, i.e. messages to process a
// new code-point. If it can match the rune, it will expect further runes,
// otherwise it aborts. Finished subscribers, either accepting or rejecting
// input, report Done() == true. A successful acceptance is signalled by
// Done() == true and MatchLength() > 0.
type RuneSubscriber interface {
	RuneEvent(r rune, codePointClass int) []int // receive a new code-point
	MatchLength() int                           // length (in # of code-points) of the match up to now
	Done() bool                                 // is this subscriber done?
	Unsubscribed()                              // this subscriber has been unsubscribed
}

// A RunePublisher notifies subscribers with rune events.
//
// UnicodeBreakers usually rely on sets of rules, which are tested
// interleavingly. Holding a RunePublisher within a UnicodeBreaker relieves
// it from managing rune-distribution to all the active rules.
type RunePublisher interface {
	SubscribeMe(RuneSubscriber) RunePublisher
	PublishRuneEvent(r rune, codePointClass int) (longestDistance int, penalties []int)
	SetPenaltyAggregator(pa PenaltyAggregator)
}

// DefaultRunePublisher is the default implementation of RunePublisher.
// The zero value is ready to use.
type DefaultRunePublisher struct {
	subscribers    []RuneSubscriber
	penaltiesTotal []int
	aggregate      PenaltyAggregator
}

// NewRunePublisher creates a new default RunePublisher.
func NewRunePublisher() *DefaultRunePublisher {
	return &DefaultRunePublisher{aggregate: AddPenalties}
}

// Len returns the number of active subscribers.
func (rpub *DefaultRunePublisher) Len() int {
	return len(rpub.subscribers)
}

// PublishRuneEvent triggers a rune event notification to all subscribers.
//
// Return values are the longest active match and a slice of aggregated
// penalties. Penalties will be overwritten by the next call to
// PublishRuneEvent(); clients will have to make a copy if they want to
// preserve them.
//
// Interface RunePublisher
func (rpub *DefaultRunePublisher) PublishRuneEvent(r rune, codePointClass int) (int, []int) {
	if rpub.aggregate == nil {
		rpub.aggregate = AddPenalties
	}
	if rpub.penaltiesTotal == nil {
		rpub.penaltiesTotal = make([]int, 0, 64)
	}
	rpub.penaltiesTotal = rpub.penaltiesTotal[:0]
	longest := 0
	for _, subscr := range rpub.subscribers {
		penalties := subscr.RuneEvent(r, codePointClass)
		for j, p := range penalties {
			if j >= len(rpub.penaltiesTotal) {
				rpub.penaltiesTotal = append(rpub.penaltiesTotal, p)
			} else {
				rpub.penaltiesTotal[j] = rpub.aggregate(rpub.penaltiesTotal[j], p)
			}
		}
		if !subscr.Done() {
			if d := subscr.MatchLength(); d > longest {
				longest = d
			}
		}
	}
	// unsubscribe everyone who is done, keeping the order of the rest
	active := rpub.subscribers[:0]
	for _, subscr := range rpub.subscribers {
		if subscr.Done() {
			subscr.Unsubscribed()
		} else {
			active = append(active, subscr)
		}
	}
	for i := len(active); i < len(rpub.subscribers); i++ {
		rpub.subscribers[i] = nil
	}
	rpub.subscribers = active
	return longest, rpub.penaltiesTotal
}

// PenaltyAggregator is a function type for methods of penalty-aggregation.
// It aggregates all the break penalties at a break-point into a single
// penalty value at that point.
type PenaltyAggregator func(int, int) int

// SetPenaltyAggregator sets a PenaltyAggregator for a rune publisher.
//
// Part of interface RunePublisher.
func (rpub *DefaultRunePublisher) SetPenaltyAggregator(pa PenaltyAggregator) {
	if pa == nil {
		rpub.aggregate = AddPenalties
	} else {
		rpub.aggregate = pa
	}
}

// AddPenalties is the default function to aggregate break-penalties.
// Simply adds up all penalties at each break position, respectively.
func AddPenalties(total int, p int) int {
	return total + p
}

// MaxPenalties is an alternative function to aggregate break-penalties.
// Returns maximum of all penalties at each break position.
func MaxPenalties(total int, p int) int {
	if total > p {
		return total
	}
	return p
}

// SubscribeMe lets a client subscribe to a RunePublisher.
//
// Part of interface RunePublisher.
func (rpub *DefaultRunePublisher) SubscribeMe(rsub RuneSubscriber) RunePublisher {
	if rpub.aggregate == nil {
		rpub.aggregate = AddPenalties
	}
	rpub.subscribers = append(rpub.subscribers, rsub)
	return rpub
}

// Reset unsubscribes every active subscriber.
func (rpub *DefaultRunePublisher) Reset() {
	for i, subscr := range rpub.subscribers {
		subscr.Unsubscribed()
		rpub.subscribers[i] = nil
	}
	rpub.subscribers = rpub.subscribers[:0]
	rpub.penaltiesTotal = rpub.penaltiesTotal[:0]
}
