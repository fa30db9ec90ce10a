package numfmt

import "fmt"

// RoundingMode selects how fraction digits beyond the maximum are dropped.
type RoundingMode int8

// Rounding modes. The Half* modes round to the nearest value and differ
// in how they break ties.
const (
	HalfToEven   RoundingMode = iota // 2.5 → 2, 3.5 → 4
	HalfFromZero                     // 2.5 → 3, -2.5 → -3
	HalfToZero                       // 2.5 → 2, -2.5 → -2
	FromZero                         // 2.1 → 3, -2.1 → -3
	ToZero                           // 2.9 → 2, -2.9 → -2
	ToNegInf                         // 2.9 → 2, -2.1 → -3
	ToPosInf                         // 2.1 → 3, -2.9 → -2
)

var roundingModeNames = [...]string{"HalfToEven", "HalfFromZero", "HalfToZero",
	"FromZero", "ToZero", "ToNegInf", "ToPosInf"}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return fmt.Sprintf("RoundingMode(%d)", m)
	}
	return roundingModeNames[m]
}

// ParseRoundingMode finds a rounding mode by name.
func ParseRoundingMode(name string) (RoundingMode, bool) {
	for i, n := range roundingModeNames {
		if n == name {
			return RoundingMode(i), true
		}
	}
	return HalfToEven, false
}

// MaxIntegerDigits is the number of integer digits a float64 may have.
const MaxIntegerDigits = 308 + 15 + 1

// Options control how a number is rendered. Options are comparable and
// are used as cache keys by value.
type Options struct {
	AlwaysSign        bool // render a plus sign for positive numbers
	UseGrouping       bool
	RoundingMode      RoundingMode
	MinIntegerDigits  int
	MaxIntegerDigits  int
	MinFractionDigits int
	MaxFractionDigits int
}

// DefaultWithGrouping and DefaultNoGrouping are the canonical option sets.
// Formatter caches recognize them by identity, so clients should pass these
// pointers rather than copies whenever they want the defaults.
var (
	DefaultWithGrouping = &Options{
		UseGrouping:       true,
		RoundingMode:      HalfToEven,
		MinIntegerDigits:  1,
		MaxIntegerDigits:  MaxIntegerDigits,
		MaxFractionDigits: 3,
	}
	DefaultNoGrouping = &Options{
		RoundingMode:      HalfToEven,
		MinIntegerDigits:  1,
		MaxIntegerDigits:  MaxIntegerDigits,
		MaxFractionDigits: 3,
	}
)

// IsDefault returns true if o is one of the two canonical option sets,
// compared by identity.
func (o *Options) IsDefault() bool {
	return o == DefaultWithGrouping || o == DefaultNoGrouping
}

// Normalized returns a copy of o with digit limits made consistent:
// negative limits are clamped to 0, and maximums are raised to their
// minimums.
func (o Options) Normalized() Options {
	if o.MinIntegerDigits < 0 {
		o.MinIntegerDigits = 0
	}
	if o.MaxIntegerDigits <= 0 || o.MaxIntegerDigits > MaxIntegerDigits {
		o.MaxIntegerDigits = MaxIntegerDigits
	}
	if o.MaxIntegerDigits < o.MinIntegerDigits {
		o.MaxIntegerDigits = o.MinIntegerDigits
	}
	if o.MinFractionDigits < 0 {
		o.MinFractionDigits = 0
	}
	if o.MaxFractionDigits < o.MinFractionDigits {
		o.MaxFractionDigits = o.MinFractionDigits
	}
	return o
}

// WithGrouping returns a copy of o with grouping switched on or off.
func (o Options) WithGrouping(b bool) Options {
	o.UseGrouping = b
	return o
}

// WithRounding returns a copy of o with rounding mode m.
func (o Options) WithRounding(m RoundingMode) Options {
	o.RoundingMode = m
	return o
}

// WithFractionDigits returns a copy of o with the fraction digit limits set.
func (o Options) WithFractionDigits(min, max int) Options {
	o.MinFractionDigits, o.MaxFractionDigits = min, max
	return o
}

// WithIntegerDigits returns a copy of o with the integer digit limits set.
func (o Options) WithIntegerDigits(min, max int) Options {
	o.MinIntegerDigits, o.MaxIntegerDigits = min, max
	return o
}

// WithAlwaysSign returns a copy of o which renders a sign for positive numbers.
func (o Options) WithAlwaysSign(b bool) Options {
	o.AlwaysSign = b
	return o
}
