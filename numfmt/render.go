package numfmt

import (
	"strings"
)

// Rules hold the locale-specific symbols and patterns for rendering
// numbers. A culture provides one set of rules; its Options are the
// culture's default formatting options.
type Rules struct {
	NaN              string
	Infinity         string
	PlusSign         string
	MinusSign        string
	GroupSeparator   string
	DecimalSeparator string
	Groups           []int // group sizes, starting at the decimal point
	Zero             rune  // native zero digit, '0' if unset
	PercentSymbol    string
	NegativeNumber   NegativeNumberPattern
	NegativeCurrency NegativeCurrencyPattern
	PositiveCurrency PositiveCurrencyPattern
	NegativePercent  NegativePercentPattern
	PositivePercent  PositivePercentPattern
	Options          Options
}

// InvariantRules are rules for culture-independent output.
var InvariantRules = Rules{
	NaN:              "NaN",
	Infinity:         "∞",
	PlusSign:         "+",
	MinusSign:        "-",
	GroupSeparator:   ",",
	DecimalSeparator: ".",
	Groups:           []int{3},
	Zero:             '0',
	PercentSymbol:    "%",
	NegativeNumber:   NegativeSymbolX,
	NegativeCurrency: 0,
	PositiveCurrency: 0,
	NegativePercent:  0,
	PositivePercent:  0,
	Options:          *DefaultWithGrouping,
}

// FormatNumber renders d as a plain number.
func FormatNumber(d Decimal, opts *Options, rules *Rules) string {
	rules = rulesOrInvariant(rules)
	numeral, neg := Numeral(d, opts, rules)
	if neg {
		pre, post := rules.NegativeNumber.Fragments(rules.MinusSign)
		return pre + numeral + post
	}
	if opts != nil && opts.AlwaysSign && !d.NaN {
		return rules.PlusSign + numeral
	}
	return numeral
}

// FormatPercent renders d as a percentage. d is a ratio, 0.25 renders as 25 %.
func FormatPercent(d Decimal, opts *Options, rules *Rules) string {
	rules = rulesOrInvariant(rules)
	numeral, neg := Numeral(d.Shift(2), opts, rules)
	if neg {
		pre, post := rules.NegativePercent.Fragments(rules.MinusSign, rules.PercentSymbol)
		return pre + numeral + post
	}
	pre, post := rules.PositivePercent.Fragments(rules.PercentSymbol)
	if opts != nil && opts.AlwaysSign && !d.NaN {
		pre = rules.PlusSign + pre
	}
	return pre + numeral + post
}

// FormatCurrency renders d as a currency amount with the given symbol.
func FormatCurrency(d Decimal, opts *Options, rules *Rules, symbol string) string {
	rules = rulesOrInvariant(rules)
	numeral, neg := Numeral(d, opts, rules)
	if neg {
		pre, post := rules.NegativeCurrency.Fragments(rules.MinusSign, symbol)
		return pre + numeral + post
	}
	pre, post := rules.PositiveCurrency.Fragments(symbol)
	if opts != nil && opts.AlwaysSign && !d.NaN {
		pre = rules.PlusSign + pre
	}
	return pre + numeral + post
}

func rulesOrInvariant(rules *Rules) *Rules {
	if rules == nil {
		return &InvariantRules
	}
	return rules
}

// Numeral renders the magnitude of d: rounded, padded, grouped and with
// native digits. It reports whether the rounded value is negative; a value
// rounding to zero is never negative.
//
// If opts is nil, the default options of rules are used.
func Numeral(d Decimal, opts *Options, rules *Rules) (string, bool) {
	rules = rulesOrInvariant(rules)
	if d.NaN {
		return rules.NaN, false
	}
	if d.Inf {
		return rules.Infinity, d.Neg
	}
	if opts == nil {
		opts = &rules.Options
	}
	o := opts.Normalized()
	d = d.Round(o.MaxFractionDigits, o.RoundingMode)
	intDigits, frac := visibleDigits(d, &o)
	if o.UseGrouping {
		intDigits = Group(intDigits, rules.Groups, rules.GroupSeparator)
	}
	var b strings.Builder
	b.WriteString(nativeDigits(intDigits, rules.Zero))
	if frac != "" {
		b.WriteString(rules.DecimalSeparator)
		b.WriteString(nativeDigits(frac, rules.Zero))
	}
	tracer().Debugf("numeral(%s) = %q", d, b.String())
	return b.String(), d.Neg && !d.IsZero()
}

// VisibleDigits returns the integer and fraction digits of d the way
// Numeral renders them, before grouping and digit substitution. Fraction
// digits include the zeros padded for MinFractionDigits. NaN and infinite
// values have no digits.
func VisibleDigits(d Decimal, opts *Options, rules *Rules) (intDigits, frac string) {
	if d.NaN || d.Inf {
		return "", ""
	}
	if opts == nil {
		opts = &rulesOrInvariant(rules).Options
	}
	o := opts.Normalized()
	return visibleDigits(d.Round(o.MaxFractionDigits, o.RoundingMode), &o)
}

// visibleDigits pads and truncates the digits of an already rounded d.
func visibleDigits(d Decimal, o *Options) (intDigits, frac string) {
	intDigits = d.Int
	if len(intDigits) > o.MaxIntegerDigits {
		intDigits = intDigits[len(intDigits)-o.MaxIntegerDigits:]
	}
	if len(intDigits) < o.MinIntegerDigits {
		intDigits = strings.Repeat("0", o.MinIntegerDigits-len(intDigits)) + intDigits
	}
	frac = d.Frac
	if len(frac) < o.MinFractionDigits {
		frac += strings.Repeat("0", o.MinFractionDigits-len(frac))
	}
	return intDigits, frac
}

// Group inserts sep into a string of digits. Group sizes are applied from
// the right; the last size repeats for all remaining digits, and a size of
// 0 emits all remaining digits as one block.
func Group(digits string, sizes []int, sep string) string {
	if len(sizes) == 0 || sizes[0] <= 0 || sep == "" {
		return digits
	}
	var blocks []string
	end, g := len(digits), 0
	for end > 0 {
		size := sizes[g]
		if size <= 0 || size >= end {
			blocks = append(blocks, digits[:end])
			break
		}
		blocks = append(blocks, digits[end-size:end])
		end -= size
		if g < len(sizes)-1 {
			g++
		}
	}
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return strings.Join(blocks, sep)
}

// nativeDigits replaces ASCII digits by digits starting at zero. Other
// characters are left untouched.
func nativeDigits(s string, zero rune) string {
	if zero == 0 || zero == '0' {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(zero + (c - '0'))
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}
