package numfmt

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Decimal is a number in decimal digit representation. Int holds the
// integer digits without leading zeros, Frac the fraction digits without
// trailing zeros.
type Decimal struct {
	Neg  bool
	Int  string
	Frac string
	NaN  bool
	Inf  bool
}

// ErrSyntax flags a string which is not a decimal number.
var ErrSyntax = errors.New("numfmt: invalid decimal number")

// FromFloat converts f to its shortest exact decimal representation.
func FromFloat(f float64) Decimal {
	switch {
	case math.IsNaN(f):
		return Decimal{NaN: true}
	case math.IsInf(f, 0):
		return Decimal{Inf: true, Neg: f < 0}
	}
	d, _ := FromString(strconv.FormatFloat(f, 'f', -1, 64))
	return d
}

// FromInt converts i to a decimal.
func FromInt(i int64) Decimal {
	d, _ := FromString(strconv.FormatInt(i, 10))
	return d
}

// FromUint converts u to a decimal.
func FromUint(u uint64) Decimal {
	d, _ := FromString(strconv.FormatUint(u, 10))
	return d
}

// FromString parses a plain decimal number like "-1234.500". Exponents
// are not accepted.
func FromString(s string) (Decimal, error) {
	var d Decimal
	s = strings.TrimSpace(s)
	if s == "" {
		return d, ErrSyntax
	}
	switch s[0] {
	case '-':
		d.Neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return Decimal{}, ErrSyntax
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Decimal{}, ErrSyntax
	}
	d.Int = strings.TrimLeft(intPart, "0")
	d.Frac = strings.TrimRight(fracPart, "0")
	if d.IsZero() {
		d.Neg = false
	}
	return d, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsZero returns true if d has no non-zero digits.
func (d Decimal) IsZero() bool {
	return !d.NaN && !d.Inf && d.Int == "" && d.Frac == ""
}

// Shift multiplies d by 10^n, n ≥ 0, by moving the decimal point.
func (d Decimal) Shift(n int) Decimal {
	if d.NaN || d.Inf || n <= 0 {
		return d
	}
	frac := d.Frac
	if len(frac) < n {
		frac += strings.Repeat("0", n-len(frac))
	}
	d.Int = strings.TrimLeft(d.Int+frac[:n], "0")
	d.Frac = strings.TrimRight(frac[n:], "0")
	return d
}

// String returns d in plain notation, e.g. "-12.5" or "0".
func (d Decimal) String() string {
	switch {
	case d.NaN:
		return "NaN"
	case d.Inf && d.Neg:
		return "-Inf"
	case d.Inf:
		return "+Inf"
	}
	var b strings.Builder
	if d.Neg {
		b.WriteByte('-')
	}
	if d.Int == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(d.Int)
	}
	if d.Frac != "" {
		b.WriteByte('.')
		b.WriteString(d.Frac)
	}
	return b.String()
}

// Round limits the fraction of d to at most maxFrac digits, using mode m.
func (d Decimal) Round(maxFrac int, m RoundingMode) Decimal {
	if d.NaN || d.Inf || maxFrac < 0 || len(d.Frac) <= maxFrac {
		return d
	}
	kept, rest := d.Frac[:maxFrac], d.Frac[maxFrac:]
	digits := d.Int + kept
	if roundsUp(digits, rest, d.Neg, m) {
		digits = increment(digits)
	}
	cut := len(digits) - maxFrac
	d.Int = strings.TrimLeft(digits[:cut], "0")
	d.Frac = strings.TrimRight(digits[cut:], "0")
	if d.IsZero() {
		d.Neg = false
	}
	return d
}

// roundsUp decides whether the magnitude of kept digits has to be
// incremented, given the dropped digits in rest. rest is never empty and
// has no trailing zeros.
func roundsUp(kept, rest string, neg bool, m RoundingMode) bool {
	switch m {
	case ToZero:
		return false
	case FromZero:
		return true
	case ToPosInf:
		return !neg
	case ToNegInf:
		return neg
	}
	switch {
	case rest[0] > '5':
		return true
	case rest[0] < '5':
		return false
	case len(rest) > 1: // more than half
		return true
	}
	switch m { // exactly half
	case HalfFromZero:
		return true
	case HalfToZero:
		return false
	}
	if kept == "" {
		return false // 0 is even
	}
	return (kept[len(kept)-1]-'0')%2 == 1
}

func increment(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
