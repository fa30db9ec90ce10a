package numfmt

import (
	"fmt"
	"strings"
)

// Number patterns follow the enumerations commonly used by locale data
// providers. In the templates below 'n' stands for the numeral, '-' for
// the minus sign, '$' for the currency symbol, '%' for the percent symbol
// and '_' for a no-break space.

// NegativeNumberPattern places the minus sign of a plain number.
type NegativeNumberPattern int8

// Negative number patterns.
const (
	NumParenthesis       NegativeNumberPattern = iota // (n)
	NegativeSymbolX                                   // -n
	NegativeSymbolSpaceX                              // - n
	XNegativeSymbol                                   // n-
	XSpaceNegativeSymbol                              // n -
)

var negativeNumberTemplates = [...]string{"(n)", "-n", "-_n", "n-", "n_-"}

// NegativeCurrencyPattern places sign and symbol of a negative amount.
type NegativeCurrencyPattern int8

var negativeCurrencyTemplates = [...]string{
	"($n)", "-$n", "$-n", "$n-",
	"(n$)", "-n$", "n-$", "n$-",
	"-n_$", "-$_n", "n_$-", "$_n-",
	"$_-n", "n-_$", "($_n)", "(n_$)",
}

// PositiveCurrencyPattern places the symbol of a positive amount.
type PositiveCurrencyPattern int8

var positiveCurrencyTemplates = [...]string{"$n", "n$", "$_n", "n_$"}

// NegativePercentPattern places sign and symbol of a negative percentage.
type NegativePercentPattern int8

var negativePercentTemplates = [...]string{
	"-n_%", "-n%", "-%n", "%-n",
	"%n-", "n-%", "n%-", "-%_n",
	"n_%-", "%_n-", "%_-n", "n-_%",
}

// PositivePercentPattern places the symbol of a positive percentage.
type PositivePercentPattern int8

var positivePercentTemplates = [...]string{"n_%", "n%", "%n", "%_n"}

// NumPatterns returns the number of entries of every pattern table, in the
// order negative number, negative currency, positive currency, negative
// percent, positive percent.
func NumPatterns() [5]int {
	return [5]int{len(negativeNumberTemplates), len(negativeCurrencyTemplates),
		len(positiveCurrencyTemplates), len(negativePercentTemplates),
		len(positivePercentTemplates)}
}

// Fragments returns the strings to put before and after a negative numeral.
func (p NegativeNumberPattern) Fragments(minus string) (pre, post string) {
	return fragments(pick(negativeNumberTemplates[:], int(p), 1), minus, "")
}

// Fragments returns the strings to put before and after a negative amount.
func (p NegativeCurrencyPattern) Fragments(minus, symbol string) (pre, post string) {
	return fragments(pick(negativeCurrencyTemplates[:], int(p), 1), minus, symbol)
}

// Fragments returns the strings to put before and after a positive amount.
func (p PositiveCurrencyPattern) Fragments(symbol string) (pre, post string) {
	return fragments(pick(positiveCurrencyTemplates[:], int(p), 0), "", symbol)
}

// Fragments returns the strings to put before and after a negative percentage.
func (p NegativePercentPattern) Fragments(minus, symbol string) (pre, post string) {
	return fragments(pick(negativePercentTemplates[:], int(p), 0), minus, symbol)
}

// Fragments returns the strings to put before and after a positive percentage.
func (p PositivePercentPattern) Fragments(symbol string) (pre, post string) {
	return fragments(pick(positivePercentTemplates[:], int(p), 0), "", symbol)
}

func (p NegativeNumberPattern) String() string {
	return patternName("NegativeNumberPattern", negativeNumberTemplates[:], int(p))
}

func (p NegativeCurrencyPattern) String() string {
	return patternName("NegativeCurrencyPattern", negativeCurrencyTemplates[:], int(p))
}

func (p PositiveCurrencyPattern) String() string {
	return patternName("PositiveCurrencyPattern", positiveCurrencyTemplates[:], int(p))
}

func (p NegativePercentPattern) String() string {
	return patternName("NegativePercentPattern", negativePercentTemplates[:], int(p))
}

func (p PositivePercentPattern) String() string {
	return patternName("PositivePercentPattern", positivePercentTemplates[:], int(p))
}

func patternName(kind string, table []string, p int) string {
	if p < 0 || p >= len(table) {
		return fmt.Sprintf("%s(%d)", kind, p)
	}
	return strings.ReplaceAll(table[p], "_", " ")
}

// pick selects a template, falling back to table[dflt] for values out of range.
func pick(table []string, p int, dflt int) string {
	if p < 0 || p >= len(table) {
		tracer().P("pattern", p).Debugf("number pattern out of range, using default")
		return table[dflt]
	}
	return table[p]
}

// fragments splits a template at the numeral placeholder and substitutes
// the placeholders of both halves.
func fragments(template, minus, symbol string) (pre, post string) {
	before, after, _ := strings.Cut(template, "n")
	return expand(before, minus, symbol), expand(after, minus, symbol)
}

func expand(t, minus, symbol string) string {
	if t == "" {
		return ""
	}
	var b strings.Builder
	for _, c := range t {
		switch c {
		case '-':
			b.WriteString(minus)
		case '$', '%':
			b.WriteString(symbol)
		case '_':
			b.WriteRune('\u00a0')
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
