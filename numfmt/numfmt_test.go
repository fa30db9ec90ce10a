package numfmt

import (
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleGroup() {
	fmt.Println(Group("1234567", []int{3}, ","))
	fmt.Println(Group("1234567", []int{3, 2}, ","))
	fmt.Println(Group("1234567", []int{3, 0}, ","))
	// Output:
	// 1,234,567
	// 12,34,567
	// 1234,567
}

func TestDecimalFromString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.numfmt")
	defer teardown()
	//
	d, err := FromString("-001234.5600")
	require.NoError(t, err)
	assert.Equal(t, Decimal{Neg: true, Int: "1234", Frac: "56"}, d)
	d, err = FromString("-0.000")
	require.NoError(t, err)
	assert.False(t, d.Neg, "negative zero should lose its sign")
	for _, bad := range []string{"", "-", ".", "1e5", "12a", "1.2.3"} {
		_, err = FromString(bad)
		assert.ErrorIs(t, err, ErrSyntax, bad)
	}
	assert.Equal(t, "0.1", FromFloat(0.1).String())
	assert.Equal(t, "-42", FromInt(-42).String())
	assert.True(t, FromFloat(0).IsZero())
}

func TestShift(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.numfmt")
	defer teardown()
	//
	assert.Equal(t, "25", FromFloat(0.25).Shift(2).String())
	assert.Equal(t, "12.5", FromFloat(0.125).Shift(2).String())
	assert.Equal(t, "300", FromInt(3).Shift(2).String())
	assert.Equal(t, "0.1", FromFloat(0.001).Shift(2).String())
}

func TestRounding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.numfmt")
	defer teardown()
	//
	inputs := []string{"2.5", "3.5", "-2.5", "2.1", "-2.1", "2.9", "-2.9", "0.5"}
	expected := map[RoundingMode][]string{
		HalfToEven:   {"2", "4", "-2", "2", "-2", "3", "-3", "0"},
		HalfFromZero: {"3", "4", "-3", "2", "-2", "3", "-3", "1"},
		HalfToZero:   {"2", "3", "-2", "2", "-2", "3", "-3", "0"},
		FromZero:     {"3", "4", "-3", "3", "-3", "3", "-3", "1"},
		ToZero:       {"2", "3", "-2", "2", "-2", "2", "-2", "0"},
		ToNegInf:     {"2", "3", "-3", "2", "-3", "2", "-3", "0"},
		ToPosInf:     {"3", "4", "-2", "3", "-2", "3", "-2", "1"},
	}
	for mode, results := range expected {
		for i, in := range inputs {
			d, _ := FromString(in)
			assert.Equal(t, results[i], d.Round(0, mode).String(), "%s of %s", mode, in)
		}
	}
	d, _ := FromString("9.995")
	assert.Equal(t, "10", d.Round(2, HalfFromZero).String())
	d, _ = FromString("0.125")
	assert.Equal(t, "0.12", d.Round(2, HalfToEven).String())
	d, _ = FromString("-0.001")
	assert.Equal(t, "0", d.Round(2, HalfToEven).String())
}

func TestFormatNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.numfmt")
	defer teardown()
	//
	rules := InvariantRules
	assert.Equal(t, "1,234,567", FormatNumber(FromInt(1234567), DefaultWithGrouping, &rules))
	assert.Equal(t, "1234567", FormatNumber(FromInt(1234567), DefaultNoGrouping, &rules))
	rules.Groups = []int{3, 2}
	assert.Equal(t, "12,34,567", FormatNumber(FromInt(1234567), DefaultWithGrouping, &rules))
	//
	rules = InvariantRules
	rules.NegativeNumber = NegativeSymbolX
	assert.Equal(t, "-5", FormatNumber(FromInt(-5), nil, &rules))
	rules.NegativeNumber = XNegativeSymbol
	assert.Equal(t, "5-", FormatNumber(FromInt(-5), nil, &rules))
	rules.NegativeNumber = NumParenthesis
	assert.Equal(t, "(5)", FormatNumber(FromInt(-5), nil, &rules))
	//
	opts := DefaultNoGrouping.WithFractionDigits(2, 2)
	assert.Equal(t, "3.10", FormatNumber(FromFloat(3.1), &opts, nil))
	opts = DefaultNoGrouping.WithIntegerDigits(3, 4)
	assert.Equal(t, "007", FormatNumber(FromInt(7), &opts, nil))
	assert.Equal(t, "2345", FormatNumber(FromInt(12345), &opts, nil))
	opts = DefaultNoGrouping.WithAlwaysSign(true)
	assert.Equal(t, "+5", FormatNumber(FromInt(5), &opts, nil))
	assert.Equal(t, "NaN", FormatNumber(FromFloat(math.NaN()), nil, nil))
}

func TestLocalizedNumerals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.numfmt")
	defer teardown()
	//
	de := InvariantRules
	de.GroupSeparator, de.DecimalSeparator = ".", ","
	assert.Equal(t, "1.234,5", FormatNumber(FromFloat(1234.5), nil, &de))
	ar := InvariantRules
	ar.Zero = '٠'
	ar.GroupSeparator = "٬"
	assert.Equal(t, "١٬٢٣٤", FormatNumber(FromInt(1234), nil, &ar))
}

func TestFormatPercentAndCurrency(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.numfmt")
	defer teardown()
	//
	rules := InvariantRules
	assert.Equal(t, "25\u00a0%", FormatPercent(FromFloat(0.25), nil, &rules))
	assert.Equal(t, "-25\u00a0%", FormatPercent(FromFloat(-0.25), nil, &rules))
	rules.PositivePercent, rules.NegativePercent = 1, 1
	assert.Equal(t, "12.5%", FormatPercent(FromFloat(0.125), nil, &rules))
	//
	rules = InvariantRules
	opts := DefaultWithGrouping.WithFractionDigits(2, 2)
	assert.Equal(t, "$1,234.50", FormatCurrency(FromFloat(1234.5), &opts, &rules, "$"))
	assert.Equal(t, "($1,234.50)", FormatCurrency(FromFloat(-1234.5), &opts, &rules, "$"))
	rules.PositiveCurrency, rules.NegativeCurrency = 3, 8
	assert.Equal(t, "1,234.50\u00a0€", FormatCurrency(FromFloat(1234.5), &opts, &rules, "€"))
	assert.Equal(t, "-1,234.50\u00a0€", FormatCurrency(FromFloat(-1234.5), &opts, &rules, "€"))
}

func TestPatternTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.numfmt")
	defer teardown()
	//
	assert.Equal(t, [5]int{5, 16, 4, 12, 4}, NumPatterns())
	pre, post := NegativeCurrencyPattern(14).Fragments("-", "$")
	assert.Equal(t, "($\u00a0", pre)
	assert.Equal(t, ")", post)
	pre, post = NegativePercentPattern(4).Fragments("-", "%")
	assert.Equal(t, "%", pre)
	assert.Equal(t, "-", post)
	pre, post = NegativeNumberPattern(99).Fragments("-")
	assert.Equal(t, "-", pre, "out of range pattern should fall back to -n")
	assert.Equal(t, "", post)
	assert.Equal(t, "n -", XSpaceNegativeSymbol.String())
}

func TestOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.numfmt")
	defer teardown()
	//
	assert.True(t, DefaultWithGrouping.IsDefault())
	copied := *DefaultWithGrouping
	assert.False(t, copied.IsDefault(), "copies are not recognized by identity")
	assert.Equal(t, *DefaultWithGrouping, copied, "but compare equal by value")
	o := Options{MinFractionDigits: 4, MaxFractionDigits: 2, MinIntegerDigits: -1}.Normalized()
	assert.Equal(t, 4, o.MaxFractionDigits)
	assert.Equal(t, 0, o.MinIntegerDigits)
	assert.Equal(t, MaxIntegerDigits, o.MaxIntegerDigits)
	m, ok := ParseRoundingMode("ToPosInf")
	assert.True(t, ok)
	assert.Equal(t, ToPosInf, m)
}
