package culture

import (
	"errors"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/npillmayer/lingua/numfmt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCanonicalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	tp := NewTextProvider()
	for in, out := range map[string]string{
		"en_US.UTF-8": "en-US",
		"de-de":       "de-DE",
		"zh_Hant_TW":  "zh-Hant-TW",
		"C":           "en-US",
		"":            InvariantName,
		"Invariant":   InvariantName,
	} {
		assert.Equal(t, out, tp.Canonicalize(in), "canonical form of %q", in)
	}
	assert.True(t, tp.HasData("de-DE"))
	assert.True(t, tp.HasData("ja"))
	assert.False(t, tp.HasData("xx"))
	assert.False(t, tp.HasData(InvariantName))
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	reg := NewRegistry(NewTextProvider())
	de1, err := reg.Get("de_DE.UTF-8")
	require.NoError(t, err)
	de2, err := reg.Get("de-DE")
	require.NoError(t, err)
	assert.Same(t, de1, de2)
	assert.Equal(t, "de-DE", de1.Name())
	assert.Equal(t, "de", de1.TwoLetterISOLanguageName())
	assert.Equal(t, "DE", de1.Region())
	assert.Equal(t, "EUR", de1.CurrencyCode())
	assert.False(t, de1.IsRightToLeft())
	//
	_, err = reg.Get("xx")
	assert.True(t, errors.Is(err, ErrLocaleNotFound))
	assert.Same(t, reg.Invariant(), reg.MustGet("xx"))
	iv, err := reg.Get("")
	require.NoError(t, err)
	assert.True(t, iv.IsInvariant())
	//
	ar, err := reg.Get("ar-EG")
	require.NoError(t, err)
	assert.True(t, ar.IsRightToLeft())
	assert.Equal(t, []string{"ar-EG", "de-DE"}, reg.Cultures())
	//
	reg.Close()
	_, err = reg.Get("fr-FR")
	assert.ErrorIs(t, err, ErrRegistryClosed)
	_, err = reg.Get("invariant")
	assert.NoError(t, err)
}

func TestConcurrentGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	reg := NewRegistry(NewTextProvider())
	cultures := make([]*Culture, 16)
	var wg sync.WaitGroup
	for i := range cultures {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cultures[i], _ = reg.Get("fr-FR")
		}(i)
	}
	wg.Wait()
	require.NotNil(t, cultures[0])
	for _, c := range cultures[1:] {
		assert.Same(t, cultures[0], c)
	}
	assert.Len(t, reg.Cultures(), 1)
}

func TestProbeNumberRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	reg := NewRegistry(NewTextProvider())
	de := reg.MustGet("de-DE")
	rules := de.NumberRules()
	assert.Equal(t, ".", rules.GroupSeparator)
	assert.Equal(t, ",", rules.DecimalSeparator)
	assert.Equal(t, []int{3}, rules.Groups)
	assert.Equal(t, '0', rules.Zero)
	assert.Equal(t, "-", rules.MinusSign)
	assert.Equal(t, numfmt.NegativeSymbolX, rules.NegativeNumber)
	en := reg.MustGet("en-US")
	assert.Equal(t, numfmt.PositivePercentPattern(1), en.NumberRules().PositivePercent)
	//
	assert.Equal(t, []int{3, 2}, groupSizes([]string{"12", "34", "567"}))
	assert.Equal(t, []int{3}, groupSizes([]string{"1", "234", "567"}))
	runs, seps := splitDigits("-1.234,5 €")
	assert.Equal(t, []string{"1", "234", "5"}, runs)
	assert.Equal(t, []string{".", ","}, seps)
}

func TestNumberFormatting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	reg := NewRegistry(NewTextProvider())
	de := reg.MustGet("de-DE")
	assert.Equal(t, "1.234,5", de.DecimalFormatter(nil).Format(numfmt.FromFloat(1234.5)))
	assert.Equal(t, "1234,5", de.DecimalFormatter(numfmt.DefaultNoGrouping).Format(numfmt.FromFloat(1234.5)))
	assert.Equal(t, "1.234,50\u00a0€", de.CurrencyFormatter("", nil).Format(numfmt.FromFloat(1234.5)))
	en := reg.MustGet("en-US")
	assert.Equal(t, "-$1,234.50", en.CurrencyFormatter("USD", nil).Format(numfmt.FromFloat(-1234.5)))
	assert.Equal(t, "25%", en.PercentFormatter(nil).Format(numfmt.FromFloat(0.25)))
	assert.Equal(t, 0, en.CurrencyDigits("JPY"))
	jpy := en.CurrencyFormatter("JPY", nil)
	assert.Equal(t, "JPY", jpy.Currency())
	assert.Equal(t, 0, jpy.Options().MaxFractionDigits)
	assert.Same(t, jpy, en.CurrencyFormatter("JPY", nil))
}

func TestForeignCurrencyFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	reg := NewRegistry(NewTextProvider())
	en := reg.MustGet("en-US")
	jpy := en.CurrencyFormatter("JPY", nil)
	assert.NotContains(t, jpy.Format(numfmt.FromInt(1000)), ".", "yen have no fraction digits")
	assert.Contains(t, jpy.Format(numfmt.FromInt(1000)), "1,000")
	eur := en.CurrencyFormatter("EUR", nil)
	assert.Contains(t, eur.Format(numfmt.FromFloat(12.5)), "12.50")
	opts := numfmt.DefaultWithGrouping.WithFractionDigits(1, 1)
	custom := en.CurrencyFormatter("JPY", &opts)
	assert.Contains(t, custom.Format(numfmt.FromInt(1000)), "1,000.0")
	assert.NotSame(t, jpy, custom)
	de := reg.MustGet("de-DE")
	assert.Contains(t, de.CurrencyFormatter("USD", nil).Format(numfmt.FromFloat(3)), "3,00")
}

func TestFormatterCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	reg := NewRegistry(NewTextProvider(), WithCapacity(10))
	c := reg.MustGet("en-US")
	dflt := c.DecimalFormatter(nil)
	assert.Same(t, dflt, c.DecimalFormatter(nil))
	opts := c.DefaultOptions()
	assert.Same(t, dflt, c.DecimalFormatter(&opts), "options equal to culture default take the fast path")
	noGrouping := c.DecimalFormatter(numfmt.DefaultNoGrouping)
	assert.Same(t, noGrouping, c.DecimalFormatter(numfmt.DefaultNoGrouping))
	assert.NotSame(t, dflt, noGrouping)
	assert.Equal(t, 0, c.numbers.lru.Len(), "canonical options must not occupy the LRU")
	//
	copied := *numfmt.DefaultNoGrouping
	f := c.DecimalFormatter(&copied)
	assert.NotSame(t, noGrouping, f, "copies of canonical options are cached by value")
	assert.Same(t, f, c.DecimalFormatter(&copied))
	assert.Equal(t, 1, c.numbers.lru.Len())
	//
	first := numfmt.DefaultWithGrouping.WithFractionDigits(1, 1)
	ff := c.DecimalFormatter(&first)
	for i := 2; i <= 12; i++ {
		o := numfmt.DefaultWithGrouping.WithFractionDigits(1, i)
		c.DecimalFormatter(&o)
	}
	assert.Equal(t, 10, c.numbers.lru.Len())
	assert.NotSame(t, ff, c.DecimalFormatter(&first), "least recently used formatter should have been evicted")
}

func TestDates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	reg := NewRegistry(NewTextProvider(), WithLocation(time.UTC))
	tm := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	en := reg.MustGet("en-US")
	assert.Equal(t, "3/5/24", en.DateFormatter(ShortStyle, "").Format(tm))
	assert.Equal(t, "Mar 5, 2024", en.DateFormatter(DefaultStyle, "").Format(tm))
	assert.Equal(t, "2:07 PM", en.TimeFormatter(ShortStyle, "").Format(tm))
	assert.Equal(t, "Mar 5, 2024, 2:07:09 PM", en.DateTimeFormatter(DefaultStyle, DefaultStyle, "").Format(tm))
	de := reg.MustGet("de-DE")
	assert.Equal(t, "5. März 2024", de.DateFormatter(LongStyle, "").Format(tm))
	assert.Equal(t, "Dienstag, 5. März 2024", de.DateFormatter(FullStyle, "").Format(tm))
	ja := reg.MustGet("ja-JP")
	assert.Equal(t, "2024年3月5日火曜日", ja.DateFormatter(FullStyle, "").Format(tm))
	es := reg.MustGet("es-ES")
	assert.Equal(t, "5 de marzo de 2024", es.DateFormatter(LongStyle, "").Format(tm))
}

func TestTimeZones(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	reg := NewRegistry(NewTextProvider(), WithLocation(time.UTC))
	de := reg.MustGet("de-DE")
	dflt := de.DateFormatter(DefaultStyle, "")
	assert.Same(t, dflt, de.DateFormatter(DefaultStyle, "UTC"), "explicit default zone should reuse default formatter")
	assert.Same(t, dflt, de.DateFormatter(MediumStyle, ""))
	berlin := de.DateFormatter(DefaultStyle, "Europe/Berlin")
	assert.NotSame(t, dflt, berlin)
	assert.Same(t, berlin, de.DateFormatter(DefaultStyle, "Europe/Berlin"))
	tm := time.Date(2024, time.March, 5, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "05.03.2024", dflt.Format(tm))
	assert.Equal(t, "06.03.2024", berlin.Format(tm))
	assert.Same(t, dflt, de.DateFormatter(DefaultStyle, "Mars/Olympus_Mons"))
}

func TestDateDataFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	assert.Equal(t, dateTimeTable["und"], dateTimeDataFor(language.MustParse("it-IT")))
	assert.Equal(t, dateTimeTable["de"], dateTimeDataFor(language.MustParse("de-AT")))
}

func TestDatePatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	names := dateTimeTable["en"]
	tm := time.Date(2009, time.January, 2, 0, 4, 5, 0, time.UTC)
	assert.Equal(t, "09-1-02 12:04:05 AM", formatPattern(tm, "yy-M-dd hh:mm:ss a", &names))
	assert.Equal(t, "Fri, it's 2009", formatPattern(tm, "E, 'it''s' y", &names))
	assert.Equal(t, "00:04 UTC", formatPattern(tm, "HH:mm z", &names))
}

func TestCollation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	reg := NewRegistry(NewTextProvider())
	en := reg.MustGet("en-US")
	primary := en.Collator(Primary)
	assert.Same(t, primary, en.Collator(Primary))
	assert.True(t, primary.Equal("abc", "ABC"))
	assert.True(t, primary.Equal("resume", "résumé"))
	secondary := en.Collator(Secondary)
	assert.True(t, secondary.Equal("abc", "ABC"))
	assert.False(t, secondary.Equal("resume", "résumé"))
	assert.NotEqual(t, 0, en.Collator(Tertiary).Compare("abc", "ABC"))
	assert.Equal(t, -1, en.Collator(Tertiary).Compare("apple", "banana"))
	composed, decomposed := "\u00e9", "e\u0301"
	assert.True(t, en.Collator(Tertiary).Equal(composed, decomposed))
	assert.False(t, en.Collator(Quinary).Equal(composed, decomposed))
	assert.True(t, en.Collator(Quinary).Equal(composed, composed))
	words := []string{"banana", "Apple", "cherry"}
	en.Collator(Tertiary).Sort(words)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, words)
	s, ok := ParseStrength("quinary")
	assert.True(t, ok)
	assert.Equal(t, Quinary, s)
}

var yamlDoc = []byte(`
locales:
  x-test:
    displayName: Test
    group: ","
    groups: [3, 2]
    zero: "٠"
    negativeNumber: 3
    currency: INR
    currencySymbol: "₹"
    currencyDigits: 2
    months: [Jan, Feb, Mar]
    dates: ["d MMMM y"]
`)

func TestYAMLProvider(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	yp, err := NewYAMLProvider(yamlDoc, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x-test"}, yp.Locales())
	reg := NewRegistry(yp, WithLocation(time.UTC))
	c, err := reg.Get("x-test")
	require.NoError(t, err)
	assert.Equal(t, "Test", c.DisplayName())
	assert.Equal(t, "١٢,٣٤,٥٦٧-", c.DecimalFormatter(nil).Format(numfmt.FromInt(-1234567)))
	assert.Equal(t, "₹١,٠٠٠.٠٠", c.CurrencyFormatter("", nil).Format(numfmt.FromInt(1000)))
	tm := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "5 Mar 2024", c.DateFormatter(ShortStyle, "").Format(tm))
	_, err = reg.Get("de-DE")
	assert.ErrorIs(t, err, ErrLocaleNotFound)
	//
	_, err = NewYAMLProvider([]byte("locales: [1, 2"), nil)
	assert.Error(t, err)
	_, err = NewYAMLProvider([]byte("locales:\n  x-bad:\n    zero: \"01\"\n"), nil)
	assert.ErrorIs(t, err, ErrLocaleData)
}

func TestYAMLOverlay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.culture")
	defer teardown()
	//
	yp, err := NewYAMLProvider([]byte("locales:\n  de_CH:\n    group: \"'\"\n"), NewTextProvider())
	require.NoError(t, err)
	reg := NewRegistry(yp)
	ch := reg.MustGet("de-CH")
	assert.Equal(t, "1'234'567", ch.DecimalFormatter(nil).Format(numfmt.FromInt(1234567)))
	fr, err := reg.Get("fr-FR")
	require.NoError(t, err, "locales without YAML entry come from the fallback")
	assert.Equal(t, "fr", fr.TwoLetterISOLanguageName())
}
