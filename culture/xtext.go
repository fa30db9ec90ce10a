package culture

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lingua/numfmt"
	"go.trai.ch/zerr"
	"golang.org/x/text/collate"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TextProvider derives locale data from the CLDR tables of golang.org/x/text.
// Number symbols and patterns are probed by formatting sample values with a
// message.Printer.
type TextProvider struct {
	matcher language.Matcher
}

var _ Provider = (*TextProvider)(nil)

// NewTextProvider creates a provider for all locales x/text has collation
// data for.
func NewTextProvider() *TextProvider {
	return &TextProvider{matcher: language.NewMatcher(collate.Supported())}
}

// Canonicalize converts locale strings as found in environment variables
// or configuration files to BCP 47, e.g. "en_US.UTF-8" to "en-US".
func (tp *TextProvider) Canonicalize(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "invariant", "und", "root":
		return InvariantName
	case "c", "posix":
		return "en-US"
	}
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
	tag, err := language.Parse(name)
	if err != nil {
		return name
	}
	return tag.String()
}

// HasData is true for well-formed tags which match a supported locale
// with at least high confidence.
func (tp *TextProvider) HasData(name string) bool {
	tag, err := language.Parse(name)
	if err != nil || tag == language.Und {
		return false
	}
	_, _, conf := tp.matcher.Match(tag)
	return conf >= language.High
}

// Data builds the locale data for a canonical name.
func (tp *TextProvider) Data(name string) (*LocaleData, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "cannot parse locale"), "locale", name)
	}
	base, _ := tag.Base()
	region, _ := tag.Region()
	script, _ := tag.Script()
	data := &LocaleData{
		Name:        name,
		Tag:         tag,
		DisplayName: display.English.Tags().Name(tag),
		NativeName:  display.Self.Name(tag),
		Language:    base.String(),
		Region:      region.String(),
		RightToLeft: rtlScripts[script.String()],
		DateTime:    dateTimeDataFor(tag),
	}
	data.Number = probeNumberRules(tag)
	unit, ok := currency.FromRegion(region)
	if !ok {
		unit = currency.XXX
	}
	data.CurrencyCode = unit.String()
	data.CurrencySymbol = CurrencySymbol(tag, unit)
	data.CurrencyDigits, _ = currency.Standard.Rounding(unit)
	tracer().P("locale", name).Debugf("created locale data from x/text: %s", data.DisplayName)
	return data, nil
}

// CurrencySymbol returns the symbol for a currency as used in a locale.
func CurrencySymbol(tag language.Tag, unit currency.Unit) string {
	return message.NewPrinter(tag).Sprint(currency.Symbol(unit))
}

// probeNumberRules formats sample values and extracts separators, group
// sizes, native digits and sign/symbol patterns from the output.
func probeNumberRules(tag language.Tag) numfmt.Rules {
	rules := numfmt.InvariantRules
	rules.Groups = nil
	p := message.NewPrinter(tag)
	sample := p.Sprint(number.Decimal(1234567.25, number.MaxFractionDigits(2), number.MinFractionDigits(2)))
	runs, seps := splitDigits(sample)
	if len(runs) >= 2 {
		rules.Zero = firstRune(runs[0]) - 1
		rules.DecimalSeparator = seps[len(seps)-1]
		intRuns := runs[:len(runs)-1]
		if len(intRuns) > 1 {
			rules.GroupSeparator = seps[0]
			rules.Groups = groupSizes(intRuns)
		}
	}
	five := string(rules.Zero + 5)
	pre, post := cutAround(p.Sprint(number.Decimal(-5)), five)
	minus := strings.Trim(pre+post, "() \u00a0\u202f")
	if minus != "" {
		rules.MinusSign = minus
	}
	rules.NegativeNumber = numfmt.NegativeNumberPattern(matchPattern(numfmt.NumPatterns()[0], pre, post,
		func(i int) (string, string) { return numfmt.NegativeNumberPattern(i).Fragments(rules.MinusSign) },
		int(numfmt.NegativeSymbolX)))
	twentyFive := string(rules.Zero+2) + string(rules.Zero+5)
	pre, post = cutAround(p.Sprint(number.Percent(0.25)), twentyFive)
	if sym := strings.Trim(pre+post, " \u00a0\u202f"); sym != "" {
		rules.PercentSymbol = sym
	}
	rules.PositivePercent = numfmt.PositivePercentPattern(matchPattern(numfmt.NumPatterns()[4], pre, post,
		func(i int) (string, string) { return numfmt.PositivePercentPattern(i).Fragments(rules.PercentSymbol) },
		0))
	pre, post = cutAround(p.Sprint(number.Percent(-0.25)), twentyFive)
	rules.NegativePercent = numfmt.NegativePercentPattern(matchPattern(numfmt.NumPatterns()[3], pre, post,
		func(i int) (string, string) {
			return numfmt.NegativePercentPattern(i).Fragments(rules.MinusSign, rules.PercentSymbol)
		}, 0))
	cp := currencyPatternsFor(tag)
	rules.PositiveCurrency, rules.NegativeCurrency = cp.positive, cp.negative
	return rules
}

// splitDigits splits s into runs of digits and the separators between them.
func splitDigits(s string) (runs []string, seps []string) {
	var run, sep strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			if sep.Len() > 0 && len(runs) > 0 {
				seps = append(seps, sep.String())
			}
			sep.Reset()
			run.WriteRune(r)
			continue
		}
		if run.Len() > 0 {
			runs = append(runs, run.String())
			run.Reset()
		}
		if len(runs) > 0 {
			sep.WriteRune(r)
		}
	}
	if run.Len() > 0 {
		runs = append(runs, run.String())
	}
	return
}

// groupSizes derives group sizes from the runs of an integer part, starting
// from the right. Trailing repetitions are collapsed: 1,234,567 → {3}.
func groupSizes(intRuns []string) []int {
	var sizes []int
	for i := len(intRuns) - 1; i > 0; i-- {
		sizes = append(sizes, utf8.RuneCountInString(intRuns[i]))
	}
	for len(sizes) > 1 && sizes[len(sizes)-1] == sizes[len(sizes)-2] {
		sizes = sizes[:len(sizes)-1]
	}
	return sizes
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func cutAround(s, numeral string) (string, string) {
	pre, post, found := strings.Cut(s, numeral)
	if !found {
		return "", ""
	}
	return pre, post
}

// matchPattern finds the pattern producing the fragments pre and post.
func matchPattern(n int, pre, post string, fragments func(int) (string, string), dflt int) int {
	for i := 0; i < n; i++ {
		if p, q := fragments(i); p == pre && q == post {
			return i
		}
	}
	return dflt
}
