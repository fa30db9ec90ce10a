package culture

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/lingua/numfmt"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Culture is a locale together with its lazily created formatters.
// Cultures are created by a Registry and are safe for concurrent use.
type Culture struct {
	data      *LocaleData
	registry  *Registry
	numbers   numberCache
	dates     dateCache
	collMu    sync.Mutex
	collators [numStrengths]*Collator
}

func newCulture(data *LocaleData, r *Registry) *Culture {
	c := &Culture{data: data, registry: r}
	c.numbers.init(r.capacity)
	c.dates.init(r.capacity)
	return c
}

// Name returns the canonical locale name of c.
func (c *Culture) Name() string { return c.data.Name }

// Tag returns the language tag of c.
func (c *Culture) Tag() language.Tag { return c.data.Tag }

// DisplayName returns the English name of c.
func (c *Culture) DisplayName() string { return c.data.DisplayName }

// NativeName returns the name of c in its own language.
func (c *Culture) NativeName() string { return c.data.NativeName }

// TwoLetterISOLanguageName returns the ISO 639 language code of c.
func (c *Culture) TwoLetterISOLanguageName() string { return c.data.Language }

// Region returns the ISO 3166 region code of c.
func (c *Culture) Region() string { return c.data.Region }

// IsRightToLeft is true for cultures writing right to left. Directional
// metadata only; no layout is performed by this module.
func (c *Culture) IsRightToLeft() bool { return c.data.RightToLeft }

// IsInvariant is true for the invariant culture.
func (c *Culture) IsInvariant() bool { return c.data.Name == InvariantName }

// CurrencyCode returns the ISO 4217 code of the culture's currency.
func (c *Culture) CurrencyCode() string { return c.data.CurrencyCode }

// NumberRules returns the number formatting rules of c. Clients must not
// modify them.
func (c *Culture) NumberRules() *numfmt.Rules { return &c.data.Number }

// DefaultOptions returns the culture's default number formatting options.
func (c *Culture) DefaultOptions() numfmt.Options { return c.data.Number.Options }

// DateTimeData returns the date and time names and patterns of c.
func (c *Culture) DateTimeData() *DateTimeData { return &c.data.DateTime }

func (c *Culture) String() string {
	if c.IsInvariant() {
		return "Culture(invariant)"
	}
	return "Culture(" + c.data.Name + ")"
}

// --- Number formatters -----------------------------------------------------

// NumberKind distinguishes numbers, percentages and currency amounts.
type NumberKind int8

// Number kinds.
const (
	AsNumber NumberKind = iota
	AsPercent
	AsCurrency
)

func (k NumberKind) String() string {
	switch k {
	case AsPercent:
		return "AsPercent"
	case AsCurrency:
		return "AsCurrency"
	}
	return "AsNumber"
}

// NumberFormatter renders decimals for one culture, kind and set of options.
type NumberFormatter struct {
	kind   NumberKind
	rules  *numfmt.Rules
	opts   numfmt.Options
	code   string
	symbol string
}

// Format renders d.
func (f *NumberFormatter) Format(d numfmt.Decimal) string {
	switch f.kind {
	case AsPercent:
		return numfmt.FormatPercent(d, &f.opts, f.rules)
	case AsCurrency:
		return numfmt.FormatCurrency(d, &f.opts, f.rules, f.symbol)
	}
	return numfmt.FormatNumber(d, &f.opts, f.rules)
}

// Kind returns the kind of numbers f formats.
func (f *NumberFormatter) Kind() NumberKind { return f.kind }

// Options returns the options f has been created with.
func (f *NumberFormatter) Options() numfmt.Options { return f.opts }

// Currency returns the ISO code of the currency of f, if any.
func (f *NumberFormatter) Currency() string { return f.code }

type numberKey struct {
	kind NumberKind
	code string
	opts numfmt.Options
}

type numberCache struct {
	mu           sync.Mutex
	dflt         [3]*NumberFormatter
	withGrouping [3]*NumberFormatter
	noGrouping   [3]*NumberFormatter
	lru          *lru.Cache[numberKey, *NumberFormatter]
}

func (nc *numberCache) init(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	nc.lru, _ = lru.New[numberKey, *NumberFormatter](capacity)
}

// DecimalFormatter returns a formatter for plain numbers. opts may be nil
// for the culture's default options.
func (c *Culture) DecimalFormatter(opts *numfmt.Options) *NumberFormatter {
	return c.numberFormatter(AsNumber, "", opts)
}

// PercentFormatter returns a formatter for percentages.
func (c *Culture) PercentFormatter(opts *numfmt.Options) *NumberFormatter {
	return c.numberFormatter(AsPercent, "", opts)
}

// CurrencyFormatter returns a formatter for amounts of a currency, given
// by its ISO 4217 code. An empty code selects the culture's currency.
func (c *Culture) CurrencyFormatter(code string, opts *numfmt.Options) *NumberFormatter {
	if code == c.data.CurrencyCode {
		code = ""
	}
	return c.numberFormatter(AsCurrency, code, opts)
}

func (c *Culture) numberFormatter(kind NumberKind, code string, opts *numfmt.Options) *NumberFormatter {
	cache := &c.numbers
	cache.mu.Lock()
	defer cache.mu.Unlock()
	var slot **NumberFormatter
	if code == "" {
		switch {
		case opts == nil || *opts == c.defaultOptionsFor(kind):
			slot = &cache.dflt[kind]
		case opts == numfmt.DefaultWithGrouping:
			slot = &cache.withGrouping[kind]
		case opts == numfmt.DefaultNoGrouping:
			slot = &cache.noGrouping[kind]
		}
	}
	if slot != nil {
		if *slot == nil {
			*slot = c.newNumberFormatter(kind, code, opts)
		}
		return *slot
	}
	if opts == nil { // foreign currency
		o := c.defaultOptionsFor(kind)
		digits := c.CurrencyDigits(code)
		o = o.WithFractionDigits(digits, digits)
		opts = &o
	}
	key := numberKey{kind: kind, code: code, opts: *opts}
	if f, ok := cache.lru.Get(key); ok {
		return f
	}
	f := c.newNumberFormatter(kind, code, opts)
	if cache.lru.Add(key, f) {
		tracer().P("culture", c.data.Name).Debugf("number formatter cache evicted oldest entry")
	}
	return f
}

func (c *Culture) defaultOptionsFor(kind NumberKind) numfmt.Options {
	opts := c.data.Number.Options
	if kind == AsCurrency {
		opts.MinFractionDigits = c.data.CurrencyDigits
		opts.MaxFractionDigits = c.data.CurrencyDigits
	}
	return opts
}

func (c *Culture) newNumberFormatter(kind NumberKind, code string, opts *numfmt.Options) *NumberFormatter {
	f := &NumberFormatter{kind: kind, rules: &c.data.Number}
	if opts == nil {
		f.opts = c.defaultOptionsFor(kind)
	} else {
		f.opts = *opts
	}
	if kind == AsCurrency {
		f.code, f.symbol = c.data.CurrencyCode, c.data.CurrencySymbol
		if code != "" {
			f.code, f.symbol = code, code
			if unit, err := currency.ParseISO(code); err == nil {
				f.symbol = CurrencySymbol(c.data.Tag, unit)
			}
		}
	}
	tracer().P("culture", c.data.Name).Debugf("new %s formatter %v", kind, f.opts)
	return f
}

// CurrencyDigits returns the number of fraction digits conventionally used
// for a currency. An empty code selects the culture's currency.
func (c *Culture) CurrencyDigits(code string) int {
	if code == "" || code == c.data.CurrencyCode {
		return c.data.CurrencyDigits
	}
	if unit, err := currency.ParseISO(code); err == nil {
		digits, _ := currency.Standard.Rounding(unit)
		return digits
	}
	return 2
}
