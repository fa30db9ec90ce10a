package culture

import (
	"errors"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/lingua/numfmt"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// YAMLProvider serves locale data from a YAML document, layered over a
// fallback provider. A locale entry either overrides individual values of
// the fallback's data for the same name, or defines a new locale derived
// from a base locale.
//
//	locales:
//	  de-AT:
//	    group: " "
//	  x-pirate:
//	    base: en-US
//	    displayName: Pirate
//	    months: [Arrr, ...]
type YAMLProvider struct {
	fallback Provider
	locales  map[string]yamlLocale
}

var _ Provider = (*YAMLProvider)(nil)

type yamlDocument struct {
	Locales map[string]yamlLocale `yaml:"locales"`
}

type yamlLocale struct {
	Base             string   `yaml:"base"`
	DisplayName      *string  `yaml:"displayName"`
	NativeName       *string  `yaml:"nativeName"`
	RightToLeft      *bool    `yaml:"rtl"`
	Group            *string  `yaml:"group"`
	Decimal          *string  `yaml:"decimal"`
	Groups           []int    `yaml:"groups"`
	Plus             *string  `yaml:"plus"`
	Minus            *string  `yaml:"minus"`
	Percent          *string  `yaml:"percent"`
	Zero             *string  `yaml:"zero"`
	NegativeNumber   *int     `yaml:"negativeNumber"`
	NegativeCurrency *int     `yaml:"negativeCurrency"`
	PositiveCurrency *int     `yaml:"positiveCurrency"`
	NegativePercent  *int     `yaml:"negativePercent"`
	PositivePercent  *int     `yaml:"positivePercent"`
	Currency         *string  `yaml:"currency"`
	CurrencySymbol   *string  `yaml:"currencySymbol"`
	CurrencyDigits   *int     `yaml:"currencyDigits"`
	Dates            []string `yaml:"dates"` // short, medium, long, full
	Times            []string `yaml:"times"`
	DateTimeJoin     *string  `yaml:"dateTimeJoin"`
	Months           []string `yaml:"months"`
	MonthsAbbr       []string `yaml:"monthsAbbr"`
	Days             []string `yaml:"days"`
	DaysAbbr         []string `yaml:"daysAbbr"`
	AM               *string  `yaml:"am"`
	PM               *string  `yaml:"pm"`
}

// ErrLocaleData flags malformed locale data.
var ErrLocaleData = errors.New("culture: invalid locale data")

// NewYAMLProvider parses a YAML document of locale data. fallback may be
// nil, in which case new locales are derived from the invariant culture.
func NewYAMLProvider(doc []byte, fallback Provider) (*YAMLProvider, error) {
	var d yamlDocument
	if err := yaml.Unmarshal(doc, &d); err != nil {
		return nil, zerr.Wrap(err, ErrLocaleData.Error())
	}
	yp := &YAMLProvider{fallback: fallback, locales: make(map[string]yamlLocale, len(d.Locales))}
	for name, loc := range d.Locales {
		if loc.Zero != nil && utf8.RuneCountInString(*loc.Zero) != 1 {
			return nil, zerr.With(zerr.With(ErrLocaleData, "locale", name), "zero", *loc.Zero)
		}
		yp.locales[yp.Canonicalize(name)] = loc
	}
	return yp, nil
}

// LoadYAMLProvider reads locale data from a YAML file.
func LoadYAMLProvider(path string, fallback Provider) (*YAMLProvider, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "cannot read locale data"), "path", path)
	}
	return NewYAMLProvider(doc, fallback)
}

// Locales returns the canonical names of the locales defined in YAML.
func (yp *YAMLProvider) Locales() []string {
	names := make([]string, 0, len(yp.locales))
	for name := range yp.locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Canonicalize is part of interface Provider.
func (yp *YAMLProvider) Canonicalize(name string) string {
	if yp.fallback != nil {
		return yp.fallback.Canonicalize(name)
	}
	switch name {
	case "", "invariant":
		return InvariantName
	}
	return name
}

// HasData is part of interface Provider.
func (yp *YAMLProvider) HasData(name string) bool {
	if _, ok := yp.locales[name]; ok {
		return true
	}
	return yp.fallback != nil && yp.fallback.HasData(name)
}

// Data is part of interface Provider.
func (yp *YAMLProvider) Data(name string) (*LocaleData, error) {
	loc, ok := yp.locales[name]
	if !ok {
		if yp.fallback == nil {
			return nil, zerr.With(ErrLocaleNotFound, "locale", name)
		}
		return yp.fallback.Data(name)
	}
	base := loc.Base
	if base == "" {
		base = name
	} else {
		base = yp.Canonicalize(base)
	}
	var data *LocaleData
	if yp.fallback != nil && yp.fallback.HasData(base) {
		var err error
		if data, err = yp.fallback.Data(base); err != nil {
			return nil, err
		}
	} else {
		data = invariantData()
	}
	data.Name = name
	if tag, err := language.Parse(name); err == nil {
		data.Tag = tag
	}
	loc.apply(data)
	tracer().P("locale", name).Debugf("created locale data from YAML, base = %q", base)
	return data, nil
}

func (loc *yamlLocale) apply(data *LocaleData) {
	setString(&data.DisplayName, loc.DisplayName)
	setString(&data.NativeName, loc.NativeName)
	if loc.RightToLeft != nil {
		data.RightToLeft = *loc.RightToLeft
	}
	n := &data.Number
	setString(&n.GroupSeparator, loc.Group)
	setString(&n.DecimalSeparator, loc.Decimal)
	if loc.Groups != nil {
		n.Groups = append([]int(nil), loc.Groups...)
	}
	setString(&n.PlusSign, loc.Plus)
	setString(&n.MinusSign, loc.Minus)
	setString(&n.PercentSymbol, loc.Percent)
	if loc.Zero != nil {
		n.Zero, _ = utf8.DecodeRuneInString(*loc.Zero)
	}
	if loc.NegativeNumber != nil {
		n.NegativeNumber = numfmt.NegativeNumberPattern(*loc.NegativeNumber)
	}
	if loc.NegativeCurrency != nil {
		n.NegativeCurrency = numfmt.NegativeCurrencyPattern(*loc.NegativeCurrency)
	}
	if loc.PositiveCurrency != nil {
		n.PositiveCurrency = numfmt.PositiveCurrencyPattern(*loc.PositiveCurrency)
	}
	if loc.NegativePercent != nil {
		n.NegativePercent = numfmt.NegativePercentPattern(*loc.NegativePercent)
	}
	if loc.PositivePercent != nil {
		n.PositivePercent = numfmt.PositivePercentPattern(*loc.PositivePercent)
	}
	setString(&data.CurrencyCode, loc.Currency)
	setString(&data.CurrencySymbol, loc.CurrencySymbol)
	if loc.CurrencyDigits != nil {
		data.CurrencyDigits = *loc.CurrencyDigits
	}
	dt := &data.DateTime
	copy(dt.DatePatterns[:], loc.Dates)
	copy(dt.TimePatterns[:], loc.Times)
	setString(&dt.DateTimeJoin, loc.DateTimeJoin)
	copy(dt.Months[:], loc.Months)
	copy(dt.MonthsAbbr[:], loc.MonthsAbbr)
	copy(dt.Days[:], loc.Days)
	copy(dt.DaysAbbr[:], loc.DaysAbbr)
	setString(&dt.AM, loc.AM)
	setString(&dt.PM, loc.PM)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
