package text

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/numfmt"
	"go.trai.ch/zerr"
	"golang.org/x/text/feature/plural"
)

// ErrPattern flags a malformed format pattern.
var ErrPattern = errors.New("text: malformed format pattern")

// Args are the arguments of a format pattern: NamedArgs, OrderedArgs or
// ArgData.
type Args interface {
	historyKind() HistoryKind
	lookup(name string, index int) (value any, id string, ok bool)
	ids() []string
	clone() Args
}

// NamedArgs are arguments referenced by name, as in "{count} items".
type NamedArgs map[string]any

// OrderedArgs are arguments referenced by position, as in "{0} items".
type OrderedArgs []any

// Arg is a named argument of an ArgData list.
type Arg struct {
	Name  string
	Value any
}

// ArgData is an ordered list of named arguments. Placeholders reference
// them by name or by position.
type ArgData []Arg

func (a NamedArgs) historyKind() HistoryKind { return NamedFormatHistory }

func (a NamedArgs) lookup(name string, _ int) (any, string, bool) {
	v, ok := a[name]
	return v, name, ok
}

func (a NamedArgs) ids() []string {
	ids := make([]string, 0, len(a))
	for name := range a {
		ids = append(ids, name)
	}
	sort.Strings(ids)
	return ids
}

func (a NamedArgs) clone() Args {
	c := make(NamedArgs, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

func (a OrderedArgs) historyKind() HistoryKind { return OrderedFormatHistory }

func (a OrderedArgs) lookup(_ string, index int) (any, string, bool) {
	if index < 0 || index >= len(a) {
		return nil, "", false
	}
	return a[index], strconv.Itoa(index), true
}

func (a OrderedArgs) ids() []string {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = strconv.Itoa(i)
	}
	return ids
}

func (a OrderedArgs) clone() Args {
	return append(OrderedArgs(nil), a...)
}

func (a ArgData) historyKind() HistoryKind { return ArgDataFormatHistory }

func (a ArgData) lookup(name string, index int) (any, string, bool) {
	if index >= 0 {
		if index < len(a) {
			return a[index].Value, strconv.Itoa(index), true
		}
		return nil, "", false
	}
	for i, arg := range a {
		if arg.Name == name {
			return arg.Value, strconv.Itoa(i), true
		}
	}
	return nil, "", false
}

func (a ArgData) ids() []string {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = strconv.Itoa(i)
	}
	return ids
}

func (a ArgData) clone() Args {
	return append(ArgData(nil), a...)
}

// Format substitutes args into pattern. Placeholders are enclosed in
// braces and name an argument, or give its position for OrderedArgs:
//
//   "{name} has {count} new messages"
//
// Numbers, dates and texts are formatted for the current culture. A
// placeholder may be followed by a plural or ordinal selector, choosing
// a variant by the CLDR plural rules of the current culture; '#' stands
// for the formatted argument:
//
//   "{count}|plural(one=# message,other=# messages)"
//   "{place}|ordinal(one=#st,two=#nd,few=#rd,other=#th)"
//
// Selectors also accept exact matches like "=0=no messages". A backtick
// escapes the character following it, as in "`{".
//
// Missing arguments render empty. Arguments never referenced are
// reported, but are not an error. The resulting text is rebuilt if the
// culture changes, or if pattern is a translated text which changes.
func (e *Engine) Format(pattern Text, args Args) Text {
	if args == nil {
		args = OrderedArgs(nil)
	}
	args = args.clone()
	s, err := e.expand(pattern.ToString(), args, e.CurrentCulture(), false)
	if err != nil {
		return e.failure("format", err)
	}
	return e.newText(s, patternFormat{pattern: pattern, args: args}, 0)
}

// FormatString is a shortcut for Format(e.FromString(pattern), args).
func (e *Engine) FormatString(pattern string, args Args) Text {
	return e.Format(e.FromString(pattern), args)
}

// --- Parsing ---------------------------------------------------------------

type selectorKind int8

const (
	noSelector selectorKind = iota
	pluralSelector
	ordinalSelector
)

type placeholder struct {
	name     string
	index    int // -1 for named placeholders
	selector selectorKind
	variants map[string]string // plural form or "=N" → text
}

// piece is either a literal or a placeholder.
type piece struct {
	literal string
	ph      *placeholder
}

func parsePattern(pattern string) ([]piece, error) {
	var pieces []piece
	var lit strings.Builder
	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		switch r {
		case '`':
			i += size
			if i < len(pattern) {
				r, size = utf8.DecodeRuneInString(pattern[i:])
				lit.WriteRune(r)
				i += size
			}
			continue
		case '{':
			ph, n, err := parsePlaceholder(pattern, i)
			if err != nil {
				return nil, err
			}
			if lit.Len() > 0 {
				pieces = append(pieces, piece{literal: lit.String()})
				lit.Reset()
			}
			pieces = append(pieces, piece{ph: ph})
			i = n
			continue
		}
		lit.WriteRune(r)
		i += size
	}
	if lit.Len() > 0 {
		pieces = append(pieces, piece{literal: lit.String()})
	}
	return pieces, nil
}

func patternError(msg string, pos int) error {
	return zerr.With(zerr.Wrap(ErrPattern, msg), "position", pos)
}

// parsePlaceholder parses a placeholder starting at pattern[start] == '{'
// and returns the position after it.
func parsePlaceholder(pattern string, start int) (*placeholder, int, error) {
	end := strings.IndexByte(pattern[start:], '}')
	if end < 0 {
		return nil, 0, patternError("unterminated placeholder", start)
	}
	end += start
	name := strings.TrimSpace(pattern[start+1 : end])
	if name == "" || strings.ContainsAny(name, "{`") {
		return nil, 0, patternError("invalid placeholder", start)
	}
	ph := &placeholder{name: name, index: -1}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 {
		ph.index = n
	}
	pos := end + 1
	for _, sel := range []struct {
		prefix string
		kind   selectorKind
	}{{"|plural(", pluralSelector}, {"|ordinal(", ordinalSelector}} {
		if strings.HasPrefix(pattern[pos:], sel.prefix) {
			variants, n, err := parseVariants(pattern, pos+len(sel.prefix))
			if err != nil {
				return nil, 0, err
			}
			ph.selector, ph.variants = sel.kind, variants
			return ph, n, nil
		}
	}
	return ph, pos, nil
}

// parseVariants parses "form=text,form=text)" and returns the position
// after the closing parenthesis.
func parseVariants(pattern string, start int) (map[string]string, int, error) {
	variants := make(map[string]string)
	var b strings.Builder
	for i := start; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		i += size
		switch r {
		case '`':
			if i < len(pattern) {
				r, size = utf8.DecodeRuneInString(pattern[i:])
				b.WriteRune(r)
				i += size
			}
			continue
		case ',', ')':
			if err := addVariant(variants, b.String(), start); err != nil {
				return nil, 0, err
			}
			b.Reset()
			if r == ')' {
				if _, ok := variants["other"]; !ok {
					return nil, 0, patternError("selector without 'other' variant", start)
				}
				return variants, i, nil
			}
			continue
		}
		b.WriteRune(r)
	}
	return nil, 0, patternError("unterminated selector", start)
}

var pluralForms = map[string]plural.Form{
	"other": plural.Other,
	"zero":  plural.Zero,
	"one":   plural.One,
	"two":   plural.Two,
	"few":   plural.Few,
	"many":  plural.Many,
}

func addVariant(variants map[string]string, v string, pos int) error {
	v = strings.TrimLeftFunc(v, unicode.IsSpace)
	key, text, ok := "", "", false
	if strings.HasPrefix(v, "=") { // exact match "=N=text"
		if k, t, found := strings.Cut(v[1:], "="); found {
			if n, err := strconv.Atoi(strings.TrimSpace(k)); err == nil && n >= 0 {
				key, text, ok = "="+strconv.Itoa(n), t, true
			}
		}
	} else if k, t, found := strings.Cut(v, "="); found {
		if _, known := pluralForms[strings.TrimSpace(k)]; known {
			key, text, ok = strings.TrimSpace(k), t, true
		}
	}
	if !ok {
		return patternError(fmt.Sprintf("invalid selector variant %q", v), pos)
	}
	variants[key] = text
	return nil
}

// --- Expansion -------------------------------------------------------------

// expand formats pattern for culture c. If source is set, texts are
// replaced by their source strings.
func (e *Engine) expand(pattern string, args Args, c *culture.Culture, source bool) (string, error) {
	pieces, err := parsePattern(pattern)
	if err != nil {
		return "", err
	}
	used := make(map[string]bool)
	var b strings.Builder
	for _, p := range pieces {
		if p.ph == nil {
			b.WriteString(p.literal)
			continue
		}
		v, id, ok := args.lookup(p.ph.name, p.ph.index)
		if !ok {
			tracer().P("warning", "missing argument").Infof("no argument for placeholder {%s}", p.ph.name)
			continue
		}
		used[id] = true
		s := renderArg(v, c, source)
		if p.ph.selector != noSelector {
			s = selectVariant(p.ph, v, s, c)
		}
		b.WriteString(s)
	}
	for _, id := range args.ids() {
		if !used[id] {
			tracer().P("warning", "unused argument").Infof("argument %s not referenced by pattern %q", id, pattern)
		}
	}
	return b.String(), nil
}

func renderArg(v any, c *culture.Culture, source bool) string {
	switch x := v.(type) {
	case nil:
		return ""
	case Text:
		if source {
			return x.BuildSourceString()
		}
		return x.ToString()
	case string:
		return x
	case time.Time:
		return c.DateTimeFormatter(culture.DefaultStyle, culture.DefaultStyle, "").Format(x)
	case fmt.Stringer:
		if _, isDecimal := v.(numfmt.Decimal); !isDecimal {
			return x.String()
		}
	}
	if d, err := toDecimal(v); err == nil {
		return c.DecimalFormatter(nil).Format(d)
	}
	return fmt.Sprint(v)
}

func selectVariant(ph *placeholder, v any, rendered string, c *culture.Culture) string {
	d, opts, ok := pluralOperand(v, c)
	if !ok {
		tracer().P("warning", "not a number").Infof("selector for non-numeric argument {%s}", ph.name)
		return strings.ReplaceAll(ph.variants["other"], "#", rendered)
	}
	if d.Frac == "" && !d.Neg {
		intPart := d.Int
		if intPart == "" {
			intPart = "0"
		}
		if text, ok := ph.variants["="+intPart]; ok {
			return strings.ReplaceAll(text, "#", rendered)
		}
	}
	rules := plural.Cardinal
	if ph.selector == ordinalSelector {
		rules = plural.Ordinal
	}
	i, v2, w, f, t := operands(numfmt.VisibleDigits(d, &opts, c.NumberRules()))
	form := rules.MatchPlural(c.Tag(), i, v2, w, f, t)
	for name, pf := range pluralForms {
		if pf == form {
			if text, ok := ph.variants[name]; ok {
				return strings.ReplaceAll(text, "#", rendered)
			}
		}
	}
	return strings.ReplaceAll(ph.variants["other"], "#", rendered)
}

// pluralOperand returns the value a selector decides on, together with
// the options it is rendered with in culture c.
func pluralOperand(v any, c *culture.Culture) (numfmt.Decimal, numfmt.Options, bool) {
	switch x := v.(type) {
	case Text:
		if x.d != nil {
			if h, ok := x.d.history.(numberFormat); ok {
				if h.culture != nil {
					c = h.culture
				}
				switch h.kind {
				case culture.AsPercent:
					return h.value.Shift(2), c.PercentFormatter(h.opts).Options(), true
				case culture.AsCurrency:
					return h.value, c.CurrencyFormatter(h.currency, h.opts).Options(), true
				}
				return h.value, c.DecimalFormatter(h.opts).Options(), true
			}
		}
		return numfmt.Decimal{}, numfmt.Options{}, false
	case string:
		return numfmt.Decimal{}, numfmt.Options{}, false
	}
	d, err := toDecimal(v)
	if err != nil || d.NaN || d.Inf {
		return numfmt.Decimal{}, numfmt.Options{}, false
	}
	return d, c.DecimalFormatter(nil).Options(), true
}

// operands computes the CLDR plural operands i, v, w, f and t of a
// rendered numeral, modulo 10^7.
func operands(intDigits, frac string) (i, v, w, f, t int) {
	trimmed := strings.TrimRight(frac, "0")
	i = lastDigits(intDigits, 7)
	v, w = len(frac), len(trimmed)
	f, t = lastDigits(frac, 7), lastDigits(trimmed, 7)
	return
}

func lastDigits(digits string, n int) int {
	if len(digits) > n {
		digits = digits[len(digits)-n:]
	}
	x, _ := strconv.Atoi(digits)
	return x
}
