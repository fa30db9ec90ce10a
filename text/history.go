package text

import (
	"time"

	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/numfmt"
)

// HistoryKind tells how a Text has been made.
type HistoryKind int8

// Kinds of histories. Literal and TableLookup histories are not rebuilt.
const (
	LiteralHistory HistoryKind = iota
	TableLookupHistory
	NamedFormatHistory
	OrderedFormatHistory
	ArgDataFormatHistory
	NumberFormatHistory
	DateFormatHistory
)

var historyKindNames = [...]string{"Literal", "TableLookup", "NamedFormat",
	"OrderedFormat", "ArgDataFormat", "NumberFormat", "DateFormat"}

func (k HistoryKind) String() string {
	if k < 0 || int(k) >= len(historyKindNames) {
		return "HistoryKind(?)"
	}
	return historyKindNames[k]
}

// History records how a Text has been made, enough to make it again.
// The set of histories is closed.
type History interface {
	Kind() HistoryKind
	// CanRebuild reports whether the display string follows changes of
	// culture or translations.
	CanRebuild() bool
	rebuild(e *Engine, current *culture.Culture) string
	sourceString(e *Engine) string
}

var (
	_ History = literal{}
	_ History = tableLookup{}
	_ History = numberFormat{}
	_ History = dateFormat{}
	_ History = patternFormat{}
)

// --- Ground truth ----------------------------------------------------------

type literal struct {
	source string
}

func (h literal) Kind() HistoryKind { return LiteralHistory }
func (h literal) CanRebuild() bool { return false }
func (h literal) rebuild(*Engine, *culture.Culture) string { return h.source }
func (h literal) sourceString(*Engine) string { return h.source }

type tableLookup struct {
	namespace, key string
	source         string
}

func (h tableLookup) Kind() HistoryKind { return TableLookupHistory }
func (h tableLookup) CanRebuild() bool { return false }

func (h tableLookup) rebuild(e *Engine, _ *culture.Culture) string {
	if hdl, ok := e.table.Find(h.namespace, h.key, 0); ok {
		s, _ := e.arena.Get(hdl)
		return s
	}
	return h.source
}

func (h tableLookup) sourceString(*Engine) string { return h.source }

// --- Numbers ---------------------------------------------------------------

type numberFormat struct {
	kind     culture.NumberKind
	value    numfmt.Decimal
	opts     *numfmt.Options  // nil for the culture's defaults
	culture  *culture.Culture // nil for the current culture
	currency string
}

func (h numberFormat) Kind() HistoryKind { return NumberFormatHistory }
func (h numberFormat) CanRebuild() bool { return true }

func (h numberFormat) rebuild(_ *Engine, current *culture.Culture) string {
	c := h.culture
	if c == nil {
		c = current
	}
	return h.render(c)
}

func (h numberFormat) sourceString(e *Engine) string {
	return h.render(e.registry.Invariant())
}

func (h numberFormat) render(c *culture.Culture) string {
	switch h.kind {
	case culture.AsPercent:
		return c.PercentFormatter(h.opts).Format(h.value)
	case culture.AsCurrency:
		return c.CurrencyFormatter(h.currency, h.opts).Format(h.value)
	}
	return c.DecimalFormatter(h.opts).Format(h.value)
}

// --- Dates -----------------------------------------------------------------

type dateFormat struct {
	kind                 culture.DateKind
	value                time.Time
	dateStyle, timeStyle culture.DateStyle
	zone                 string
	culture              *culture.Culture
}

func (h dateFormat) Kind() HistoryKind { return DateFormatHistory }
func (h dateFormat) CanRebuild() bool { return true }

func (h dateFormat) rebuild(_ *Engine, current *culture.Culture) string {
	c := h.culture
	if c == nil {
		c = current
	}
	return h.render(c)
}

func (h dateFormat) sourceString(e *Engine) string {
	return h.render(e.registry.Invariant())
}

func (h dateFormat) render(c *culture.Culture) string {
	switch h.kind {
	case culture.AsTime:
		return c.TimeFormatter(h.timeStyle, h.zone).Format(h.value)
	case culture.AsDateTime:
		return c.DateTimeFormatter(h.dateStyle, h.timeStyle, h.zone).Format(h.value)
	}
	return c.DateFormatter(h.dateStyle, h.zone).Format(h.value)
}

// --- Patterns --------------------------------------------------------------

type patternFormat struct {
	pattern Text
	args    Args
}

func (h patternFormat) Kind() HistoryKind { return h.args.historyKind() }
func (h patternFormat) CanRebuild() bool { return true }

func (h patternFormat) rebuild(e *Engine, current *culture.Culture) string {
	s, err := e.expand(h.pattern.ToString(), h.args, current, false)
	if err != nil {
		return e.diagnostic("format", err)
	}
	return s
}

func (h patternFormat) sourceString(e *Engine) string {
	s, err := e.expand(h.pattern.BuildSourceString(), h.args, e.registry.Invariant(), true)
	if err != nil {
		tracer().Errorf("cannot build source string: %v", err)
		return ""
	}
	return s
}
