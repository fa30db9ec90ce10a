/*
Package text implements culture-aware text values.

A Text is an immutable handle to a display string. Texts created by
formatting operations remember how they were made (their History) and
rebuild their display string when the current culture or a translation
changes. All texts of an Engine share one revision counter: every
effective culture or translation change bumps it exactly once, and a text
compares its stamp against it when its display string is requested. Texts
never get notified, they find out on their own on the next call to
ToString.

An Engine bundles the caches a text needs: the culture registry, the
localization table, the arena of display strings and the pool of break
iterators. Engines are independent of each other.

  engine, err := text.NewEngine(conf)
  ...
  defer engine.Close()
  price := engine.FormatCurrency(19.99, nil, "EUR", nil)
  fmt.Println(price.ToString())

Formatting never panics and never returns an error. A failed operation
produces a diagnostic text if error reporting is configured, or an empty
text otherwise.

Configuration

NewEngine reads the following keys from a schuko.Configuration:

  lingua.culture       initial culture; empty for the system locale
  lingua.reporterrors  render diagnostics for failed operations
  lingua.lrucapacity   capacity of the formatter caches (default 10)
  lingua.timezone      default time zone of date formatters
  lingua.localedata    YAML file with locale data overrides

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package text

import (
	"errors"
	"sync"
	"time"

	"github.com/npillmayer/lingua/arena"
	"github.com/npillmayer/lingua/breakiter"
	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/loctable"
	"github.com/npillmayer/lingua/wordwrap"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"go.trai.ch/zerr"
)

// tracer traces to lingua.text .
func tracer() tracing.Trace {
	return tracing.Select("lingua.text")
}

// Configuration keys.
const (
	KeyCulture      = "lingua.culture"
	KeyReportErrors = "lingua.reporterrors"
	KeyLRUCapacity  = "lingua.lrucapacity"
	KeyTimezone     = "lingua.timezone"
	KeyLocaleData   = "lingua.localedata"
)

// FallbackCulture is used if neither the configuration nor the system
// locale name a culture with locale data.
const FallbackCulture = "en-US"

// ErrEngineClosed is returned for operations on a closed Engine.
var ErrEngineClosed = errors.New("text: engine closed")

// Engine is a locale world: the caches and the current culture shared by
// a set of texts. It is safe for concurrent use.
type Engine struct {
	registry     *culture.Registry
	table        *loctable.Table
	arena        *arena.Arena
	pool         *breakiter.Pool
	reportErrors bool
	mu           sync.RWMutex
	current      *culture.Culture
	closed       bool
}

// NewEngine creates an Engine. conf may be nil, selecting defaults.
func NewEngine(conf schuko.Configuration) (*Engine, error) {
	var provider culture.Provider = culture.NewTextProvider()
	var opts []culture.Option
	e := &Engine{}
	initial := ""
	if conf != nil {
		initial = conf.GetString(KeyCulture)
		e.reportErrors = conf.GetBool(KeyReportErrors)
		if conf.IsSet(KeyLRUCapacity) {
			opts = append(opts, culture.WithCapacity(conf.GetInt(KeyLRUCapacity)))
		}
		if zone := conf.GetString(KeyTimezone); zone != "" {
			loc, err := time.LoadLocation(zone)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid default time zone"), "zone", zone)
			}
			opts = append(opts, culture.WithLocation(loc))
		}
		if path := conf.GetString(KeyLocaleData); path != "" {
			yp, err := culture.LoadYAMLProvider(path, provider)
			if err != nil {
				return nil, zerr.With(err, "path", path)
			}
			provider = yp
		}
	}
	e.registry = culture.NewRegistry(provider, opts...)
	e.arena = arena.New(256)
	e.table = loctable.New(e.arena)
	e.pool = breakiter.NewPool()
	e.current = e.initialCulture(initial)
	tracer().P("culture", e.current.Name()).Infof("text engine ready")
	return e, nil
}

func (e *Engine) initialCulture(name string) *culture.Culture {
	if name == "" {
		name = culture.SystemCultureName()
	}
	for _, n := range []string{name, FallbackCulture} {
		c, err := e.registry.Get(n)
		if err == nil {
			return c
		}
		tracer().P("culture", n).Infof("cannot use culture: %v", err)
	}
	return e.registry.Invariant()
}

// Close tears down the caches of e. Texts of a closed engine keep their
// last display string.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()
	e.pool.Close()
	e.registry.Close()
	tracer().Debugf("text engine closed")
}

// Registry returns the culture registry of e.
func (e *Engine) Registry() *culture.Registry { return e.registry }

// Table returns the localization table of e.
func (e *Engine) Table() *loctable.Table { return e.table }

// Pool returns the break iterator pool of e.
func (e *Engine) Pool() *breakiter.Pool { return e.pool }

// Revision returns the global revision of e.
func (e *Engine) Revision() uint64 { return e.table.Revision() }

// ReportErrors reports whether failed operations produce diagnostic text.
func (e *Engine) ReportErrors() bool { return e.reportErrors }

// Culture returns the culture for a locale name.
func (e *Engine) Culture(name string) (*culture.Culture, error) {
	return e.registry.Get(name)
}

// CurrentCulture returns the culture texts are currently rendered in.
func (e *Engine) CurrentCulture() *culture.Culture {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// SetCurrentCulture switches the current culture. The global revision is
// bumped if the culture actually changes.
func (e *Engine) SetCurrentCulture(name string) error {
	c, err := e.registry.Get(name)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	if c == e.current {
		return nil
	}
	e.current = c
	r := e.table.BumpRevision()
	tracer().P("culture", c.Name()).Infof("current culture changed, revision %d", r)
	return nil
}

// WordWrap splits s into lines which fit, using the line breaking rules of
// the current culture.
func (e *Engine) WordWrap(s string, fits wordwrap.Fits) ([]wordwrap.Span, error) {
	return wordwrap.WordWrap(e.pool, e.CurrentCulture(), s, fits)
}

// cultureOr returns c, or the current culture if c is nil.
func (e *Engine) cultureOr(c *culture.Culture) *culture.Culture {
	if c != nil {
		return c
	}
	return e.CurrentCulture()
}
