/*
Package lingua is about culture-aware text: formatting numbers, currency,
percentages and dates into culture-correct text values, looking up
localized strings by stable identity, and breaking text into graphemes,
words, sentences and lines for wrapping.

Contents

The central abstraction lives in sub-package text. A text.Text is an
immutable handle to a display string, optionally carrying a replayable
history of how it was produced. When the active culture of a text.Engine
changes, histories are replayed lazily on the next call to ToString().

	engine, err := text.NewEngine(conf)
	...
	defer engine.Close()
	price := engine.FormatCurrency(1234.5, nil, "EUR", nil)
	fmt.Println(price.ToString())   // e.g., "€1,234.50"
	engine.SetCurrentCulture("de-DE")
	fmt.Println(price.ToString())   // "1.234,50 €"

Sub-packages:

  text       text values, histories, engine (a "locale world")
  culture    cultures, locale data providers, formatter caches, collation
  numfmt     numeric rendering, rounding and sign/symbol patterns
  loctable   localization table and context-field codec
  breakiter  pool of break iterators (grapheme, word, line, sentence, title)
  wordwrap   line wrapping driven by break iterators
  segment    driver for rule based breakers
  grapheme, uax29, uax14, uax11, emoji   Unicode breaking rules and classes

Breaking Text

A string of Unicode text often needs to be broken up into text elements
programmatically: what users think of as characters, words, lines (more
precisely, where line breaks are allowed) and sentences. The Unicode
Standard Annexes UAX#29 and UAX#14 describe default mechanisms; reliable
detection of word boundaries in languages such as Thai, Lao, Chinese or
Japanese would require dictionary lookup.

Base package lingua provides the means to implement rule based breaking
algorithms. Rules are short regular expressions, i.e. finite state automata.
Every step within a rule is performed by executing a function, which
recognizes a single code-point class and returns another function for the
expectation of the next code-point class. An example is rule WB13b
"Do not break from extenders" from UAX#29:

   ExtendNumLet x (ALetter | Hebrew_Letter| Numeric | Katakana)

Matching it will call two functions in sequence:

      rule_WB13b( … )   // match ExtendNumLet
   -> finish_WB13b( … ) // match any of ALetter … Katakana

The helper type to perform this kind of matching is called Recognizer.
A set of Recognizers comprises an NFA and will match break opportunities
for a rule-set. Recognizers receive rune events from a RunePublisher and
therefore implement interface RuneSubscriber.

Penalties

Breaks are not signalled with true/false, but rather with a weighted
"penalty". Negative values denote merits. The UnicodeBreakers in this
module apply the following logic:

(1) Mandatory breaks will have a penalty/merit of ≤ -1000 (InfiniteMerits)

(2) Inhibited breaks will have penalty ≥ 1000 (InfinitePenalty)

(3) Neutral positions will have a penalty of 0.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lingua

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// We define constants for flagging break points as infinitely bad and
// infinitely good, respectively.
const (
	InfinitePenalty = 1000
	InfiniteMerits  = -1000
)

// Bounded clips a penalty to the interval [InfiniteMerits…InfinitePenalty].
func Bounded(p int) int {
	if p > InfinitePenalty {
		return InfinitePenalty
	} else if p < InfiniteMerits {
		return InfiniteMerits
	}
	return p
}
