/*
Package grapheme implements Unicode Annex #29 grapheme breaking.

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences. It defines code-point classes and sets of rules
for how to place break points and break inhibitors.
This package is about grapheme breaking, i.e. finding
"user perceived characters".

Typical Usage with a Segmenter

Clients instantiate a grapheme breaker and use it as the
breaking engine for a segmenter.

  onGraphemes := grapheme.NewBreaker(1)
  segmenter := segment.NewSegmenter(onGraphemes)
  segmenter.Init(…)
  for segmenter.Next() {
      grphm := segmenter.Bytes()
      …
  }

Grapheme Strings

This package provides an additional convenience type `grapheme.String`.
Grapheme strings are a read-only data structure and not intended for large
texts, but rather for small to medium-sized strings such as labels.

	s := grapheme.StringFromString("世界")
	fmt.Printf("number of graphemes: %s", s.Len())                      // => 2
	fmt.Printf("number of bytes for 2nd grapheme: %d", len(s.Nth(1)))   // => 3

Code-point Classes

Classes are derived from the Unicode general categories of package unicode
plus a few explicit ranges (Hangul jamo, regional indicators, emoji).
Prepend characters are not distinguished. Conformance therefore is close to,
but not identical with, GraphemeBreakTest.txt.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grapheme

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to lingua.segment .
func tracer() tracing.Trace {
	return tracing.Select("lingua.segment")
}
