/*
Package culture provides cultures: named sets of locale-specific rules for
formatting numbers, currency amounts, percentages, dates and times, and for
comparing strings.

Cultures are obtained from a Registry, which creates every culture once per
canonical locale name and keeps it until the registry is closed. Locale data
is supplied by a Provider; NewTextProvider derives it from golang.org/x/text,
NewYAMLProvider overlays it with data read from YAML.

x/text carries no month and day names. TextProvider ships date and time
names for English, German, French, Spanish and Japanese; other languages
get the root patterns with English names unless YAML data overrides them.

  reg := culture.NewRegistry(culture.NewTextProvider())
  de, err := reg.Get("de_DE.UTF-8")
  if err != nil { ... }   // errors.Is(err, culture.ErrLocaleNotFound)
  f := de.DecimalFormatter(numfmt.DefaultWithGrouping)
  s := f.Format(numfmt.FromFloat(1234.5))   // "1.234,5"

Formatter objects are cached per culture. A request with the culture's own
default options returns a shared default instance, the canonical option sets
numfmt.DefaultWithGrouping and numfmt.DefaultNoGrouping are recognized by
identity and have dedicated instances, and all other option combinations are
kept in a small LRU cache.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package culture

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to lingua.culture .
func tracer() tracing.Trace {
	return tracing.Select("lingua.culture")
}
