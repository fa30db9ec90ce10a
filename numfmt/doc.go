/*
Package numfmt renders numbers, percentages and currency amounts as text.

A number is converted to a decimal digit string first and never passes
through further floating point arithmetic. Rounding, digit limits and
grouping then operate on the digits, and the result is wrapped into the
sign and symbol fragments of a locale's number patterns:

  rules := numfmt.Rules{ ... }                // usually taken from a culture
  s := numfmt.FormatNumber(numfmt.FromFloat(-1234.5), numfmt.DefaultWithGrouping, &rules)

Group sizes are given as an ordered list, starting at the decimal point.
The last entry of the list governs all remaining higher-order digits, a
last entry of 0 stops grouping: {3} yields "1,234,567", {3,2} yields
"12,34,567" and {3,0} yields "1234,567".

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package numfmt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to lingua.numfmt .
func tracer() tracing.Trace {
	return tracing.Select("lingua.numfmt")
}
