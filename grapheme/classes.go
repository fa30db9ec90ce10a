package grapheme

import (
	"unicode"

	"github.com/npillmayer/lingua/emoji"
)

// GraphemeClass is the type for grapheme break classes of UAX#29.
type GraphemeClass int

// Grapheme break classes.
const (
	Any GraphemeClass = iota
	CRClass
	LFClass
	ControlClass
	ExtendClass
	ZWJClass
	RegionalIndicatorClass
	SpacingMarkClass
	LClass
	VClass
	TClass
	LVClass
	LVTClass
	PictographicClass
	eot
)

var classNames = [...]string{"Any", "CRClass", "LFClass", "ControlClass", "ExtendClass",
	"ZWJClass", "RegionalIndicatorClass", "SpacingMarkClass", "LClass", "VClass", "TClass",
	"LVClass", "LVTClass", "PictographicClass", "eot"}

func (c GraphemeClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "GraphemeClass(?)"
	}
	return classNames[c]
}

// Hangul jamo and syllable ranges.
const (
	hangulBase   = 0xac00
	hangulLast   = 0xd7a3
	hangulTCount = 28
)

var hangulL = &unicode.RangeTable{R16: []unicode.Range16{
	{Lo: 0x1100, Hi: 0x115f, Stride: 1}, {Lo: 0xa960, Hi: 0xa97c, Stride: 1}}}
var hangulV = &unicode.RangeTable{R16: []unicode.Range16{
	{Lo: 0x1160, Hi: 0x11a7, Stride: 1}, {Lo: 0xd7b0, Hi: 0xd7c6, Stride: 1}}}
var hangulT = &unicode.RangeTable{R16: []unicode.Range16{
	{Lo: 0x11a8, Hi: 0x11ff, Stride: 1}, {Lo: 0xd7cb, Hi: 0xd7fb, Stride: 1}}}

// Control is the set of control characters which are not CR or LF.
var Control = &unicode.RangeTable{R16: []unicode.Range16{
	{Lo: 0x0000, Hi: 0x0009, Stride: 1},
	{Lo: 0x000b, Hi: 0x000c, Stride: 1},
	{Lo: 0x000e, Hi: 0x001f, Stride: 1},
	{Lo: 0x007f, Hi: 0x009f, Stride: 1},
	{Lo: 0x00ad, Hi: 0x00ad, Stride: 1},
	{Lo: 0x200b, Hi: 0x200b, Stride: 1},
	{Lo: 0x200e, Hi: 0x200f, Stride: 1},
	{Lo: 0x2028, Hi: 0x202e, Stride: 1},
	{Lo: 0x2060, Hi: 0x206f, Stride: 1},
	{Lo: 0xfeff, Hi: 0xfeff, Stride: 1},
	{Lo: 0xfff0, Hi: 0xfffb, Stride: 1},
}, LatinOffset: 5}

// ClassForRune gets the grapheme break class for a Unicode code-point.
func ClassForRune(r rune) GraphemeClass {
	switch {
	case r == 0:
		return eot
	case r == '\r':
		return CRClass
	case r == '\n':
		return LFClass
	case r == 0x200d:
		return ZWJClass
	case r == 0x200c:
		return ExtendClass
	case r < 0x7f && r >= 0x20:
		return Any
	case unicode.Is(Control, r):
		return ControlClass
	case r >= hangulBase && r <= hangulLast:
		if (r-hangulBase)%hangulTCount == 0 {
			return LVClass
		}
		return LVTClass
	case unicode.Is(hangulL, r):
		return LClass
	case unicode.Is(hangulV, r):
		return VClass
	case unicode.Is(hangulT, r):
		return TClass
	case unicode.In(r, unicode.Mn, unicode.Me):
		return ExtendClass
	case unicode.Is(emoji.Emoji_Modifier, r):
		return ExtendClass
	case unicode.Is(unicode.Mc, r):
		return SpacingMarkClass
	case unicode.Is(emoji.Regional_Indicator, r):
		return RegionalIndicatorClass
	case emoji.IsPictographic(r):
		return PictographicClass
	case unicode.Is(unicode.Cf, r):
		return ControlClass
	}
	return Any
}
