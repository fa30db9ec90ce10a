package uax29

import (
	"strconv"
	"unicode"
)

// UAX29Class is the type for UAX#29 word break classes.
// Must be convertable to int.
type UAX29Class int

// These are all the UAX#29 word breaking classes.
const (
	ALetterClass UAX29Class = iota
	CRClass
	Double_QuoteClass
	ExtendClass
	ExtendNumLetClass
	FormatClass
	Hebrew_LetterClass
	KatakanaClass
	LFClass
	MidLetterClass
	MidNumClass
	MidNumLetClass
	NewlineClass
	NumericClass
	Regional_IndicatorClass
	Single_QuoteClass
	WSegSpaceClass
	ZWJClass

	Other UAX29Class = 999
	sot   UAX29Class = 1000 // pseudo class "start of text"
	eot   UAX29Class = 1001 // pseudo class "end of text"
)

var uax29ClassNames = [...]string{"ALetterClass", "CRClass", "Double_QuoteClass",
	"ExtendClass", "ExtendNumLetClass", "FormatClass", "Hebrew_LetterClass",
	"KatakanaClass", "LFClass", "MidLetterClass", "MidNumClass", "MidNumLetClass",
	"NewlineClass", "NumericClass", "Regional_IndicatorClass", "Single_QuoteClass",
	"WSegSpaceClass", "ZWJClass"}

// Stringer for type UAX29Class
func (c UAX29Class) String() string {
	switch c {
	case sot:
		return "sot"
	case eot:
		return "eot"
	case Other:
		return "Other"
	case emojiPictographic:
		return "emojiPictographic"
	}
	if c < 0 || int(c) >= len(uax29ClassNames) {
		return "UAX29Class(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return uax29ClassNames[c]
}

// Range tables for classes which are not derivable from Unicode
// general categories.
var (
	Newline = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x000b, Hi: 0x000c, Stride: 1},
		{Lo: 0x0085, Hi: 0x0085, Stride: 1},
		{Lo: 0x2028, Hi: 0x2029, Stride: 1},
	}, LatinOffset: 2}
	MidLetter = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x003a, Hi: 0x003a, Stride: 1},
		{Lo: 0x00b7, Hi: 0x00b7, Stride: 1},
		{Lo: 0x0387, Hi: 0x0387, Stride: 1},
		{Lo: 0x055f, Hi: 0x055f, Stride: 1},
		{Lo: 0x05f4, Hi: 0x05f4, Stride: 1},
		{Lo: 0x2027, Hi: 0x2027, Stride: 1},
		{Lo: 0xfe13, Hi: 0xfe13, Stride: 1},
		{Lo: 0xfe55, Hi: 0xfe55, Stride: 1},
		{Lo: 0xff1a, Hi: 0xff1a, Stride: 1},
	}, LatinOffset: 2}
	MidNum = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x002c, Hi: 0x002c, Stride: 1},
		{Lo: 0x003b, Hi: 0x003b, Stride: 1},
		{Lo: 0x037e, Hi: 0x037e, Stride: 1},
		{Lo: 0x0589, Hi: 0x0589, Stride: 1},
		{Lo: 0x060c, Hi: 0x060d, Stride: 1},
		{Lo: 0x066c, Hi: 0x066c, Stride: 1},
		{Lo: 0x07f8, Hi: 0x07f8, Stride: 1},
		{Lo: 0x2044, Hi: 0x2044, Stride: 1},
		{Lo: 0xfe10, Hi: 0xfe10, Stride: 1},
		{Lo: 0xfe14, Hi: 0xfe14, Stride: 1},
		{Lo: 0xfe50, Hi: 0xfe50, Stride: 1},
		{Lo: 0xfe54, Hi: 0xfe54, Stride: 1},
		{Lo: 0xff0c, Hi: 0xff0c, Stride: 1},
		{Lo: 0xff1b, Hi: 0xff1b, Stride: 1},
	}, LatinOffset: 2}
	MidNumLet = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x002e, Hi: 0x002e, Stride: 1},
		{Lo: 0x2018, Hi: 0x2019, Stride: 1},
		{Lo: 0x2024, Hi: 0x2024, Stride: 1},
		{Lo: 0xfe52, Hi: 0xfe52, Stride: 1},
		{Lo: 0xff07, Hi: 0xff07, Stride: 1},
		{Lo: 0xff0e, Hi: 0xff0e, Stride: 1},
	}, LatinOffset: 1}
	WSegSpace = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0020, Hi: 0x0020, Stride: 1},
		{Lo: 0x1680, Hi: 0x1680, Stride: 1},
		{Lo: 0x2000, Hi: 0x2006, Stride: 1},
		{Lo: 0x2008, Hi: 0x200a, Stride: 1},
		{Lo: 0x205f, Hi: 0x205f, Stride: 1},
		{Lo: 0x3000, Hi: 0x3000, Stride: 1},
	}, LatinOffset: 1}
	// Katakana adds prolonged sound marks and iteration marks to the script.
	Katakana = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x3031, Hi: 0x3035, Stride: 1},
		{Lo: 0x309b, Hi: 0x309c, Stride: 1},
		{Lo: 0x30a0, Hi: 0x30a0, Stride: 1},
		{Lo: 0x30fc, Hi: 0x30fc, Stride: 1},
		{Lo: 0xff70, Hi: 0xff70, Stride: 1},
	}}
)

// Scripts whose letters do not form words by UAX#29 rules. They need
// dictionary-based segmentation and are left as class Other.
var noWordLetters = []*unicode.RangeTable{unicode.Han, unicode.Hiragana,
	unicode.Thai, unicode.Lao, unicode.Khmer, unicode.Myanmar}

// ClassForRune gets the Unicode #UAX29 word class for a Unicode code-point.
func ClassForRune(r rune) UAX29Class {
	switch r {
	case 0:
		return eot
	case '\r':
		return CRClass
	case '\n':
		return LFClass
	case '"':
		return Double_QuoteClass
	case '\'':
		return Single_QuoteClass
	case 0x200d:
		return ZWJClass
	case 0x200c:
		return ExtendClass
	case 0x202f:
		return ExtendNumLetClass
	}
	if r >= 0x1f1e6 && r <= 0x1f1ff {
		return Regional_IndicatorClass
	}
	if r >= 0x1f3fb && r <= 0x1f3ff { // emoji modifiers
		return ExtendClass
	}
	switch {
	case unicode.Is(Newline, r):
		return NewlineClass
	case unicode.Is(WSegSpace, r):
		return WSegSpaceClass
	case unicode.Is(MidLetter, r):
		return MidLetterClass
	case unicode.Is(MidNum, r):
		return MidNumClass
	case unicode.Is(MidNumLet, r):
		return MidNumLetClass
	case unicode.Is(unicode.Nd, r):
		return NumericClass
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc):
		return ExtendClass
	case unicode.Is(unicode.Cf, r):
		if r == 0x200b {
			return Other
		}
		return FormatClass
	case unicode.Is(unicode.Pc, r):
		return ExtendNumLetClass
	case unicode.Is(unicode.Katakana, r) || unicode.Is(Katakana, r):
		return KatakanaClass
	case unicode.IsLetter(r) || unicode.Is(unicode.Nl, r):
		if unicode.Is(unicode.Hebrew, r) {
			return Hebrew_LetterClass
		}
		for _, script := range noWordLetters {
			if unicode.Is(script, r) {
				return Other
			}
		}
		return ALetterClass
	}
	return Other
}

// IsDictionaryScript is a predicate for code-points of scripts which
// need dictionary-based word segmentation (CJK ideographs, kana, and the
// South-East Asian scripts).
func IsDictionaryScript(r rune) bool {
	if unicode.Is(unicode.Katakana, r) || unicode.Is(Katakana, r) {
		return true
	}
	for _, script := range noWordLetters {
		if unicode.Is(script, r) {
			return true
		}
	}
	return false
}
