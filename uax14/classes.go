package uax14

import (
	"strconv"
	"unicode"

	"github.com/npillmayer/lingua/emoji"
)

// UAX14Class is the type for UAX#14 line breaking classes.
// Must be convertable to int.
type UAX14Class int

// The UAX#14 classes this package distinguishes. Classes of UAX#14 which
// are not listed here (e.g., HL, IN, CB, EB/EM, the Hangul jamo classes)
// are folded into AL or ID.
const (
	BKClass UAX14Class = iota
	CRClass
	LFClass
	NLClass
	SPClass
	ZWClass
	WJClass
	GLClass
	CLClass
	CPClass
	OPClass
	QUClass
	EXClass
	ISClass
	SYClass
	HYClass
	BAClass
	BBClass
	B2Class
	NSClass
	CJClass
	IDClass
	NUClass
	PRClass
	POClass
	ALClass
	AIClass
	SAClass
	CMClass
	RIClass
	ZWJClass
	XXClass
)

const (
	sot UAX14Class = 1000 // pseudo class
	eot UAX14Class = 1001 // pseudo class
)

var uax14ClassNames = [...]string{"BKClass", "CRClass", "LFClass", "NLClass", "SPClass",
	"ZWClass", "WJClass", "GLClass", "CLClass", "CPClass", "OPClass", "QUClass", "EXClass",
	"ISClass", "SYClass", "HYClass", "BAClass", "BBClass", "B2Class", "NSClass", "CJClass",
	"IDClass", "NUClass", "PRClass", "POClass", "ALClass", "AIClass", "SAClass", "CMClass",
	"RIClass", "ZWJClass", "XXClass"}

func (c UAX14Class) String() string {
	switch c {
	case sot:
		return "sot"
	case eot:
		return "eot"
	}
	if c < 0 || int(c) >= len(uax14ClassNames) {
		return "UAX14Class(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return uax14ClassNames[c]
}

func r16(lo, hi uint16) unicode.Range16 {
	return unicode.Range16{Lo: lo, Hi: hi, Stride: 1}
}

// Range tables for classes which are not derivable from general categories.
var (
	GL = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x00a0, 0x00a0), r16(0x034f, 0x034f), r16(0x0f08, 0x0f08), r16(0x0f0c, 0x0f0c),
		r16(0x0f12, 0x0f12), r16(0x180e, 0x180e), r16(0x2007, 0x2007), r16(0x2011, 0x2011),
		r16(0x202f, 0x202f),
	}, LatinOffset: 1}
	BA = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x0009, 0x0009), r16(0x007c, 0x007c), r16(0x00ad, 0x00ad), r16(0x058a, 0x058a),
		r16(0x05be, 0x05be), r16(0x0f0b, 0x0f0b), r16(0x1361, 0x1361), r16(0x1680, 0x1680),
		r16(0x17d8, 0x17d8), r16(0x17da, 0x17da), r16(0x2000, 0x2006), r16(0x2008, 0x200a),
		r16(0x2010, 0x2010), r16(0x2012, 0x2013), r16(0x2027, 0x2027), r16(0x205f, 0x205f),
		r16(0x3000, 0x3000),
	}, LatinOffset: 3}
	BB = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x00b4, 0x00b4), r16(0x02c8, 0x02c8), r16(0x02cc, 0x02cc), r16(0x02df, 0x02df),
		r16(0x0f01, 0x0f04), r16(0x0f06, 0x0f07), r16(0x0f09, 0x0f0a), r16(0x1806, 0x1806),
		r16(0x1ffd, 0x1ffd), r16(0xa874, 0xa875),
	}, LatinOffset: 1}
	B2 = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x2014, 0x2014), r16(0x2e3a, 0x2e3b),
	}}
	CL = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x007d, 0x007d), r16(0x3001, 0x3002), r16(0xfe11, 0xfe12), r16(0xfe50, 0xfe50),
		r16(0xfe52, 0xfe52), r16(0xff0c, 0xff0c), r16(0xff0e, 0xff0e), r16(0xff61, 0xff61),
		r16(0xff64, 0xff64),
	}, LatinOffset: 1}
	EX = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x0021, 0x0021), r16(0x003f, 0x003f), r16(0x05c6, 0x05c6), r16(0x061b, 0x061b),
		r16(0x061e, 0x061f), r16(0x06d4, 0x06d4), r16(0x07f9, 0x07f9), r16(0x0f0d, 0x0f11),
		r16(0x0f14, 0x0f14), r16(0x1802, 0x1803), r16(0x1808, 0x1809), r16(0x1944, 0x1945),
		r16(0x2762, 0x2763), r16(0x2cf9, 0x2cf9), r16(0x2cfe, 0x2cfe), r16(0x2e2e, 0x2e2e),
		r16(0xa60e, 0xa60e), r16(0xa876, 0xa877), r16(0xfe15, 0xfe16), r16(0xfe56, 0xfe57),
		r16(0xff01, 0xff01), r16(0xff1f, 0xff1f),
	}, LatinOffset: 2}
	IS = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x002c, 0x002c), r16(0x002e, 0x002e), r16(0x003a, 0x003b), r16(0x037e, 0x037e),
		r16(0x0589, 0x0589), r16(0x060c, 0x060d), r16(0x07f8, 0x07f8), r16(0x2044, 0x2044),
		r16(0xfe10, 0xfe10), r16(0xfe13, 0xfe14),
	}, LatinOffset: 3}
	NS = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x17d6, 0x17d6), r16(0x203c, 0x203d), r16(0x2047, 0x2049), r16(0x3005, 0x3005),
		r16(0x301c, 0x301c), r16(0x303b, 0x303c), r16(0x309b, 0x309e), r16(0x30a0, 0x30a0),
		r16(0x30fb, 0x30fb), r16(0x30fd, 0x30fe), r16(0xa015, 0xa015), r16(0xfe54, 0xfe55),
		r16(0xff1a, 0xff1b), r16(0xff65, 0xff65), r16(0xff9e, 0xff9f),
	}}
	// CJ are the small kana and the prolonged sound mark.
	CJ = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x3041, 0x3041), r16(0x3043, 0x3043), r16(0x3045, 0x3045), r16(0x3047, 0x3047),
		r16(0x3049, 0x3049), r16(0x3063, 0x3063), r16(0x3083, 0x3083), r16(0x3085, 0x3085),
		r16(0x3087, 0x3087), r16(0x308e, 0x308e), r16(0x3095, 0x3096), r16(0x30a1, 0x30a1),
		r16(0x30a3, 0x30a3), r16(0x30a5, 0x30a5), r16(0x30a7, 0x30a7), r16(0x30a9, 0x30a9),
		r16(0x30c3, 0x30c3), r16(0x30e3, 0x30e3), r16(0x30e5, 0x30e5), r16(0x30e7, 0x30e7),
		r16(0x30ee, 0x30ee), r16(0x30f5, 0x30f6), r16(0x30fc, 0x30fc), r16(0x31f0, 0x31ff),
		r16(0xff67, 0xff70),
	}}
	PO = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x0025, 0x0025), r16(0x00a2, 0x00a2), r16(0x00b0, 0x00b0), r16(0x060b, 0x060b),
		r16(0x066a, 0x066a), r16(0x2030, 0x2037), r16(0x2103, 0x2103), r16(0x2109, 0x2109),
		r16(0xfe6a, 0xfe6a), r16(0xff05, 0xff05), r16(0xffe0, 0xffe0),
	}, LatinOffset: 3}
	PR = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x002b, 0x002b), r16(0x005c, 0x005c), r16(0x00b1, 0x00b1), r16(0x2116, 0x2116),
		r16(0x2212, 0x2213),
	}, LatinOffset: 3}
	// SA are the South-East Asian scripts which need dictionary support.
	SA = []*unicode.RangeTable{unicode.Thai, unicode.Lao, unicode.Khmer, unicode.Myanmar,
		unicode.Tai_Tham, unicode.Tai_Viet, unicode.New_Tai_Lue}
	// ID are ideographs and other scripts breaking between every character.
	ID = []*unicode.RangeTable{unicode.Han, unicode.Hiragana, unicode.Katakana,
		unicode.Hangul, unicode.Bopomofo, unicode.Yi}
	// AI are characters of ambiguous width.
	AI = &unicode.RangeTable{R16: []unicode.Range16{
		r16(0x00a7, 0x00a8), r16(0x00aa, 0x00aa), r16(0x00b2, 0x00b3), r16(0x00b6, 0x00ba),
		r16(0x00bc, 0x00be), r16(0x00d7, 0x00d7), r16(0x00f7, 0x00f7), r16(0x2015, 0x2016),
		r16(0x2020, 0x2021), r16(0x203b, 0x203b), r16(0x2460, 0x24fe), r16(0x2500, 0x254b),
	}, LatinOffset: 7}
)

// ClassForRune is the top-level client function:
// Get the line breaking/wrap class for a Unicode code-point
func ClassForRune(r rune) UAX14Class {
	switch r {
	case 0:
		return eot
	case '\r':
		return CRClass
	case '\n':
		return LFClass
	case 0x85:
		return NLClass
	case 0x0b, 0x0c, 0x2028, 0x2029:
		return BKClass
	case ' ':
		return SPClass
	case 0x200b:
		return ZWClass
	case 0x2060, 0xfeff:
		return WJClass
	case 0x200d:
		return ZWJClass
	case '-':
		return HYClass
	case '/':
		return SYClass
	case ')', ']':
		return CPClass
	case '"', '\'':
		return QUClass
	case 0xa1, 0xbf:
		return OPClass
	}
	if r >= 0x1f1e6 && r <= 0x1f1ff {
		return RIClass
	}
	switch {
	case r >= 0x20 && r < 0x7f && unicode.IsLetter(r):
		return ALClass // fast path for ASCII letters
	case unicode.Is(GL, r):
		return GLClass
	case unicode.Is(BA, r):
		return BAClass
	case unicode.Is(BB, r):
		return BBClass
	case unicode.Is(B2, r):
		return B2Class
	case unicode.Is(CL, r):
		return CLClass
	case unicode.Is(EX, r):
		return EXClass
	case unicode.Is(IS, r):
		return ISClass
	case unicode.Is(NS, r):
		return NSClass
	case unicode.Is(CJ, r):
		return CJClass
	case unicode.Is(PO, r):
		return POClass
	case unicode.Is(PR, r):
		return PRClass
	case unicode.Is(AI, r):
		return AIClass
	case unicode.Is(unicode.Nd, r):
		if r >= 0xff10 && r <= 0xff19 { // full-width digits
			return IDClass
		}
		return NUClass
	case unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me):
		if isSA(r) {
			return SAClass
		}
		return CMClass
	case unicode.In(r, unicode.Cc, unicode.Cf):
		return CMClass
	case unicode.Is(unicode.Pe, r):
		return CLClass
	case unicode.Is(unicode.Ps, r):
		return OPClass
	case unicode.In(r, unicode.Pi, unicode.Pf):
		return QUClass
	case unicode.Is(unicode.Sc, r):
		return PRClass
	case r >= 0xff01 && r <= 0xff60: // full-width forms
		return IDClass
	case isSA(r):
		return SAClass
	case r >= 0x1f000 && emoji.IsPictographic(r):
		return IDClass
	}
	for _, rt := range ID {
		if unicode.Is(rt, r) {
			return IDClass
		}
	}
	if unicode.IsGraphic(r) {
		return ALClass
	}
	return XXClass
}

func isSA(r rune) bool {
	for _, rt := range SA {
		if unicode.Is(rt, r) {
			return true
		}
	}
	return false
}
