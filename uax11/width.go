package uax11

import (
	"unicode"
	"unicode/utf8"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/lingua/emoji"
	"github.com/npillmayer/lingua/grapheme"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Category is one of 6 char categories as defined in UAX#11.
type Category int8

// East_Asian_Width properties
const (
	N  Category = iota // Neutral (Not East Asian)
	A                  // East Asian Ambiguous
	W                  // East Asian Wide
	Na                 // East Asian Narrow
	H                  // East Asian Halfwidth
	F                  // East Asian Fullwidth
)

func (c Category) String() string {
	switch c {
	case A:
		return "A"
	case W:
		return "W"
	case Na:
		return "Na"
	case H:
		return "H"
	case F:
		return "F"
	}
	return "N"
}

// WidthCategory returns the width category of a single rune as proposed by the UAX#11
// standard. Please note that this is most probably not what clients will want to use in
// full-grown international applications, as it is preferable to work on graphemes
// rather than on runes. This function is nevertheless provided as a low
// level API function corresponding to UAX#11 section 6.
//
// Returns one of N, A, Na, W, H, F.
func WidthCategory(r rune) Category {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianAmbiguous:
		return A
	case width.EastAsianWide:
		return W
	case width.EastAsianNarrow:
		return Na
	case width.EastAsianHalfwidth:
		return H
	case width.EastAsianFullwidth:
		return F
	}
	if unicode.Is(cjkDefaultW, r) {
		return W
	}
	return N
}

// Context represents information about the typesetting environment.
//
// From UAX#11:
// The term context as used here includes extra information such as explicit
// markup, knowledge of the source code page, font information, or language and
// script identification
type Context struct {
	ForceEastAsian bool            // force East Asian context
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // ISO 639/3166 locale string
	resolve        resolver
}

// EastAsianContext is a context for East Asian languages.
var EastAsianContext = &Context{
	ForceEastAsian: true,
	Script:         language.MustParseScript("Hant"),
	Locale:         "zh-Hant",
	resolve:        resolveToWide,
}

// LatinContext is a context for western languages.
var LatinContext = &Context{
	Script:  language.MustParseScript("Latn"),
	Locale:  "en-US",
	resolve: resolveToNarrow,
}

// A resolver decides on ambiguous width categories.
type resolver func(Category) Category

func resolveToNarrow(cat Category) Category {
	if cat == A {
		return Na
	}
	return cat
}

func resolveToWide(cat Category) Category {
	if cat == A {
		return W
	}
	return cat
}

func findResolver(script language.Script, lang language.Tag) resolver {
	switch script.String() {
	case
		// East Asian
		"Bopo", "Hanb", "Hani", "Hans",
		"Hant", "Hang", "Hira", "Kana",
		"Jpan", "Kore", "Yiii":
		return resolveToWide
	}
	if _, inx, confidence := eaMatch.Match(lang); inx == 0 || confidence == language.No {
		return resolveToNarrow
	}
	return resolveToWide
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.English, // The first language is used as fallback.
	language.Chinese,
	language.Japanese,
	language.Korean,
})

// ContextFor creates a context for a locale, given as an IETF language tag.
func ContextFor(locale string) *Context {
	lang, err := language.Parse(locale)
	if err != nil {
		tracer().P("locale", locale).Debugf("UAX#11 cannot parse locale: %v", err)
		return LatinContext
	}
	script, _ := lang.Script()
	return &Context{
		Script:  script,
		Locale:  lang.String(),
		resolve: findResolver(script, lang),
	}
}

// ContextFromEnvironment creates a context for the user's locale, as
// detected from the environment.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("UAX#11 cannot detect user locale: %v", err)
		userLocale = "en-US"
	} else {
		tracer().Debugf("UAX#11 detected user locale %v", userLocale)
	}
	return ContextFor(userLocale)
}

// Width returns the width of a grapheme, given as a byte slice, in terms of
// `en`s, where 1en stands for 1/2em, i.e. half a full width character.
// If grphm is invalid or just a zero width rune, a width of 0 is returned.
//
// If an empty context is given, LatinContext is assumed.
//
// Returns either 0, 1 (narrow character) or 2 (wide character).
func Width(grphm []byte, context *Context) int {
	if len(grphm) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(grphm)
	if r == utf8.RuneError {
		return 0
	}
	return runeWidth(r, grphm, context)
}

func runeWidth(r rune, grphm []byte, context *Context) int {
	if context == nil || context.resolve == nil {
		context = LatinContext
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cc, unicode.Cf) {
		return 0
	}
	if r >= 0x1f000 && emoji.IsPictographic(r) {
		return 2
	}
	cat := WidthCategory(r)
	if context.ForceEastAsian {
		cat = resolveToWide(cat)
	} else {
		cat = context.resolve(cat)
	}
	switch cat {
	case W, F:
		return 2
	}
	if len(grphm) > utf8.RuneLen(r) && emoji.IsPictographic(r) {
		return 2 // emoji presentation sequence
	}
	return 1
}

// StringWidth returns the width of a grapheme string in terms of `en`s.
func StringWidth(s grapheme.String, context *Context) int {
	w := 0
	for i := 0; i < s.Len(); i++ {
		w += Width([]byte(s.Nth(i)), context)
	}
	return w
}

// TextWidth is a shortcut for StringWidth(grapheme.StringFromString(text), context).
func TextWidth(text string, context *Context) int {
	return StringWidth(grapheme.StringFromString(text), context)
}

// ---------------------------------------------------------------------------

// UAX#11:
//   - The unassigned code points in the following blocks default to "W":
//     CJK Unified Ideographs Extension A: U+3400..U+4DBF
//     CJK Unified Ideographs:             U+4E00..U+9FFF
//     CJK Compatibility Ideographs:       U+F900..U+FAFF
//   - All undesignated code points in Planes 2 and 3, whether inside or
//     outside of allocated blocks, default to "W":
//     Plane 2:                            U+20000..U+2FFFD
//     Plane 3:                            U+30000..U+3FFFD
var cjkDefaultW = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1},
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1},
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2fffd, Stride: 1},
		{Lo: 0x30000, Hi: 0x3fffd, Stride: 1},
	},
}
