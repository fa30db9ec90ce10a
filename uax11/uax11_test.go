package uax11

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/lingua/grapheme"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.width")
	defer teardown()
	//
	chars := [...]rune{
		'A',    // LATIN CAPITAL LETTER A           => Na
		0x05BD, // HEBREW POINT METEG               => N
		0x2223, // DIVIDES                          => A
		0x3008, // LEFT ANGLE BRACKET               => W
		0xFF41, // FULLWIDTH LATIN SMALL LETTER A   => F
	}
	cats := [...]Category{Na, N, A, W, F}
	for i, c := range chars {
		cat := WidthCategory(c)
		if cat != cats[i] {
			t.Errorf("expected width category of %#U to be %s, is %s", c, cats[i], cat)
		}
	}
}

func TestEnvLocale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.width")
	defer teardown()
	//
	ctx := ContextFromEnvironment()
	if ctx == nil {
		t.Fatalf("context from environment is nil, should not")
	}
	t.Logf("user environment has locale '%s'", ctx.Locale)
}

func TestWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.width")
	defer teardown()
	//
	chars := [...]rune{
		'A',    // LATIN CAPITAL LETTER A           => Na
		0x05BD, // HEBREW POINT METEG               => N, zero width
		0x2223, // DIVIDES                          => A
		0x3008, // LEFT ANGLE BRACKET               => W
		0xFF41, // FULLWIDTH LATIN SMALL LETTER A   => F
	}
	buf := make([]byte, 10)
	ww := 0
	for i, r := range chars {
		l := utf8.EncodeRune(buf, r)
		w := Width(buf[:l], LatinContext)
		t.Logf("%d: %#U => %d", i, r, w)
		ww += w
	}
	if ww != 6 {
		t.Errorf("expected accumulated width of 5 runes to be 6, is %d", ww)
	}
	assert.Equal(t, 2, Width([]byte("\u2223"), EastAsianContext))
	assert.Equal(t, 0, Width(nil, LatinContext))
}

func TestContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.width")
	defer teardown()
	//
	ctx := ContextFor("zh-HK")
	assert.Equal(t, 2, Width([]byte("\u2223"), ctx))
	ctx = ContextFor("de-AT")
	assert.Equal(t, 1, Width([]byte("\u2223"), ctx))
	ctx = ContextFor("ja")
	assert.Equal(t, 2, Width([]byte("\u2223"), ctx))
	ctx = ContextFor("not a locale!")
	assert.Equal(t, LatinContext, ctx)
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.width")
	defer teardown()
	//
	input := "A (世). \U0001f600"
	s := grapheme.StringFromString(input)
	w := StringWidth(s, EastAsianContext)
	if w != 10 {
		t.Errorf("expected fixed width length of string to be 10, is %d", w)
	}
	assert.Equal(t, 5, TextWidth("é世界", LatinContext))
}
