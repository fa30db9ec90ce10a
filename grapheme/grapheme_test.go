package grapheme

import (
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/lingua/segment"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGraphemeClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	c1 := LClass
	if c1.String() != "LClass" {
		t.Errorf("String(LClass) should be 'LClass', is %s", c1)
	}
	if !unicode.Is(Control, '\t') {
		t.Error("<TAB> should be identified as control character")
	}
	hangsyl := '개'
	if c := ClassForRune(hangsyl); c != LVClass {
		t.Errorf("Hang syllable GAE should be of class LV, is %s", c)
	}
	if c := ClassForRune(0); c != eot {
		t.Errorf("\\0x00 should be of class eot, is %s", c)
	}
	for r, class := range map[rune]GraphemeClass{
		'a':     Any,
		'\r':    CRClass,
		'\n':    LFClass,
		0x0301:  ExtendClass,
		0x200d:  ZWJClass,
		0x1f1e9: RegionalIndicatorClass,
		0x1f600: PictographicClass,
		0x0903:  SpacingMarkClass,
	} {
		if c := ClassForRune(r); c != class {
			t.Errorf("expected %#U to be of class %s, is %s", r, class, c)
		}
	}
}

func TestGraphemes1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	onGraphemes := NewBreaker(1)
	seg := segment.NewSegmenter(onGraphemes)
	seg.Init(strings.NewReader("개=Hang Syllable GAE"))
	seg.Next()
	t.Logf("Next() = %s\n", seg.Text())
	if seg.Err() != nil {
		t.Errorf("segmenter.Next() failed with error: %s", seg.Err())
	}
	if seg.Text() != "개" {
		t.Errorf("expected first grapheme of string to be '개' (Hang GAE), is '%v'", seg.Text())
	}
}

func TestGraphemes2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	onGraphemes := NewBreaker(1)
	seg := segment.NewSegmenter(onGraphemes)
	seg.BreakOnZero(true, false)
	seg.Init(strings.NewReader("Hello\tWorld!"))
	output := ""
	for seg.Next() {
		t.Logf("Next() = %s\n", seg.Text())
		output += "_" + seg.Text()
	}
	if seg.Err() != nil {
		t.Errorf("segmenter.Next() failed with error: %s", seg.Err())
	}
	if output != "_H_e_l_l_o_\t_W_o_r_l_d_!" {
		t.Errorf("expected grapheme for every char pos, have %s", output)
	}
}

func TestGraphemeClusters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	for i, tc := range []struct {
		input string
		parts []string
	}{
		{"a\r\nb", []string{"a", "\r\n", "b"}},
		{"\r\r\n", []string{"\r", "\r\n"}},
		{"e\u0301x", []string{"e\u0301", "x"}},
		{"🇩🇪🇫🇷", []string{"🇩🇪", "🇫🇷"}},
		{"🇩🇪🇫", []string{"🇩🇪", "🇫"}},
		{"👨‍👩‍👧!", []string{"👨‍👩‍👧", "!"}},
		{"👍🏽x", []string{"👍🏽", "x"}},
		{"한국어", []string{"한", "국", "어"}},
		{"각", []string{"각"}},
		{"क्षि", []string{"क्", "षि"}},
	} {
		seg := segment.NewSegmenter(NewBreaker(1))
		seg.InitFromString(tc.input)
		var parts []string
		for seg.Next() {
			parts = append(parts, seg.Text())
		}
		if strings.Join(parts, "|") != strings.Join(tc.parts, "|") {
			t.Errorf("test #%d: expected %q, have %q", i, tc.parts, parts)
		}
	}
}

func TestBreakerReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	gb := NewBreaker(1)
	seg := segment.NewSegmenter(gb)
	seg.InitFromString("a🇩")
	for seg.Next() {
	}
	ends, _ := seg.Boundaries("🇫🇷")
	if len(ends) != 1 {
		t.Errorf("expected 1 grapheme after re-init, have %v", ends)
	}
}
