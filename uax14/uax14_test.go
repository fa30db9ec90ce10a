package uax14_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/lingua/segment"
	"github.com/npillmayer/lingua/uax14"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func ExampleLineWrap() {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(strings.NewReader("Hello World, (small) lime-tree!"))
	for segmenter.Next() {
		fmt.Printf("'%s'\n", segmenter.Text())
	}
	// Output: 'Hello '
	// 'World, '
	// '(small) '
	// 'lime-'
	// 'tree!'
}

func TestLineBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	for i, tc := range []struct {
		input string
		lines []string
	}{
		{"Hello World", []string{"Hello ", "World"}},
		{"costs $100.50 now", []string{"costs ", "$100.50 ", "now"}},
		{"50% off", []string{"50% ", "off"}},
		{"a\nb", []string{"a\n", "b"}},
		{"a\r\nb", []string{"a\r\n", "b"}},
		{"a\u00a0b c", []string{"a\u00a0b ", "c"}},
		{"été", []string{"été"}},
		{"你好。世界", []string{"你", "好。", "世", "界"}},
		{"ちょっと", []string{"ちょっ", "と"}},
		{"สวัสดีครับ", []string{"สวัสดีครับ"}},
		{"🇩🇪🇫🇷", []string{"🇩🇪", "🇫🇷"}},
		{"and/or", []string{"and/", "or"}},
		{"", nil},
	} {
		seg.InitFromString(tc.input)
		var lines []string
		for seg.Next() {
			lines = append(lines, seg.Text())
		}
		if strings.Join(lines, "|") != strings.Join(tc.lines, "|") {
			t.Errorf("test #%d: expected %q, have %q", i, tc.lines, lines)
		}
	}
}

func TestLooseLineBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	seg := segment.NewSegmenter(uax14.NewLooseLineWrap())
	seg.InitFromString("ちょっと")
	var parts []string
	for seg.Next() {
		parts = append(parts, seg.Text())
	}
	assert.Equal(t, []string{"ち", "ょ", "っ", "と"}, parts)
}

func TestMandatoryBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	ends, mandatory := seg.Boundaries("one two\nthree")
	assert.Equal(t, []int{4, 8, 13}, ends)
	assert.Equal(t, []bool{false, true, false}, mandatory)
}

func TestLineClasses(t *testing.T) {
	assert.Equal(t, uax14.ALClass, uax14.ClassForRune('a'))
	assert.Equal(t, uax14.SPClass, uax14.ClassForRune(' '))
	assert.Equal(t, uax14.NUClass, uax14.ClassForRune('4'))
	assert.Equal(t, uax14.OPClass, uax14.ClassForRune('('))
	assert.Equal(t, uax14.CPClass, uax14.ClassForRune(')'))
	assert.Equal(t, uax14.IDClass, uax14.ClassForRune('世'))
	assert.Equal(t, uax14.CJClass, uax14.ClassForRune('ょ'))
	assert.Equal(t, uax14.CLClass, uax14.ClassForRune('。'))
	assert.Equal(t, uax14.GLClass, uax14.ClassForRune('\u00a0'))
	assert.Equal(t, uax14.SAClass, uax14.ClassForRune('ส'))
	assert.Equal(t, "IDClass", uax14.IDClass.String())
}
