package grapheme

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/lingua/segment"
)

// String is a type to represent a grapheme string, i.e. a sequence of
// “user perceived characters” as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Finding graphemes from a string (or array of bytes) is an operation with
// runtime complexity O(N). Clients should not convert large texts into grapheme
// strings in one go, but rather operate on manageable fragments.
type String interface {
	Nth(int) string // return nth grapheme
	Len() int       // length of string in units of user perceived characters
	Offset(int) int // byte offset of nth grapheme; Offset(Len()) is the byte length
}

// MaxByteLen is the maximum byte count a grapheme string may consist of.
const MaxByteLen int = segment.MaxInputSize

// StringFromString creates a grapheme string from a Go string.
// As grapheme strings are not meant to be created for large amounts of text, but
// rather for manageable segments, s is not allowed to exceed MaxByteLen bytes.
//
// StringFromString will panic if a larger input string is given.
//
// Invalid UTF-8 bytes are treated as U+FFFD, each forming a grapheme of its own.
func StringFromString(s string) String {
	if len(s) > MaxByteLen {
		panic(fmt.Sprintf("grapheme.String may not be built from more than %d bytes, have %d",
			MaxByteLen, len(s)))
	}
	if !utf8.ValidString(s) {
		s = toValidUTF8(s)
	}
	gstr := &gString{content: s, breaks: []int{0}}
	if s == "" {
		return gstr
	}
	segm := acquireSegmenter()
	defer releaseSegmenter(segm)
	ends, _ := segm.Boundaries(s)
	gstr.breaks = append(gstr.breaks, ends...)
	if err := segm.Err(); err != nil {
		tracer().Errorf("grapheme breaker error = %v", err)
	}
	return gstr
}

// StringFromBytes creates a grapheme string from an array of bytes. As grapheme
// strings are a read-only data structure, StringFromBytes will create a private copy
// of the input.
func StringFromBytes(b []byte) String {
	return StringFromString(string(b))
}

// Boundaries returns the byte offsets where graphemes of s end.
// Position 0 is not included.
func Boundaries(s string) []int {
	segm := acquireSegmenter()
	defer releaseSegmenter(segm)
	ends, _ := segm.Boundaries(s)
	return ends
}

type gString struct {
	content string
	breaks  []int
}

func (gstr *gString) Nth(n int) string {
	if n < 0 || n >= gstr.Len() {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, gstr.Len()))
	}
	return gstr.content[gstr.breaks[n]:gstr.breaks[n+1]]
}

func (gstr *gString) Len() int {
	return len(gstr.breaks) - 1
}

func (gstr *gString) Offset(n int) int {
	if n < 0 || n > gstr.Len() {
		panic(fmt.Sprintf("grapheme string offset out of bounds, [%d] in [0:%d]",
			n, gstr.Len()))
	}
	return gstr.breaks[n]
}

// ---------------------------------------------------------------------------

var segmenters = sync.Pool{
	New: func() any {
		return segment.NewSegmenter(NewBreaker(1))
	},
}

func acquireSegmenter() *segment.Segmenter {
	return segmenters.Get().(*segment.Segmenter)
}

func releaseSegmenter(segm *segment.Segmenter) {
	segm.InitFromString("")
	segmenters.Put(segm)
}

func toValidUTF8(s string) string {
	b := make([]byte, 0, len(s)+8)
	for len(s) > 0 {
		r, sz := utf8.DecodeRuneInString(s)
		b = utf8.AppendRune(b, r) // RuneError encodes as U+FFFD
		s = s[sz:]
	}
	return string(b)
}
