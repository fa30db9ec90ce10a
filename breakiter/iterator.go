package breakiter

import (
	"fmt"
	"sort"

	"github.com/npillmayer/lingua/segment"
)

// Kind is the kind of boundaries an iterator enumerates.
type Kind int8

// Iterator kinds. Title iterators find word boundaries for title casing.
const (
	Grapheme Kind = iota
	Word
	Line
	Sentence
	Title
	numKinds
)

var kindNames = [...]string{"Grapheme", "Word", "Line", "Sentence", "Title"}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// Done is returned by position operations which run past either end of
// the text.
const Done = -1

// Iterator is a cursor over the boundaries of a string. Positions are byte
// offsets; 0 and the length of the text are always boundaries.
//
// An iterator is bound to one string at a time. Re-seeding it with a new
// string requires an explicit call to SetString.
type Iterator struct {
	kind      Kind
	culture   string
	engine    *segment.Segmenter
	text      string
	bounds    []int
	mandatory []bool // per entry of bounds
	current   int    // index into bounds
}

func newIterator(kind Kind, culture string, engine *segment.Segmenter) *Iterator {
	it := &Iterator{kind: kind, culture: culture, engine: engine}
	it.SetString("")
	return it
}

// Kind returns the kind of boundaries it enumerates.
func (it *Iterator) Kind() Kind { return it.kind }

// Culture returns the name of the culture it is bound to.
func (it *Iterator) Culture() string { return it.culture }

// SetString binds it to text and resets the position to 0.
func (it *Iterator) SetString(text string) {
	it.text = text
	it.bounds = append(it.bounds[:0], 0)
	it.mandatory = append(it.mandatory[:0], false)
	it.current = 0
	if text == "" || it.engine == nil {
		return
	}
	ends, mandatory := it.engine.Boundaries(text)
	if err := it.engine.Err(); err != nil {
		tracer().P("kind", it.kind).Errorf("cannot compute boundaries: %v", err)
		it.bounds = append(it.bounds, len(text))
		it.mandatory = append(it.mandatory, false)
		return
	}
	it.bounds = append(it.bounds, ends...)
	it.mandatory = append(it.mandatory, mandatory...)
	if it.bounds[len(it.bounds)-1] != len(text) { // invalid UTF-8 is re-encoded by the segmenter
		it.bounds = append(it.bounds[:1], scaleOffsets(text, ends)...)
	}
	tracer().P("kind", it.kind).Debugf("%d boundaries in %q", len(it.bounds), text)
}

// Text returns the string it is bound to.
func (it *Iterator) Text() string { return it.text }

// CurrentPosition returns the byte offset of the current boundary.
func (it *Iterator) CurrentPosition() int { return it.bounds[it.current] }

// ResetToBeginning moves to position 0.
func (it *Iterator) ResetToBeginning() int {
	it.current = 0
	return 0
}

// ResetToEnd moves to the end of the text.
func (it *Iterator) ResetToEnd() int {
	it.current = len(it.bounds) - 1
	return it.bounds[it.current]
}

// MoveToNext moves to the next boundary. At the end of the text it returns
// Done and the position does not change.
func (it *Iterator) MoveToNext() int {
	if it.current+1 >= len(it.bounds) {
		return Done
	}
	it.current++
	return it.bounds[it.current]
}

// MoveToPrevious moves to the previous boundary. At the beginning of the
// text it returns Done and the position does not change.
func (it *Iterator) MoveToPrevious() int {
	if it.current == 0 {
		return Done
	}
	it.current--
	return it.bounds[it.current]
}

// MoveToCandidateBefore moves to the last boundary at or before index.
// It returns Done if index is at or before the beginning of the text.
func (it *Iterator) MoveToCandidateBefore(index int) int {
	if index <= 0 {
		return Done
	}
	i := sort.SearchInts(it.bounds, index+1) - 1 // last bound ≤ index
	it.current = i
	return it.bounds[i]
}

// MoveToCandidateAfter moves to the first boundary at or after index.
// It returns Done if index is at or past the end of the text.
func (it *Iterator) MoveToCandidateAfter(index int) int {
	if index >= len(it.text) {
		return Done
	}
	if index < 0 {
		index = 0
	}
	i := sort.SearchInts(it.bounds, index)
	it.current = i
	return it.bounds[i]
}

// IsBoundary reports whether index is a boundary.
func (it *Iterator) IsBoundary(index int) bool {
	i := sort.SearchInts(it.bounds, index)
	return i < len(it.bounds) && it.bounds[i] == index
}

// IsMandatory reports whether the boundary at index is a mandatory break,
// such as after a line terminator.
func (it *Iterator) IsMandatory(index int) bool {
	i := sort.SearchInts(it.bounds, index)
	return i < len(it.bounds) && it.bounds[i] == index && it.mandatory[i]
}

// Boundaries returns all boundaries, including 0 and the length of the text.
// The slice must not be modified.
func (it *Iterator) Boundaries() []int {
	return it.bounds
}

// scaleOffsets maps boundaries computed on the re-encoded (valid UTF-8)
// form of text back to offsets into text. Every invalid byte of text was
// replaced by U+FFFD, which takes 3 bytes.
func scaleOffsets(text string, ends []int) []int {
	mapped := make([]int, 0, len(ends))
	valid, orig := 0, 0
	for _, end := range ends {
		for valid < end && orig < len(text) {
			r, sz := decodeRune(text[orig:])
			orig += sz
			valid += runeLen(r, sz)
		}
		mapped = append(mapped, orig)
	}
	if n := len(mapped); n == 0 || mapped[n-1] != len(text) {
		mapped = append(mapped, len(text))
	}
	return mapped
}
