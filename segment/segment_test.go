package segment

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("	for (i=0; i<5; i++)   count += i;"))
	var parts []string
	for seg.Next() {
		p, _ := seg.Penalties()
		t.Logf("segment = '%s' with p = %d", seg.Text(), p)
		parts = append(parts, seg.Text())
	}
	if strings.Join(parts, "") != "	for (i=0; i<5; i++)   count += i;" {
		t.Errorf("segments do not add up to input: %q", parts)
	}
}

func TestSimpleSegmenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	for i, tc := range []struct {
		input string
		count int
	}{
		{"Hello World ", 4},
		{"lime-tree", 1},
		{"Hello World, how are you?", 9},
		{"", 0},
	} {
		seg := NewSegmenter() // will use a SimpleWordBreaker
		seg.Init(strings.NewReader(tc.input))
		n := 0
		for seg.Next() {
			n++
		}
		if n != tc.count {
			t.Errorf("test #%d: expected %d segments, have %d", i, tc.count, n)
		}
		if seg.Err() != nil {
			t.Errorf("test #%d: unexpected error %v", i, seg.Err())
		}
	}
}

func TestBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	seg := NewSegmenter()
	ends, mandatory := seg.Boundaries("ab  cd")
	expected := []int{2, 4, 6}
	if len(ends) != len(expected) {
		t.Fatalf("expected boundaries %v, have %v", expected, ends)
	}
	for i, e := range expected {
		if ends[i] != e {
			t.Errorf("expected boundary #%d at %d, have %d", i, e, ends[i])
		}
		if mandatory[i] {
			t.Errorf("boundary #%d should not be mandatory", i)
		}
	}
	// re-use must not carry state over
	ends, _ = seg.Boundaries("x")
	if len(ends) != 1 || ends[0] != 1 {
		t.Errorf("expected single boundary at 1, have %v", ends)
	}
}

func TestUninitialized(t *testing.T) {
	seg := NewSegmenter()
	if seg.Next() {
		t.Errorf("uninitialized segmenter should not produce segments")
	}
	if seg.Err() != ErrNotInitialized {
		t.Errorf("expected ErrNotInitialized, have %v", seg.Err())
	}
}
