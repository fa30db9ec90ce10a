package breakiter

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCulture(t *testing.T, name string) *culture.Culture {
	t.Helper()
	reg := culture.NewRegistry(culture.NewTextProvider())
	t.Cleanup(reg.Close)
	c, err := reg.Get(name)
	require.NoError(t, err)
	return c
}

func TestBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	c := testCulture(t, "en-US")
	p := NewPool()
	defer p.Close()
	for _, tc := range []struct {
		kind   Kind
		text   string
		bounds []int
	}{
		{Grapheme, "e\u0301x", []int{0, 3, 4}},
		{Word, "Hello World", []int{0, 5, 6, 11}},
		{Title, "Hello World", []int{0, 5, 6, 11}},
		{Line, "Hello World", []int{0, 6, 11}},
		{Sentence, "Hi there. How are you?", []int{0, 10, 22}},
		{Line, "", []int{0}},
	} {
		h, err := p.CreateIterator(c, tc.kind)
		require.NoError(t, err)
		it := p.Iterator(h)
		require.NotNil(t, it)
		it.SetString(tc.text)
		assert.Equal(t, tc.bounds, it.Boundaries(), "%s iterator on %q", tc.kind, tc.text)
		p.DestroyIterator(h)
	}
	assert.Equal(t, 0, p.Live())
}

func TestMoves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	p := NewPool()
	defer p.Close()
	h, err := p.CreateIterator(testCulture(t, "en-US"), Line)
	require.NoError(t, err)
	it := p.Iterator(h)
	it.SetString("Hello World")
	assert.Equal(t, 0, it.CurrentPosition())
	assert.Equal(t, Done, it.MoveToPrevious())
	assert.Equal(t, 6, it.MoveToNext())
	assert.Equal(t, 11, it.MoveToNext())
	assert.Equal(t, Done, it.MoveToNext())
	assert.Equal(t, 11, it.CurrentPosition())
	assert.Equal(t, 0, it.ResetToBeginning())
	assert.Equal(t, 11, it.ResetToEnd())
	assert.Equal(t, 6, it.MoveToPrevious())
	assert.Equal(t, 6, it.MoveToCandidateBefore(7))
	assert.Equal(t, 6, it.MoveToCandidateBefore(6))
	assert.Equal(t, 11, it.MoveToCandidateAfter(7))
	assert.Equal(t, 6, it.MoveToCandidateAfter(6))
	assert.Equal(t, Done, it.MoveToCandidateBefore(0))
	assert.Equal(t, Done, it.MoveToCandidateAfter(11))
	assert.True(t, it.IsBoundary(6))
	assert.False(t, it.IsBoundary(7))
}

func TestMandatory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	p := NewPool()
	defer p.Close()
	h, err := p.CreateIterator(nil, Line)
	require.NoError(t, err)
	it := p.Iterator(h)
	it.SetString("one two\nthree")
	assert.Equal(t, []int{0, 4, 8, 13}, it.Boundaries())
	assert.True(t, it.IsMandatory(8))
	assert.False(t, it.IsMandatory(4))
}

func TestInvalidUTF8(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	p := NewPool()
	defer p.Close()
	h, err := p.CreateIterator(nil, Grapheme)
	require.NoError(t, err)
	it := p.Iterator(h)
	it.SetString("a\xffb")
	assert.Equal(t, []int{0, 1, 2, 3}, it.Boundaries())
}

func TestStaleHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	p := NewPool()
	h1, err := p.CreateIterator(nil, Word)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Live())
	p.DestroyIterator(h1)
	p.DestroyIterator(h1) // no-op
	assert.Equal(t, 0, p.Live())
	assert.Nil(t, p.Iterator(h1))
	h2, err := p.CreateIterator(nil, Word)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "recycled slot must get a new generation")
	assert.NotNil(t, p.Iterator(h2))
	assert.Nil(t, p.Iterator(h1))
	_, err = p.CreateIterator(nil, Kind(42))
	assert.True(t, errors.Is(err, ErrUnknownKind))
	p.Close()
	assert.Equal(t, 0, p.Live())
	_, err = p.CreateIterator(nil, Word)
	assert.True(t, errors.Is(err, ErrPoolClosed))
}

func TestConcurrentIterators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.segment")
	defer teardown()
	//
	c := testCulture(t, "de-DE")
	p := NewPool()
	defer p.Close()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				h, err := p.CreateIterator(c, Word)
				if err != nil {
					t.Error(err)
					return
				}
				it := p.Iterator(h)
				it.SetString("Grüße aus Köln")
				if n := len(it.Boundaries()); n != 6 {
					t.Errorf("expected 6 boundaries, have %d", n)
				}
				p.DestroyIterator(h)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, p.Live())
}
