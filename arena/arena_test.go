package arena

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestAllocGetSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.arena")
	defer teardown()
	//
	a := New(4)
	h := a.Alloc("hello")
	s, ok := a.Get(h)
	assert.True(t, ok)
	assert.Equal(t, "hello", s)
	assert.True(t, a.Set(h, "world"))
	s, _ = a.Get(h)
	assert.Equal(t, "world", s)
	assert.Equal(t, 1, a.Len())
	_, ok = a.Get(Nil)
	assert.False(t, ok)
}

func TestStaleHandle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.arena")
	defer teardown()
	//
	a := New(0)
	h1 := a.Alloc("one")
	assert.True(t, a.Release(h1))
	assert.False(t, a.Release(h1), "second release must be a no-op")
	h2 := a.Alloc("two")
	assert.Equal(t, 1, a.Cap(), "slot should have been recycled")
	assert.NotEqual(t, h1, h2)
	_, ok := a.Get(h1)
	assert.False(t, ok, "stale handle must not see new occupant")
	assert.False(t, a.Set(h1, "x"))
	s, _ := a.Get(h2)
	assert.Equal(t, "two", s)
	assert.Equal(t, 1, a.Len())
}

func TestConcurrentAlloc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.arena")
	defer teardown()
	//
	a := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h := a.Alloc("x")
				a.Release(h)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, a.Len())
	assert.LessOrEqual(t, a.Cap(), 8)
}
