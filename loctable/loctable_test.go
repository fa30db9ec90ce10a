package loctable

import (
	"fmt"
	"sync"
	"testing"

	"github.com/npillmayer/lingua/arena"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleEscapeContext() {
	field := EscapeContext("Menu,Main", `C:\path`)
	fmt.Println(field)
	ns, key := UnescapeContext(field)
	fmt.Println(ns, key)
	// Output:
	// Menu\,Main,C:\\path
	// Menu,Main C:\path
}

func TestEscapeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.loctable")
	defer teardown()
	//
	for _, s := range []string{"", "plain", "a,b\\c", `\`, `\\,`, ",,", "ends with \\", "ünïcödé,"} {
		assert.Equal(t, s, Unescape(Escape(s)), "round trip of %q", s)
		for _, k := range []string{"", "key", `k,\`} {
			ns, key := UnescapeContext(EscapeContext(s, k))
			assert.Equal(t, s, ns)
			assert.Equal(t, k, key)
		}
	}
	ns, key := UnescapeContext("no-comma")
	assert.Equal(t, "", ns)
	assert.Equal(t, "no-comma", key)
}

func TestGetOrCreate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.loctable")
	defer teardown()
	//
	tab := New(nil)
	h1 := tab.GetOrCreate("Menu", "Open", "Open")
	h2 := tab.GetOrCreate("Menu", "Open", "Open")
	assert.Equal(t, h1, h2)
	s, _ := tab.Arena().Get(h1)
	assert.Equal(t, "Open", s)
	// collision: first registered source wins
	h3 := tab.GetOrCreate("Menu", "Open", "Open file")
	assert.Equal(t, h1, h3)
	src, _ := tab.Source("Menu", "Open")
	assert.Equal(t, "Open", src)
	assert.Equal(t, 1, tab.Len())
	assert.Equal(t, uint64(0), tab.Revision(), "creating entries is not a translation change")
	//
	id, ok := tab.TableID(h1)
	require.True(t, ok)
	assert.Equal(t, ID{"Menu", "Open"}, id)
	assert.False(t, tab.IsTableString(tab.Arena().Alloc("Open")))
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.loctable")
	defer teardown()
	//
	tab := New(arena.New(4))
	h := tab.GetOrCreate("", "greeting", "Hello")
	found, ok := tab.Find("", "greeting", Hash("Hello"))
	assert.True(t, ok)
	assert.Equal(t, h, found)
	_, ok = tab.Find("", "greeting", Hash("Hi"))
	assert.False(t, ok, "hash mismatch must not be found")
	_, ok = tab.Find("", "greeting", 0)
	assert.True(t, ok)
	_, ok = tab.Find("other", "greeting", 0)
	assert.False(t, ok)
}

func TestUpdateBumpsRevisionOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.loctable")
	defer teardown()
	//
	tab := New(nil)
	h := tab.GetOrCreate("", "greeting", "Hello")
	assert.True(t, tab.UpdateDisplayString("", "greeting", "Hallo"))
	assert.Equal(t, uint64(1), tab.Revision())
	s, _ := tab.Arena().Get(h)
	assert.Equal(t, "Hallo", s, "update must be visible through the shared handle")
	assert.True(t, tab.UpdateDisplayString("", "greeting", "Hallo"))
	assert.Equal(t, uint64(1), tab.Revision(), "no-op update must not bump")
	assert.False(t, tab.UpdateDisplayString("", "missing", "x"))
	assert.Equal(t, uint64(2), tab.BumpRevision())
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.loctable")
	defer teardown()
	//
	tab := New(nil)
	n := tab.Load([]Entry{
		{Namespace: "ui", Key: "ok", Source: "OK"},
		{Namespace: "ui", Key: "cancel", Source: "Cancel"},
	})
	assert.Equal(t, 2, n)
	assert.Equal(t, uint64(0), tab.Revision())
	n = tab.Load([]Entry{
		{Namespace: "ui", Key: "ok", Source: "OK", Translation: "Ja"},
		{Namespace: "ui", Key: "cancel", Source: "Cancel", Translation: "Abbrechen"},
		{Namespace: "ui", Key: "ok", Source: "Okay", Translation: "Jawohl"}, // collision
	})
	assert.Equal(t, 2, n)
	assert.Equal(t, uint64(1), tab.Revision(), "a batch bumps the revision once")
	h, _ := tab.Find("ui", "ok", 0)
	s, _ := tab.Arena().Get(h)
	assert.Equal(t, "Ja", s)
	tab.Clear()
	assert.Equal(t, 0, tab.Len())
	assert.Equal(t, 0, tab.Arena().Len())
}

func TestConcurrentGetOrCreate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.loctable")
	defer teardown()
	//
	tab := New(nil)
	handles := make([]arena.Handle, 32)
	var wg sync.WaitGroup
	for i := range handles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = tab.GetOrCreate("ns", "key", "source")
		}(i)
	}
	wg.Wait()
	for _, h := range handles {
		assert.Equal(t, handles[0], h)
	}
	assert.Equal(t, 1, tab.Arena().Len())
}
