package text

import (
	"testing"
	"time"

	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/loctable"
	"github.com/npillmayer/lingua/numfmt"
	"github.com/npillmayer/lingua/wordwrap"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, reportErrors bool) *Engine {
	t.Helper()
	conf := testconfig.Conf{
		KeyCulture:      "en-US",
		KeyTimezone:     "UTC",
		KeyReportErrors: reportErrors,
	}
	e, err := NewEngine(conf)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestEngineConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	assert.Equal(t, "en-US", e.CurrentCulture().Name())
	assert.False(t, e.ReportErrors())
	assert.Equal(t, "UTC", e.Registry().Location().String())
	_, err := NewEngine(testconfig.Conf{KeyTimezone: "Mars/Olympus_Mons"})
	assert.Error(t, err)
	_, err = NewEngine(testconfig.Conf{KeyLocaleData: "/does/not/exist.yaml"})
	assert.Error(t, err)
	e2, err := NewEngine(testconfig.Conf{KeyCulture: "xx-unknown"})
	require.NoError(t, err)
	defer e2.Close()
	assert.Equal(t, FallbackCulture, e2.CurrentCulture().Name())
}

func TestLiteralStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	hello := e.FromString("Hello")
	assert.Equal(t, "Hello", hello.ToString())
	require.NoError(t, e.SetCurrentCulture("de-DE"))
	assert.Equal(t, "Hello", hello.ToString())
	assert.Equal(t, e.Revision(), hello.StampedRevision())
	assert.Equal(t, LiteralHistory, hello.History().Kind())
	assert.False(t, hello.History().CanRebuild())
	assert.True(t, e.AsCultureInvariant("x").IsCultureInvariant())
	assert.True(t, e.AsTransient("x").IsTransient())
	assert.Equal(t, "Transient|CultureInvariant", (Transient | CultureInvariant).String())
}

func TestRevision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	r0 := e.Revision()
	for _, name := range []string{"de-DE", "fr-FR", "en-US"} {
		require.NoError(t, e.SetCurrentCulture(name))
	}
	assert.Equal(t, r0+3, e.Revision())
	require.NoError(t, e.SetCurrentCulture("en_US"))
	assert.Equal(t, r0+3, e.Revision(), "same culture must not bump the revision")
	assert.Error(t, e.SetCurrentCulture("xx-unknown"))
	assert.Equal(t, r0+3, e.Revision())
	e.FromTable("app", "title", "Title")
	assert.True(t, e.Table().UpdateDisplayString("app", "title", "Titel"))
	assert.Equal(t, r0+4, e.Revision())
}

func TestNumberRebuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	n := e.FormatNumber(1234.5, nil, nil)
	shared := n
	assert.Equal(t, "1,234.5", n.ToString())
	assert.True(t, n.IsNumeric())
	require.NoError(t, e.SetCurrentCulture("de-DE"))
	assert.Equal(t, "1.234,5", shared.ToString())
	assert.Equal(t, "1.234,5", n.ToString())
	assert.Equal(t, e.Revision(), n.StampedRevision())
	assert.True(t, n.IdenticalTo(shared))
	assert.Equal(t, "1,234.5", n.BuildSourceString())
	other := e.FormatNumber(1234.5, nil, nil)
	assert.False(t, n.IdenticalTo(other))
	assert.True(t, n.EqualTo(other, culture.Quinary))
}

func TestRebuildDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	n := e.FormatCurrency(-1234.5, nil, "", nil)
	require.NoError(t, e.SetCurrentCulture("de-DE"))
	first := n.ToString()
	second := n.ToString()
	assert.Equal(t, first, second)
	h := n.History().(numberFormat)
	assert.Equal(t, h.rebuild(e, e.CurrentCulture()), h.rebuild(e, e.CurrentCulture()))
}

func TestExplicitCulture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	de, err := e.Culture("de-DE")
	require.NoError(t, err)
	n := e.FormatNumber(1234.5, numfmt.DefaultNoGrouping, de)
	assert.Equal(t, "1234,5", n.ToString())
	require.NoError(t, e.SetCurrentCulture("fr-FR"))
	assert.Equal(t, "1234,5", n.ToString())
}

func TestNumberKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	assert.Equal(t, "25%", e.FormatPercent(0.25, nil, nil).ToString())
	assert.Equal(t, "$1,234.50", e.FormatCurrency(1234.5, nil, "", nil).ToString())
	yen := e.FormatCurrency(1234, nil, "JPY", nil).ToString()
	assert.Contains(t, yen, "1,234")
	assert.NotContains(t, yen, ".")
	opts := numfmt.DefaultWithGrouping.WithFractionDigits(2, 2)
	assert.Equal(t, "1,234,567.00", e.FormatNumber(int64(1234567), &opts, nil).ToString())
	assert.Equal(t, "1,000", e.FormatNumber("1000", nil, nil).ToString())
	up := numfmt.DefaultWithGrouping.WithRounding(numfmt.ToPosInf).WithFractionDigits(0, 0)
	assert.Equal(t, "2", e.FormatNumber(1.1, &up, nil).ToString())
}

func TestFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	quiet := newTestEngine(t, false)
	assert.True(t, quiet.FormatNumber("abc", nil, nil).IsEmpty())
	assert.True(t, quiet.FormatNumber(struct{}{}, nil, nil).IsEmpty())
	assert.True(t, quiet.FormatString("{unterminated", nil).IsEmpty())
	verbose := newTestEngine(t, true)
	assert.Contains(t, verbose.FormatNumber("abc", nil, nil).ToString(), "AsNumber")
	diag := verbose.FormatString("{unterminated", nil)
	assert.Contains(t, diag.ToString(), "format")
	assert.True(t, diag.IsTransient())
}

func TestDates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	tm := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	d := e.FormatDate(tm, culture.DefaultStyle, "", nil)
	assert.Equal(t, "Mar 5, 2024", d.ToString())
	require.NoError(t, e.SetCurrentCulture("de-DE"))
	assert.Equal(t, "05.03.2024", d.ToString())
	assert.Equal(t, DateFormatHistory, d.History().Kind())
	require.NoError(t, e.SetCurrentCulture("en-US"))
	assert.Equal(t, "2:07 PM", e.FormatTime(tm, culture.ShortStyle, "", nil).ToString())
	assert.Equal(t, "Mar 5, 2024, 2:07:09 PM",
		e.FormatDateTime(tm, culture.DefaultStyle, culture.DefaultStyle, "", nil).ToString())
}

func TestFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	msg := e.FormatString("{name} has {count} messages", NamedArgs{"name": "Ann", "count": 1234})
	assert.Equal(t, "Ann has 1,234 messages", msg.ToString())
	assert.Equal(t, NamedFormatHistory, msg.History().Kind())
	require.NoError(t, e.SetCurrentCulture("de-DE"))
	assert.Equal(t, "Ann has 1.234 messages", msg.ToString())
	assert.Equal(t, "Ann has 1,234 messages", msg.BuildSourceString())
	require.NoError(t, e.SetCurrentCulture("en-US"))
	for _, tc := range []struct {
		pattern string
		args    Args
		out     string
	}{
		{"{0} and {1}", OrderedArgs{"this", "that"}, "this and that"},
		{"{1}, {0}", OrderedArgs{"a", "b"}, "b, a"},
		{"{x} is {y}", ArgData{{"x", "x"}, {"y", 2.5}}, "x is 2.5"},
		{"{1}", ArgData{{"x", "x"}, {"y", "y"}}, "y"},
		{"missing: [{2}]", OrderedArgs{"a"}, "missing: []"},
		{"unused", OrderedArgs{"a"}, "unused"},
		{"`{literal`} {0}", OrderedArgs{"x"}, "{literal} x"},
		{"a } b", nil, "a } b"},
		{"``", nil, "`"},
	} {
		assert.Equal(t, tc.out, e.FormatString(tc.pattern, tc.args).ToString(), "pattern %q", tc.pattern)
	}
}

func TestNestedTexts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	price := e.FormatNumber(9.5, nil, nil)
	msg := e.FormatString("Price: {0}", OrderedArgs{price})
	assert.Equal(t, "Price: 9.5", msg.ToString())
	require.NoError(t, e.SetCurrentCulture("de-DE"))
	assert.Equal(t, "Price: 9,5", msg.ToString())
	assert.Equal(t, "Price: 9.5", msg.BuildSourceString())
}

func TestPlurals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	files := "{n}|plural(=0=no files,one=# file,other=# files)"
	for n, out := range map[int]string{0: "no files", 1: "1 file", 2: "2 files", 1000: "1,000 files"} {
		assert.Equal(t, out, e.FormatString(files, NamedArgs{"n": n}).ToString())
	}
	assert.Equal(t, "1.5 files", e.FormatString(files, NamedArgs{"n": 1.5}).ToString())
	place := "{0}|ordinal(one=#st,two=#nd,few=#rd,other=#th)"
	for n, out := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 22: "22nd"} {
		assert.Equal(t, out, e.FormatString(place, OrderedArgs{n}).ToString())
	}
	num := e.FormatNumber(1, nil, nil)
	assert.Equal(t, "1 file", e.FormatString(files, NamedArgs{"n": num}).ToString())
	assert.Equal(t, "a,b", e.FormatString("{0}|plural(other=a`,b)", OrderedArgs{"x"}).ToString())
	assert.True(t, e.FormatString("{0}|plural(one=x)", OrderedArgs{1}).IsEmpty(), "no 'other' variant")
	assert.True(t, e.FormatString("{0}|plural(bogus=x,other=y)", OrderedArgs{1}).IsEmpty())
	assert.True(t, e.FormatString("{0}|plural(other=y", OrderedArgs{1}).IsEmpty())
}

func TestExactMatchSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	items := "{n}|plural(=0=none,=1=single,=12=a dozen,other=# items)"
	for n, out := range map[int]string{0: "none", 1: "single", 12: "a dozen", 13: "13 items"} {
		assert.Equal(t, out, e.FormatString(items, NamedArgs{"n": n}).ToString())
	}
	assert.Equal(t, "none", e.FormatString("{0}|plural(=00=none,other=#)", OrderedArgs{0}).ToString())
	assert.Equal(t, "0.5 items", e.FormatString(items, NamedArgs{"n": 0.5}).ToString())
}

func TestPluralOperandsFromNumeral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	files := "{n}|plural(one=# file,other=# files)"
	opts := numfmt.DefaultWithGrouping.WithFractionDigits(1, 1)
	one := e.FormatNumber(1, &opts, nil)
	assert.Equal(t, "1.0", one.ToString())
	assert.Equal(t, "1.0 files", e.FormatString(files, NamedArgs{"n": one}).ToString())
	rounded := e.FormatNumber(1.04, &opts, nil)
	assert.Equal(t, "1.0 files", e.FormatString(files, NamedArgs{"n": rounded}).ToString())
	assert.Equal(t, "1 file", e.FormatString(files, NamedArgs{"n": e.FormatNumber(1, nil, nil)}).ToString())
}

func TestTableTexts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	greeting := e.FromTable("app", "hello", "Hello, {0}!")
	msg := e.Format(greeting, OrderedArgs{"Ann"})
	assert.Equal(t, "Hello, Ann!", msg.ToString())
	assert.True(t, greeting.IsFromStringTable())
	id, ok := greeting.TableID()
	require.True(t, ok)
	assert.Equal(t, loctable.ID{Namespace: "app", Key: "hello"}, id)
	same := e.FromTable("app", "hello", "Hello, {0}!")
	assert.True(t, same.IdenticalTo(greeting))
	require.True(t, e.Table().UpdateDisplayString("app", "hello", "Hallo, {0}!"))
	assert.Equal(t, "Hallo, {0}!", greeting.ToString())
	assert.Equal(t, "Hallo, Ann!", msg.ToString())
	assert.Equal(t, "Hello, Ann!", msg.BuildSourceString())
	found, ok := e.FindInTable("app", "hello", loctable.Hash("Hello, {0}!"))
	require.True(t, ok)
	assert.Equal(t, "Hallo, {0}!", found.ToString())
	_, ok = e.FindInTable("app", "hello", loctable.Hash("Hi"))
	assert.False(t, ok)
	collision := e.FromTable("app", "hello", "Howdy")
	assert.Equal(t, "Hello, {0}!", collision.BuildSourceString(), "first source wins")
}

func TestCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	a, b := e.FromString("apple"), e.FromString("APPLE")
	assert.True(t, a.EqualTo(b, culture.Primary))
	assert.False(t, a.EqualTo(b, culture.Tertiary))
	assert.False(t, a.EqualTo(b, culture.Quinary))
	assert.True(t, a.EqualTo(e.FromString("apple"), culture.Quinary))
	assert.Equal(t, -1, a.CompareTo(e.FromString("banana"), culture.Tertiary))
	var zero Text
	assert.Equal(t, 0, zero.CompareTo(Text{}, culture.Primary))
	assert.True(t, zero.IsEmpty())
	assert.True(t, zero.IdenticalTo(Text{}))
	assert.False(t, zero.IdenticalTo(a))
}

func TestFrozen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	n := e.FormatNumber(1234.5, nil, nil).Frozen()
	assert.True(t, n.IsImmutable())
	require.NoError(t, e.SetCurrentCulture("de-DE"))
	assert.Equal(t, "1,234.5", n.ToString())
	assert.Equal(t, e.Revision(), n.StampedRevision())
}

func TestEngineWordWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lingua.text")
	defer teardown()
	//
	e := newTestEngine(t, false)
	s := "The quick brown fox"
	spans, err := e.WordWrap(s, wordwrap.FitsWidth(9, nil))
	require.NoError(t, err)
	assert.Equal(t, []wordwrap.Span{{Start: 0, End: 9}, {Start: 10, End: 19}}, spans)
	assert.Equal(t, 0, e.Pool().Live())
}
