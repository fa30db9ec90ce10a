package text

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/npillmayer/lingua/arena"
	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/loctable"
)

// Flags qualify a Text.
type Flags uint8

// Text flags. Transient texts are generated at runtime and never
// localized. CultureInvariant texts do not depend on the current culture.
// Immutable texts keep their display string even if they are stale.
const (
	Transient Flags = 1 << iota
	CultureInvariant
	Immutable
)

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	s := ""
	for i, name := range []string{"Transient", "CultureInvariant", "Immutable"} {
		if f&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	return s
}

// Text is a culture-aware text value. Texts are small handles and are
// meant to be copied; copies share their display string.
//
// The zero Text is empty.
type Text struct {
	d *textData
}

type textData struct {
	engine  *Engine
	handle  arena.Handle
	history History
	flags   Flags
	mu      sync.Mutex
	stamp   uint64
}

type slotRef struct {
	arena  *arena.Arena
	handle arena.Handle
}

func (e *Engine) newText(display string, h History, flags Flags) Text {
	d := &textData{
		engine:  e,
		handle:  e.arena.Alloc(display),
		history: h,
		flags:   flags,
		stamp:   e.Revision(),
	}
	runtime.AddCleanup(d, func(ref slotRef) {
		ref.arena.Release(ref.handle)
	}, slotRef{e.arena, d.handle})
	return Text{d: d}
}

// FromString creates a literal text. Literal texts never change.
func (e *Engine) FromString(s string) Text {
	return e.newText(s, literal{source: s}, 0)
}

// AsCultureInvariant creates a literal text flagged as independent of
// any culture.
func (e *Engine) AsCultureInvariant(s string) Text {
	return e.newText(s, literal{source: s}, CultureInvariant)
}

// AsTransient creates a literal text which is generated at runtime and
// must not be gathered for localization.
func (e *Engine) AsTransient(s string) Text {
	return e.newText(s, literal{source: s}, Transient)
}

// FromTable creates a text for an entry of the localization table,
// registering source for the entry if it does not exist yet. The text
// follows changes of the entry's translation.
func (e *Engine) FromTable(namespace, key, source string) Text {
	h := e.table.GetOrCreate(namespace, key, source)
	src, ok := e.table.Source(namespace, key)
	if !ok {
		src = source
	}
	d := &textData{
		engine:  e,
		handle:  h,
		history: tableLookup{namespace: namespace, key: key, source: src},
		stamp:   e.Revision(),
	}
	return Text{d: d}
}

// FindInTable creates a text for an existing entry of the localization
// table. The entry's source has to hash to sourceHash, unless sourceHash
// is 0.
func (e *Engine) FindInTable(namespace, key string, sourceHash uint64) (Text, bool) {
	h, ok := e.table.Find(namespace, key, sourceHash)
	if !ok {
		return Text{}, false
	}
	src, _ := e.table.Source(namespace, key)
	d := &textData{
		engine:  e,
		handle:  h,
		history: tableLookup{namespace: namespace, key: key, source: src},
		stamp:   e.Revision(),
	}
	return Text{d: d}, true
}

// failure produces the result of a failed operation.
func (e *Engine) failure(op string, err error) Text {
	if s := e.diagnostic(op, err); s != "" {
		return e.AsTransient(s)
	}
	return Text{}
}

// diagnostic logs err and returns the diagnostic text for it, if error
// reporting is enabled.
func (e *Engine) diagnostic(op string, err error) string {
	tracer().P("op", op).Errorf("%v", err)
	if e.reportErrors {
		return fmt.Sprintf("<%s: %v>", op, err)
	}
	return ""
}

// ToString returns the display string of t. If t is stale and its History
// can be rebuilt, the display string is rebuilt first; every copy of t
// sees the new display string.
func (t Text) ToString() string {
	d := t.d
	if d == nil {
		return ""
	}
	e := d.engine
	d.mu.Lock()
	defer d.mu.Unlock()
	rev := e.Revision()
	if d.stamp != rev && d.flags&Immutable == 0 && d.history.CanRebuild() {
		s := d.history.rebuild(e, e.CurrentCulture())
		e.arena.Set(d.handle, s)
		tracer().Debugf("rebuilt %q at revision %d", s, rev)
	}
	d.stamp = rev
	s, _ := e.arena.Get(d.handle)
	return s
}

func (t Text) String() string {
	return t.ToString()
}

// BuildSourceString returns the display string of t as it would be in the
// invariant culture with untranslated table entries.
func (t Text) BuildSourceString() string {
	if t.d == nil {
		return ""
	}
	return t.d.history.sourceString(t.d.engine)
}

// StampedRevision is the global revision t was last brought up to date at.
func (t Text) StampedRevision() uint64 {
	if t.d == nil {
		return 0
	}
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	return t.d.stamp
}

// IdenticalTo reports whether t and other share their display string.
// It does not compare contents.
func (t Text) IdenticalTo(other Text) bool {
	if t.d == nil || other.d == nil {
		return t.d == other.d
	}
	return t.d.engine == other.d.engine && t.d.handle == other.d.handle
}

// CompareTo compares t to other with the collator of the current culture.
func (t Text) CompareTo(other Text, strength culture.Strength) int {
	e := t.engine()
	if e == nil {
		e = other.engine()
	}
	if e == nil {
		return 0 // both are zero texts
	}
	return e.CurrentCulture().Collator(strength).Compare(t.ToString(), other.ToString())
}

// EqualTo reports whether t and other are equal with respect to the
// collator of the current culture.
func (t Text) EqualTo(other Text, strength culture.Strength) bool {
	return t.CompareTo(other, strength) == 0
}

func (t Text) engine() *Engine {
	if t.d == nil {
		return nil
	}
	return t.d.engine
}

// Flags returns the flags of t.
func (t Text) Flags() Flags {
	if t.d == nil {
		return 0
	}
	return t.d.flags
}

// IsEmpty reports whether the display string of t is empty.
func (t Text) IsEmpty() bool {
	return t.ToString() == ""
}

// IsTransient reports whether t is flagged Transient.
func (t Text) IsTransient() bool { return t.Flags()&Transient != 0 }

// IsCultureInvariant reports whether t is flagged CultureInvariant.
func (t Text) IsCultureInvariant() bool { return t.Flags()&CultureInvariant != 0 }

// IsImmutable reports whether t is flagged Immutable.
func (t Text) IsImmutable() bool { return t.Flags()&Immutable != 0 }

// IsNumeric reports whether t is the result of formatting a number.
func (t Text) IsNumeric() bool {
	if t.d == nil {
		return false
	}
	_, ok := t.d.history.(numberFormat)
	return ok
}

// IsFromStringTable reports whether t displays an entry of the
// localization table.
func (t Text) IsFromStringTable() bool {
	if t.d == nil {
		return false
	}
	_, ok := t.d.history.(tableLookup)
	return ok
}

// TableID returns the localization table entry t displays.
func (t Text) TableID() (loctable.ID, bool) {
	if t.d == nil {
		return loctable.ID{}, false
	}
	return t.d.engine.table.TableID(t.d.handle)
}

// History returns how t was made.
func (t Text) History() History {
	if t.d == nil {
		return nil
	}
	return t.d.history
}

// Frozen returns a copy of t which keeps its current display string.
func (t Text) Frozen() Text {
	if t.d == nil {
		return t
	}
	s := t.ToString()
	return t.d.engine.newText(s, t.d.history, t.d.flags|Immutable)
}
