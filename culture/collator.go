package culture

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/collate"
)

// Strength is the level of differences a collator takes into account.
type Strength int8

// Collation strengths.
//
//	Primary     base letters only: "a" = "A" = "á"
//	Secondary   plus accents: "a" = "A" < "á"
//	Tertiary    plus case and variants (default)
//	Quaternary  plus ties broken between canonically different strings
//	Quinary     identical: equal only if byte-identical
const (
	Primary Strength = iota
	Secondary
	Tertiary
	Quaternary
	Quinary
	numStrengths
)

var strengthNames = [...]string{"Primary", "Secondary", "Tertiary", "Quaternary", "Quinary"}

func (s Strength) String() string {
	if s < 0 || s >= numStrengths {
		return fmt.Sprintf("Strength(%d)", s)
	}
	return strengthNames[s]
}

// ParseStrength finds a collation strength by name.
func ParseStrength(name string) (Strength, bool) {
	for i, n := range strengthNames {
		if strings.EqualFold(n, name) {
			return Strength(i), true
		}
	}
	return Tertiary, false
}

// Collator compares strings according to the rules of a culture.
// It is safe for concurrent use.
type Collator struct {
	mu       sync.Mutex // collate.Collator keeps internal buffers
	coll     *collate.Collator
	strength Strength
}

// Collator returns the culture's collator for a strength. Strengths out of
// range select Tertiary.
func (c *Culture) Collator(strength Strength) *Collator {
	if strength < 0 || strength >= numStrengths {
		strength = Tertiary
	}
	c.collMu.Lock()
	defer c.collMu.Unlock()
	if c.collators[strength] == nil {
		c.collators[strength] = newCollator(c, strength)
	}
	return c.collators[strength]
}

func newCollator(c *Culture, strength Strength) *Collator {
	var opts []collate.Option
	switch strength {
	case Primary:
		opts = []collate.Option{collate.IgnoreCase, collate.IgnoreDiacritics, collate.IgnoreWidth}
	case Secondary:
		opts = []collate.Option{collate.IgnoreCase, collate.IgnoreWidth}
	case Quaternary, Quinary:
		opts = []collate.Option{collate.Force}
	}
	tracer().P("culture", c.data.Name).Debugf("new collator with strength %s", strength)
	return &Collator{coll: collate.New(c.data.Tag, opts...), strength: strength}
}

// Strength returns the strength of c.
func (c *Collator) Strength() Strength { return c.strength }

// Compare returns -1, 0 or 1, depending on whether a sorts before, equal
// to or after b.
func (c *Collator) Compare(a, b string) int {
	if c.strength == Quinary && a == b {
		return 0
	}
	c.mu.Lock()
	r := c.coll.CompareString(a, b)
	c.mu.Unlock()
	if r == 0 && c.strength == Quinary {
		return strings.Compare(a, b)
	}
	return r
}

// Equal reports whether a and b are equal at the strength of c.
func (c *Collator) Equal(a, b string) bool {
	return c.Compare(a, b) == 0
}

// Sort sorts a slice of strings in place.
func (c *Collator) Sort(s []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coll.SortStrings(s)
}
