package culture

import (
	"errors"
	"sort"
	"sync"
	"time"

	jj "github.com/cloudfoundry/jibber_jabber"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// ErrLocaleNotFound is returned for locales without real locale data.
// ErrRegistryClosed is returned by a registry after Close().
var (
	ErrLocaleNotFound = errors.New("culture: locale not found")
	ErrRegistryClosed = errors.New("culture: registry closed")
)

// DefaultCapacity is the default capacity of formatter LRU caches.
const DefaultCapacity = 10

// Registry creates and caches cultures by canonical locale name.
// It is safe for concurrent use. The registry lock is held only while
// looking up or inserting a culture, never while a culture is constructed
// or a formatter is in use.
type Registry struct {
	mu        sync.Mutex
	provider  Provider
	cultures  map[string]*Culture
	group     singleflight.Group
	capacity  int
	location  *time.Location
	zones     *lru.Cache[string, *time.Location]
	invariant *Culture
	closed    bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithCapacity sets the capacity of the formatter LRU caches of cultures.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// WithLocation sets the default time zone of date and time formatters.
func WithLocation(loc *time.Location) Option {
	return func(r *Registry) {
		if loc != nil {
			r.location = loc
		}
	}
}

// NewRegistry creates a registry for cultures with data from provider.
// If provider is nil, only the invariant culture is available.
func NewRegistry(provider Provider, opts ...Option) *Registry {
	r := &Registry{
		provider: provider,
		cultures: make(map[string]*Culture),
		capacity: DefaultCapacity,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.zones, _ = lru.New[string, *time.Location](4 * r.capacity)
	r.invariant = newCulture(invariantData(), r)
	return r
}

// Get returns the culture for a locale name, creating it on first use.
// The name is canonicalized by the provider. Names designating the
// invariant culture return the invariant culture. If the provider has no
// real data for the name, Get returns ErrLocaleNotFound.
func (r *Registry) Get(name string) (*Culture, error) {
	if r.provider == nil {
		if name == InvariantName {
			return r.invariant, nil
		}
		return nil, zerr.With(ErrLocaleNotFound, "locale", name)
	}
	canon := r.provider.Canonicalize(name)
	if canon == InvariantName {
		return r.invariant, nil
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	c, ok := r.cultures[canon]
	r.mu.Unlock()
	if ok {
		return c, nil
	}
	v, err, shared := r.group.Do(canon, func() (any, error) {
		r.mu.Lock()
		c, ok := r.cultures[canon]
		r.mu.Unlock()
		if ok {
			return c, nil
		}
		if !r.provider.HasData(canon) {
			return nil, zerr.With(ErrLocaleNotFound, "locale", name)
		}
		data, err := r.provider.Data(canon)
		if err != nil {
			return nil, zerr.With(err, "locale", canon)
		}
		c = newCulture(data, r)
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed {
			return nil, ErrRegistryClosed
		}
		r.cultures[canon] = c
		tracer().P("locale", canon).Infof("created culture %s", data.DisplayName)
		return c, nil
	})
	if err != nil {
		tracer().P("locale", name).Debugf("no culture: %v", err)
		return nil, err
	}
	if shared {
		tracer().P("locale", canon).Debugf("culture construction shared between callers")
	}
	return v.(*Culture), nil
}

// MustGet is like Get, but falls back to the invariant culture.
func (r *Registry) MustGet(name string) *Culture {
	c, err := r.Get(name)
	if err != nil {
		return r.invariant
	}
	return c
}

// Invariant returns the invariant culture.
func (r *Registry) Invariant() *Culture {
	return r.invariant
}

// Cultures returns the canonical names of all cultures created so far.
func (r *Registry) Cultures() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.cultures))
	for name := range r.cultures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Location returns the default time zone of the registry.
func (r *Registry) Location() *time.Location {
	return r.location
}

// Close drops all cultures. Subsequent calls to Get fail, except for the
// invariant culture.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.cultures = make(map[string]*Culture)
	r.zones.Purge()
}

// loadLocation canonicalizes a time zone ID. The empty ID denotes the
// registry's default zone. Unknown IDs fall back to the default zone.
func (r *Registry) loadLocation(id string) *time.Location {
	if id == "" {
		return r.location
	}
	if loc, ok := r.zones.Get(id); ok {
		return loc
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		tracer().P("timezone", id).Errorf("unknown time zone, using default: %v", err)
		return r.location
	}
	r.zones.Add(id, loc)
	return loc
}

// SystemCultureName detects the user's locale from the environment,
// defaulting to "en-US".
func SystemCultureName() string {
	name, err := jj.DetectIETF()
	if err != nil || name == "" {
		tracer().Debugf("cannot detect user locale: %v", err)
		return "en-US"
	}
	return name
}
