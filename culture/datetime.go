package culture

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DateKind distinguishes date, time and combined date-time formatting.
type DateKind int8

// Date kinds.
const (
	AsDate DateKind = iota
	AsTime
	AsDateTime
)

func (k DateKind) String() string {
	switch k {
	case AsTime:
		return "AsTime"
	case AsDateTime:
		return "AsDateTime"
	}
	return "AsDate"
}

// DateStyle selects the verbosity of date and time output.
type DateStyle int8

// Date styles. DefaultStyle is MediumStyle.
const (
	DefaultStyle DateStyle = iota
	ShortStyle
	MediumStyle
	LongStyle
	FullStyle
)

var dateStyleNames = [...]string{"Default", "Short", "Medium", "Long", "Full"}

func (s DateStyle) String() string {
	if s < 0 || int(s) >= len(dateStyleNames) {
		return fmt.Sprintf("DateStyle(%d)", s)
	}
	return dateStyleNames[s]
}

// ParseDateStyle finds a date style by (case-sensitive) name.
func ParseDateStyle(name string) (DateStyle, bool) {
	for i, n := range dateStyleNames {
		if n == name {
			return DateStyle(i), true
		}
	}
	return DefaultStyle, false
}

func (s DateStyle) index() int {
	if s <= DefaultStyle || s > FullStyle {
		return 1 // medium
	}
	return int(s) - 1
}

// DateFormatter renders points in time for one culture, style and time zone.
//
// Patterns use a subset of the CLDR date pattern syntax: y, yy (year),
// M, MM, MMM, MMMM (month), d, dd (day), E, EEEE (weekday), H, HH (hour
// 0-23), h, hh (hour 1-12), m, mm, s, ss, a (AM/PM), z (zone abbreviation),
// zzzz (zone name). Text in single quotes is copied verbatim, two single
// quotes yield one.
type DateFormatter struct {
	kind    DateKind
	pattern string
	names   *DateTimeData
	loc     *time.Location
}

// Format renders t in the time zone of f.
func (f *DateFormatter) Format(t time.Time) string {
	return formatPattern(t.In(f.loc), f.pattern, f.names)
}

// Pattern returns the CLDR pattern of f.
func (f *DateFormatter) Pattern() string { return f.pattern }

// Location returns the time zone of f.
func (f *DateFormatter) Location() *time.Location { return f.loc }

// Kind returns the kind of output f produces.
func (f *DateFormatter) Kind() DateKind { return f.kind }

type dateKey struct {
	kind      DateKind
	dateStyle DateStyle
	timeStyle DateStyle
	zone      string
}

type dateCache struct {
	mu   sync.Mutex
	dflt [3]*DateFormatter // default styles, default time zone
	lru  *lru.Cache[dateKey, *DateFormatter]
}

func (dc *dateCache) init(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	dc.lru, _ = lru.New[dateKey, *DateFormatter](capacity)
}

// DateFormatter returns a formatter for dates. zone is an IANA time zone
// ID; the empty ID selects the registry's default time zone.
func (c *Culture) DateFormatter(style DateStyle, zone string) *DateFormatter {
	return c.dateFormatter(AsDate, style, DefaultStyle, zone)
}

// TimeFormatter returns a formatter for times of day.
func (c *Culture) TimeFormatter(style DateStyle, zone string) *DateFormatter {
	return c.dateFormatter(AsTime, DefaultStyle, style, zone)
}

// DateTimeFormatter returns a formatter for dates with times of day.
func (c *Culture) DateTimeFormatter(dateStyle, timeStyle DateStyle, zone string) *DateFormatter {
	return c.dateFormatter(AsDateTime, dateStyle, timeStyle, zone)
}

func (c *Culture) dateFormatter(kind DateKind, dateStyle, timeStyle DateStyle, zone string) *DateFormatter {
	loc := c.registry.loadLocation(zone)
	isDefaultZone := loc.String() == c.registry.location.String()
	if dateStyle.index() == DefaultStyle.index() && timeStyle.index() == DefaultStyle.index() && isDefaultZone {
		c.dates.mu.Lock()
		defer c.dates.mu.Unlock()
		if c.dates.dflt[kind] == nil {
			c.dates.dflt[kind] = c.newDateFormatter(kind, dateStyle, timeStyle, c.registry.location)
		}
		return c.dates.dflt[kind]
	}
	key := dateKey{kind: kind, dateStyle: dateStyle, timeStyle: timeStyle, zone: loc.String()}
	if f, ok := c.dates.lru.Get(key); ok {
		return f
	}
	f := c.newDateFormatter(kind, dateStyle, timeStyle, loc)
	c.dates.lru.Add(key, f)
	return f
}

func (c *Culture) newDateFormatter(kind DateKind, dateStyle, timeStyle DateStyle, loc *time.Location) *DateFormatter {
	dt := &c.data.DateTime
	var pattern string
	switch kind {
	case AsDate:
		pattern = dt.DatePatterns[dateStyle.index()]
	case AsTime:
		pattern = dt.TimePatterns[timeStyle.index()]
	default:
		join := dt.DateTimeJoin
		if join == "" {
			join = "{1} {0}"
		}
		pattern = strings.NewReplacer("{1}", dt.DatePatterns[dateStyle.index()],
			"{0}", dt.TimePatterns[timeStyle.index()]).Replace(join)
	}
	tracer().P("culture", c.data.Name).Debugf("new %s formatter %q in %s", kind, pattern, loc)
	return &DateFormatter{kind: kind, pattern: pattern, names: dt, loc: loc}
}

// formatPattern renders t according to a CLDR date pattern.
func formatPattern(t time.Time, pattern string, names *DateTimeData) string {
	var b strings.Builder
	p := []rune(pattern)
	for i := 0; i < len(p); {
		c := p[i]
		if c == '\'' {
			if i+1 < len(p) && p[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			for j < len(p) {
				if p[j] == '\'' {
					if j+1 < len(p) && p[j+1] == '\'' {
						b.WriteRune('\'')
						j += 2
						continue
					}
					break
				}
				b.WriteRune(p[j])
				j++
			}
			i = j + 1
			continue
		}
		if !isPatternLetter(c) {
			b.WriteRune(c)
			i++
			continue
		}
		n := 1
		for i+n < len(p) && p[i+n] == c {
			n++
		}
		writeField(&b, t, c, n, names)
		i += n
	}
	return b.String()
}

func isPatternLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func writeField(b *strings.Builder, t time.Time, c rune, n int, names *DateTimeData) {
	switch c {
	case 'y':
		if n == 2 {
			b.WriteString(pad(t.Year()%100, 2))
		} else {
			b.WriteString(pad(t.Year(), n))
		}
	case 'M':
		m := int(t.Month())
		switch {
		case n >= 4:
			b.WriteString(names.Months[m-1])
		case n == 3:
			b.WriteString(names.MonthsAbbr[m-1])
		default:
			b.WriteString(pad(m, n))
		}
	case 'd':
		b.WriteString(pad(t.Day(), n))
	case 'E':
		if n >= 4 {
			b.WriteString(names.Days[t.Weekday()])
		} else {
			b.WriteString(names.DaysAbbr[t.Weekday()])
		}
	case 'H':
		b.WriteString(pad(t.Hour(), n))
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		b.WriteString(pad(h, n))
	case 'm':
		b.WriteString(pad(t.Minute(), n))
	case 's':
		b.WriteString(pad(t.Second(), n))
	case 'a':
		if t.Hour() < 12 {
			b.WriteString(names.AM)
		} else {
			b.WriteString(names.PM)
		}
	case 'z':
		if n >= 4 {
			b.WriteString(t.Location().String())
		} else {
			abbr, _ := t.Zone()
			b.WriteString(abbr)
		}
	default:
		b.WriteString(strings.Repeat(string(c), n))
	}
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
