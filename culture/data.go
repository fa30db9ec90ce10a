package culture

import (
	"github.com/npillmayer/lingua/numfmt"
	"golang.org/x/text/language"
)

// InvariantName is the canonical name of the invariant culture.
const InvariantName = ""

// Provider is a source of locale data.
type Provider interface {
	// Canonicalize maps a locale name to its canonical form. Names
	// designating the invariant culture map to InvariantName.
	Canonicalize(name string) string
	// HasData reports whether real data exists for a canonical name,
	// as opposed to a fallback to root data.
	HasData(name string) bool
	// Data returns the locale data for a canonical name.
	Data(name string) (*LocaleData, error)
}

// LocaleData is everything a culture needs to know about its locale.
type LocaleData struct {
	Name           string
	Tag            language.Tag
	DisplayName    string // in English
	NativeName     string
	Language       string // ISO 639 language code
	Region         string // ISO 3166 region code
	RightToLeft    bool
	Number         numfmt.Rules
	CurrencyCode   string
	CurrencySymbol string
	CurrencyDigits int
	DateTime       DateTimeData
}

// DateTimeData holds date and time patterns and names. Patterns use the
// CLDR pattern syntax, see DateFormatter.
type DateTimeData struct {
	DatePatterns [4]string // short, medium, long, full
	TimePatterns [4]string
	DateTimeJoin string // {1} is replaced by the date, {0} by the time
	Months       [12]string
	MonthsAbbr   [12]string
	Days         [7]string // starting with Sunday
	DaysAbbr     [7]string
	AM, PM       string
}

// invariantData is used for culture-independent output.
func invariantData() *LocaleData {
	return &LocaleData{
		Name:           InvariantName,
		Tag:            language.Und,
		DisplayName:    "Invariant Language (Invariant Country)",
		NativeName:     "Invariant Language (Invariant Country)",
		Language:       "iv",
		Number:         numfmt.InvariantRules,
		CurrencyCode:   "XDR",
		CurrencySymbol: "¤",
		CurrencyDigits: 2,
		DateTime:       dateTimeTable["und"],
	}
}

var englishMonths = [12]string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}
var englishMonthsAbbr = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
var englishDays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday"}
var englishDaysAbbr = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// dateTimeTable holds date and time data per base language. Languages
// without an entry use the root data "und".
var dateTimeTable = map[string]DateTimeData{
	"und": {
		DatePatterns: [4]string{"y-MM-dd", "y MMM d", "y MMMM d", "y MMMM d, EEEE"},
		TimePatterns: [4]string{"HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		DateTimeJoin: "{1} {0}",
		Months:       englishMonths,
		MonthsAbbr:   englishMonthsAbbr,
		Days:         englishDays,
		DaysAbbr:     englishDaysAbbr,
		AM:           "AM",
		PM:           "PM",
	},
	"en": {
		DatePatterns: [4]string{"M/d/yy", "MMM d, y", "MMMM d, y", "EEEE, MMMM d, y"},
		TimePatterns: [4]string{"h:mm a", "h:mm:ss a", "h:mm:ss a z", "h:mm:ss a zzzz"},
		DateTimeJoin: "{1}, {0}",
		Months:       englishMonths,
		MonthsAbbr:   englishMonthsAbbr,
		Days:         englishDays,
		DaysAbbr:     englishDaysAbbr,
		AM:           "AM",
		PM:           "PM",
	},
	"de": {
		DatePatterns: [4]string{"dd.MM.yy", "dd.MM.y", "d. MMMM y", "EEEE, d. MMMM y"},
		TimePatterns: [4]string{"HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		DateTimeJoin: "{1}, {0}",
		Months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		MonthsAbbr: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		Days: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag",
			"Freitag", "Samstag"},
		DaysAbbr: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		AM:       "AM",
		PM:       "PM",
	},
	"fr": {
		DatePatterns: [4]string{"dd/MM/y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
		TimePatterns: [4]string{"HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		DateTimeJoin: "{1} {0}",
		Months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		MonthsAbbr: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc."},
		Days:     [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		DaysAbbr: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		AM:       "AM",
		PM:       "PM",
	},
	"es": {
		DatePatterns: [4]string{"d/M/yy", "d MMM y", "d 'de' MMMM 'de' y", "EEEE, d 'de' MMMM 'de' y"},
		TimePatterns: [4]string{"H:mm", "H:mm:ss", "H:mm:ss z", "H:mm:ss zzzz"},
		DateTimeJoin: "{1}, {0}",
		Months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		MonthsAbbr: [12]string{"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic"},
		Days:     [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		DaysAbbr: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		AM:       "a. m.",
		PM:       "p. m.",
	},
	"ja": {
		DatePatterns: [4]string{"y/MM/dd", "y/MM/dd", "y年M月d日", "y年M月d日EEEE"},
		TimePatterns: [4]string{"H:mm", "H:mm:ss", "H:mm:ss z", "H時mm分ss秒 zzzz"},
		DateTimeJoin: "{1} {0}",
		Months: [12]string{"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月"},
		MonthsAbbr: [12]string{"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月"},
		Days:     [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		DaysAbbr: [7]string{"日", "月", "火", "水", "木", "金", "土"},
		AM:       "午前",
		PM:       "午後",
	},
}

// dateTimeDataFor selects date and time data for a language tag.
func dateTimeDataFor(tag language.Tag) DateTimeData {
	base, _ := tag.Base()
	if dt, ok := dateTimeTable[base.String()]; ok {
		if base.String() == "en" {
			if region, _ := tag.Region(); region.String() != "US" {
				dt.DatePatterns[0] = "dd/MM/y"
				dt.DatePatterns[1] = "d MMM y"
				dt.DatePatterns[2] = "d MMMM y"
				dt.DatePatterns[3] = "EEEE, d MMMM y"
				dt.TimePatterns = dateTimeTable["und"].TimePatterns
			}
		}
		return dt
	}
	tracer().P("locale", tag.String()).Debugf("no date and time names, using root patterns; override with YAML locale data")
	return dateTimeTable["und"]
}

type currencyPatterns struct {
	positive numfmt.PositiveCurrencyPattern
	negative numfmt.NegativeCurrencyPattern
}

// currencyPatternTable holds currency patterns per locale; lookup tries
// language-region first, then the base language.
var currencyPatternTable = map[string]currencyPatterns{
	"en":    {0, 1},  // $n, -$n
	"ja":    {0, 1},
	"zh":    {0, 1},
	"ko":    {0, 1},
	"de":    {3, 8},  // n $, -n $
	"fr":    {3, 8},
	"es":    {3, 8},
	"it":    {3, 8},
	"pt":    {3, 8},
	"ru":    {3, 8},
	"pl":    {3, 8},
	"cs":    {3, 8},
	"fi":    {3, 8},
	"sv":    {3, 8},
	"da":    {3, 8},
	"nb":    {3, 8},
	"nl":    {2, 12}, // $ n, $ -n
	"de-CH": {2, 12},
	"pt-BR": {2, 9},  // $ n, -$ n
}

func currencyPatternsFor(tag language.Tag) currencyPatterns {
	base, _ := tag.Base()
	if region, conf := tag.Region(); conf != language.No {
		if p, ok := currencyPatternTable[base.String()+"-"+region.String()]; ok {
			return p
		}
	}
	if p, ok := currencyPatternTable[base.String()]; ok {
		return p
	}
	return currencyPatterns{0, 1}
}

var rtlScripts = map[string]bool{
	"Arab": true, "Hebr": true, "Thaa": true, "Syrc": true, "Nkoo": true, "Adlm": true,
}
