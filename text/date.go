package text

import (
	"time"

	"github.com/npillmayer/lingua/culture"
)

// FormatDate formats the date part of t. zone is a time zone ID like
// "Europe/Berlin"; an empty zone selects the engine's default zone. If c
// is nil, the text follows the current culture.
func (e *Engine) FormatDate(t time.Time, style culture.DateStyle, zone string, c *culture.Culture) Text {
	return e.formatDate(dateFormat{kind: culture.AsDate, value: t, dateStyle: style, zone: zone, culture: c})
}

// FormatTime formats the time of day of t.
func (e *Engine) FormatTime(t time.Time, style culture.DateStyle, zone string, c *culture.Culture) Text {
	return e.formatDate(dateFormat{kind: culture.AsTime, value: t, timeStyle: style, zone: zone, culture: c})
}

// FormatDateTime formats date and time of day of t.
func (e *Engine) FormatDateTime(t time.Time, dateStyle, timeStyle culture.DateStyle, zone string,
	c *culture.Culture) Text {
	//
	return e.formatDate(dateFormat{kind: culture.AsDateTime, value: t, dateStyle: dateStyle,
		timeStyle: timeStyle, zone: zone, culture: c})
}

func (e *Engine) formatDate(h dateFormat) Text {
	return e.newText(h.render(e.cultureOr(h.culture)), h, 0)
}
