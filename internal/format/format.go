// Package format turns journal dates, times and HTML bodies into display text.
package format

import (
	"strings"
	"time"
)

// InvalidDate is shown for values that are not parseable.
const InvalidDate = "Invalid Date"

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

var clockLayouts = []string{
	"15:04:05.999999999",
	"15:04:05",
	"15:04",
}

// Formatter renders dates and times for one locale and display location.
type Formatter struct {
	locale   Locale
	location *time.Location
}

// New builds a Formatter. A nil location means time.Local.
func New(localeName string, location *time.Location) Formatter {
	if location == nil {
		location = time.Local
	}
	return Formatter{locale: ResolveLocale(localeName), location: location}
}

// FormatDate renders a long month-day-year date. Date-only values are calendar
// dates and are never shifted across timezones.
func (f Formatter) FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return InvalidDate
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return f.longDate(t)
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return f.longDate(t.In(f.loc()))
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, f.loc()); err == nil {
			return f.longDate(t)
		}
	}
	return InvalidDate
}

// FormatTime places a wall-clock value on 1970-01-01 UTC and renders its
// hour and minute in the display location. Seconds are accepted but dropped.
func (f Formatter) FormatTime(value string) string {
	value = strings.TrimSpace(value)
	for _, layout := range clockLayouts {
		clock, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		t := time.Date(1970, time.January, 1, clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), time.UTC)
		return f.clock(t.In(f.loc()))
	}
	return InvalidDate
}

func (f Formatter) longDate(t time.Time) string {
	month := f.locale.months[t.Month()-1]
	return f.locale.date(t.Day(), month, t.Year())
}

func (f Formatter) clock(t time.Time) string {
	if f.locale.hour12 {
		return t.Format("03:04 PM")
	}
	return t.Format("15:04")
}

func (f Formatter) loc() *time.Location {
	if f.location == nil {
		return time.Local
	}
	return f.location
}
