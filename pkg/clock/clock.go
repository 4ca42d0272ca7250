// Package clock formats instants for the clock card: the seconds counter,
// the hour/minute face, AM/PM, dates, weekday abbreviations, and wall time
// in named IANA zones.
//
// All formatters are pure. The "local" zone of an instant is the location
// it carries, so callers control it with t.In(loc).
package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimezone is returned when a zone identifier cannot be resolved.
// The formatter never substitutes another zone.
var ErrInvalidTimezone = errors.New("clock: invalid timezone")

// HourFormat selects the hour/minute presentation.
type HourFormat int

const (
	// Hour24 renders "HH:MM".
	Hour24 HourFormat = iota
	// Hour12 renders "hh:mm:ss" and is paired with Period.
	Hour12
)

// String returns the config spelling of the format.
func (f HourFormat) String() string {
	if f == Hour12 {
		return "12h"
	}
	return "24h"
}

// DateFormat selects the date presentation.
type DateFormat int

const (
	// DateISO renders "YYYY-MM-DD".
	DateISO DateFormat = iota
	// DateLong renders "Weekday, Month D, YYYY".
	DateLong
)

// String returns the config spelling of the format.
func (f DateFormat) String() string {
	if f == DateLong {
		return "long"
	}
	return "iso"
}

// ParseHourFormat parses "24h" or "12h". An empty string means 24h.
func ParseHourFormat(s string) (HourFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "24", "24h":
		return Hour24, nil
	case "12", "12h":
		return Hour12, nil
	default:
		return Hour24, fmt.Errorf("clock: unknown hour format %q (want 24h or 12h)", s)
	}
}

// ParseDateFormat parses "iso" or "long". An empty string means iso.
func ParseDateFormat(s string) (DateFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "iso":
		return DateISO, nil
	case "long":
		return DateLong, nil
	default:
		return DateISO, fmt.Errorf("clock: unknown date format %q (want iso or long)", s)
	}
}

var weekdayAbbrevs = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Seconds returns the zero-padded seconds component.
func Seconds(t time.Time) string {
	return fmt.Sprintf("%02d", t.Second())
}

// HoursMinutes returns the main clock face: "HH:MM" for Hour24 or
// "hh:mm:ss" for Hour12.
func HoursMinutes(t time.Time, f HourFormat) string {
	if f == Hour12 {
		return t.Format("03:04:05")
	}
	return t.Format("15:04")
}

// Period returns "PM" when the hour is 12 or later, otherwise "AM".
func Period(t time.Time) string {
	if t.Hour() >= 12 {
		return "PM"
	}
	return "AM"
}

// Date renders the calendar date.
func Date(t time.Time, f DateFormat) string {
	if f == DateLong {
		return t.Format("Monday, January 2, 2006")
	}
	return t.Format("2006-01-02")
}

// WeekdayAbbrev returns SUN..SAT for the instant's day of week.
func WeekdayAbbrev(t time.Time) string {
	return weekdayAbbrevs[t.Weekday()]
}

// TimeInZone renders the wall-clock time observed in the named zone,
// independent of the instant's own location. Hour12 appends the period.
func TimeInZone(t time.Time, tz string, f HourFormat) (string, error) {
	loc, err := LoadZone(tz)
	if err != nil {
		return "", err
	}
	zt := t.In(loc)
	if f == Hour12 {
		return zt.Format("03:04") + " " + Period(zt), nil
	}
	return zt.Format("15:04"), nil
}

// UTCOffsetLabel returns the short offset label in effect for the zone at
// the instant, e.g. "GMT+9", "GMT-4", "GMT+5:30" or "GMT".
func UTCOffsetLabel(t time.Time, tz string) (string, error) {
	loc, err := LoadZone(tz)
	if err != nil {
		return "", err
	}
	_, offset := t.In(loc).Zone()
	return offsetLabel(offset), nil
}

// offsetLabel formats an offset in seconds east of UTC.
func offsetLabel(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes != 0 {
		return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
	}
	return fmt.Sprintf("GMT%s%d", sign, hours)
}
