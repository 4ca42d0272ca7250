package clock

import "time"

// Options bundles the presentation modes of the main card.
type Options struct {
	Hour HourFormat
	Date DateFormat
}

// Face is the fully formatted main card for one instant.
type Face struct {
	Time    string // HoursMinutes output
	Seconds string
	Period  string // empty in 24-hour mode
	Date    string
	Weekday string
}

// Format renders every card field for t.
func Format(t time.Time, opts Options) Face {
	f := Face{
		Time:    HoursMinutes(t, opts.Hour),
		Seconds: Seconds(t),
		Date:    Date(t, opts.Date),
		Weekday: WeekdayAbbrev(t),
	}
	if opts.Hour == Hour12 {
		f.Period = Period(t)
	}
	return f
}

// ZoneTime is one formatted world-clock reading.
type ZoneTime struct {
	Timezone string
	Time     string
	Offset   string
}

// FormatZone renders the time and offset label for tz at t.
func FormatZone(t time.Time, tz string, f HourFormat) (ZoneTime, error) {
	tm, err := TimeInZone(t, tz, f)
	if err != nil {
		return ZoneTime{}, err
	}
	off, err := UTCOffsetLabel(t, tz)
	if err != nil {
		return ZoneTime{}, err
	}
	return ZoneTime{Timezone: tz, Time: tm, Offset: off}, nil
}
