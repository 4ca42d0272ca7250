package clock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondsAlwaysTwoDigits(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for s := 0; s < 60; s++ {
		got := Seconds(base.Add(time.Duration(s) * time.Second))
		require.Len(t, got, 2)
		assert.GreaterOrEqual(t, got, "00")
		assert.LessOrEqual(t, got, "59")
	}
	assert.Equal(t, "07", Seconds(base.Add(7*time.Second)))
}

func TestPeriodBoundary(t *testing.T) {
	for h := 0; h < 24; h++ {
		tm := time.Date(2026, 3, 1, h, 30, 0, 0, time.UTC)
		want := "AM"
		if h >= 12 {
			want = "PM"
		}
		assert.Equal(t, want, Period(tm), "hour %d", h)
	}
}

func TestHoursMinutes(t *testing.T) {
	tm := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "15:04", HoursMinutes(tm, Hour24))
	assert.Equal(t, "03:04:05", HoursMinutes(tm, Hour12))

	midnight := time.Date(2026, 3, 1, 0, 9, 0, 0, time.UTC)
	assert.Equal(t, "00:09", HoursMinutes(midnight, Hour24))
	assert.Equal(t, "12:09:00", HoursMinutes(midnight, Hour12))
}

func TestDateFormats(t *testing.T) {
	tm := time.Date(2026, 7, 4, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-07-04", Date(tm, DateISO))
	assert.Equal(t, "Saturday, July 4, 2026", Date(tm, DateLong))
}

func TestWeekdayAbbrev(t *testing.T) {
	// 2026-03-01 is a Sunday.
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	want := []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
	for i, w := range want {
		assert.Equal(t, w, WeekdayAbbrev(start.AddDate(0, 0, i)))
	}
}

func TestWeekdayUsesInstantLocation(t *testing.T) {
	// 23:30 UTC Saturday is already Sunday in Tokyo.
	tm := time.Date(2026, 3, 7, 23, 30, 0, 0, time.UTC)
	tokyo, err := LoadZone("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "SAT", WeekdayAbbrev(tm))
	assert.Equal(t, "SUN", WeekdayAbbrev(tm.In(tokyo)))
}

func TestTimeInZoneAppliesDST(t *testing.T) {
	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	jul := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)

	winter, err := TimeInZone(jan, "America/New_York", Hour24)
	require.NoError(t, err)
	summer, err := TimeInZone(jul, "America/New_York", Hour24)
	require.NoError(t, err)

	assert.Equal(t, "07:00", winter)
	assert.Equal(t, "08:00", summer)
}

func TestTimeInZoneIndependentOfViewerZone(t *testing.T) {
	utc := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	la, err := LoadZone("America/Los_Angeles")
	require.NoError(t, err)

	a, err := TimeInZone(utc, "Asia/Shanghai", Hour24)
	require.NoError(t, err)
	b, err := TimeInZone(utc.In(la), "Asia/Shanghai", Hour24)
	require.NoError(t, err)

	assert.Equal(t, "20:00", a)
	assert.Equal(t, a, b)
}

func TestTimeInZoneTwelveHour(t *testing.T) {
	utc := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	got, err := TimeInZone(utc, "Asia/Tokyo", Hour12)
	require.NoError(t, err)
	assert.Equal(t, "09:00 PM", got)
}

func TestUTCOffsetLabel(t *testing.T) {
	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	jul := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		tz   string
		at   time.Time
		want string
	}{
		{"Asia/Tokyo", jan, "GMT+9"},
		{"America/New_York", jan, "GMT-5"},
		{"America/New_York", jul, "GMT-4"},
		{"Asia/Kolkata", jan, "GMT+5:30"},
		{"Europe/London", jan, "GMT"},
		{"Europe/London", jul, "GMT+1"},
		{"America/St_Johns", jan, "GMT-3:30"},
	}
	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			got, err := UTCOffsetLabel(tt.at, tt.tz)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvalidTimezone(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	for _, tz := range []string{"", "Local", "Mars/Olympus_Mons", "not a zone"} {
		_, err := TimeInZone(now, tz, Hour24)
		assert.True(t, errors.Is(err, ErrInvalidTimezone), "TimeInZone(%q) err = %v", tz, err)

		_, err = UTCOffsetLabel(now, tz)
		assert.True(t, errors.Is(err, ErrInvalidTimezone), "UTCOffsetLabel(%q) err = %v", tz, err)
	}
}

func TestLoadZoneCaches(t *testing.T) {
	a, err := LoadZone("Europe/Paris")
	require.NoError(t, err)
	b, err := LoadZone("Europe/Paris")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.True(t, ValidZone("Europe/Paris"))
	assert.False(t, ValidZone("Europe/Atlantis"))
}

func TestFormatFace(t *testing.T) {
	tm := time.Date(2026, 7, 4, 18, 5, 9, 0, time.UTC)

	f := Format(tm, Options{Hour: Hour24, Date: DateISO})
	assert.Equal(t, Face{Time: "18:05", Seconds: "09", Date: "2026-07-04", Weekday: "SAT"}, f)

	f = Format(tm, Options{Hour: Hour12, Date: DateLong})
	assert.Equal(t, "06:05:09", f.Time)
	assert.Equal(t, "PM", f.Period)
	assert.Equal(t, "Saturday, July 4, 2026", f.Date)
}

func TestFormatZone(t *testing.T) {
	tm := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	zt, err := FormatZone(tm, "Asia/Tokyo", Hour24)
	require.NoError(t, err)
	assert.Equal(t, ZoneTime{Timezone: "Asia/Tokyo", Time: "21:00", Offset: "GMT+9"}, zt)

	_, err = FormatZone(tm, "Nowhere/Special", Hour24)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestParseFormats(t *testing.T) {
	h, err := ParseHourFormat("12h")
	require.NoError(t, err)
	assert.Equal(t, Hour12, h)

	h, err = ParseHourFormat("")
	require.NoError(t, err)
	assert.Equal(t, Hour24, h)

	_, err = ParseHourFormat("36h")
	assert.Error(t, err)

	d, err := ParseDateFormat("LONG")
	require.NoError(t, err)
	assert.Equal(t, DateLong, d)

	_, err = ParseDateFormat("julian")
	assert.Error(t, err)

	assert.Equal(t, "12h", Hour12.String())
	assert.Equal(t, "iso", DateISO.String())
}

func TestZoneFromPath(t *testing.T) {
	assert.Equal(t, "Europe/Berlin", zoneFromPath("/usr/share/zoneinfo/Europe/Berlin"))
	assert.Equal(t, "America/Argentina/Buenos_Aires", zoneFromPath("../zoneinfo/America/Argentina/Buenos_Aires"))
	assert.Equal(t, "", zoneFromPath("/etc/timezone"))
}

func TestLocalZoneNameHonorsTZ(t *testing.T) {
	t.Setenv("TZ", ":Asia/Tokyo")
	assert.Equal(t, "Asia/Tokyo", LocalZoneName())
}

func withHostZoneFiles(t *testing.T, localtime, timezone string) {
	t.Helper()
	oldLocal, oldTZ := localtimePath, timezonePath
	localtimePath, timezonePath = localtime, timezone
	t.Cleanup(func() { localtimePath, timezonePath = oldLocal, oldTZ })
}

func TestLocalZoneNameReadsTimezoneFileWhenLocaltimeIsCopied(t *testing.T) {
	dir := t.TempDir()
	localtime := filepath.Join(dir, "localtime")
	require.NoError(t, os.WriteFile(localtime, []byte("TZif2"), 0o644))
	tzfile := filepath.Join(dir, "timezone")
	require.NoError(t, os.WriteFile(tzfile, []byte("# set by installer\nEurope/Vienna\n"), 0o644))

	t.Setenv("TZ", "")
	withHostZoneFiles(t, localtime, tzfile)
	assert.Equal(t, "Europe/Vienna", LocalZoneName())
}

func TestLocalZoneNamePrefersLocaltimeSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "localtime")
	require.NoError(t, os.Symlink("/usr/share/zoneinfo/Asia/Seoul", link))
	tzfile := filepath.Join(dir, "timezone")
	require.NoError(t, os.WriteFile(tzfile, []byte("Europe/Vienna\n"), 0o644))

	t.Setenv("TZ", "")
	withHostZoneFiles(t, link, tzfile)
	assert.Equal(t, "Asia/Seoul", LocalZoneName())
}

func TestZoneFromFileRejectsUnknownZone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timezone")
	require.NoError(t, os.WriteFile(path, []byte("Mars/Olympus_Mons\n"), 0o644))
	assert.Equal(t, "", zoneFromFile(path))
	assert.Equal(t, "", zoneFromFile(filepath.Join(t.TempDir(), "missing")))
}
