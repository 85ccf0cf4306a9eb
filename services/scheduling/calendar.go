package scheduling

import (
	"fmt"
	"time"
)

// ZonedTime couples an absolute instant with the IANA zone whose wall clock
// it is read against. All calendar walking goes through this value type so
// daylight-saving transitions are handled by the zone database instead of
// offset arithmetic, and no date value is ever mutated in place.
type ZonedTime struct {
	t   time.Time
	loc *time.Location
}

// NewZonedTime anchors an instant at the given IANA timezone. An unknown
// zone is an error; callers treat that resource as unavailable.
func NewZonedTime(t time.Time, timezone string) (ZonedTime, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return ZonedTime{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return ZonedTime{t: t.In(loc), loc: loc}, nil
}

// ZonedTimeIn anchors an instant at an already-loaded location.
func ZonedTimeIn(t time.Time, loc *time.Location) ZonedTime {
	return ZonedTime{t: t.In(loc), loc: loc}
}

// Instant returns the absolute instant.
func (z ZonedTime) Instant() time.Time { return z.t }

// Location returns the anchoring zone.
func (z ZonedTime) Location() *time.Location { return z.loc }

// StartOfDay returns midnight of the wall-clock day.
func (z ZonedTime) StartOfDay() ZonedTime {
	y, m, d := z.t.Date()
	return ZonedTime{t: time.Date(y, m, d, 0, 0, 0, 0, z.loc), loc: z.loc}
}

// AddDays moves n wall-clock days forward (or back), keeping the time of day.
func (z ZonedTime) AddDays(n int) ZonedTime {
	return ZonedTime{t: z.t.AddDate(0, 0, n), loc: z.loc}
}

// AtMinute returns the same wall-clock day at the given minute of day.
func (z ZonedTime) AtMinute(minute int) ZonedTime {
	y, m, d := z.t.Date()
	return ZonedTime{t: time.Date(y, m, d, minute/60, minute%60, 0, 0, z.loc), loc: z.loc}
}

// DateKey formats the wall-clock day as "YYYY-MM-DD".
func (z ZonedTime) DateKey() string { return z.t.Format("2006-01-02") }

// Weekday returns the wall-clock weekday.
func (z ZonedTime) Weekday() time.Weekday { return z.t.Weekday() }

// MinuteOfDay returns minutes elapsed since the wall-clock midnight.
func (z ZonedTime) MinuteOfDay() int { return z.t.Hour()*60 + z.t.Minute() }

// SameDay reports whether both values fall on the same wall-clock day.
func (z ZonedTime) SameDay(other ZonedTime) bool {
	return z.DateKey() == other.DateKey()
}

// DayFromKey parses a "YYYY-MM-DD" key into midnight of that day in loc.
func DayFromKey(key string, loc *time.Location) (ZonedTime, error) {
	t, err := time.ParseInLocation("2006-01-02", key, loc)
	if err != nil {
		return ZonedTime{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return ZonedTime{t: t, loc: loc}, nil
}

// ParseClock converts "HH:MM" into minutes since midnight. Malformed input
// fails closed: callers treat the day as unavailable.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock string %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// inclusiveDaySpan counts calendar days from the first day through the last
// day, both included, on the first day's calendar.
func inclusiveDaySpan(first, last ZonedTime) int {
	a := first.StartOfDay().Instant()
	b := ZonedTimeIn(last.Instant(), first.loc).StartOfDay().Instant()
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a).Hours()/24+0.5) + 1
}
