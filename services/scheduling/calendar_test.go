package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:00")
	require.NoError(t, err)
	assert.Equal(t, 540, min)

	min, err = ParseClock("17:30")
	require.NoError(t, err)
	assert.Equal(t, 1050, min)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("nine am")
	assert.Error(t, err)

	_, err = ParseClock("12:75")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "17:30", FormatClock(1050))
}

func TestZonedTimeDayWalking(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 is the spring-forward day in New York.
	z := ZonedTimeIn(time.Date(2026, 3, 7, 9, 0, 0, 0, loc), loc)

	moved := z.AddDays(2)
	assert.Equal(t, "2026-03-09", moved.DateKey())
	assert.Equal(t, 9*60, moved.MinuteOfDay(), "wall clock must survive the DST jump")

	assert.Equal(t, 3, inclusiveDaySpan(z, moved), "span counts calendar days, not 24h chunks")
}

func TestZonedTimeAtMinute(t *testing.T) {
	z := ZonedTimeIn(time.Date(2026, 1, 5, 13, 45, 0, 0, time.UTC), time.UTC)

	at := z.AtMinute(540)
	assert.Equal(t, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), at.Instant())
	assert.Equal(t, 540, at.MinuteOfDay())

	sod := z.StartOfDay()
	assert.Equal(t, 0, sod.MinuteOfDay())
	assert.True(t, sod.SameDay(z))
}

func TestDayFromKey(t *testing.T) {
	day, err := DayFromKey("2026-02-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), day.Instant())

	_, err = DayFromKey("02/01/2026", time.UTC)
	assert.Error(t, err)
}

func TestNewZonedTimeRejectsUnknownZone(t *testing.T) {
	_, err := NewZonedTime(time.Now(), "Mars/Olympus_Mons")
	assert.Error(t, err)
}
