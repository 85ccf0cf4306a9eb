package scheduling

import (
	"testing"
	"time"

	"worklane/models"

	"github.com/stretchr/testify/assert"
)

func avail(b bool) *bool { return &b }

func TestResolveWeekAvailabilityDefaults(t *testing.T) {
	week := ResolveWeekAvailability(nil)

	assert.True(t, week[time.Monday].Available)
	assert.Equal(t, DefaultDayStartMinute, week[time.Monday].StartMinute)
	assert.Equal(t, DefaultDayEndMinute, week[time.Monday].EndMinute)
	assert.False(t, week[time.Saturday].Available)
	assert.False(t, week[time.Sunday].Available)
}

func TestResolveWeekAvailabilityUninformativeTemplate(t *testing.T) {
	week := ResolveWeekAvailability(map[string]models.DaySchedule{
		"monday":  {},
		"tuesday": {},
	})
	assert.True(t, week[time.Monday].Available, "empty entries fall back to defaults")
	assert.True(t, week[time.Friday].Available)
}

func TestResolveWeekAvailabilityExplicitEntries(t *testing.T) {
	week := ResolveWeekAvailability(map[string]models.DaySchedule{
		"monday":   {Start: "08:00", End: "12:00"},
		"saturday": {Available: avail(true)},
		"friday":   {Available: avail(false)},
	})

	// Explicit times without a flag mean the day is worked.
	assert.True(t, week[time.Monday].Available)
	assert.Equal(t, 480, week[time.Monday].StartMinute)
	assert.Equal(t, 720, week[time.Monday].EndMinute)

	// A flag without times gets the default window.
	assert.True(t, week[time.Saturday].Available)
	assert.Equal(t, DefaultDayStartMinute, week[time.Saturday].StartMinute)
	assert.Equal(t, DefaultDayEndMinute, week[time.Saturday].EndMinute)

	assert.False(t, week[time.Friday].Available)

	// Untouched days keep their defaults.
	assert.True(t, week[time.Tuesday].Available)
}

func TestResolveWeekAvailabilityFailsClosed(t *testing.T) {
	week := ResolveWeekAvailability(map[string]models.DaySchedule{
		"monday":    {Start: "garbage", End: "17:00"},
		"tuesday":   {Start: "14:00", End: "09:00"},
		"wednesday": {Available: avail(true), End: "26:00"},
	})

	assert.False(t, week[time.Monday].Available, "unparseable start")
	assert.False(t, week[time.Tuesday].Available, "inverted window")
	assert.False(t, week[time.Wednesday].Available, "out-of-range end")
}

func TestDayWindowWorkingMinutes(t *testing.T) {
	assert.Equal(t, 480, DayWindow{Available: true, StartMinute: 540, EndMinute: 1020}.WorkingMinutes())
	assert.Equal(t, 0, DayWindow{Available: false, StartMinute: 540, EndMinute: 1020}.WorkingMinutes())
}
