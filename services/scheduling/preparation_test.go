package scheduling

import (
	"testing"
	"time"

	"worklane/models"

	"github.com/stretchr/testify/assert"
)

func TestPreparationEndZero(t *testing.T) {
	now := ZonedTimeIn(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), time.UTC)
	week := ResolveWeekAvailability(nil)

	got := PreparationEnd(now, models.Duration{}, week, NewBlockSet())
	assert.Equal(t, now.Instant(), got)
}

func TestPreparationEndDaysSkipsWeekend(t *testing.T) {
	// Thursday 2026-01-01.
	now := ZonedTimeIn(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), time.UTC)
	week := ResolveWeekAvailability(nil)

	got := PreparationEnd(now, models.Duration{Value: 3, Unit: models.UnitDays}, week, NewBlockSet())
	// Thu, Fri, (weekend skipped), Mon counted; prep ends at Tuesday midnight.
	assert.Equal(t, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), got)
}

func TestPreparationEndDaysSkipsHolidays(t *testing.T) {
	now := ZonedTimeIn(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), time.UTC)
	week := ResolveWeekAvailability(nil)

	bs := NewBlockSet()
	bs.AddDate("2026-01-02", true)

	got := PreparationEnd(now, models.Duration{Value: 3, Unit: models.UnitDays}, week, bs)
	// Thu counted, Friday is a holiday, weekend skipped, Mon and Tue counted.
	assert.Equal(t, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), got)
}

func TestPreparationEndDaysIgnoresOrdinaryBlocks(t *testing.T) {
	now := ZonedTimeIn(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), time.UTC)
	week := ResolveWeekAvailability(nil)

	bs := NewBlockSet()
	bs.AddDate("2026-01-02", false)

	got := PreparationEnd(now, models.Duration{Value: 3, Unit: models.UnitDays}, week, bs)
	// A non-holiday block gates execution, not preparation: Friday still counts.
	assert.Equal(t, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), got)
}

func TestPreparationEndHoursSpillsAcrossDays(t *testing.T) {
	// Monday 15:00, default window closes 17:00.
	now := ZonedTimeIn(time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC), time.UTC)
	week := ResolveWeekAvailability(nil)

	got := PreparationEnd(now, models.Duration{Value: 4, Unit: models.UnitHours}, week, NewBlockSet())
	// Two hours fit on Monday, the remaining two resume Tuesday 09:00.
	assert.Equal(t, time.Date(2026, 1, 6, 11, 0, 0, 0, time.UTC), got)
}

func TestPreparationEndHoursSkipsWeekend(t *testing.T) {
	// Friday 16:00 with 2h of prep: one hour Friday, one hour Monday.
	now := ZonedTimeIn(time.Date(2026, 1, 2, 16, 0, 0, 0, time.UTC), time.UTC)
	week := ResolveWeekAvailability(nil)

	got := PreparationEnd(now, models.Duration{Value: 2, Unit: models.UnitHours}, week, NewBlockSet())
	assert.Equal(t, time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), got)
}

func TestPreparationEndHoursBeforeWindowStart(t *testing.T) {
	// Monday 06:00: counting begins at the window start, not at now.
	now := ZonedTimeIn(time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC), time.UTC)
	week := ResolveWeekAvailability(nil)

	got := PreparationEnd(now, models.Duration{Value: 3, Unit: models.UnitHours}, week, NewBlockSet())
	assert.Equal(t, time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC), got)
}
