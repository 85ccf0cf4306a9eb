package scheduling

import (
	"time"

	"worklane/models"
)

// prepSearchCapDays bounds the preparation walk independently of the
// proposal horizon, so a fully-holidayed calendar cannot loop forever.
const prepSearchCapDays = 730

// PreparationEnd advances from now until the preparation duration has
// elapsed in working time. Days-unit preparation consumes whole working,
// non-holiday days and returns the start of the day after the last counted
// one; hours-unit preparation returns the exact instant the remaining
// minutes run out. Non-working and holiday days are skipped without being
// counted. Ordinary blocked intervals gate execution, not preparation.
func PreparationEnd(now ZonedTime, prep models.Duration, week WeekAvailability, blocks *BlockSet) time.Time {
	if prep.IsZero() {
		return now.Instant()
	}

	countable := func(day ZonedTime) bool {
		return week[day.Weekday()].Available && !blocks.IsHoliday(day.DateKey())
	}

	if prep.Unit == models.UnitDays {
		remaining := prep.Value
		day := now.StartOfDay()
		for i := 0; i < prepSearchCapDays; i++ {
			if countable(day) {
				remaining--
				if remaining == 0 {
					return day.AddDays(1).StartOfDay().Instant()
				}
			}
			day = day.AddDays(1)
		}
		return day.Instant()
	}

	// Hours-unit: consume only in-working-hours minutes.
	remaining := prep.Value * 60
	day := now.StartOfDay()
	cursorMinute := now.MinuteOfDay()
	for i := 0; i < prepSearchCapDays; i++ {
		if countable(day) {
			w := week[day.Weekday()]
			start := w.StartMinute
			if i == 0 && cursorMinute > start {
				start = cursorMinute
			}
			if start < w.EndMinute {
				span := w.EndMinute - start
				if span >= remaining {
					return day.AtMinute(start + remaining).Instant()
				}
				remaining -= span
			}
		}
		day = day.AddDays(1)
	}
	return day.Instant()
}
