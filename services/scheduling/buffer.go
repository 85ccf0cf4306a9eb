package scheduling

import (
	"time"

	"worklane/models"
)

// BufferEnd extends an execution end by the buffer duration. An hours-unit
// buffer is a plain tail-end delay in either mode (no working-hours
// re-walk). A days-unit buffer consumes whole working days starting the day
// after execution ends, walked with the same day-counting as the proposal
// search, and lands on the resulting day's working-hours end.
func (s *search) BufferEnd(executionEnd time.Time, buffer models.Duration) time.Time {
	if buffer.IsZero() {
		return executionEnd
	}

	if buffer.Unit == models.UnitHours {
		return executionEnd.Add(time.Duration(buffer.Value) * time.Hour)
	}

	p := s.primary()
	day := ZonedTimeIn(executionEnd, p.loc).StartOfDay().AddDays(1)
	remaining := buffer.Value
	for off := 0; off < s.horizon; off++ {
		d := day.AddDays(off)
		if !s.dayCounts(d) {
			continue
		}
		remaining--
		if remaining == 0 {
			w := p.week[d.Weekday()]
			return d.AtMinute(w.EndMinute).Instant()
		}
	}
	// Horizon exhausted; report the last walked day's close rather than
	// nothing, keeping the result conservative.
	last := day.AddDays(s.horizon - 1)
	w := p.week[last.Weekday()]
	return last.AtMinute(w.EndMinute).Instant()
}
