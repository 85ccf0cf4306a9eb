package scheduling

import (
	"time"

	"worklane/models"
)

// DayWindow is the resolved working window of a single weekday.
type DayWindow struct {
	Available   bool
	StartMinute int
	EndMinute   int
}

// WeekAvailability is a complete 7-day map, indexed by time.Weekday.
type WeekAvailability [7]DayWindow

var weekdayKeys = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// defaultWeek is Mon-Fri 09:00-17:00, weekend off.
func defaultWeek() WeekAvailability {
	var week WeekAvailability
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		week[wd] = DayWindow{
			Available:   wd != time.Saturday && wd != time.Sunday,
			StartMinute: DefaultDayStartMinute,
			EndMinute:   DefaultDayEndMinute,
		}
	}
	return week
}

// informative reports whether a template entry carries any explicit field.
func informative(ds models.DaySchedule) bool {
	return ds.Available != nil || ds.Start != "" || ds.End != ""
}

// ResolveWeekAvailability merges a resource's weekly template with the
// default week. An absent or entirely uninformative template yields the
// defaults; a template with at least one explicit field is respected as-is
// with gaps defaulted. Days whose times fail to parse, or whose window is
// inverted (end <= start), resolve as unavailable.
func ResolveWeekAvailability(weekly map[string]models.DaySchedule) WeekAvailability {
	week := defaultWeek()

	any := false
	for _, ds := range weekly {
		if informative(ds) {
			any = true
			break
		}
	}
	if !any {
		return week
	}

	for key, ds := range weekly {
		wd, ok := weekdayKeys[key]
		if !ok || !informative(ds) {
			continue
		}

		w := week[wd]
		if ds.Available != nil {
			w.Available = *ds.Available
		} else if ds.Start != "" || ds.End != "" {
			// Explicit times without a flag mean the day is worked.
			w.Available = true
		}

		if ds.Start != "" {
			start, err := ParseClock(ds.Start)
			if err != nil {
				w.Available = false
				week[wd] = w
				continue
			}
			w.StartMinute = start
		}
		if ds.End != "" {
			end, err := ParseClock(ds.End)
			if err != nil {
				w.Available = false
				week[wd] = w
				continue
			}
			w.EndMinute = end
		}

		if w.EndMinute <= w.StartMinute {
			w.Available = false
		}
		week[wd] = w
	}

	return week
}

// WorkingMinutes returns the length of the day's window, zero when off.
func (w DayWindow) WorkingMinutes() int {
	if !w.Available {
		return 0
	}
	return w.EndMinute - w.StartMinute
}
