package scheduling

// DayUsable applies the days-mode feasibility rules: the day must be a
// working day, must not carry a blocked date key, and the merged blocked
// overlap with its working window must not exceed the partial-block
// threshold (exactly the threshold is still usable).
func DayUsable(day ZonedTime, week WeekAvailability, blocks *BlockSet) bool {
	w := week[day.Weekday()]
	if !w.Available {
		return false
	}
	if blocks.IsBlockedDate(day.DateKey()) {
		return false
	}
	windowStart := day.AtMinute(w.StartMinute).Instant()
	windowEnd := day.AtMinute(w.EndMinute).Instant()
	return blocks.OverlapWithin(windowStart, windowEnd) <= PartialBlockThreshold
}

// SlotFeasibleAt checks a concrete hours-mode slot: it must lie entirely
// within the day's working window and overlap no blocked interval at all.
func SlotFeasibleAt(start ZonedTime, durationMinutes int, week WeekAvailability, blocks *BlockSet) bool {
	day := start.StartOfDay()
	w := week[day.Weekday()]
	if !w.Available || blocks.IsBlockedDate(day.DateKey()) {
		return false
	}
	startMinute := start.MinuteOfDay()
	if startMinute < w.StartMinute || startMinute+durationMinutes > w.EndMinute {
		return false
	}
	return !blocks.OverlapsAny(start.Instant(), day.AtMinute(startMinute+durationMinutes).Instant())
}
