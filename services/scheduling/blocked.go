package scheduling

import (
	"sort"
	"time"

	"worklane/models"

	"go.uber.org/zap"
)

// interval is a half-open [start, end) instant range.
type interval struct {
	start time.Time
	end   time.Time
}

func (iv interval) empty() bool { return !iv.end.After(iv.start) }

// BlockSet aggregates everything that makes a resource's time unusable:
// single blocked date keys (holidays tracked separately), and instant
// intervals derived from blocked ranges and sibling bookings. It is a pure
// read aggregation; nothing here mutates persisted state.
type BlockSet struct {
	dates     map[string]bool
	holidays  map[string]bool
	intervals []interval // sorted and merged by finalize
}

// NewBlockSet returns an empty aggregation.
func NewBlockSet() *BlockSet {
	return &BlockSet{
		dates:    make(map[string]bool),
		holidays: make(map[string]bool),
	}
}

// BuildBlockSet collects a resource's personal and company blocks plus the
// execution and buffer intervals of its non-terminal sibling bookings.
func BuildBlockSet(res models.Resource, siblings []models.Booking, loc *time.Location) *BlockSet {
	bs := NewBlockSet()
	logger := zap.L()

	addDates := func(dates []models.BlockedDate) {
		for _, bd := range dates {
			if _, err := DayFromKey(bd.Date, loc); err != nil {
				logger.Warn("skipping malformed blocked date",
					zap.String("resourceID", res.ID), zap.String("date", bd.Date))
				continue
			}
			bs.AddDate(bd.Date, bd.Holiday)
		}
	}
	addRanges := func(ranges []models.BlockedRange) {
		for _, br := range ranges {
			from, err1 := DayFromKey(br.StartDate, loc)
			to, err2 := DayFromKey(br.EndDate, loc)
			if err1 != nil || err2 != nil || to.Instant().Before(from.Instant()) {
				logger.Warn("skipping malformed blocked range",
					zap.String("resourceID", res.ID),
					zap.String("from", br.StartDate), zap.String("to", br.EndDate))
				continue
			}
			bs.AddDateRange(from, to, br.Holiday)
		}
	}

	addDates(res.BlockedDates)
	addDates(res.CompanyBlockedDates)
	addRanges(res.BlockedRanges)
	addRanges(res.CompanyBlockedRanges)

	for _, b := range siblings {
		if b.Terminal() {
			continue
		}
		if !bookedBy(b, res.ID) {
			continue
		}
		// Execution blocks [start, executionEnd); the buffer tail blocks
		// separately through the scheduled end (already day-aligned for
		// days-mode bookings when it was written).
		bs.AddInterval(b.ScheduledStart, b.ExecutionEnd)
		if b.ScheduledEnd.After(b.ExecutionEnd) {
			bs.AddInterval(b.ExecutionEnd, b.ScheduledEnd)
		}
	}

	bs.finalize()
	return bs
}

func bookedBy(b models.Booking, resourceID string) bool {
	for _, id := range b.ResourceIDs {
		if id == resourceID {
			return true
		}
	}
	return false
}

// AddDate marks a single date key blocked.
func (bs *BlockSet) AddDate(key string, holiday bool) {
	bs.dates[key] = true
	if holiday {
		bs.holidays[key] = true
	}
}

// AddDateRange marks every day from from through to (inclusive) blocked.
func (bs *BlockSet) AddDateRange(from, to ZonedTime, holiday bool) {
	for day := from.StartOfDay(); !day.Instant().After(to.Instant()); day = day.AddDays(1) {
		bs.AddDate(day.DateKey(), holiday)
	}
}

// AddInterval records a half-open blocked instant range.
func (bs *BlockSet) AddInterval(start, end time.Time) {
	iv := interval{start: start, end: end}
	if iv.empty() {
		return
	}
	bs.intervals = append(bs.intervals, iv)
}

// finalize sorts and merges adjacent/overlapping intervals so overlap sums
// never double count.
func (bs *BlockSet) finalize() {
	if len(bs.intervals) < 2 {
		return
	}
	sort.Slice(bs.intervals, func(i, j int) bool {
		return bs.intervals[i].start.Before(bs.intervals[j].start)
	})
	merged := bs.intervals[:1]
	for _, iv := range bs.intervals[1:] {
		last := &merged[len(merged)-1]
		if !iv.start.After(last.end) {
			if iv.end.After(last.end) {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	bs.intervals = merged
}

// IsBlockedDate reports whether the date key is blocked outright.
func (bs *BlockSet) IsBlockedDate(key string) bool { return bs.dates[key] }

// IsHoliday reports whether the date key is holiday-flagged. Holidays
// additionally suspend preparation-day counting.
func (bs *BlockSet) IsHoliday(key string) bool { return bs.holidays[key] }

// OverlapWithin sums blocked time inside [start, end). Intervals are
// already merged, so the sum is exact.
func (bs *BlockSet) OverlapWithin(start, end time.Time) time.Duration {
	var total time.Duration
	for _, iv := range bs.intervals {
		if !iv.start.Before(end) {
			break
		}
		s, e := iv.start, iv.end
		if s.Before(start) {
			s = start
		}
		if e.After(end) {
			e = end
		}
		if e.After(s) {
			total += e.Sub(s)
		}
	}
	return total
}

// OverlapsAny reports whether [start, end) touches any blocked interval.
func (bs *BlockSet) OverlapsAny(start, end time.Time) bool {
	for _, iv := range bs.intervals {
		if !iv.start.Before(end) {
			return false
		}
		if iv.end.After(start) {
			return true
		}
	}
	return false
}
