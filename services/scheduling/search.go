package scheduling

import (
	"math"
	"time"

	"worklane/models"
)

// resourceState is the per-resource snapshot the search walks over:
// resolved availability, aggregated blocks and the resource's own zone.
type resourceState struct {
	res    models.Resource
	loc    *time.Location
	week   WeekAvailability
	blocks *BlockSet
}

func newResourceState(res models.Resource, siblings []models.Booking) (*resourceState, error) {
	tz := res.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		// Fail closed: a resource with a broken zone is unusable.
		return nil, err
	}
	return &resourceState{
		res:    res,
		loc:    loc,
		week:   ResolveWeekAvailability(res.Weekly),
		blocks: BuildBlockSet(res, siblings, loc),
	}, nil
}

// usableOn reports days-mode usability for the calendar date key, read on
// the resource's own wall clock.
func (st *resourceState) usableOn(key string) bool {
	day, err := DayFromKey(key, st.loc)
	if err != nil {
		return false
	}
	return DayUsable(day, st.week, st.blocks)
}

// search is one proposal computation over a fixed snapshot. Single- and
// multi-resource requests run the same walk; the multi case only adds the
// coverage and overlap gates.
type search struct {
	spec         models.ServiceSpec
	states       []*resourceState
	primaryIdx   int
	minResources int
	minOverlap   float64
	horizon      int
	now          time.Time
}

func newSearch(spec models.ServiceSpec, states []*resourceState, horizon int, now time.Time) *search {
	minRes := spec.MinResources
	if minRes < DefaultMinResources {
		minRes = DefaultMinResources
	}
	overlap := spec.MinOverlapPercent
	if overlap <= 0 {
		overlap = DefaultMinOverlapPercent
	}
	if horizon <= 0 {
		horizon = DefaultSearchHorizonDays
	}
	return &search{
		spec:         spec,
		states:       states,
		minResources: minRes,
		minOverlap:   overlap,
		horizon:      horizon,
		now:          now,
	}
}

func (s *search) primary() *resourceState { return s.states[s.primaryIdx] }

// electPrimary picks the resource with the earliest individually usable day
// at or after from; ties (and the no-usable-day case) fall back to input order.
func (s *search) electPrimary(from time.Time) {
	s.primaryIdx = 0
	var bestDay time.Time
	found := false
	for i, st := range s.states {
		day, ok := st.firstUsableDay(from, s.horizon)
		if !ok {
			continue
		}
		if !found || day.Before(bestDay) {
			found = true
			bestDay = day
			s.primaryIdx = i
		}
	}
}

func (st *resourceState) firstUsableDay(from time.Time, horizon int) (time.Time, bool) {
	day := ZonedTimeIn(from, st.loc).StartOfDay()
	for off := 0; off < horizon; off++ {
		d := day.AddDays(off)
		if DayUsable(d, st.week, st.blocks) {
			return d.Instant(), true
		}
	}
	return time.Time{}, false
}

// multi reports whether the crew gates apply at all.
func (s *search) multi() bool {
	return len(s.states) > 1 || s.minResources > 1
}

// dayCounts reports whether a day advances the execution counter. With a
// single resource that is plain day usability. For a crew the counter runs
// over the shared calendar (template working days that are not holidays);
// individual blocks are absorbed by the coverage gates instead of
// stretching the window.
func (s *search) dayCounts(day ZonedTime) bool {
	p := s.primary()
	if !s.multi() {
		return DayUsable(day, p.week, p.blocks)
	}
	return p.week[day.Weekday()].Available && !p.blocks.IsHoliday(day.DateKey())
}

// coveredCount is the number of resources that can work the given date key.
func (s *search) coveredCount(key string) int {
	count := 0
	for _, st := range s.states {
		if st.usableOn(key) {
			count++
		}
	}
	return count
}

// advanceWorkingDays walks forward from start until n counting days have
// been consumed, skipping (not counting) unusable ones. start itself may
// count. Fails when the horizon runs out first.
func (s *search) advanceWorkingDays(start ZonedTime, n int) (ZonedTime, bool) {
	counted := 0
	for off := 0; off < s.horizon; off++ {
		day := start.AddDays(off)
		if s.dayCounts(day) {
			counted++
			if counted == n {
				return day, true
			}
		}
	}
	return ZonedTime{}, false
}

// gatesPass applies the crew constraints over the counted days of the
// candidate window: enough of them must be covered by minResources
// concurrently usable resources, and every non-primary resource must match
// at least the minimum overlap share of the primary's usable window days.
func (s *search) gatesPass(start, completion ZonedTime) bool {
	if !s.multi() {
		return true
	}

	p := s.primary()
	var counted []string
	for day := start; !day.Instant().After(completion.Instant()); day = day.AddDays(1) {
		if s.dayCounts(day) {
			counted = append(counted, day.DateKey())
		}
	}
	if len(counted) == 0 {
		return false
	}

	need := s.minOverlap/100 - 1e-9

	covered := 0
	primaryUsable := 0
	for _, key := range counted {
		if s.coveredCount(key) >= s.minResources {
			covered++
		}
		if p.usableOn(key) {
			primaryUsable++
		}
	}
	if float64(covered)/float64(len(counted)) < need {
		return false
	}
	if primaryUsable == 0 {
		return false
	}

	for i, st := range s.states {
		if i == s.primaryIdx {
			continue
		}
		matched := 0
		for _, key := range counted {
			if p.usableOn(key) && st.usableOn(key) {
				matched++
			}
		}
		if float64(matched)/float64(primaryUsable) < need {
			return false
		}
	}
	return true
}

// searchDays walks candidate start days forward from searchStart. The first
// candidate within the earliest-throughput ceiling becomes the earliest
// proposal; the minimum-throughput candidate becomes the shortest proposal
// even when the tighter ceiling is out of reach.
func (s *search) searchDays(searchStart time.Time) (earliest, shortest *models.Proposal) {
	p := s.primary()
	execDays := s.spec.Execution.Value
	start0 := ZonedTimeIn(searchStart, p.loc).StartOfDay()
	earliestCeil := int(math.Floor(float64(execDays) * EarliestThroughputFactor))

	bestThroughput := math.MaxInt
	for off := 0; off < s.horizon; off++ {
		day := start0.AddDays(off)
		if !s.dayCounts(day) {
			continue
		}
		completion, ok := s.advanceWorkingDays(day, execDays)
		if !ok {
			// Later starts have even less horizon left.
			break
		}
		if !s.gatesPass(day, completion) {
			continue
		}

		throughput := inclusiveDaySpan(day, completion)
		prop := s.buildDaysProposal(day, completion, throughput)
		if earliest == nil && throughput <= earliestCeil {
			earliest = prop
		}
		if throughput < bestThroughput {
			bestThroughput = throughput
			shortest = prop
		}
		if earliest != nil && bestThroughput <= execDays {
			// Throughput is not monotonic in the start day, so the walk
			// only stops at the true lower bound: a gap-free window.
			break
		}
	}
	return earliest, shortest
}

func (s *search) buildDaysProposal(start, completion ZonedTime, throughput int) *models.Proposal {
	p := s.primary()
	startWindow := p.week[start.Weekday()]
	endWindow := p.week[completion.Weekday()]
	return &models.Proposal{
		Start:          start.AtMinute(startWindow.StartMinute).Instant(),
		ExecutionEnd:   completion.AtMinute(endWindow.EndMinute).Instant(),
		ThroughputDays: throughput,
	}
}

// searchHours finds the first feasible slot of the execution length,
// enumerating candidate starts on the slot grid from the later of the
// working-day start, the search start and now. Hours-mode jobs are
// contiguous, so the first slot is both the earliest and the
// shortest-throughput proposal.
func (s *search) searchHours(searchStart time.Time) *models.Proposal {
	p := s.primary()
	durMin := s.spec.Execution.Value * 60

	bound := searchStart
	if s.now.After(bound) {
		bound = s.now
	}
	day0 := ZonedTimeIn(bound, p.loc).StartOfDay()

	for off := 0; off < s.horizon; off++ {
		day := day0.AddDays(off)
		w := p.week[day.Weekday()]
		if !w.Available || p.blocks.IsBlockedDate(day.DateKey()) {
			continue
		}

		earliestMin := w.StartMinute
		if off == 0 {
			if nb := ZonedTimeIn(bound, p.loc); nb.MinuteOfDay() > earliestMin {
				earliestMin = nb.MinuteOfDay()
			}
		}
		if rem := earliestMin % SlotStepMinutes; rem != 0 {
			earliestMin += SlotStepMinutes - rem
		}

		for m := earliestMin; m+durMin <= w.EndMinute; m += SlotStepMinutes {
			slotStart := day.AtMinute(m)
			slotEnd := day.AtMinute(m + durMin)
			if p.blocks.OverlapsAny(slotStart.Instant(), slotEnd.Instant()) {
				continue
			}
			if s.minResources > 1 && !s.slotCovered(slotStart, durMin) {
				continue
			}
			return &models.Proposal{
				Start:          slotStart.Instant(),
				ExecutionEnd:   slotEnd.Instant(),
				ThroughputDays: 1,
			}
		}
	}
	return nil
}

// slotCovered counts the resources (primary included) that can take the
// slot simultaneously, each checked on its own wall clock.
func (s *search) slotCovered(start ZonedTime, durMin int) bool {
	count := 0
	for _, st := range s.states {
		local := ZonedTimeIn(start.Instant(), st.loc)
		if SlotFeasibleAt(local, durMin, st.week, st.blocks) {
			count++
		}
	}
	return count >= s.minResources
}
