package scheduling

import (
	"time"

	"worklane/models"

	"go.uber.org/zap"
)

// Engine computes booking proposals. It is a pure, synchronous computation
// over snapshots handed to each call: no internal mutable state, safe for
// concurrent use. It never reserves time itself; accepting a proposal is
// the booking collaborator's job, including the conflict re-check when a
// competing booking lands first.
type Engine struct {
	HorizonDays int
	// Clock is injectable for tests; nil means time.Now.
	Clock  func() time.Time
	Logger *zap.Logger
}

// NewEngine returns an engine with the given search horizon (days).
func NewEngine(horizonDays int, logger *zap.Logger) *Engine {
	if horizonDays <= 0 {
		horizonDays = DefaultSearchHorizonDays
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Engine{HorizonDays: horizonDays, Logger: logger}
}

func (e *Engine) now() time.Time {
	if e.Clock != nil {
		return e.Clock()
	}
	return time.Now()
}

// prepare validates the request and builds the per-resource search states.
// Resources with unusable timezones are dropped (fail closed); if nothing
// usable remains, or the spec carries no execution duration, the request is
// unschedulable.
func (e *Engine) prepare(spec models.ServiceSpec, resources []models.Resource, siblings []models.Booking) (*search, error) {
	if spec.Execution.IsZero() || len(resources) == 0 {
		return nil, ErrUnschedulable
	}

	states := make([]*resourceState, 0, len(resources))
	for _, res := range resources {
		st, err := newResourceState(res, siblings)
		if err != nil {
			e.Logger.Warn("dropping resource with unusable timezone",
				zap.String("resourceID", res.ID), zap.Error(err))
			continue
		}
		states = append(states, st)
	}
	if len(states) == 0 {
		return nil, ErrUnschedulable
	}

	s := newSearch(spec, states, e.HorizonDays, e.now())
	if s.minResources > len(states) {
		return nil, ErrUnschedulable
	}
	s.electPrimary(s.now)
	return s, nil
}

// preparationEnd runs the prep walk on the primary resource's calendar.
func (s *search) preparationEnd() time.Time {
	p := s.primary()
	return PreparationEnd(ZonedTimeIn(s.now, p.loc), s.spec.Preparation, p.week, p.blocks)
}

// daysSearchStart aligns a days-mode search start: the prep-end day itself
// qualifies only while its working window has not started yet.
func (s *search) daysSearchStart(prepEnd time.Time) time.Time {
	p := s.primary()
	day := ZonedTimeIn(prepEnd, p.loc).StartOfDay()
	w := p.week[day.Weekday()]
	if w.Available && prepEnd.After(day.AtMinute(w.StartMinute).Instant()) {
		day = day.AddDays(1)
	}
	return day.Instant()
}

// fallbackEarliest is the weak earliest-bookable estimate used when the
// full search finds no window: the first template-working day after prep
// end, ignoring blocks, and ultimately prep end itself.
func (s *search) fallbackEarliest(prepEnd time.Time) time.Time {
	p := s.primary()
	day := ZonedTimeIn(prepEnd, p.loc).StartOfDay()
	for off := 0; off < s.horizon; off++ {
		d := day.AddDays(off)
		w := p.week[d.Weekday()]
		if !w.Available {
			continue
		}
		candidate := d.AtMinute(w.StartMinute).Instant()
		if !candidate.Before(prepEnd) {
			return candidate
		}
	}
	return prepEnd
}

// ComputeEarliestBookableDate returns the earliest instant work could
// legally start, or ErrUnschedulable.
func (e *Engine) ComputeEarliestBookableDate(spec models.ServiceSpec, resources []models.Resource, siblings []models.Booking) (time.Time, error) {
	s, err := e.prepare(spec, resources, siblings)
	if err != nil {
		return time.Time{}, err
	}

	prepEnd := s.preparationEnd()
	if spec.Mode == models.ModeDays {
		earliest, shortest := s.searchDays(s.daysSearchStart(prepEnd))
		if earliest != nil {
			return earliest.Start, nil
		}
		if shortest != nil {
			return shortest.Start, nil
		}
	} else {
		if prop := s.searchHours(prepEnd); prop != nil {
			return prop.Start, nil
		}
	}
	return s.fallbackEarliest(prepEnd), nil
}

// ComputeScheduleProposals runs the full search and returns up to two
// proposals. A missing proposal means the horizon was exhausted without a
// feasible window; the earliest bookable date is then the weak fallback.
func (e *Engine) ComputeScheduleProposals(spec models.ServiceSpec, resources []models.Resource, siblings []models.Booking) (*models.ScheduleProposals, error) {
	s, err := e.prepare(spec, resources, siblings)
	if err != nil {
		return nil, err
	}

	prepEnd := s.preparationEnd()
	result := &models.ScheduleProposals{Mode: spec.Mode}

	if spec.Mode == models.ModeDays {
		earliest, shortest := s.searchDays(s.daysSearchStart(prepEnd))
		result.Earliest = earliest
		result.ShortestThroughput = shortest
	} else {
		if prop := s.searchHours(prepEnd); prop != nil {
			// Contiguous jobs: the first slot is also the shortest.
			earliest := *prop
			shortest := *prop
			result.Earliest = &earliest
			result.ShortestThroughput = &shortest
		}
	}

	for _, prop := range []*models.Proposal{result.Earliest, result.ShortestThroughput} {
		if prop != nil {
			prop.End = s.BufferEnd(prop.ExecutionEnd, spec.Buffer)
		}
	}

	switch {
	case result.Earliest != nil:
		result.EarliestBookableDate = result.Earliest.Start
	case result.ShortestThroughput != nil:
		result.EarliestBookableDate = result.ShortestThroughput.Start
	default:
		result.EarliestBookableDate = s.fallbackEarliest(prepEnd)
	}
	return result, nil
}

// ValidateSelection re-checks a caller-chosen start instant against the
// current snapshot.
func (e *Engine) ValidateSelection(spec models.ServiceSpec, resources []models.Resource, siblings []models.Booking, proposedStart time.Time) (models.ValidationResult, error) {
	s, err := e.prepare(spec, resources, siblings)
	if err != nil {
		return models.ValidationResult{}, err
	}

	if proposedStart.Before(s.preparationEnd()) {
		return models.ValidationResult{Valid: false, Reason: models.ReasonBeforePrepWindow}, nil
	}

	p := s.primary()
	local := ZonedTimeIn(proposedStart, p.loc)

	if spec.Mode == models.ModeDays {
		day := local.StartOfDay()
		if !s.dayCounts(day) {
			return models.ValidationResult{Valid: false, Reason: models.ReasonDayBlocked}, nil
		}
		if completion, ok := s.advanceWorkingDays(day, spec.Execution.Value); !ok || !s.gatesPass(day, completion) {
			return models.ValidationResult{Valid: false, Reason: models.ReasonDayBlocked}, nil
		}
		return models.ValidationResult{Valid: true}, nil
	}

	durMin := spec.Execution.Value * 60
	if !SlotFeasibleAt(local, durMin, p.week, p.blocks) {
		return models.ValidationResult{Valid: false, Reason: models.ReasonSlotUnavailable}, nil
	}
	if s.minResources > 1 && !s.slotCovered(local, durMin) {
		return models.ValidationResult{Valid: false, Reason: models.ReasonSlotUnavailable}, nil
	}
	return models.ValidationResult{Valid: true}, nil
}
