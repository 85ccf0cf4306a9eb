package scheduling

import (
	"testing"
	"time"

	"worklane/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testEngine(now time.Time) *Engine {
	return &Engine{
		HorizonDays: DefaultSearchHorizonDays,
		Clock:       func() time.Time { return now },
		Logger:      zap.NewNop(),
	}
}

func utcResource(id string) models.Resource {
	return models.Resource{ID: id, Timezone: "UTC"}
}

func daysSpec(execDays int) models.ServiceSpec {
	return models.ServiceSpec{
		Mode:      models.ModeDays,
		Execution: models.Duration{Value: execDays, Unit: models.UnitDays},
	}
}

func hoursSpec(execHours int) models.ServiceSpec {
	return models.ServiceSpec{
		Mode:      models.ModeHours,
		Execution: models.Duration{Value: execHours, Unit: models.UnitHours},
	}
}

// Monday 2026-01-05, before the default working window opens.
var mondayMorning = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

func TestComputeProposalsFiveDayJobWithBuffer(t *testing.T) {
	eng := testEngine(mondayMorning)
	spec := daysSpec(5)
	spec.Buffer = models.Duration{Value: 1, Unit: models.UnitDays}

	got, err := eng.ComputeScheduleProposals(spec, []models.Resource{utcResource("r1")}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)

	assert.Equal(t, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), got.Earliest.Start)
	assert.Equal(t, time.Date(2026, 1, 9, 17, 0, 0, 0, time.UTC), got.Earliest.ExecutionEnd)
	// The buffer day lands after the weekend.
	assert.Equal(t, time.Date(2026, 1, 12, 17, 0, 0, 0, time.UTC), got.Earliest.End)
	assert.Equal(t, 5, got.Earliest.ThroughputDays)

	// A gap-free window cannot be beaten.
	require.NotNil(t, got.ShortestThroughput)
	assert.Equal(t, got.Earliest.Start, got.ShortestThroughput.Start)
	assert.Equal(t, got.Earliest.Start, got.EarliestBookableDate)
}

func TestComputeProposalsStartsNextDayOnceWindowOpened(t *testing.T) {
	// 10:00 is past the 09:00 window start, so Monday no longer qualifies.
	eng := testEngine(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC))

	got, err := eng.ComputeScheduleProposals(daysSpec(2), []models.Resource{utcResource("r1")}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	assert.Equal(t, time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC), got.Earliest.Start)
}

func TestComputeProposalsShortestBeatsEarliest(t *testing.T) {
	eng := testEngine(mondayMorning)
	res := utcResource("r1")
	// Wednesday blocked: the immediate window stretches, a later one does not.
	res.BlockedDates = []models.BlockedDate{{Date: "2026-01-07"}}

	got, err := eng.ComputeScheduleProposals(daysSpec(3), []models.Resource{res}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	require.NotNil(t, got.ShortestThroughput)

	// Earliest: Mon+Tue+Thu, spanning four calendar days.
	assert.Equal(t, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), got.Earliest.Start)
	assert.Equal(t, time.Date(2026, 1, 8, 17, 0, 0, 0, time.UTC), got.Earliest.ExecutionEnd)
	assert.Equal(t, 4, got.Earliest.ThroughputDays)

	// Shortest: the following Mon-Wed runs gap-free.
	assert.Equal(t, time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC), got.ShortestThroughput.Start)
	assert.Equal(t, 3, got.ShortestThroughput.ThroughputDays)

	assert.Equal(t, got.Earliest.Start, got.EarliestBookableDate)
}

func TestComputeProposalsShortestIsGlobalMinimum(t *testing.T) {
	eng := testEngine(mondayMorning)
	res := utcResource("r1")
	// Seven-day weeks: the first window (Mon-Sat around the blocked
	// Wednesday) spans six days, but Thu-Mon runs gap-free. The walk must
	// not settle for the first acceptable window.
	on := avail(true)
	res.Weekly = map[string]models.DaySchedule{
		"saturday": {Available: on},
		"sunday":   {Available: on},
	}
	res.BlockedDates = []models.BlockedDate{{Date: "2026-01-07"}}

	got, err := eng.ComputeScheduleProposals(daysSpec(5), []models.Resource{res}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	require.NotNil(t, got.ShortestThroughput)

	assert.Equal(t, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), got.Earliest.Start)
	assert.Equal(t, 6, got.Earliest.ThroughputDays)

	assert.Equal(t, time.Date(2026, 1, 8, 9, 0, 0, 0, time.UTC), got.ShortestThroughput.Start)
	assert.Equal(t, 5, got.ShortestThroughput.ThroughputDays)
}

func TestComputeProposalsEarliestCeiling(t *testing.T) {
	eng := testEngine(mondayMorning)
	res := utcResource("r1")
	// Mondays only: any 2-day window spans 8 calendar days, past the 2x ceiling.
	res.Weekly = map[string]models.DaySchedule{
		"monday":    {Available: avail(true)},
		"tuesday":   {Available: avail(false)},
		"wednesday": {Available: avail(false)},
		"thursday":  {Available: avail(false)},
		"friday":    {Available: avail(false)},
	}

	got, err := eng.ComputeScheduleProposals(daysSpec(2), []models.Resource{res}, nil)
	require.NoError(t, err)

	assert.Nil(t, got.Earliest, "no window meets the earliest-throughput ceiling")
	require.NotNil(t, got.ShortestThroughput, "the global best is still reported")
	assert.Equal(t, 8, got.ShortestThroughput.ThroughputDays)
	assert.Equal(t, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), got.ShortestThroughput.Start)
	assert.Equal(t, got.ShortestThroughput.Start, got.EarliestBookableDate)
}

func TestComputeProposalsPartialBlockGranularity(t *testing.T) {
	eng := testEngine(mondayMorning)
	res := utcResource("r1")
	booking := func(end time.Time) models.Booking {
		return models.Booking{
			ID:             "b1",
			ResourceIDs:    []string{"r1"},
			Status:         models.BookingStatusConfirmed,
			ScheduledStart: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
			ExecutionEnd:   end,
			ScheduledEnd:   end,
		}
	}

	// Exactly four blocked hours: Monday still counts as a whole day.
	got, err := eng.ComputeScheduleProposals(daysSpec(1), []models.Resource{res},
		[]models.Booking{booking(time.Date(2026, 1, 5, 13, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	assert.Equal(t, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), got.Earliest.Start)

	// One more minute and Monday drops out.
	got, err = eng.ComputeScheduleProposals(daysSpec(1), []models.Resource{res},
		[]models.Booking{booking(time.Date(2026, 1, 5, 13, 1, 0, 0, time.UTC))})
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	assert.Equal(t, time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC), got.Earliest.Start)
}

func TestComputeProposalsPreparationDelaysStart(t *testing.T) {
	eng := testEngine(mondayMorning)
	spec := daysSpec(2)
	spec.Preparation = models.Duration{Value: 2, Unit: models.UnitDays}

	got, err := eng.ComputeScheduleProposals(spec, []models.Resource{utcResource("r1")}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	// Mon and Tue consumed by preparation; execution starts Wednesday.
	assert.Equal(t, time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC), got.Earliest.Start)
}

func TestComputeProposalsHoursFirstSlotIsBoth(t *testing.T) {
	eng := testEngine(time.Date(2026, 1, 5, 10, 12, 0, 0, time.UTC))

	got, err := eng.ComputeScheduleProposals(hoursSpec(3), []models.Resource{utcResource("r1")}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	require.NotNil(t, got.ShortestThroughput)

	// 10:12 snaps up to the 10:30 grid line.
	assert.Equal(t, time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC), got.Earliest.Start)
	assert.Equal(t, time.Date(2026, 1, 5, 13, 30, 0, 0, time.UTC), got.Earliest.ExecutionEnd)
	assert.Equal(t, 1, got.Earliest.ThroughputDays)

	// Contiguous jobs: one slot serves as both proposals.
	assert.Equal(t, *got.Earliest, *got.ShortestThroughput)
}

func TestComputeProposalsHoursSkipsBlockedSlots(t *testing.T) {
	eng := testEngine(mondayMorning)
	siblings := []models.Booking{{
		ID:             "b1",
		ResourceIDs:    []string{"r1"},
		Status:         models.BookingStatusConfirmed,
		ScheduledStart: time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC),
		ExecutionEnd:   time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
		ScheduledEnd:   time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
	}}

	got, err := eng.ComputeScheduleProposals(hoursSpec(3), []models.Resource{utcResource("r1")}, siblings)
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	// Every grid slot before 12:00 touches the 11:00-12:00 booking.
	assert.Equal(t, time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC), got.Earliest.Start)
}

func TestComputeProposalsHoursBuffer(t *testing.T) {
	eng := testEngine(mondayMorning)
	spec := hoursSpec(2)
	spec.Buffer = models.Duration{Value: 3, Unit: models.UnitHours}

	got, err := eng.ComputeScheduleProposals(spec, []models.Resource{utcResource("r1")}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	assert.Equal(t, time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC), got.Earliest.ExecutionEnd)
	// An hours buffer on an hours job is a plain tail extension.
	assert.Equal(t, time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC), got.Earliest.End)
}

func TestComputeProposalsDaysJobHoursBuffer(t *testing.T) {
	eng := testEngine(mondayMorning)
	spec := daysSpec(2)
	spec.Buffer = models.Duration{Value: 4, Unit: models.UnitHours}

	got, err := eng.ComputeScheduleProposals(spec, []models.Resource{utcResource("r1")}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Earliest)
	assert.Equal(t, time.Date(2026, 1, 6, 17, 0, 0, 0, time.UTC), got.Earliest.ExecutionEnd)
	// An hours buffer stays an hours buffer: a tail extension, never a
	// reinterpretation as working days.
	assert.Equal(t, time.Date(2026, 1, 6, 21, 0, 0, 0, time.UTC), got.Earliest.End)
}

func TestComputeEarliestBookableDateMatchesProposals(t *testing.T) {
	eng := testEngine(mondayMorning)
	resources := []models.Resource{utcResource("r1")}

	earliest, err := eng.ComputeEarliestBookableDate(daysSpec(3), resources, nil)
	require.NoError(t, err)

	proposals, err := eng.ComputeScheduleProposals(daysSpec(3), resources, nil)
	require.NoError(t, err)
	assert.Equal(t, proposals.EarliestBookableDate, earliest)
}

func TestComputeProposalsFallbackWhenNothingWorkable(t *testing.T) {
	eng := testEngine(mondayMorning)
	res := utcResource("r1")
	off := avail(false)
	res.Weekly = map[string]models.DaySchedule{
		"sunday": {Available: off}, "monday": {Available: off}, "tuesday": {Available: off},
		"wednesday": {Available: off}, "thursday": {Available: off},
		"friday": {Available: off}, "saturday": {Available: off},
	}

	got, err := eng.ComputeScheduleProposals(daysSpec(1), []models.Resource{res}, nil)
	require.NoError(t, err)
	assert.Nil(t, got.Earliest)
	assert.Nil(t, got.ShortestThroughput)
	// No template-working day exists; the weak fallback is prep end itself.
	assert.Equal(t, mondayMorning, got.EarliestBookableDate)
}

func TestComputeProposalsUnschedulable(t *testing.T) {
	eng := testEngine(mondayMorning)

	_, err := eng.ComputeScheduleProposals(daysSpec(1), nil, nil)
	assert.ErrorIs(t, err, ErrUnschedulable)

	_, err = eng.ComputeScheduleProposals(models.ServiceSpec{Mode: models.ModeDays}, []models.Resource{utcResource("r1")}, nil)
	assert.ErrorIs(t, err, ErrUnschedulable, "zero execution duration")

	spec := daysSpec(1)
	spec.MinResources = 3
	_, err = eng.ComputeScheduleProposals(spec, []models.Resource{utcResource("r1"), utcResource("r2")}, nil)
	assert.ErrorIs(t, err, ErrUnschedulable, "more concurrent resources than exist")

	broken := models.Resource{ID: "r1", Timezone: "Nowhere/Invalid"}
	_, err = eng.ComputeScheduleProposals(daysSpec(1), []models.Resource{broken}, nil)
	assert.ErrorIs(t, err, ErrUnschedulable, "all resources dropped")
}
