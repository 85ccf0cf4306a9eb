package scheduling

import "time"

// Tuning constants of the proposal search. These were implicit magic
// numbers in earlier iterations of the product; they are named here and
// kept global for now (per-category overrides are an open product call).
const (
	// PartialBlockThreshold is the amount of blocked time within a day's
	// working window above which the whole day counts as blocked in
	// days-mode. Exactly the threshold does NOT block; strictly more does.
	PartialBlockThreshold = 4 * time.Hour

	// SlotStepMinutes is the hours-mode candidate start granularity.
	SlotStepMinutes = 30

	// EarliestThroughputFactor caps the earliest proposal: its elapsed
	// calendar span must stay within executionDays * this factor.
	EarliestThroughputFactor = 2.0

	// ShortestThroughputFactor is the tighter ceiling the shortest
	// throughput proposal aims for; if unreachable the best window found
	// is still reported.
	ShortestThroughputFactor = 1.2

	// DefaultMinResources applies when a spec does not ask for a crew.
	DefaultMinResources = 1

	// DefaultMinOverlapPercent is the cross-resource availability overlap
	// required for multi-person jobs when the spec does not set one.
	DefaultMinOverlapPercent = 70.0

	// DefaultSearchHorizonDays bounds the forward search.
	DefaultSearchHorizonDays = 120

	// Default working window applied to template gaps: Mon-Fri 09:00-17:00.
	DefaultDayStartMinute = 9 * 60
	DefaultDayEndMinute   = 17 * 60
)
