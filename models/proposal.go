package models

import "time"

// Proposal is one bookable window. Start is the working-time-aligned
// beginning of execution, ExecutionEnd is start plus the execution duration
// walked through working time, End is ExecutionEnd extended by buffer.
type Proposal struct {
	Start          time.Time `json:"start"`
	ExecutionEnd   time.Time `json:"executionEnd"`
	End            time.Time `json:"end"`
	ThroughputDays int       `json:"throughputDays"` // inclusive calendar span, start day through execution end day
}

// ScheduleProposals is the full result of a proposal computation. Either
// proposal may be nil when the search horizon was exhausted without a
// feasible window.
type ScheduleProposals struct {
	Mode                 string    `json:"mode"`
	EarliestBookableDate time.Time `json:"earliestBookableDate"`
	Earliest             *Proposal `json:"earliestProposal,omitempty"`
	ShortestThroughput   *Proposal `json:"shortestThroughputProposal,omitempty"`
}

// Validation failure reasons returned by selection re-checks.
const (
	ReasonBeforePrepWindow = "before-prep-window"
	ReasonDayBlocked       = "day-blocked"
	ReasonSlotUnavailable  = "slot-unavailable"
)

// ValidationResult is the outcome of re-checking a caller-chosen start.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ProposalSession is the cached result of a proposal computation, kept in
// Redis so booking confirmation can re-read what was offered.
type ProposalSession struct {
	SessionID   string            `json:"sessionId"`
	ProjectID   string            `json:"projectId,omitempty"`
	Spec        ServiceSpec       `json:"spec"`
	ResourceIDs []string          `json:"resourceIds"`
	Proposals   ScheduleProposals `json:"proposals"`
	CreatedAt   time.Time         `json:"createdAt"`
}
