package models

import "time"

// DaySchedule is one weekday entry of a resource's weekly template.
// Available is a pointer so that an absent flag can be told apart from an
// explicit false; Start/End are wall-clock times like "09:00".
type DaySchedule struct {
	Available *bool  `bson:"available,omitempty" json:"available,omitempty"`
	Start     string `bson:"start,omitempty" json:"start,omitempty"`
	End       string `bson:"end,omitempty" json:"end,omitempty"`
}

// BlockedDate marks a single calendar day as unusable for a resource.
// Holiday-flagged dates additionally suspend preparation-day counting.
type BlockedDate struct {
	Date    string `bson:"date" json:"date"` // "2026-02-01"
	Holiday bool   `bson:"holiday,omitempty" json:"holiday,omitempty"`
	Reason  string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// BlockedRange marks an inclusive span of calendar days as unusable.
// Reference carries the booking ID the block was created for, so the
// booking lifecycle can void it again on cancellation/completion.
type BlockedRange struct {
	StartDate string `bson:"startDate" json:"startDate"` // "2026-02-01"
	EndDate   string `bson:"endDate" json:"endDate"`     // inclusive
	Holiday   bool   `bson:"holiday,omitempty" json:"holiday,omitempty"`
	Reference string `bson:"reference,omitempty" json:"reference,omitempty"`
	Reason    string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Resource is a schedulable actor: a professional or one of their employees.
// The engine reads it as a snapshot; mutation happens in the resource
// management collaborators.
type Resource struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name,omitempty"`
	Timezone string `bson:"timezone" json:"timezone"` // IANA zone, e.g. "Europe/Berlin"

	// Weekly template keyed by lowercase weekday name ("monday" .. "sunday").
	// Missing days fall back to the default week (Mon-Fri 09:00-17:00).
	Weekly map[string]DaySchedule `bson:"weekly,omitempty" json:"weekly,omitempty"`

	// Personal blocks maintained by the resource.
	BlockedDates  []BlockedDate  `bson:"blockedDates,omitempty" json:"blockedDates,omitempty"`
	BlockedRanges []BlockedRange `bson:"blockedRanges,omitempty" json:"blockedRanges,omitempty"`

	// Company-level blocks for employees following a company calendar.
	CompanyBlockedDates  []BlockedDate  `bson:"companyBlockedDates,omitempty" json:"companyBlockedDates,omitempty"`
	CompanyBlockedRanges []BlockedRange `bson:"companyBlockedRanges,omitempty" json:"companyBlockedRanges,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
