package models

import "time"

const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
	BookingStatusRefunded   = "refunded"
)

// TerminalBookingStatuses are the statuses whose bookings no longer block
// resource time.
var TerminalBookingStatuses = []string{
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusRefunded,
}

// Booking represents a scheduled job against one or more resources. The
// engine only reads the non-terminal ones to derive blocked intervals;
// creation and lifecycle transitions happen in the booking collaborator.
type Booking struct {
	ID          string   `bson:"id" json:"id"`
	ProjectID   string   `bson:"projectId" json:"projectId"`
	ResourceIDs []string `bson:"resourceIds" json:"resourceIds"`
	Status      string   `bson:"status" json:"status"`
	Mode        string   `bson:"mode" json:"mode"` // "hours" | "days"

	ScheduledStart time.Time `bson:"scheduledStart" json:"scheduledStart"`
	ExecutionEnd   time.Time `bson:"executionEnd" json:"executionEnd"`
	BufferStart    time.Time `bson:"bufferStart,omitempty" json:"bufferStart,omitzero"`
	ScheduledEnd   time.Time `bson:"scheduledEnd" json:"scheduledEnd"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// BlockReconcilePayload is the async task payload asking the reconciler to
// release the blocked ranges a booking pushed onto its resources.
type BlockReconcilePayload struct {
	BookingID string `json:"bookingId"`
}

// Terminal reports whether the booking has reached a status that releases
// its blocked time.
func (b Booking) Terminal() bool {
	for _, s := range TerminalBookingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}
