package bookingRepo

import (
	"context"

	"worklane/models"
)

// BookingRepository provides the sibling-booking reads the engine needs
// and the status lookups used by the reconciliation worker.
type BookingRepository interface {
	// GetActiveForResources returns all non-terminal bookings touching any
	// of the given resources, in a single batched query.
	GetActiveForResources(ctx context.Context, resourceIDs []string) ([]models.Booking, error)
	// GetActiveForProject returns all non-terminal bookings of a project.
	GetActiveForProject(ctx context.Context, projectID string) ([]models.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
}
