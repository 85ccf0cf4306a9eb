package resourceRepo

import (
	"context"

	"worklane/models"
)

// ResourceRepository provides read access to resource records plus the
// block-range maintenance used by the reconciliation worker. Reads are
// batched: one query per engine call, never one per search day.
type ResourceRepository interface {
	GetByID(ctx context.Context, resourceID string) (*models.Resource, error)
	GetByIDs(ctx context.Context, resourceIDs []string) ([]models.Resource, error)
	AddBlockedRange(ctx context.Context, resourceID string, blocked models.BlockedRange) error
	RemoveBlockedRangesByReference(ctx context.Context, reference string) (int64, error)
}
