// File: services/scheduling/service.go
package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"worklane/models"
	"worklane/utils"

	bookingRepo "worklane/database/repository/booking"
	resourceRepo "worklane/database/repository/resource"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProposalRequest asks for proposals over a concrete set of resources.
type ProposalRequest struct {
	ProjectID   string             `json:"projectId,omitempty"`
	ResourceIDs []string           `json:"resourceIds" binding:"required"`
	Spec        models.ServiceSpec `json:"spec" binding:"required"`
}

// ValidationRequest re-checks a caller-chosen start against live data.
type ValidationRequest struct {
	ProposalRequest
	ProposedStart time.Time `json:"proposedStart" binding:"required"`
}

// SchedulingService is the repo-backed front of the proposal engine: it
// loads resource and booking snapshots, runs the engine, and caches the
// offered proposals as a session for later confirmation.
type SchedulingService interface {
	EarliestBookableDate(ctx context.Context, req ProposalRequest) (time.Time, error)
	ComputeProposals(ctx context.Context, req ProposalRequest) (*models.ProposalSession, error)
	ValidateSelection(ctx context.Context, req ValidationRequest) (*models.ValidationResult, error)
	GetSession(ctx context.Context, sessionID string) (*models.ProposalSession, error)
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	ResourceRepo resourceRepo.ResourceRepository
	BookingRepo  bookingRepo.BookingRepository
	Engine       *Engine
	Logger       *zap.Logger
}

func NewSchedulingService(rr resourceRepo.ResourceRepository, br bookingRepo.BookingRepository, eng *Engine, logger *zap.Logger) *DefaultSchedulingService {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &DefaultSchedulingService{
		ResourceRepo: rr,
		BookingRepo:  br,
		Engine:       eng,
		Logger:       logger,
	}
}

// loadSnapshot fetches the resources and their sibling bookings in two
// batched queries.
func (s *DefaultSchedulingService) loadSnapshot(ctx context.Context, resourceIDs []string) ([]models.Resource, []models.Booking, error) {
	resources, err := s.ResourceRepo.GetByIDs(ctx, resourceIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch resources: %w", err)
	}
	siblings, err := s.BookingRepo.GetActiveForResources(ctx, resourceIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch sibling bookings: %w", err)
	}
	return resources, siblings, nil
}

func (s *DefaultSchedulingService) EarliestBookableDate(ctx context.Context, req ProposalRequest) (time.Time, error) {
	resources, siblings, err := s.loadSnapshot(ctx, req.ResourceIDs)
	if err != nil {
		return time.Time{}, err
	}
	return s.Engine.ComputeEarliestBookableDate(req.Spec, resources, siblings)
}

// ComputeProposals runs the full search, stores the result as a proposal
// session in Redis, and returns the session (ID included) to the caller.
func (s *DefaultSchedulingService) ComputeProposals(ctx context.Context, req ProposalRequest) (*models.ProposalSession, error) {
	resources, siblings, err := s.loadSnapshot(ctx, req.ResourceIDs)
	if err != nil {
		return nil, err
	}

	proposals, err := s.Engine.ComputeScheduleProposals(req.Spec, resources, siblings)
	if err != nil {
		return nil, err
	}

	session := models.ProposalSession{
		SessionID:   uuid.New().String(),
		ProjectID:   req.ProjectID,
		Spec:        req.Spec,
		ResourceIDs: req.ResourceIDs,
		Proposals:   *proposals,
		CreatedAt:   time.Now().UTC(),
	}

	sessionData, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal proposal session: %w", err)
	}
	cacheClient := utils.GetSessionCacheClient()
	key := utils.SessionCachePrefix + session.SessionID
	if err := cacheClient.Set(ctx, key, sessionData, utils.SessionCacheTTL).Err(); err != nil {
		// Proposals are still valid without the cache; degrade instead of failing.
		s.Logger.Warn("failed to store proposal session", zap.String("sessionID", session.SessionID), zap.Error(err))
	}

	return &session, nil
}

func (s *DefaultSchedulingService) ValidateSelection(ctx context.Context, req ValidationRequest) (*models.ValidationResult, error) {
	resources, siblings, err := s.loadSnapshot(ctx, req.ResourceIDs)
	if err != nil {
		return nil, err
	}
	result, err := s.Engine.ValidateSelection(req.Spec, resources, siblings, req.ProposedStart)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSession retrieves a previously cached proposal session.
func (s *DefaultSchedulingService) GetSession(ctx context.Context, sessionID string) (*models.ProposalSession, error) {
	cacheClient := utils.GetSessionCacheClient()
	sessionData, err := cacheClient.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("proposal session not found or expired: %w", err)
	}
	var session models.ProposalSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to parse proposal session: %w", err)
	}
	return &session, nil
}
