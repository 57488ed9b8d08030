// Package service contains the business logic for the trip sync server.
// Services normalize inputs and orchestrate repo calls; no SQL lives here.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"tripmate/internal/domain"
	"tripmate/internal/repo"
)

// SharedTripService implements the three sync operations over the repo.
//
// It is deliberately permissive: a shared trip is created from whatever
// snapshot the sharing device holds, so there are no content rules to
// enforce beyond shape normalization. Concurrency control is likewise
// absent on purpose — updates are last-write-wins per field-group.
type SharedTripService struct {
	repo repo.SharedTripRepo
}

// NewSharedTripService constructs a SharedTripService backed by the
// provided repo.
func NewSharedTripService(r repo.SharedTripRepo) *SharedTripService {
	return &SharedTripService{repo: r}
}

// Create persists a new shared trip and returns the stored record.
// A nil places snapshot is normalized to an empty array so the stored
// column is always a JSON array.
func (s *SharedTripService) Create(ctx context.Context, trip domain.NewSharedTrip) (domain.SharedTrip, error) {
	if trip.Places == nil {
		trip.Places = json.RawMessage("[]")
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("service.SharedTripService.Create: %w", err)
	}
	return result, nil
}

// Get returns the shared trip with the given id.
// Returns domain.ErrNotFound when no record matches.
func (s *SharedTripService) Get(ctx context.Context, id uuid.UUID) (domain.SharedTrip, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("service.SharedTripService.Get: %w", err)
	}
	return result, nil
}

// Update applies a field-group partial update and returns the record after
// the update. An empty patch is valid: it refreshes updated_at only.
// Returns domain.ErrNotFound when no record matches.
func (s *SharedTripService) Update(ctx context.Context, id uuid.UUID, patch domain.SharedTripPatch) (domain.SharedTrip, error) {
	result, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("service.SharedTripService.Update: %w", err)
	}
	return result, nil
}
