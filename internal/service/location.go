package service

import (
	"context"
	"errors"

	"github.com/skycast/skycast-go/internal/model"
)

var ErrLocationNameRequired = errors.New("location name is required")

// LocationStore is the location-store contract the service depends on.
// *repository.LocationRepository satisfies it.
type LocationStore interface {
	Add(ctx context.Context, loc *model.Location) error
	ListByUser(ctx context.Context, userID int64) ([]model.Location, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

// LocationService handles saved-location business logic.
type LocationService struct {
	repo LocationStore
}

// NewLocationService creates a new LocationService.
func NewLocationService(repo LocationStore) *LocationService {
	return &LocationService{repo: repo}
}

// Add saves a named location for a user.
func (s *LocationService) Add(ctx context.Context, userID int64, name string) (model.LocationSummary, error) {
	if name == "" {
		return model.LocationSummary{}, ErrLocationNameRequired
	}

	loc := &model.Location{
		UserID: userID,
		Name:   name,
	}
	if err := s.repo.Add(ctx, loc); err != nil {
		return model.LocationSummary{}, err
	}

	return model.LocationSummary{ID: loc.ID, Name: loc.Name}, nil
}

// List returns a user's saved locations in insertion order.
func (s *LocationService) List(ctx context.Context, userID int64) ([]model.Location, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes a location if it exists and is owned by the user. A missing
// or foreign-owned location is reported as success with no effect.
func (s *LocationService) Delete(ctx context.Context, locationID, userID int64) error {
	_, err := s.repo.Delete(ctx, locationID, userID)
	return err
}
