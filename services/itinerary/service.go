package itinerary

import (
	"context"
	"errors"

	itineraryRepo "capetown/database/repository/itinerary"
	"capetown/models"

	"go.uber.org/zap"
)

// ErrNotFound is returned when an itinerary does not exist or belongs to
// another user.
var ErrNotFound = errors.New("itinerary not found")

type ItineraryService interface {
	Save(ctx context.Context, userID string, itinerary models.Itinerary) (*models.Itinerary, error)
	List(ctx context.Context, userID string) ([]models.Itinerary, error)
	Delete(ctx context.Context, userID, id string) error
}

// DefaultItineraryService persists trip plans and derives their totals.
type DefaultItineraryService struct {
	Repo   itineraryRepo.ItineraryRepository
	Logger *zap.Logger
}

// Save stores an itinerary for the user. The total cost is always
// recomputed server-side from the activity costs.
func (s *DefaultItineraryService) Save(ctx context.Context, userID string, itinerary models.Itinerary) (*models.Itinerary, error) {
	if itinerary.Name == "" {
		itinerary.Name = "Cape Town Trip"
	}
	if itinerary.Currency == "" {
		itinerary.Currency = "ZAR"
	}
	itinerary.UserID = userID
	itinerary.TotalCost = TotalCost(itinerary.Days)

	id, err := s.Repo.Create(ctx, &itinerary)
	if err != nil {
		s.Logger.Error("failed to save itinerary", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	itinerary.ID = id
	return &itinerary, nil
}

// List returns the user's saved itineraries, newest first.
func (s *DefaultItineraryService) List(ctx context.Context, userID string) ([]models.Itinerary, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

// Delete removes one of the user's itineraries.
func (s *DefaultItineraryService) Delete(ctx context.Context, userID, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, itineraryRepo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrNotFound
	}
	return s.Repo.DeleteByID(ctx, id)
}
