package itinerary

import (
	"context"
	"errors"
	"testing"

	itineraryRepo "capetown/database/repository/itinerary"
	"capetown/models"

	"go.uber.org/zap"
)

type stubItineraryRepo struct {
	stored map[string]*models.Itinerary
}

func newStubItineraryRepo() *stubItineraryRepo {
	return &stubItineraryRepo{stored: map[string]*models.Itinerary{}}
}

func (s *stubItineraryRepo) Create(ctx context.Context, it *models.Itinerary) (string, error) {
	id := "it-1"
	copied := *it
	copied.ID = id
	s.stored[id] = &copied
	return id, nil
}

func (s *stubItineraryRepo) GetByID(ctx context.Context, id string) (*models.Itinerary, error) {
	if it, ok := s.stored[id]; ok {
		return it, nil
	}
	return nil, itineraryRepo.ErrNotFound
}

func (s *stubItineraryRepo) GetByUserID(ctx context.Context, userID string) ([]models.Itinerary, error) {
	var out []models.Itinerary
	for _, it := range s.stored {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (s *stubItineraryRepo) DeleteByID(ctx context.Context, id string) error {
	if _, ok := s.stored[id]; !ok {
		return itineraryRepo.ErrNotFound
	}
	delete(s.stored, id)
	return nil
}

func newTestItineraryService(repo *stubItineraryRepo) *DefaultItineraryService {
	return &DefaultItineraryService{Repo: repo, Logger: zap.NewNop()}
}

func TestSaveRecomputesTotalAndAppliesDefaults(t *testing.T) {
	repo := newStubItineraryRepo()
	svc := newTestItineraryService(repo)

	saved, err := svc.Save(context.Background(), "u1", models.Itinerary{
		Days:      sampleDays(),
		TotalCost: 99999, // client-supplied total is ignored
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.TotalCost != 1670 {
		t.Errorf("totalCost = %v, want 1670 (recomputed server-side)", saved.TotalCost)
	}
	if saved.Name != "Cape Town Trip" {
		t.Errorf("name = %q, want the default", saved.Name)
	}
	if saved.Currency != "ZAR" {
		t.Errorf("currency = %q, want ZAR", saved.Currency)
	}
	if saved.UserID != "u1" {
		t.Errorf("userID = %q, want u1", saved.UserID)
	}
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	repo := newStubItineraryRepo()
	svc := newTestItineraryService(repo)

	saved, err := svc.Save(context.Background(), "u1", models.Itinerary{Days: sampleDays()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), "u2", saved.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign delete = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), "u1", saved.ID); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", saved.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete = %v, want ErrNotFound", err)
	}
}
