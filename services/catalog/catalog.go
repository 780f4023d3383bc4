package catalog

import (
	"errors"
	"strings"

	"capetown/models"
)

// ErrNotFound is returned when no catalog entry matches the given ID.
var ErrNotFound = errors.New("catalog item not found")

// Service serves the static reference data: hotels, restaurants and
// attractions. Bookings price from here, never from client-supplied rates.
type Service struct {
	items map[string]models.CatalogItem
}

// NewService builds the catalog from the bundled reference data.
func NewService() *Service {
	items := make(map[string]models.CatalogItem, len(hotels)+len(restaurants)+len(attractions))
	for _, set := range [][]models.CatalogItem{hotels, restaurants, attractions} {
		for _, item := range set {
			items[item.ID] = item
		}
	}
	return &Service{items: items}
}

// GetByID looks up a single catalog entry.
func (s *Service) GetByID(id string) (*models.CatalogItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// Filter narrows a catalog listing. Empty fields match everything.
type Filter struct {
	Area     string
	Category string
	Cuisine  string
}

// Hotels returns the accommodation listing, optionally filtered.
func (s *Service) Hotels(f Filter) []models.CatalogItem {
	return filterItems(hotels, f)
}

// Restaurants returns the dining listing, optionally filtered.
func (s *Service) Restaurants(f Filter) []models.CatalogItem {
	return filterItems(restaurants, f)
}

// Attractions returns the attractions listing, optionally filtered.
func (s *Service) Attractions(f Filter) []models.CatalogItem {
	return filterItems(attractions, f)
}

func filterItems(items []models.CatalogItem, f Filter) []models.CatalogItem {
	out := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if f.Area != "" && !strings.EqualFold(item.Area, f.Area) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(item.Category, f.Category) {
			continue
		}
		if f.Cuisine != "" && !strings.EqualFold(item.Cuisine, f.Cuisine) {
			continue
		}
		out = append(out, item)
	}
	return out
}
