package models

// CatalogItem is a bookable or browsable entry: a hotel, a restaurant or
// an attraction. Reference data, no lifecycle.
type CatalogItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "hotel", "guesthouse", "hostel", "restaurant", "attraction"
	Category    string   `json:"category,omitempty"`
	Area        string   `json:"area"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Features    []string `json:"features,omitempty"`

	// Hotels.
	PricePerNight float64  `json:"pricePerNight,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`

	// Restaurants.
	Cuisine    string  `json:"cuisine,omitempty"`
	PriceRange string  `json:"priceRange,omitempty"` // "free", "budget", "moderate", "midrange", "expensive", "luxury"
	AvgPrice   float64 `json:"avgPrice,omitempty"`
	Dietary    []string `json:"dietary,omitempty"`
	Hours      string  `json:"hours,omitempty"`

	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// IsAccommodation reports whether the item is booked per night.
func (i CatalogItem) IsAccommodation() bool {
	switch i.Type {
	case "hotel", "guesthouse", "hostel", "vacation rental":
		return true
	}
	return false
}
