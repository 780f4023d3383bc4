package models

import "time"

// ItineraryActivity is a single planned stop within a day.
type ItineraryActivity struct {
	AttractionID string  `bson:"attraction_id" json:"attractionId"`
	Name         string  `bson:"name" json:"name"`
	Time         string  `bson:"time" json:"time"` // "HH:MM"
	Notes        string  `bson:"notes,omitempty" json:"notes,omitempty"`
	Cost         float64 `bson:"cost" json:"cost"` // ZAR
}

// ItineraryDay groups the activities planned for one date.
type ItineraryDay struct {
	Date       string              `bson:"date" json:"date"` // "YYYY-MM-DD"
	Activities []ItineraryActivity `bson:"activities" json:"activities"`
}

// Budget holds the planned spend per category, in ZAR.
type Budget struct {
	Accommodation  float64 `bson:"accommodation" json:"accommodation"`
	Food           float64 `bson:"food" json:"food"`
	Transportation float64 `bson:"transportation" json:"transportation"`
	Activities     float64 `bson:"activities" json:"activities"`
	Shopping       float64 `bson:"shopping" json:"shopping"`
	Other          float64 `bson:"other" json:"other"`
}

// Itinerary is a saved trip plan.
type Itinerary struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"user_id" json:"userId"`
	Name      string         `bson:"name" json:"name"`
	Days      []ItineraryDay `bson:"days" json:"days"`
	Budget    Budget         `bson:"budget" json:"budget"`
	Currency  string         `bson:"currency" json:"currency"` // "ZAR", "USD", "EUR", "GBP"
	TotalCost float64        `bson:"total_cost" json:"totalCost"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}
