package itinerary

import (
	"testing"

	"capetown/models"
)

func sampleDays() []models.ItineraryDay {
	return []models.ItineraryDay{
		{Date: "2025-06-01", Activities: []models.ItineraryActivity{
			{Name: "Table Mountain Cableway", Cost: 420},
			{Name: "Dinner at the Waterfront", Cost: 650},
		}},
		{Date: "2025-06-02", Activities: []models.ItineraryActivity{
			{Name: "Robben Island tour", Cost: 600},
		}},
	}
}

func TestTotalCost(t *testing.T) {
	if got := TotalCost(sampleDays()); got != 1670 {
		t.Errorf("TotalCost = %v, want 1670", got)
	}
	if got := TotalCost(nil); got != 0 {
		t.Errorf("TotalCost(nil) = %v, want 0", got)
	}
}

func TestTotalBudget(t *testing.T) {
	b := models.Budget{
		Accommodation:  9000,
		Food:           3000,
		Transportation: 1200,
		Activities:     2000,
		Shopping:       500,
		Other:          300,
	}
	if got := TotalBudget(b); got != 16000 {
		t.Errorf("TotalBudget = %v, want 16000", got)
	}
}

func TestRemainingBudget(t *testing.T) {
	b := models.Budget{Activities: 2000}
	if got := RemainingBudget(sampleDays(), b); got != 330 {
		t.Errorf("RemainingBudget = %v, want 330", got)
	}

	over := models.Budget{Activities: 1000}
	if got := RemainingBudget(sampleDays(), over); got != -670 {
		t.Errorf("RemainingBudget = %v, want -670", got)
	}
}

func TestConvertFromZAR(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     float64
	}{
		{1000, "ZAR", 1000},
		{1000, "USD", 54},
		{1000, "EUR", 50},
		{1000, "GBP", 43},
		{999, "USD", 53.95}, // 53.946 rounds to cents
		{1000, "JPY", 1000}, // unknown currency passes through
	}

	for _, tc := range cases {
		if got := ConvertFromZAR(tc.amount, tc.currency); got != tc.want {
			t.Errorf("ConvertFromZAR(%v, %q) = %v, want %v", tc.amount, tc.currency, got, tc.want)
		}
	}
}
