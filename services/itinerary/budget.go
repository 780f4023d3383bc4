package itinerary

import (
	"math"

	"capetown/models"
)

// Conversion rates out of ZAR, matching the planner's display currencies.
var currencyRates = map[string]float64{
	"ZAR": 1,
	"USD": 0.054,
	"EUR": 0.050,
	"GBP": 0.043,
}

// TotalCost sums every activity cost across all days, in ZAR.
func TotalCost(days []models.ItineraryDay) float64 {
	var total float64
	for _, day := range days {
		for _, activity := range day.Activities {
			total += activity.Cost
		}
	}
	return total
}

// TotalBudget sums the planned spend across all categories, in ZAR.
func TotalBudget(b models.Budget) float64 {
	return b.Accommodation + b.Food + b.Transportation + b.Activities + b.Shopping + b.Other
}

// RemainingBudget is the planned spend minus the planned cost. Negative
// means the plan is over budget.
func RemainingBudget(days []models.ItineraryDay, b models.Budget) float64 {
	return TotalBudget(b) - TotalCost(days)
}

// ConvertFromZAR converts a ZAR amount into the given display currency,
// rounded to cents. Unknown currencies pass through unconverted.
func ConvertFromZAR(amount float64, currency string) float64 {
	rate, ok := currencyRates[currency]
	if !ok {
		rate = 1
	}
	return math.Round(amount*rate*100) / 100
}
