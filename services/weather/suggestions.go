package weather

import "capetown/models"

// SuggestionsFor recommends activities for the given conditions.
func SuggestionsFor(w models.Weather) models.WeatherSuggestions {
	if w.Condition == "Rain" {
		return models.WeatherSuggestions{
			Activities: []string{"Visit museums", "Explore indoor markets", "Wine tasting tours", "Aquarium visit"},
			Message:    "Rainy day? Perfect for indoor adventures!",
		}
	}

	if w.Temp > 25 && w.Condition == "Clear" {
		return models.WeatherSuggestions{
			Activities: []string{"Beach day at Camps Bay", "Table Mountain hike", "Clifton beach", "Coastal drive"},
			Message:    "Beautiful weather! Great day for outdoor activities.",
		}
	}

	if w.Temp < 15 {
		return models.WeatherSuggestions{
			Activities: []string{"Hot chocolate at cafes", "Wine tasting", "Museum visits", "Cozy restaurants"},
			Message:    "Cool weather - perfect for cozy indoor experiences.",
		}
	}

	return models.WeatherSuggestions{
		Activities: []string{"Kirstenbosch Gardens", "V&A Waterfront", "Signal Hill walk", "City sightseeing"},
		Message:    "Pleasant weather for exploring Cape Town!",
	}
}
