package models

// Weather is a current-conditions snapshot for Cape Town.
type Weather struct {
	Temp        int    `json:"temp"`      // Celsius
	FeelsLike   int    `json:"feelsLike"` // Celsius
	Condition   string `json:"condition"` // "Clear", "Clouds", "Rain", ...
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Humidity    int    `json:"humidity"`  // percent
	WindSpeed   int    `json:"windSpeed"` // km/h
}

// ForecastDay is one day of the daily forecast.
type ForecastDay struct {
	Date        string `json:"date"` // "YYYY-MM-DD"
	Temp        int    `json:"temp"`
	TempMin     int    `json:"tempMin"`
	TempMax     int    `json:"tempMax"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
}

// WeatherSuggestions pairs a set of recommended activities with a
// short message for the given conditions.
type WeatherSuggestions struct {
	Activities []string `json:"activities"`
	Message    string   `json:"message"`
}
