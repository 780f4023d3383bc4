package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"capetown/models"

	"go.uber.org/zap"
)

func TestConditionForCode(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{0, "Clear"},
		{1, "Clouds"},
		{3, "Clouds"},
		{45, "Fog"},
		{48, "Fog"},
		{51, "Rain"},
		{65, "Rain"},
		{71, "Snow"},
		{80, "Rain"},
		{95, "Thunderstorm"},
		{99, "Thunderstorm"},
		{150, "Clear"},
	}

	for _, tc := range cases {
		if got := conditionForCode(tc.code); got.Condition != tc.want {
			t.Errorf("conditionForCode(%d) = %q, want %q", tc.code, got.Condition, tc.want)
		}
	}
}

func TestSuggestionsFor(t *testing.T) {
	rainy := SuggestionsFor(models.Weather{Temp: 20, Condition: "Rain"})
	if rainy.Message != "Rainy day? Perfect for indoor adventures!" {
		t.Errorf("rain message = %q", rainy.Message)
	}

	hot := SuggestionsFor(models.Weather{Temp: 28, Condition: "Clear"})
	if hot.Message != "Beautiful weather! Great day for outdoor activities." {
		t.Errorf("hot-clear message = %q", hot.Message)
	}

	cold := SuggestionsFor(models.Weather{Temp: 10, Condition: "Clouds"})
	if cold.Message != "Cool weather - perfect for cozy indoor experiences." {
		t.Errorf("cold message = %q", cold.Message)
	}

	mild := SuggestionsFor(models.Weather{Temp: 20, Condition: "Clouds"})
	if mild.Message != "Pleasant weather for exploring Cape Town!" {
		t.Errorf("mild message = %q", mild.Message)
	}
	if len(mild.Activities) == 0 {
		t.Error("expected default activity suggestions")
	}
}

func TestCurrentParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"current": {
				"temperature_2m": 26.4,
				"relative_humidity_2m": 48,
				"apparent_temperature": 27.8,
				"weather_code": 0,
				"wind_speed_10m": 12.3
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	w := client.Current(context.Background())

	if w.Temp != 26 || w.FeelsLike != 28 {
		t.Errorf("temps = (%d, %d), want (26, 28)", w.Temp, w.FeelsLike)
	}
	if w.Condition != "Clear" {
		t.Errorf("condition = %q, want Clear", w.Condition)
	}
	if w.Humidity != 48 || w.WindSpeed != 12 {
		t.Errorf("humidity/wind = (%d, %d), want (48, 12)", w.Humidity, w.WindSpeed)
	}
}

func TestCurrentFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	w := client.Current(context.Background())

	if w.Temp != 22 || w.Condition != "Clear" || w.Humidity != 65 {
		t.Errorf("fallback snapshot mismatch: %+v", w)
	}
}

func TestForecastParsesDailySeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"daily": {
				"time": ["2025-06-01", "2025-06-02"],
				"temperature_2m_max": [24.0, 18.0],
				"temperature_2m_min": [16.0, 12.0],
				"weather_code": [0, 61],
				"relative_humidity_2m_mean": [55.0, 80.0],
				"wind_speed_10m_max": [20.0, 35.0]
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	forecast, err := client.Forecast(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forecast) != 2 {
		t.Fatalf("got %d days, want 2", len(forecast))
	}

	if forecast[0].Date != "2025-06-01" || forecast[0].Condition != "Clear" || forecast[0].Temp != 20 {
		t.Errorf("day 1 = %+v", forecast[0])
	}
	if forecast[1].Condition != "Rain" || forecast[1].TempMin != 12 || forecast[1].TempMax != 18 {
		t.Errorf("day 2 = %+v", forecast[1])
	}
}

func TestForecastErrorsWithoutFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	if _, err := client.Forecast(context.Background(), 5); err == nil {
		t.Fatal("expected an error")
	}
}
