package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"capetown/models"

	"go.uber.org/zap"
)

// Cape Town city centre.
const (
	capeTownLat = -33.9249
	capeTownLon = 18.4241
)

const defaultBaseURL = "https://api.open-meteo.com"

// Client fetches conditions from the Open-Meteo forecast API. The API is
// free and unauthenticated.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a weather client. baseURL is overridable for tests;
// pass "" for the production endpoint.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     logger,
	}
}

type currentResponse struct {
	Current struct {
		Temperature         float64 `json:"temperature_2m"`
		RelativeHumidity    int     `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		WeatherCode         int     `json:"weather_code"`
		WindSpeed           float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

type forecastResponse struct {
	Daily struct {
		Time         []string  `json:"time"`
		TempMax      []float64 `json:"temperature_2m_max"`
		TempMin      []float64 `json:"temperature_2m_min"`
		WeatherCode  []int     `json:"weather_code"`
		HumidityMean []float64 `json:"relative_humidity_2m_mean"`
		WindSpeedMax []float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

// Current returns the current Cape Town conditions. On any failure a
// static fallback snapshot is returned so the widget never breaks.
func (c *Client) Current(ctx context.Context) *models.Weather {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%v&longitude=%v&current=temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m&timezone=auto",
		c.baseURL, capeTownLat, capeTownLon)

	var resp currentResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		c.logger.Warn("weather fetch failed, serving fallback", zap.Error(err))
		return fallbackWeather()
	}

	cond := conditionForCode(resp.Current.WeatherCode)
	return &models.Weather{
		Temp:        roundInt(resp.Current.Temperature),
		FeelsLike:   roundInt(resp.Current.ApparentTemperature),
		Condition:   cond.Condition,
		Description: cond.Description,
		Icon:        cond.Icon,
		Humidity:    resp.Current.RelativeHumidity,
		WindSpeed:   roundInt(resp.Current.WindSpeed),
	}
}

// Forecast returns the daily forecast for the next `days` days. Unlike
// Current there is no meaningful fallback, so failures return an error.
func (c *Client) Forecast(ctx context.Context, days int) ([]models.ForecastDay, error) {
	if days < 1 || days > 16 {
		days = 5
	}
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%v&longitude=%v&daily=temperature_2m_max,temperature_2m_min,weather_code,relative_humidity_2m_mean,wind_speed_10m_max&timezone=auto&forecast_days=%d",
		c.baseURL, capeTownLat, capeTownLon, days)

	var resp forecastResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	daily := resp.Daily
	forecast := make([]models.ForecastDay, 0, len(daily.Time))
	for i := range daily.Time {
		cond := conditionForCode(daily.WeatherCode[i])
		forecast = append(forecast, models.ForecastDay{
			Date:        daily.Time[i],
			Temp:        roundInt((daily.TempMax[i] + daily.TempMin[i]) / 2),
			TempMin:     roundInt(daily.TempMin[i]),
			TempMax:     roundInt(daily.TempMax[i]),
			Condition:   cond.Condition,
			Description: cond.Description,
			Icon:        cond.Icon,
			Humidity:    roundInt(daily.HumidityMean[i]),
			WindSpeed:   roundInt(daily.WindSpeedMax[i]),
		})
	}
	return forecast, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather data not available: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fallbackWeather() *models.Weather {
	return &models.Weather{
		Temp:        22,
		FeelsLike:   20,
		Condition:   "Clear",
		Description: "clear sky",
		Icon:        "01d",
		Humidity:    65,
		WindSpeed:   15,
	}
}

func roundInt(f float64) int {
	return int(math.Round(f))
}
