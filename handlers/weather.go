package handlers

import (
	"net/http"
	"strconv"

	"capetown/services/weather"

	"github.com/gin-gonic/gin"
)

// CurrentWeatherHandler serves current Cape Town conditions with
// activity suggestions. Always answers 200; a fetch failure serves the
// static fallback snapshot.
func CurrentWeatherHandler(client *weather.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := client.Current(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"weather":     current,
			"suggestions": weather.SuggestionsFor(*current),
		})
	}
}

// WeatherForecastHandler serves the daily forecast.
func WeatherForecastHandler(client *weather.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, _ := strconv.Atoi(c.DefaultQuery("days", "5"))
		forecast, err := client.Forecast(c.Request.Context(), days)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "weather data not available"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"forecast": forecast})
	}
}
