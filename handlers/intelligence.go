package handlers

import (
	"net/http"

	"capetown/models"
	"capetown/services/intelligence"
	"capetown/services/weather"

	"github.com/gin-gonic/gin"
)

// AIChatHandler answers a tourism question with conversation memory.
func AIChatHandler(svc intelligence.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Message string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		reply, err := svc.Chat(c.Request.Context(), c.GetString("userID"), input.Message)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

// AIClearChatHandler resets the caller's conversation history.
func AIClearChatHandler(svc intelligence.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ClearHistory(c.Request.Context(), c.GetString("userID")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear history"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// AIItineraryHandler generates a day-by-day plan from preferences.
func AIItineraryHandler(svc intelligence.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var prefs models.ItineraryPreferences
		if err := c.ShouldBindJSON(&prefs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if prefs.Duration < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be at least 1 day"})
			return
		}

		plan, err := svc.GenerateItinerary(c.Request.Context(), prefs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate itinerary. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"itinerary": plan})
	}
}

// AIBudgetHandler generates a budget breakdown for a trip.
func AIBudgetHandler(svc intelligence.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BudgetPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if req.TotalBudget <= 0 || req.Duration < 1 || req.NumPeople < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "totalBudget, duration and numPeople must be positive"})
			return
		}

		plan, err := svc.BudgetPlan(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate budget plan. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"budgetPlan": plan})
	}
}

// AIWeatherTipsHandler turns the live forecast into packing and activity
// advice.
func AIWeatherTipsHandler(svc intelligence.AssistantService, wx *weather.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		current := wx.Current(ctx)
		forecast, err := wx.Forecast(ctx, 5)
		if err != nil {
			forecast = nil
		}

		tips, err := svc.WeatherRecommendations(ctx, *current, forecast)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recommendations. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"recommendations": tips})
	}
}
