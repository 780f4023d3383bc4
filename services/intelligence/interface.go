package intelligence

import (
	"context"

	"capetown/models"
)

// TextGenerator abstracts the model call so handlers and tests never
// touch the Gemini SDK directly.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ContextStore persists the rolling chat history per user.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.AIContext, error)
	Set(ctx context.Context, userID string, aiCtx *models.AIContext) error
	Clear(ctx context.Context, userID string) error
}

// AssistantService is the tourism assistant surface.
type AssistantService interface {
	Chat(ctx context.Context, userID, message string) (string, error)
	ClearHistory(ctx context.Context, userID string) error
	GenerateItinerary(ctx context.Context, prefs models.ItineraryPreferences) (string, error)
	BudgetPlan(ctx context.Context, req models.BudgetPlanRequest) (string, error)
	WeatherRecommendations(ctx context.Context, current models.Weather, forecast []models.ForecastDay) (string, error)
}
