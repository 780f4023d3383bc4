package intelligence

import (
	"context"
	"fmt"

	"capetown/models"

	"go.uber.org/zap"
)

// DefaultAssistantService answers tourism questions with Gemini and keeps
// per-user conversation history in Redis.
type DefaultAssistantService struct {
	Generator TextGenerator
	CtxStore  ContextStore
	Logger    *zap.Logger
}

func (s *DefaultAssistantService) Chat(ctx context.Context, userID, message string) (string, error) {
	aiCtx, err := s.CtxStore.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load context: %w", err)
	}

	reply, err := s.Generator.GenerateContent(ctx, chatPrompt(aiCtx.History, message))
	if err != nil {
		s.Logger.Error("assistant chat failed", zap.String("userID", userID), zap.Error(err))
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	aiCtx.History = append(aiCtx.History,
		models.AIMessage{Role: "user", Content: message},
		models.AIMessage{Role: "assistant", Content: reply},
	)
	if err := s.CtxStore.Set(ctx, userID, aiCtx); err != nil {
		// History loss is tolerable; the reply is not.
		s.Logger.Warn("failed to save chat context", zap.String("userID", userID), zap.Error(err))
	}
	return reply, nil
}

func (s *DefaultAssistantService) ClearHistory(ctx context.Context, userID string) error {
	return s.CtxStore.Clear(ctx, userID)
}

func (s *DefaultAssistantService) GenerateItinerary(ctx context.Context, prefs models.ItineraryPreferences) (string, error) {
	out, err := s.Generator.GenerateContent(ctx, itineraryPrompt(prefs))
	if err != nil {
		return "", fmt.Errorf("failed to generate itinerary: %w", err)
	}
	return out, nil
}

func (s *DefaultAssistantService) BudgetPlan(ctx context.Context, req models.BudgetPlanRequest) (string, error) {
	out, err := s.Generator.GenerateContent(ctx, budgetPrompt(req))
	if err != nil {
		return "", fmt.Errorf("failed to generate budget plan: %w", err)
	}
	return out, nil
}

func (s *DefaultAssistantService) WeatherRecommendations(ctx context.Context, current models.Weather, forecast []models.ForecastDay) (string, error) {
	out, err := s.Generator.GenerateContent(ctx, weatherPrompt(current, forecast))
	if err != nil {
		return "", fmt.Errorf("failed to get recommendations: %w", err)
	}
	return out, nil
}
