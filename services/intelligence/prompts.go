package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"

	"capetown/models"
)

// tourismContext is prepended to every prompt so the model stays in its
// Cape Town expert persona.
const tourismContext = `You are a knowledgeable and friendly Cape Town tourism expert assistant.
Your goal is to help tourists plan their perfect Cape Town experience.
Provide personalized recommendations based on their preferences, budget, travel dates, and interests.
Be concise, helpful, and enthusiastic about Cape Town's attractions, culture, and experiences.
Always provide practical information like addresses, operating hours, and estimated costs when relevant.
Focus on creating memorable experiences while ensuring safety and enjoyment.`

func chatPrompt(history []models.AIMessage, message string) string {
	var sb strings.Builder
	sb.WriteString(tourismContext)
	sb.WriteString("\n\nConversation History:\n")
	for _, m := range history {
		role := "User"
		if m.Role == "assistant" {
			role = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", role, m.Content)
	}
	fmt.Fprintf(&sb, "\nUser: %s\n\nAssistant:", message)
	return sb.String()
}

func itineraryPrompt(prefs models.ItineraryPreferences) string {
	dates := prefs.Dates
	if dates == "" {
		dates = "Flexible"
	}
	return fmt.Sprintf(`%s

Based on the following traveler preferences, create a detailed day-by-day itinerary for Cape Town:

Duration: %d days
Travel Dates: %s
Budget: R%.0f per person per day
Group Type: %s
Interests: %s
Pace: %s
Mobility: %s

Please provide:
1. Daily schedule with morning, afternoon, and evening activities
2. Specific attraction names with brief descriptions
3. Estimated costs for each activity
4. Restaurant recommendations for meals
5. Travel time between locations
6. Practical tips and insider advice

Format the response in a clear, structured way that can be easily saved and followed.`,
		tourismContext, prefs.Duration, dates, prefs.Budget, prefs.GroupType,
		strings.Join(prefs.Interests, ", "), prefs.Pace, prefs.Mobility)
}

func budgetPrompt(req models.BudgetPlanRequest) string {
	return fmt.Sprintf(`%s

Create a detailed budget breakdown for a Cape Town trip:

Total Budget: R%.0f
Trip Duration: %d days
Number of People: %d
Budget Priorities: %s

Provide:
1. Recommended budget allocation by category (accommodation, food, activities, transport, misc)
2. Daily spending limit per person
3. Specific budget-friendly recommendations
4. Money-saving tips
5. Free or low-cost activities
6. Where to splurge vs. where to save

Present this in a clear, actionable format.`,
		tourismContext, req.TotalBudget, req.Duration, req.NumPeople,
		strings.Join(req.Priorities, ", "))
}

func weatherPrompt(current models.Weather, forecast []models.ForecastDay) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"current":  current,
		"forecast": forecast,
	})
	return fmt.Sprintf(`%s

Based on this weather forecast for Cape Town:
%s

Recommend:
1. Best activities for this weather
2. What to pack
3. Indoor alternatives if weather is poor
4. Best times of day for outdoor activities
5. Safety considerations

Keep it concise and actionable.`, tourismContext, payload)
}
