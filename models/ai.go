package models

// AIContext keeps the rolling conversation history for one user so the
// assistant can answer follow-up questions.
type AIContext struct {
	History []AIMessage `json:"history"`
}

// AIMessage is one turn of the assistant conversation.
type AIMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ItineraryPreferences is the input for AI itinerary generation.
type ItineraryPreferences struct {
	Duration  int      `json:"duration"` // days
	Dates     string   `json:"dates,omitempty"`
	Budget    float64  `json:"budget"` // ZAR per person per day
	GroupType string   `json:"groupType"`
	Interests []string `json:"interests"`
	Pace      string   `json:"pace,omitempty"`
	Mobility  string   `json:"mobility,omitempty"`
}

// BudgetPlanRequest is the input for AI budget breakdown generation.
type BudgetPlanRequest struct {
	TotalBudget float64  `json:"totalBudget"` // ZAR
	Duration    int      `json:"duration"`    // days
	NumPeople   int      `json:"numPeople"`
	Priorities  []string `json:"priorities"`
}
