package models

// SummaryStats are the headline numbers on the admin dashboard.
type SummaryStats struct {
	ActiveUsers        int `json:"activeUsers"`
	NewSignups         int `json:"newSignups"`
	MealPlansGenerated int `json:"mealPlansGenerated"`
	Interactions       int `json:"interactions"`
}

// ModuleInteractions is one bar of the per-module interaction breakdown.
type ModuleInteractions struct {
	Name         string `json:"name"`
	Interactions int    `json:"interactions"`
}

// DashboardStats is the full admin dashboard payload.
type DashboardStats struct {
	Summary         SummaryStats         `json:"summaryStats"`
	InteractionData []ModuleInteractions `json:"interactionData"`
}
