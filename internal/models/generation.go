package models

// The four types below mirror the JSON shapes the generation service is asked
// to produce. JSON tags must stay in sync with the declared response schemas.

// ParentingPlan is a daily routine for a new parent, broken into three
// sections of free-text steps.
type ParentingPlan struct {
	FeedingRoutine  []string `json:"FeedingRoutine"`
	SleepingRoutine []string `json:"SleepingRoutine"`
	PlaytimeRoutine []string `json:"PlaytimeRoutine"`
}

// DailyMeals holds one week of meals for a single person, seven entries per
// slot, one per day.
type DailyMeals struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

// WeeklyMealPlan pairs the mother's and the child's weekly plans.
type WeeklyMealPlan struct {
	Mother DailyMeals `json:"mother"`
	Child  DailyMeals `json:"child"`
}

// SuitableFor enum values on a generated recipe.
const (
	SuitableForMom  = "Mom"
	SuitableForBaby = "Baby"
	SuitableForBoth = "Both"
)

// Recipe is a single generated recipe.
type Recipe struct {
	RecipeName          string   `json:"RecipeName"`
	Ingredients         []string `json:"Ingredients"`
	Instructions        []string `json:"Instructions"`
	SuitableFor         string   `json:"SuitableFor"`
	LocalIngredientUsed bool     `json:"LocalIngredientUsed"`
}

// EmotionSupport is the supportive content generated for a mood check-in.
type EmotionSupport struct {
	Affirmation          string `json:"Affirmation"`
	StressReliefExercise string `json:"StressReliefExercise"`
	PepTalk              string `json:"PepTalk"`
}
