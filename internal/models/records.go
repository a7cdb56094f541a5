package models

import (
	"encoding/json"
	"strconv"
)

// SheetRow is implemented by every record kind that can be exported as a
// delimited row. Row must return cells in the same order as the sheet's
// declared column list.
type SheetRow interface {
	Row() []string
}

// Column orders for each exportable sheet. ExportSheet emits these as the
// header row even when a collection is empty.
var (
	UserColumns = []string{
		"UserID", "Name", "Email", "ParentAge", "PINCode", "BabyBirthDate",
		"FamilyPreferences", "RegistrationDate", "RegistrationExpiry", "userType",
	}
	ParentingPlannerColumns = []string{
		"PlannerID", "UserID", "BabyAgeMonths", "GeneratedDate",
		"FeedingRoutine", "SleepingRoutine", "PlaytimeRoutine", "Notes",
	}
	MealPlanColumns = []string{
		"MealPlanID", "UserID", "WeekStartDate", "BabyAgeMonths", "FamilyPreferences",
		"LocalFoods", "Breakfast", "Lunch", "Dinner", "Snacks", "Notes",
	}
	RecipeColumns = []string{
		"RecipeID", "MealPlanID", "UserID", "BabyAgeMonths", "RecipeName",
		"Ingredients", "Instructions", "SuitableFor", "LocalIngredientUsed", "Notes",
	}
	EmotionCheckinColumns = []string{
		"CheckinID", "UserID", "CheckinDate", "Mood",
		"Affirmation", "StressReliefExercise", "PepTalk", "Notes",
	}
	ProductAvailabilityColumns = []string{
		"ProductID", "RecipeID", "ProductName", "PINCode", "AvailabilityStatus", "Notes",
	}
)

// ParentingPlannerRecord is one planner run (ParentingPlanner sheet).
type ParentingPlannerRecord struct {
	PlannerID       string   `json:"PlannerID"`
	UserID          string   `json:"UserID"`
	BabyAgeMonths   int      `json:"BabyAgeMonths"`
	GeneratedDate   string   `json:"GeneratedDate"`
	FeedingRoutine  []string `json:"FeedingRoutine"`
	SleepingRoutine []string `json:"SleepingRoutine"`
	PlaytimeRoutine []string `json:"PlaytimeRoutine"`
	Notes           string   `json:"Notes,omitempty"`
}

// MealPlanRecord is one meal-plan run (MealPlans sheet). The per-slot fields
// hold JSON array strings, matching the sheet's cell format.
type MealPlanRecord struct {
	MealPlanID        string `json:"MealPlanID"`
	UserID            string `json:"UserID"`
	WeekStartDate     string `json:"WeekStartDate"`
	BabyAgeMonths     int    `json:"BabyAgeMonths"`
	FamilyPreferences string `json:"FamilyPreferences"`
	LocalFoods        string `json:"LocalFoods"`
	Breakfast         string `json:"Breakfast"`
	Lunch             string `json:"Lunch"`
	Dinner            string `json:"Dinner"`
	Snacks            string `json:"Snacks"`
	Notes             string `json:"Notes,omitempty"`
}

// RecipeRecord is one stored recipe (Recipes sheet).
type RecipeRecord struct {
	RecipeID            string   `json:"RecipeID"`
	MealPlanID          string   `json:"MealPlanID"`
	UserID              string   `json:"UserID"`
	BabyAgeMonths       int      `json:"BabyAgeMonths"`
	RecipeName          string   `json:"RecipeName"`
	Ingredients         []string `json:"Ingredients"`
	Instructions        []string `json:"Instructions"`
	SuitableFor         string   `json:"SuitableFor"`
	LocalIngredientUsed bool     `json:"LocalIngredientUsed"`
	Notes               string   `json:"Notes,omitempty"`
}

// EmotionCheckinRecord is one mood check-in (EmotionCheckins sheet).
type EmotionCheckinRecord struct {
	CheckinID            string `json:"CheckinID"`
	UserID               string `json:"UserID"`
	CheckinDate          string `json:"CheckinDate"`
	Mood                 string `json:"Mood"`
	Affirmation          string `json:"Affirmation"`
	StressReliefExercise string `json:"StressReliefExercise"`
	PepTalk              string `json:"PepTalk"`
	Notes                string `json:"Notes,omitempty"`
}

// AvailabilityStatus enum values on a product-availability record.
const (
	StatusAvailable   = "Available"
	StatusUnavailable = "Unavailable"
	StatusSeasonal    = "Seasonal"
)

// ProductAvailabilityRecord is one product row (ProductAvailability sheet).
type ProductAvailabilityRecord struct {
	ProductID          string `json:"ProductID"`
	RecipeID           string `json:"RecipeID"`
	ProductName        string `json:"ProductName"`
	PINCode            string `json:"PINCode"`
	AvailabilityStatus string `json:"AvailabilityStatus"`
	Notes              string `json:"Notes,omitempty"`
}

// listCell serializes a string list as a JSON array for a single sheet cell.
func listCell(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func (u User) Row() []string {
	return []string{
		u.UserID, u.Name, u.Email, strconv.Itoa(u.ParentAge), u.PINCode,
		u.BabyBirthDate, u.FamilyPreferences, u.RegistrationDate,
		u.RegistrationExpiry, u.UserType,
	}
}

func (r ParentingPlannerRecord) Row() []string {
	return []string{
		r.PlannerID, r.UserID, strconv.Itoa(r.BabyAgeMonths), r.GeneratedDate,
		listCell(r.FeedingRoutine), listCell(r.SleepingRoutine),
		listCell(r.PlaytimeRoutine), r.Notes,
	}
}

func (r MealPlanRecord) Row() []string {
	return []string{
		r.MealPlanID, r.UserID, r.WeekStartDate, strconv.Itoa(r.BabyAgeMonths),
		r.FamilyPreferences, r.LocalFoods, r.Breakfast, r.Lunch, r.Dinner,
		r.Snacks, r.Notes,
	}
}

func (r RecipeRecord) Row() []string {
	return []string{
		r.RecipeID, r.MealPlanID, r.UserID, strconv.Itoa(r.BabyAgeMonths),
		r.RecipeName, listCell(r.Ingredients), listCell(r.Instructions),
		r.SuitableFor, strconv.FormatBool(r.LocalIngredientUsed), r.Notes,
	}
}

func (r EmotionCheckinRecord) Row() []string {
	return []string{
		r.CheckinID, r.UserID, r.CheckinDate, r.Mood, r.Affirmation,
		r.StressReliefExercise, r.PepTalk, r.Notes,
	}
}

func (r ProductAvailabilityRecord) Row() []string {
	return []string{
		r.ProductID, r.RecipeID, r.ProductName, r.PINCode,
		r.AvailabilityStatus, r.Notes,
	}
}
