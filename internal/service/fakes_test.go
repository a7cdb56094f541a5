package service

import (
	"context"
	"errors"

	"github.com/mamasaathi/backend/internal/models"
)

// fakeGenerator scripts Generator responses and records calls.
type fakeGenerator struct {
	plan     *models.ParentingPlan
	mealPlan *models.WeeklyMealPlan
	recipes  map[string]*models.Recipe
	support  *models.EmotionSupport
	err      error

	// failRecipeAt makes the Nth recipe call fail (1-based); 0 never fails.
	failRecipeAt int
	recipeCalls  []string
	inFlight     int
	maxInFlight  int
}

func (f *fakeGenerator) GenerateParentingPlan(_ context.Context, _ int) (*models.ParentingPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.plan, nil
}

func (f *fakeGenerator) GenerateMealPlan(_ context.Context, _, _ string, _, _ int) (*models.WeeklyMealPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.mealPlan, nil
}

func (f *fakeGenerator) GenerateRecipe(_ context.Context, mealName string) (*models.Recipe, error) {
	f.inFlight++
	defer func() { f.inFlight-- }()
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}

	f.recipeCalls = append(f.recipeCalls, mealName)
	if f.failRecipeAt > 0 && len(f.recipeCalls) == f.failRecipeAt {
		return nil, &GenerationError{Stage: "request", Err: errors.New("rate limited")}
	}
	if r, ok := f.recipes[mealName]; ok {
		return r, nil
	}
	return &models.Recipe{
		RecipeName:   mealName,
		Ingredients:  []string{"ingredient"},
		Instructions: []string{"step"},
		SuitableFor:  models.SuitableForBoth,
	}, nil
}

func (f *fakeGenerator) GenerateEmotionSupport(_ context.Context, _ string) (*models.EmotionSupport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.support, nil
}

// testUser is the profile most workflow tests run against.
func testUser() *models.User {
	return &models.User{
		UserID:            "user-1",
		Name:              "Test User",
		Email:             "user@example.com",
		ParentAge:         32,
		PINCode:           "110001",
		BabyBirthDate:     "2024-05-15",
		FamilyPreferences: "Vegetarian",
		UserType:          models.UserTypeUser,
	}
}
