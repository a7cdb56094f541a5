package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mamasaathi/backend/internal/logger"
	"github.com/mamasaathi/backend/internal/models"
)

// ErrInvalidInput flags a request rejected before any external call.
var ErrInvalidInput = errors.New("invalid input")

// PartialResultMessage is shown when the recipe fan-out could not fetch every
// recipe; whatever was collected is still returned.
const PartialResultMessage = "Could not fetch all recipes. Some recipes may be missing."

// MealPlanResult is one meal-plan run: the weekly plan plus the recipes
// fetched for its distinct meal names. Partial marks a degraded fan-out.
type MealPlanResult struct {
	Plan    *models.WeeklyMealPlan `json:"plan"`
	Recipes []models.Recipe        `json:"recipes"`
	Partial bool                   `json:"partial"`
	Message string                 `json:"message,omitempty"`
}

// MealPlanService generates weekly meal plans and their recipes, and tracks
// recent free-text recipe searches.
type MealPlanService struct {
	gen      Generator
	searches RecentSearchCache
	now      func() time.Time
	logger   *logger.Logger
}

func NewMealPlanService(gen Generator, searches RecentSearchCache, log *logger.Logger) *MealPlanService {
	return &MealPlanService{gen: gen, searches: searches, now: time.Now, logger: log}
}

// GenerateWeeklyPlan produces the plan for the user's profile and then
// fetches one recipe per distinct meal name. Once the plan itself succeeded
// the result is never discarded: a failed recipe fetch only degrades it.
func (s *MealPlanService) GenerateWeeklyPlan(ctx context.Context, user *models.User) (*MealPlanResult, error) {
	if user == nil || user.BabyBirthDate == "" {
		return nil, fmt.Errorf("%w: baby birth date is not available", ErrIncompleteProfile)
	}
	if user.FamilyPreferences == "" || user.PINCode == "" {
		return nil, fmt.Errorf("%w: family preferences and PIN code are required", ErrIncompleteProfile)
	}

	weeks, err := AgeInWeeks(user.BabyBirthDate, s.now())
	if err != nil {
		return nil, err
	}

	plan, err := s.gen.GenerateMealPlan(ctx, user.FamilyPreferences, user.PINCode, user.ParentAge, weeks)
	if err != nil {
		return nil, err
	}

	recipes, partial := s.fetchRecipes(ctx, CollectMealNames(plan))

	result := &MealPlanResult{Plan: plan, Recipes: recipes, Partial: partial}
	if partial {
		result.Message = PartialResultMessage
	}
	return result, nil
}

// CollectMealNames gathers the distinct meal names across both weekly plans
// and all four slots, in encounter order. Empty entries and milk feeds are
// skipped; there is no recipe to fetch for plain milk.
func CollectMealNames(plan *models.WeeklyMealPlan) []string {
	var names []string
	seen := make(map[string]bool)

	collect := func(d *models.DailyMeals) {
		for _, meals := range [][]string{d.Breakfast, d.Lunch, d.Dinner, d.Snacks} {
			for _, meal := range meals {
				if meal == "" || strings.Contains(strings.ToLower(meal), "milk") {
					continue
				}
				if !seen[meal] {
					seen[meal] = true
					names = append(names, meal)
				}
			}
		}
	}

	collect(&plan.Mother)
	collect(&plan.Child)
	return names
}

// fetchRecipes requests one recipe per name, strictly sequentially. The
// external service rate-limits aggressively; at most one generation request
// is in flight at any time. Failed names are skipped and the result is
// marked partial.
func (s *MealPlanService) fetchRecipes(ctx context.Context, names []string) ([]models.Recipe, bool) {
	recipes := make([]models.Recipe, 0, len(names))
	partial := false

	for _, name := range names {
		recipe, err := s.gen.GenerateRecipe(ctx, name)
		if err != nil {
			s.logger.Warn().Str("meal", name).Err(err).Msg("skipping recipe in fan-out")
			partial = true
			continue
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, partial
}

// RecipeByName fetches a single recipe for a free-text dish name and records
// the search. Milk names are rejected locally, mirroring the plan fan-out.
func (s *MealPlanService) RecipeByName(ctx context.Context, userID, dish string) (*models.Recipe, error) {
	dish = strings.TrimSpace(dish)
	if dish == "" {
		return nil, fmt.Errorf("%w: dish name is required", ErrInvalidInput)
	}
	if strings.Contains(strings.ToLower(dish), "milk") {
		return nil, fmt.Errorf("%w: no recipe for plain milk", ErrInvalidInput)
	}

	if err := s.searches.Add(ctx, userID, dish); err != nil {
		// History is a convenience; losing an entry must not fail the search.
		s.logger.Warn().Err(err).Msg("failed to record recent search")
	}

	return s.gen.GenerateRecipe(ctx, dish)
}

// RecentSearches lists the user's recent recipe searches, most-recent first.
func (s *MealPlanService) RecentSearches(ctx context.Context, userID string) ([]string, error) {
	return s.searches.List(ctx, userID)
}
