package service

import (
	"errors"
	"fmt"

	"github.com/mamasaathi/backend/internal/models"
)

// The validators below reject any response that parsed as JSON but does not
// carry the declared shape. External payloads are never trusted as-is.

func validateParentingPlan(p *models.ParentingPlan) error {
	if len(p.FeedingRoutine) == 0 {
		return invalidShape("FeedingRoutine missing or empty")
	}
	if len(p.SleepingRoutine) == 0 {
		return invalidShape("SleepingRoutine missing or empty")
	}
	if len(p.PlaytimeRoutine) == 0 {
		return invalidShape("PlaytimeRoutine missing or empty")
	}
	return nil
}

func validateDailyMeals(who string, d *models.DailyMeals) error {
	for slot, meals := range map[string][]string{
		"breakfast": d.Breakfast,
		"lunch":     d.Lunch,
		"dinner":    d.Dinner,
		"snacks":    d.Snacks,
	} {
		if len(meals) == 0 {
			return invalidShape(fmt.Sprintf("%s.%s missing or empty", who, slot))
		}
	}
	return nil
}

func validateWeeklyMealPlan(p *models.WeeklyMealPlan) error {
	if err := validateDailyMeals("mother", &p.Mother); err != nil {
		return err
	}
	return validateDailyMeals("child", &p.Child)
}

func validateRecipe(r *models.Recipe) error {
	if r.RecipeName == "" {
		return invalidShape("RecipeName missing")
	}
	if len(r.Ingredients) == 0 {
		return invalidShape("Ingredients missing or empty")
	}
	if len(r.Instructions) == 0 {
		return invalidShape("Instructions missing or empty")
	}
	switch r.SuitableFor {
	case models.SuitableForMom, models.SuitableForBaby, models.SuitableForBoth:
	default:
		return invalidShape("SuitableFor is not one of Mom, Baby, Both")
	}
	return nil
}

func validateEmotionSupport(e *models.EmotionSupport) error {
	if e.Affirmation == "" {
		return invalidShape("Affirmation missing")
	}
	if e.StressReliefExercise == "" {
		return invalidShape("StressReliefExercise missing")
	}
	if e.PepTalk == "" {
		return invalidShape("PepTalk missing")
	}
	return nil
}

func invalidShape(detail string) error {
	return &GenerationError{Stage: "validate", Err: errors.New(detail)}
}
