package store

import (
	"encoding/csv"
	"strings"

	"github.com/mamasaathi/backend/internal/models"
)

// Exportable sheet names.
const (
	SheetUsers               = "Users"
	SheetParentingPlanner    = "ParentingPlanner"
	SheetMealPlans           = "MealPlans"
	SheetRecipes             = "Recipes"
	SheetEmotionCheckins     = "EmotionCheckins"
	SheetProductAvailability = "ProductAvailability"
)

// ExportSheet serializes one named collection as CSV with the sheet's fixed
// column order. An empty collection yields a header-only document. Credential
// material is never part of any sheet.
func (s *Store) ExportSheet(name string) (string, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case SheetUsers:
		rows := make([]models.SheetRow, len(s.users))
		for i, u := range s.users {
			rows[i] = u.User
		}
		return writeCSV(models.UserColumns, rows)
	case SheetParentingPlanner:
		return writeCSV(models.ParentingPlannerColumns, asRows(s.planners))
	case SheetMealPlans:
		return writeCSV(models.MealPlanColumns, asRows(s.mealPlans))
	case SheetRecipes:
		return writeCSV(models.RecipeColumns, asRows(s.recipes))
	case SheetEmotionCheckins:
		return writeCSV(models.EmotionCheckinColumns, asRows(s.checkins))
	case SheetProductAvailability:
		return writeCSV(models.ProductAvailabilityColumns, asRows(s.products))
	default:
		return "", &NotFoundError{Resource: "sheet"}
	}
}

func asRows[T models.SheetRow](records []T) []models.SheetRow {
	rows := make([]models.SheetRow, len(records))
	for i, r := range records {
		rows[i] = r
	}
	return rows
}

func writeCSV(columns []string, rows []models.SheetRow) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(columns); err != nil {
		return "", err
	}
	for _, r := range rows {
		if err := w.Write(r.Row()); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
