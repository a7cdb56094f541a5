package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mamasaathi/backend/internal/models"
)

// mustHash hashes a fixture password at the cheapest cost. Seed data is not a
// security surface and the store is rebuilt in every test.
func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

// seed loads the fixture rows every fresh store starts with: two complete
// users, one placeholder awaiting registration, one user whose registration
// window has lapsed, and a handful of activity rows for the admin dashboard.
func (s *Store) seed() {
	today := s.now().UTC().Format(time.RFC3339)

	s.users = []storedUser{
		{
			User: models.User{
				UserID: "user-1", Name: "Test User", Email: "user@example.com",
				ParentAge: 32, PINCode: "110001", BabyBirthDate: "2024-05-15",
				FamilyPreferences:  "Vegetarian",
				RegistrationDate:   "2024-01-01T10:00:00Z",
				RegistrationExpiry: "2099-12-31T23:59:59Z",
				UserType:           models.UserTypeUser,
			},
			passwordHash: mustHash("password123"),
		},
		{
			User: models.User{
				UserID: "user-2", Name: "Admin User", Email: "admin@example.com",
				ParentAge: 35, PINCode: "560001", BabyBirthDate: "2024-03-10",
				FamilyPreferences:  "Non-vegetarian, likes spicy food",
				RegistrationDate:   "2024-01-01T10:00:00Z",
				RegistrationExpiry: "2099-12-31T23:59:59Z",
				UserType:           models.UserTypeAdmin,
			},
			passwordHash: mustHash("admin123"),
		},
		{
			// Placeholder row: provisioned email waiting for registration to
			// complete the profile in place.
			User: models.User{
				UserID: "user-3", Email: "new-user@example.com",
				UserType: models.UserTypeUser,
			},
		},
		{
			User: models.User{
				UserID: "user-4", Name: "Expired User", Email: "expired@example.com",
				ParentAge: 40, PINCode: "123456", BabyBirthDate: "2023-01-01",
				FamilyPreferences:  "Anything",
				RegistrationDate:   "2023-01-01T10:00:00Z",
				RegistrationExpiry: "2024-01-01T23:59:59Z",
				UserType:           models.UserTypeUser,
			},
			passwordHash: mustHash("password123"),
		},
	}

	s.planners = []models.ParentingPlannerRecord{
		{
			PlannerID: "p1", UserID: "user-1", BabyAgeMonths: 2, GeneratedDate: today,
			FeedingRoutine:  []string{"Feed every 2-3 hours"},
			SleepingRoutine: []string{"Swaddle for sleep"},
			PlaytimeRoutine: []string{"Tummy time"},
		},
	}

	s.mealPlans = []models.MealPlanRecord{
		{
			MealPlanID: "m1", UserID: "user-1", WeekStartDate: today,
			BabyAgeMonths: 2, FamilyPreferences: "Vegetarian",
			LocalFoods: "Paneer, Lentils",
			Breakfast:  `["Oatmeal"]`, Lunch: `["Dal Rice"]`,
			Dinner: `["Khichdi"]`, Snacks: `["Yogurt"]`,
		},
	}

	s.recipes = []models.RecipeRecord{
		{
			RecipeID: "r1", MealPlanID: "m1", UserID: "user-1", BabyAgeMonths: 6,
			RecipeName:   "Oatmeal Porridge",
			Ingredients:  []string{"Oats", "Water"},
			Instructions: []string{"Boil water, add oats"},
			SuitableFor:  models.SuitableForBaby,
		},
	}

	s.checkins = []models.EmotionCheckinRecord{
		{
			CheckinID: "c1", UserID: "user-1", CheckinDate: today, Mood: "Happy",
			Affirmation:          "I am a great parent.",
			StressReliefExercise: "Deep breathing.",
			PepTalk:              "You've got this!",
		},
		{
			CheckinID: "c2", UserID: "user-2", CheckinDate: today, Mood: "Tired",
			Affirmation:          "It's okay to rest.",
			StressReliefExercise: "Stretch your arms.",
			PepTalk:              "Take a break.",
		},
	}

	s.products = []models.ProductAvailabilityRecord{
		{
			ProductID: "prod-1", RecipeID: "r1", ProductName: "Organic Oats",
			PINCode: "110001", AvailabilityStatus: models.StatusAvailable,
		},
	}
}
