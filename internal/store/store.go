// Package store is the mock spreadsheet backend. All records live in memory,
// collections are seeded with fixture rows at construction, and every
// operation sleeps a configurable simulated latency before answering. It
// stands in for a real backend; nothing here survives a restart.
package store

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mamasaathi/backend/internal/models"
)

const registrationWindow = 90 * 24 * time.Hour

// storedUser pairs a user projection with its credential hash. The hash never
// leaves the store.
type storedUser struct {
	models.User
	passwordHash string
}

// Store holds the six sheet collections. A single mutex serializes access;
// the store models one spreadsheet, not a concurrent database.
type Store struct {
	mu      sync.Mutex
	latency time.Duration
	now     func() time.Time

	users     []storedUser
	planners  []models.ParentingPlannerRecord
	mealPlans []models.MealPlanRecord
	recipes   []models.RecipeRecord
	checkins  []models.EmotionCheckinRecord
	products  []models.ProductAvailabilityRecord
}

// Option configures a Store.
type Option func(*Store)

// WithLatency sets the simulated per-operation latency. Tests pass 0.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithClock injects the time source used for expiry checks and registration
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a seeded store.
func New(opts ...Option) *Store {
	s := &Store{
		latency: 300 * time.Millisecond,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

func (s *Store) sleep() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// Login authenticates by email and password. The returned profile carries no
// credential material.
func (s *Store) Login(email, password string) (*models.User, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(email)
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) != nil {
		return nil, &AuthError{Reason: "invalid email or password"}
	}

	expiry, err := time.Parse(time.RFC3339, u.RegistrationExpiry)
	if err != nil || s.now().After(expiry) {
		return nil, &AuthError{Reason: "registration expired"}
	}

	profile := u.User
	return &profile, nil
}

// Register completes a pre-provisioned placeholder row in place. Emails that
// were never provisioned are not eligible; this is an invite-only flow.
func (s *Store) Register(req models.RegistrationRequest, password string) (*models.User, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(req.Email)
	if u == nil {
		return nil, &RegistrationError{Reason: "email not eligible for registration"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	registeredAt := s.now()
	u.Name = req.Name
	u.ParentAge = req.ParentAge
	u.PINCode = req.PINCode
	u.BabyBirthDate = req.BabyBirthDate
	u.FamilyPreferences = req.FamilyPreferences
	u.RegistrationDate = registeredAt.UTC().Format(time.RFC3339)
	u.RegistrationExpiry = registeredAt.Add(registrationWindow).UTC().Format(time.RFC3339)
	u.passwordHash = string(hash)

	profile := u.User
	return &profile, nil
}

// ResetPassword overwrites the credential for a known email. The registration
// window is left untouched.
func (s *Store) ResetPassword(email, newPassword string) error {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(email)
	if u == nil {
		return &NotFoundError{Resource: "user"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.passwordHash = string(hash)
	return nil
}

// DashboardStats derives the admin summary by scanning all collections.
func (s *Store) DashboardStats() (*models.DashboardStats, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()

	return &models.DashboardStats{
		Summary: models.SummaryStats{
			ActiveUsers:        len(s.users),
			NewSignups:         1, // fixture value, no signup log to scan
			MealPlansGenerated: len(s.mealPlans),
			Interactions:       len(s.planners) + len(s.mealPlans) + len(s.checkins),
		},
		InteractionData: []models.ModuleInteractions{
			{Name: "Planner", Interactions: len(s.planners)},
			{Name: "Meals", Interactions: len(s.mealPlans)},
			{Name: "Check-ins", Interactions: len(s.checkins)},
		},
	}, nil
}

// findUser returns the stored record for an email, or nil. Callers hold mu.
func (s *Store) findUser(email string) *storedUser {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i]
		}
	}
	return nil
}
