package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mamasaathi/backend/internal/logger"
	"github.com/mamasaathi/backend/internal/models"
)

// ErrIncompleteProfile flags a workflow request whose profile lacks a
// required attribute. It is a local validation failure, not a store or
// generation error.
var ErrIncompleteProfile = errors.New("profile incomplete")

// AgeInWeeks derives a baby's age from its YYYY-MM-DD birth date, rounded
// down to whole weeks. The result is monotonic in now for a fixed birth date.
func AgeInWeeks(birthDate string, now time.Time) (int, error) {
	dob, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid baby birth date", ErrIncompleteProfile)
	}
	return int(now.Sub(dob) / (7 * 24 * time.Hour)), nil
}

// PlannerResult is one parenting-plan run.
type PlannerResult struct {
	BabyAgeWeeks int                  `json:"babyAgeWeeks"`
	Plan         *models.ParentingPlan `json:"plan"`
}

// PlannerService generates daily parenting routines.
type PlannerService struct {
	gen    Generator
	now    func() time.Time
	logger *logger.Logger
}

func NewPlannerService(gen Generator, log *logger.Logger) *PlannerService {
	return &PlannerService{gen: gen, now: time.Now, logger: log}
}

// GeneratePlan derives the baby's age from the profile and requests a
// routine. Generation failures surface as *GenerationError; the caller shows
// a generic unavailable message.
func (s *PlannerService) GeneratePlan(ctx context.Context, user *models.User) (*PlannerResult, error) {
	if user == nil || user.BabyBirthDate == "" {
		return nil, fmt.Errorf("%w: baby birth date is not available", ErrIncompleteProfile)
	}

	weeks, err := AgeInWeeks(user.BabyBirthDate, s.now())
	if err != nil {
		return nil, err
	}

	plan, err := s.gen.GenerateParentingPlan(ctx, weeks)
	if err != nil {
		return nil, err
	}

	return &PlannerResult{BabyAgeWeeks: weeks, Plan: plan}, nil
}
