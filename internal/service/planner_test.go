package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamasaathi/backend/internal/logger"
	"github.com/mamasaathi/backend/internal/models"
)

func TestAgeInWeeks(t *testing.T) {
	cases := []struct {
		name      string
		birthDate string
		now       time.Time
		want      int
	}{
		{"exactly two weeks", "2024-06-01", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 2},
		{"one day short of two weeks", "2024-06-01", time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), 1},
		{"same day", "2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 0},
		{"mid-week rounds down", "2024-06-01", time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AgeInWeeks(tc.birthDate, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAgeInWeeksMonotonic(t *testing.T) {
	prev := -1
	for day := 0; day < 30; day++ {
		now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
		weeks, err := AgeInWeeks("2024-06-01", now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, weeks, prev)
		prev = weeks
	}
}

func TestAgeInWeeksInvalidDate(t *testing.T) {
	_, err := AgeInWeeks("not-a-date", time.Now())
	assert.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestGeneratePlan(t *testing.T) {
	gen := &fakeGenerator{
		plan: &models.ParentingPlan{
			FeedingRoutine:  []string{"Feed every 2-3 hours"},
			SleepingRoutine: []string{"Swaddle for sleep"},
			PlaytimeRoutine: []string{"Tummy time"},
		},
	}
	svc := NewPlannerService(gen, logger.Nop())
	svc.now = func() time.Time { return time.Date(2024, 6, 26, 0, 0, 0, 0, time.UTC) }

	result, err := svc.GeneratePlan(context.Background(), testUser())
	require.NoError(t, err)
	// Born 2024-05-15, six weeks before the frozen clock.
	assert.Equal(t, 6, result.BabyAgeWeeks)
	assert.Equal(t, gen.plan, result.Plan)
}

func TestGeneratePlanRequiresBirthDate(t *testing.T) {
	svc := NewPlannerService(&fakeGenerator{}, logger.Nop())

	user := testUser()
	user.BabyBirthDate = ""
	_, err := svc.GeneratePlan(context.Background(), user)
	assert.ErrorIs(t, err, ErrIncompleteProfile)

	_, err = svc.GeneratePlan(context.Background(), nil)
	assert.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestGeneratePlanServiceUnavailable(t *testing.T) {
	svc := NewPlannerService(&fakeGenerator{err: ErrNoAPIKey}, logger.Nop())

	_, err := svc.GeneratePlan(context.Background(), testUser())
	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}
