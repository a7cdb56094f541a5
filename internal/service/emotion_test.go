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

func newTestEmotionService(gen Generator) *EmotionService {
	return NewEmotionService(gen, logger.Nop())
}

func TestCheckIn(t *testing.T) {
	gen := &fakeGenerator{support: &models.EmotionSupport{
		Affirmation:          "You are doing a wonderful job.",
		StressReliefExercise: "Take five slow breaths.",
		PepTalk:              "Every small step counts.",
	}}
	svc := newTestEmotionService(gen)
	svc.now = func() time.Time { return time.Date(2024, 6, 26, 10, 0, 0, 0, time.UTC) }

	record, err := svc.CheckIn(context.Background(), testUser(), "Tired")
	require.NoError(t, err)

	assert.NotEmpty(t, record.CheckinID)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "2024-06-26T10:00:00Z", record.CheckinDate)
	assert.Equal(t, "Tired", record.Mood)
	assert.Equal(t, "You are doing a wonderful job.", record.Affirmation)
	assert.Equal(t, "Take five slow breaths.", record.StressReliefExercise)
	assert.Equal(t, "Every small step counts.", record.PepTalk)
}

func TestCheckInHistoryNewestFirst(t *testing.T) {
	svc := newTestEmotionService(&fakeGenerator{support: &models.EmotionSupport{
		Affirmation:          "a",
		StressReliefExercise: "b",
		PepTalk:              "c",
	}})
	ctx := context.Background()

	for _, mood := range []string{"Happy", "Calm", "Stressed"} {
		_, err := svc.CheckIn(ctx, testUser(), mood)
		require.NoError(t, err)
	}

	history := svc.History("user-1")
	require.Len(t, history, 3)
	assert.Equal(t, "Stressed", history[0].Mood)
	assert.Equal(t, "Happy", history[2].Mood)

	assert.Empty(t, svc.History("someone-else"))
}

func TestCheckInHistoryIsCapped(t *testing.T) {
	svc := newTestEmotionService(&fakeGenerator{support: &models.EmotionSupport{
		Affirmation:          "a",
		StressReliefExercise: "b",
		PepTalk:              "c",
	}})
	ctx := context.Background()

	for i := 0; i < maxCheckinHistory+5; i++ {
		_, err := svc.CheckIn(ctx, testUser(), "Calm")
		require.NoError(t, err)
	}
	assert.Len(t, svc.History("user-1"), maxCheckinHistory)
}

func TestCheckInValidation(t *testing.T) {
	svc := newTestEmotionService(&fakeGenerator{})

	_, err := svc.CheckIn(context.Background(), nil, "Happy")
	assert.ErrorIs(t, err, ErrIncompleteProfile)

	_, err = svc.CheckIn(context.Background(), testUser(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckInGenerationFailure(t *testing.T) {
	svc := newTestEmotionService(&fakeGenerator{err: &GenerationError{Stage: "request"}})

	_, err := svc.CheckIn(context.Background(), testUser(), "Overwhelmed")
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Empty(t, svc.History("user-1"), "failed check-ins are not recorded")
}
