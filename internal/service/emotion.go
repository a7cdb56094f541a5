package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mamasaathi/backend/internal/logger"
	"github.com/mamasaathi/backend/internal/models"
)

// Moods are the labels offered by the check-in screen. Free text is also
// accepted; the generation mechanism is shared with recipe search.
var Moods = []string{"Happy", "Calm", "Tired", "Stressed", "Overwhelmed", "Grateful"}

// maxCheckinHistory caps the per-user in-memory check-in history.
const maxCheckinHistory = 20

// EmotionService generates supportive content for mood check-ins and keeps a
// transient per-user history. The history is view state, not a sheet: the
// store's check-in collection stays fixture-only.
type EmotionService struct {
	gen    Generator
	now    func() time.Time
	logger *logger.Logger

	mu      sync.Mutex
	history map[string][]models.EmotionCheckinRecord
}

func NewEmotionService(gen Generator, log *logger.Logger) *EmotionService {
	return &EmotionService{
		gen:     gen,
		now:     time.Now,
		logger:  log,
		history: make(map[string][]models.EmotionCheckinRecord),
	}
}

// CheckIn generates supportive content for a mood and prepends the resulting
// record to the user's history.
func (s *EmotionService) CheckIn(ctx context.Context, user *models.User, mood string) (*models.EmotionCheckinRecord, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user profile is not available", ErrIncompleteProfile)
	}
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil, fmt.Errorf("%w: mood is required", ErrInvalidInput)
	}

	support, err := s.gen.GenerateEmotionSupport(ctx, mood)
	if err != nil {
		return nil, err
	}

	checkedInAt := s.now()
	record := models.EmotionCheckinRecord{
		CheckinID:            fmt.Sprintf("%d-%s", checkedInAt.UnixMilli(), uuid.NewString()[:8]),
		UserID:               user.UserID,
		CheckinDate:          checkedInAt.UTC().Format(time.RFC3339),
		Mood:                 mood,
		Affirmation:          support.Affirmation,
		StressReliefExercise: support.StressReliefExercise,
		PepTalk:              support.PepTalk,
	}

	s.mu.Lock()
	entries := append([]models.EmotionCheckinRecord{record}, s.history[user.UserID]...)
	if len(entries) > maxCheckinHistory {
		entries = entries[:maxCheckinHistory]
	}
	s.history[user.UserID] = entries
	s.mu.Unlock()

	return &record, nil
}

// History returns the user's check-ins from this process lifetime, newest
// first.
func (s *EmotionService) History(userID string) []models.EmotionCheckinRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.EmotionCheckinRecord(nil), s.history[userID]...)
}
