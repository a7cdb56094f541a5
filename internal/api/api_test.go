package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamasaathi/backend/internal/logger"
	"github.com/mamasaathi/backend/internal/models"
	"github.com/mamasaathi/backend/internal/service"
	"github.com/mamasaathi/backend/internal/store"
)

// stubGenerator returns fixed shapes, or err when set.
type stubGenerator struct {
	err error
}

func (g *stubGenerator) GenerateParentingPlan(_ context.Context, _ int) (*models.ParentingPlan, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &models.ParentingPlan{
		FeedingRoutine:  []string{"Feed every 3 hours"},
		SleepingRoutine: []string{"Nap after feeds"},
		PlaytimeRoutine: []string{"Tummy time"},
	}, nil
}

func (g *stubGenerator) GenerateMealPlan(_ context.Context, _, _ string, _, _ int) (*models.WeeklyMealPlan, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &models.WeeklyMealPlan{
		Mother: models.DailyMeals{
			Breakfast: []string{"Oatmeal"}, Lunch: []string{"Dal Rice"},
			Dinner: []string{"Khichdi"}, Snacks: []string{"Yogurt"},
		},
		Child: models.DailyMeals{
			Breakfast: []string{"Milk"}, Lunch: []string{"Milk"},
			Dinner: []string{"Milk"}, Snacks: []string{"Milk"},
		},
	}, nil
}

func (g *stubGenerator) GenerateRecipe(_ context.Context, mealName string) (*models.Recipe, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &models.Recipe{
		RecipeName:   mealName,
		Ingredients:  []string{"ingredient"},
		Instructions: []string{"step"},
		SuitableFor:  models.SuitableForBoth,
	}, nil
}

func (g *stubGenerator) GenerateEmotionSupport(_ context.Context, _ string) (*models.EmotionSupport, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &models.EmotionSupport{
		Affirmation:          "You are doing great.",
		StressReliefExercise: "Breathe slowly.",
		PepTalk:              "Keep going.",
	}, nil
}

func newTestRouter(t *testing.T, gen service.Generator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.Nop()
	profiles := store.New(store.WithLatency(0))
	sessions := service.NewSessionService(profiles, service.NewMemorySessionStore(), "test-secret", time.Hour, log)

	router := gin.New()
	SetupAPI(router, Services{
		Sessions: sessions,
		Planner:  service.NewPlannerService(gen, log),
		Meals:    service.NewMealPlanService(gen, service.NewMemorySearchCache(), log),
		Emotions: service.NewEmotionService(gen, log),
		Store:    profiles,
	})
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "user@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), `"UserID":"user-1"`)
	assert.NotContains(t, strings.ToLower(w.Body.String()), "password123")
}

func TestLoginEndpointRejects(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "user@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "not-an-email", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeRestoresSession(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	token := login(t, router, "user@example.com", "password123")

	w := doJSON(router, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Email":"user@example.com"`)

	w = doJSON(router, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"Name": "Fresh Parent", "Email": "new-user@example.com",
		"ParentAge": 28, "PINCode": "560001",
		"BabyBirthDate": "2025-01-10", "FamilyPreferences": "Vegetarian",
		"password": "fresh-password",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"UserID":"user-3"`)

	// Not-provisioned emails cannot register.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"Name": "Stranger", "Email": "stranger@example.com", "password": "whatever99",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	token := login(t, router, "user@example.com", "password123")

	w := doJSON(router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logging out without a token is fine.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/planner/generate"},
		{http.MethodPost, "/api/v1/mealplans/generate"},
		{http.MethodPost, "/api/v1/recipes/search"},
		{http.MethodGet, "/api/v1/recipes/searches"},
		{http.MethodPost, "/api/v1/checkins"},
		{http.MethodGet, "/api/v1/checkins"},
		{http.MethodGet, "/api/v1/admin/stats"},
	} {
		w := doJSON(router, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestPlannerGenerateEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	token := login(t, router, "user@example.com", "password123")

	w := doJSON(router, http.MethodPost, "/api/v1/planner/generate", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Feed every 3 hours")
	assert.Contains(t, w.Body.String(), "babyAgeWeeks")
}

func TestMealPlanGenerateEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	token := login(t, router, "user@example.com", "password123")

	w := doJSON(router, http.MethodPost, "/api/v1/mealplans/generate", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Recipes []models.Recipe `json:"recipes"`
		Partial bool            `json:"partial"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Recipes, 4)
	assert.False(t, resp.Partial)
}

func TestGenerationFailureMapsTo503(t *testing.T) {
	gen := &stubGenerator{err: &service.GenerationError{Stage: "request"}}
	router := newTestRouter(t, gen)
	token := login(t, router, "user@example.com", "password123")

	w := doJSON(router, http.MethodPost, "/api/v1/planner/generate", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "currently unavailable")
	assert.NotContains(t, w.Body.String(), "request", "internal stages do not leak")
}

func TestRecipeSearchEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	token := login(t, router, "user@example.com", "password123")

	w := doJSON(router, http.MethodPost, "/api/v1/recipes/search", token, gin.H{"dish": "Paneer Bhurji"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Paneer Bhurji")

	w = doJSON(router, http.MethodPost, "/api/v1/recipes/search", token, gin.H{"dish": "Warm Milk"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/recipes/searches", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Paneer Bhurji")
}

func TestCheckinEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	token := login(t, router, "user@example.com", "password123")

	w := doJSON(router, http.MethodPost, "/api/v1/checkins", token, gin.H{"mood": "Tired"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "You are doing great.")

	w = doJSON(router, http.MethodGet, "/api/v1/checkins", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Mood":"Tired"`)

	w = doJSON(router, http.MethodGet, "/api/v1/checkins/moods", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Overwhelmed")

	w = doJSON(router, http.MethodPost, "/api/v1/checkins", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	userToken := login(t, router, "user@example.com", "password123")

	w := doJSON(router, http.MethodGet, "/api/v1/admin/stats", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/admin/export/Users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminStatsEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	adminToken := login(t, router, "admin@example.com", "admin123")

	w := doJSON(router, http.MethodGet, "/api/v1/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.Summary.ActiveUsers)
	assert.NotEmpty(t, stats.InteractionData)
}

func TestAdminExportEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})
	adminToken := login(t, router, "admin@example.com", "admin123")

	w := doJSON(router, http.MethodGet, "/api/v1/admin/export/Users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Users_Data.csv", w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "UserID,"))
	assert.NotContains(t, w.Body.String(), "Password")

	w = doJSON(router, http.MethodGet, "/api/v1/admin/export/NoSuchSheet", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
