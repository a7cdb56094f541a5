package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamasaathi/backend/internal/middleware"
	"github.com/mamasaathi/backend/internal/service"
)

// MealPlanHandler handles weekly meal-plan generation and recipe search.
type MealPlanHandler struct {
	meals *service.MealPlanService
}

func NewMealPlanHandler(meals *service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{meals: meals}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mealplans/generate", h.Generate)
	router.POST("/recipes/search", h.SearchRecipe)
	router.GET("/recipes/searches", h.RecentSearches)
}

// Generate produces the weekly plan and its recipes. A degraded fan-out is
// still a 200: the response carries the partial flag and message.
func (h *MealPlanHandler) Generate(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	result, err := h.meals.GenerateWeeklyPlan(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type recipeSearchRequest struct {
	Dish string `json:"dish" binding:"required"`
}

func (h *MealPlanHandler) SearchRecipe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	var req recipeSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.meals.RecipeByName(c.Request.Context(), user.UserID, req.Dish)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *MealPlanHandler) RecentSearches(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	searches, err := h.meals.RecentSearches(c.Request.Context(), user.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"searches": searches})
}
