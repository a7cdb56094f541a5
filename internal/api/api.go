package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mamasaathi/backend/internal/middleware"
	"github.com/mamasaathi/backend/internal/service"
	"github.com/mamasaathi/backend/internal/store"
)

// Services bundles everything the API layer depends on.
type Services struct {
	Sessions *service.SessionService
	Planner  *service.PlannerService
	Meals    *service.MealPlanService
	Emotions *service.EmotionService
	Store    *store.Store
}

// SetupAPI registers all v1 routes on the engine. Feature routes sit behind
// the session middleware; admin routes additionally require the admin role.
func SetupAPI(router *gin.Engine, svc Services) {
	v1 := router.Group("/api/v1")

	NewAuthHandler(svc.Sessions).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(svc.Sessions))
	{
		NewPlannerHandler(svc.Planner).RegisterRoutes(protected)
		NewMealPlanHandler(svc.Meals).RegisterRoutes(protected)
		NewCheckinHandler(svc.Emotions).RegisterRoutes(protected)
		NewAdminHandler(svc.Store).RegisterRoutes(protected)
	}
}
