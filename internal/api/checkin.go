package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamasaathi/backend/internal/middleware"
	"github.com/mamasaathi/backend/internal/service"
)

// CheckinHandler handles mood check-ins.
type CheckinHandler struct {
	emotions *service.EmotionService
}

func NewCheckinHandler(emotions *service.EmotionService) *CheckinHandler {
	return &CheckinHandler{emotions: emotions}
}

func (h *CheckinHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/checkins", h.CheckIn)
	router.GET("/checkins", h.History)
	router.GET("/checkins/moods", h.Moods)
}

type checkinRequest struct {
	Mood string `json:"mood" binding:"required"`
}

func (h *CheckinHandler) CheckIn(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	var req checkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.emotions.CheckIn(c.Request.Context(), user, req.Mood)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"checkin": record})
}

func (h *CheckinHandler) History(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": h.emotions.History(user.UserID)})
}

// Moods lists the labels the check-in screen offers.
func (h *CheckinHandler) Moods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moods": service.Moods})
}
