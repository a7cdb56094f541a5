package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamasaathi/backend/internal/middleware"
	"github.com/mamasaathi/backend/internal/store"
)

// AdminHandler serves the admin dashboard: summary stats and sheet exports.
type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(s *store.Store) *AdminHandler {
	return &AdminHandler{store: s}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin", middleware.AdminOnly())
	{
		admin.GET("/stats", h.Stats)
		admin.GET("/export/:sheet", h.Export)
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.store.DashboardStats()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Export streams one sheet as a CSV download.
func (h *AdminHandler) Export(c *gin.Context) {
	sheet := c.Param("sheet")

	data, err := h.store.ExportSheet(sheet)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_Data.csv", sheet))
	c.Data(http.StatusOK, "text/csv", []byte(data))
}
