package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cortado/internal/service"
)

// DashboardHandler serves the read-only projections the dashboard renders:
// the ratings table (which also feeds the map), the aggregate statistics
// and the restaurant leaderboard.
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *slog.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// RegisterRoutes registers dashboard routes.
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ratings", h.List)
	router.GET("/ratings/stats", h.Stats)
	router.GET("/ratings/leaderboard", h.Leaderboard)
}

// List returns the joined projection, one row per rating.
// GET /api/ratings
func (h *DashboardHandler) List(c *gin.Context) {
	rows, err := h.dashboardService.ListRatings(c.Request.Context())
	if err != nil {
		h.logger.Error("listing ratings failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "count": len(rows)})
}

// Stats returns the aggregate statistics.
// GET /api/ratings/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("computing stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Leaderboard returns per-restaurant aggregates ordered by average stars.
// GET /api/ratings/leaderboard
func (h *DashboardHandler) Leaderboard(c *gin.Context) {
	entries, err := h.dashboardService.Leaderboard(c.Request.Context())
	if err != nil {
		h.logger.Error("computing leaderboard failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries, "count": len(entries)})
}
