package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/middleware"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/service"
)

type AnalyticsHandler struct {
	analytics   *service.AnalyticsService
	defaultDays int
	maxDays     int
}

func NewAnalyticsHandler(analytics *service.AnalyticsService, defaultDays, maxDays int) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics:   analytics,
		defaultDays: defaultDays,
		maxDays:     maxDays,
	}
}

// Overview handles GET /api/overview.
func (h *AnalyticsHandler) Overview(c fiber.Ctx) error {
	return c.JSON(h.analytics.Overview(h.defaultDays))
}

// KeyMetrics handles GET /api/metrics.
func (h *AnalyticsHandler) KeyMetrics(c fiber.Ctx) error {
	return c.JSON(h.analytics.KeyMetrics())
}

// ViewsTrend handles GET /api/views-trend?days=N.
func (h *AnalyticsHandler) ViewsTrend(c fiber.Ctx) error {
	days := middleware.ValidateDays(fiber.Query[string](c, "days"), h.defaultDays, h.maxDays)
	return c.JSON(fiber.Map{
		"data": h.analytics.ViewsOverTime(days),
		"days": days,
	})
}

// EngagementRate handles GET /api/engagement-rate.
func (h *AnalyticsHandler) EngagementRate(c fiber.Ctx) error {
	return c.JSON(h.analytics.EngagementRate())
}

// LikesDislikes handles GET /api/likes-dislikes.
func (h *AnalyticsHandler) LikesDislikes(c fiber.Ctx) error {
	return c.JSON(h.analytics.LikesDislikes())
}

// Recommendations handles GET /api/recommendations.
func (h *AnalyticsHandler) Recommendations(c fiber.Ctx) error {
	return c.JSON(h.analytics.Recommendations())
}

// Refresh handles POST /api/refresh. The snapshot itself only changes on
// fetch, so this simply acknowledges; GETs always recompute derived data.
func (h *AnalyticsHandler) Refresh(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Data refreshed successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
