package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/handler"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Health      *handler.HealthHandler
	Fetch       *handler.FetchHandler
	Analytics   *handler.AnalyticsHandler
	Performance *handler.PerformanceHandler
	Sentiment   *handler.SentimentHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Probes and Prometheus scrape endpoint (outside the API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	api.Get("/health", h.Health.Health)

	// Channel data
	api.Post("/fetch-data", h.Fetch.Fetch)

	// Dashboard tabs
	api.Get("/overview", h.Analytics.Overview)
	api.Get("/metrics", h.Analytics.KeyMetrics)
	api.Get("/views-trend", h.Analytics.ViewsTrend)
	api.Get("/engagement-rate", h.Analytics.EngagementRate)
	api.Get("/likes-dislikes", h.Analytics.LikesDislikes)
	api.Get("/recommendations", h.Analytics.Recommendations)
	api.Post("/refresh", h.Analytics.Refresh)

	// Analysis
	api.Get("/performance", h.Performance.Performance)
	api.Get("/sentiment-analysis", h.Sentiment.Analyze)
}
