package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/service"
)

type PerformanceHandler struct {
	analytics *service.AnalyticsService
	aiPerf    *service.AIPerfService
}

func NewPerformanceHandler(analytics *service.AnalyticsService, aiPerf *service.AIPerfService) *PerformanceHandler {
	return &PerformanceHandler{analytics: analytics, aiPerf: aiPerf}
}

// Performance handles GET /api/performance. The AI analysis and the benchmark
// scorer run side by side so the dashboard can compare them.
func (h *PerformanceHandler) Performance(c fiber.Ctx) error {
	video := h.analytics.CurrentVideo()
	channel := h.analytics.Channel()

	aiAnalysis := h.aiPerf.Analyze(c.Context(), &video, channel)

	timer := prometheus.NewTimer(Metrics.ScoreComputeDuration)
	traditional := h.analytics.PerformanceScore()
	timer.ObserveDuration()

	return c.JSON(fiber.Map{
		"geminiAnalysis":      aiAnalysis,
		"traditionalAnalysis": traditional,
		"videoInfo": fiber.Map{
			"videoId":           video.ID,
			"videoTitle":        video.Title,
			"analysisTimestamp": time.Now().UTC().Format(time.RFC3339),
		},
		"analysisMethod": aiAnalysis.AnalysisMethod,
	})
}
