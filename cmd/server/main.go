package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/config"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/gemini"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/handler"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/middleware"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/router"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/service"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "analytics-api")

	ctx := context.Background()

	yt := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if yt.UsingMockData() {
		middleware.Logger.Warn().Msg("no YouTube API key, serving mock channel data")
	}

	// The nil interface must stay nil when no key is set; wrapping a nil
	// *gemini.Client in the interface would defeat the generator == nil checks.
	var generator service.Generator
	modelName := cfg.GeminiModel
	if cfg.GeminiAPIKey != "" {
		gem, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			middleware.Logger.Warn().Err(err).Msg("gemini client init failed, AI features degraded")
		} else {
			generator = gem
		}
	} else {
		middleware.Logger.Warn().Msg("no Gemini API key, AI features use fallback algorithms")
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	// Each service guards its own random source; they must not share one.
	scorer := service.NewScoreService(rand.New(rand.NewSource(time.Now().UnixNano())))
	recommender := service.NewRecommendationService()
	analytics := service.NewAnalyticsService(rand.New(rand.NewSource(time.Now().UnixNano())), scorer, recommender)
	lexicon := service.NewLexiconService()
	sentiment := service.NewLLMSentimentService(generator, lexicon, modelName)
	aiPerf := service.NewAIPerfService(generator)

	handler.InitMetrics()

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Analytics API",
		ServerHeader: "AnalyticsDashboard",
	})

	h := &router.Handlers{
		Health:      handler.NewHealthHandler(cache.Client(), yt.UsingMockData()),
		Fetch:       handler.NewFetchHandler(yt, cache, analytics),
		Analytics:   handler.NewAnalyticsHandler(analytics, cfg.DefaultAnalyticsDays, cfg.MaxAnalyticsDays),
		Performance: handler.NewPerformanceHandler(analytics, aiPerf),
		Sentiment:   handler.NewSentimentHandler(yt, analytics, sentiment),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	middleware.Logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Msg("analytics backend starting")

	if err := app.Listen(":" + cfg.Port); err != nil {
		middleware.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
