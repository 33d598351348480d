package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/middleware"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/service"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/youtube"
)

const sentimentCommentLimit = 100

type SentimentHandler struct {
	yt        *youtube.Client
	analytics *service.AnalyticsService
	sentiment *service.LLMSentimentService
}

func NewSentimentHandler(yt *youtube.Client, analytics *service.AnalyticsService, sentiment *service.LLMSentimentService) *SentimentHandler {
	return &SentimentHandler{yt: yt, analytics: analytics, sentiment: sentiment}
}

// Analyze handles GET /api/sentiment-analysis. Comments for the current video
// run through the batched classifier and come back with per-comment detail,
// aggregate figures and CSV renditions of input and output.
func (h *SentimentHandler) Analyze(c fiber.Ctx) error {
	video := h.analytics.CurrentVideo()

	fetched, err := h.yt.FetchComments(c.Context(), video.ID, sentimentCommentLimit)
	if err != nil {
		middleware.Logger.Error().Err(err).Str("video_id", video.ID).Msg("comment fetch failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch comments")
	}
	comments, dataSource := commentsWithFallback(fetched, h.yt.UsingMockData())

	results, overview := h.sentiment.AnalyzeComments(c.Context(), comments)
	for _, r := range results {
		Metrics.SentimentResultsTotal.WithLabelValues(r.Source).Inc()
	}

	analysisMethod := "gemini_llm"
	if h.sentiment.ModelName() == "lexicon" || allFallback(results) {
		analysisMethod = "lexicon_fallback"
	}

	report := model.SentimentReport{
		Overview:           overview,
		DetailedSentiments: results,
		Summary:            service.Summarize(results, overview),
		VideoInfo: model.SentimentVideoInfo{
			VideoID:          video.ID,
			VideoTitle:       video.Title,
			CommentsAnalyzed: overview.TotalComments,
			DataSource:       dataSource,
			AnalysisMethod:   analysisMethod,
			ModelUsed:        h.sentiment.ModelName(),
		},
		InputCSV:    service.CommentsCSV(results),
		CSVResults:  service.ResultsCSV(results),
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	return c.JSON(report)
}

// commentsWithFallback substitutes the mock comment set when the provider
// returns nothing, so analysis always has material to work with.
func commentsWithFallback(comments []string, usingMock bool) ([]string, string) {
	if len(comments) == 0 {
		return youtube.MockComments(), "mock"
	}
	if usingMock {
		return comments, "mock"
	}
	return comments, "youtube_api"
}

func allFallback(results []model.SentimentResult) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if r.Source == model.SourceLLM {
			return false
		}
	}
	return true
}
