package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/middleware"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/service"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/youtube"
)

const fetchVideoLimit = 10

type FetchHandler struct {
	yt        *youtube.Client
	cache     *service.CacheService
	analytics *service.AnalyticsService
}

func NewFetchHandler(yt *youtube.Client, cache *service.CacheService, analytics *service.AnalyticsService) *FetchHandler {
	return &FetchHandler{yt: yt, cache: cache, analytics: analytics}
}

type fetchRequest struct {
	ChannelURL string `json:"channelUrl"`
}

// Fetch handles POST /api/fetch-data. It resolves the channel URL, loads the
// channel and its recent videos (through the cache when possible), swaps the
// analytics snapshot and returns the refreshed overview bundle.
func (h *FetchHandler) Fetch(c fiber.Ctx) error {
	var req fetchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}
	if strings.TrimSpace(req.ChannelURL) == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "Channel URL is required")
	}

	channel, videos, source, err := h.loadBundle(c.Context(), req.ChannelURL)
	if err != nil {
		switch {
		case errors.Is(err, youtube.ErrInvalidURL):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_URL", "Invalid YouTube channel URL format")
		case errors.Is(err, youtube.ErrChannelNotFound):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "CHANNEL_NOT_FOUND", "Channel not found")
		default:
			middleware.Logger.Error().Err(err).Msg("channel fetch failed")
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch YouTube data")
		}
	}

	Metrics.FetchesTotal.WithLabelValues(source).Inc()
	h.analytics.Update(channel, videos)

	return c.JSON(fiber.Map{
		"success":     true,
		"channelData": channel,
		"videos":      videos,
		"analytics":   h.analytics.Overview(7),
		"message":     "YouTube data fetched successfully",
	})
}

// loadBundle resolves the URL to a channel reference, consults the cache and
// falls through to the metadata API. The returned source labels the fetch
// counter: "cache", "api" or "mock".
func (h *FetchHandler) loadBundle(ctx context.Context, channelURL string) (*model.ChannelMetrics, []model.Video, string, error) {
	ref, err := youtube.ExtractChannelRef(channelURL)
	if err != nil {
		return nil, nil, "", err
	}

	if h.cache.Client() != nil {
		if bundle, err := h.cache.GetBundle(ctx, ref); err == nil && bundle != nil {
			Metrics.CacheHits.Inc()
			return bundle.Channel, bundle.Videos, "cache", nil
		} else if err != nil {
			middleware.Logger.Warn().Err(err).Str("ref", ref).Msg("cache read failed")
		} else {
			Metrics.CacheMisses.Inc()
		}
	}

	channel, err := h.yt.FetchChannel(ctx, channelURL)
	if err != nil {
		return nil, nil, "", err
	}

	videos, err := h.yt.FetchVideos(ctx, channel.ChannelID, fetchVideoLimit)
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("channel_id", channel.ChannelID).Msg("video fetch failed")
		videos = nil
	}

	if err := h.cache.SetBundle(ctx, ref, &service.ChannelBundle{Channel: channel, Videos: videos}); err != nil {
		middleware.Logger.Warn().Err(err).Str("ref", ref).Msg("cache write failed")
	}

	source := "api"
	if h.yt.UsingMockData() {
		source = "mock"
	}
	return channel, videos, source, nil
}
