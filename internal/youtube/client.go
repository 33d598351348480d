// Package youtube wraps channel, video and comment retrieval from the
// YouTube Data API. A client built without an API key serves a fixed mock
// payload instead of failing, and transport failures degrade to the same
// mock data — callers treat both as ordinary valid input.
package youtube

import (
	"context"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/middleware"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

const minCommentLength = 10

type Client struct {
	service *youtube.Service
}

// NewClient builds a metadata client. An empty API key yields a client that
// serves mock data for every call.
func NewClient(ctx context.Context, apiKey string) *Client {
	if apiKey == "" {
		middleware.Logger.Warn().Msg("youtube: no API key configured, using mock data")
		return &Client{}
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("youtube: service init failed, using mock data")
		return &Client{}
	}

	middleware.Logger.Info().Msg("youtube: API client initialized")
	return &Client{service: service}
}

// UsingMockData reports whether the client serves mock payloads.
func (c *Client) UsingMockData() bool {
	return c.service == nil
}

// FetchChannel resolves a channel URL to its metrics.
// Returns ErrInvalidURL for unparseable URLs and ErrChannelNotFound when the
// reference resolves to nothing. Transport failures degrade to mock data.
func (c *Client) FetchChannel(ctx context.Context, channelURL string) (*model.ChannelMetrics, error) {
	ref, err := ExtractChannelRef(channelURL)
	if err != nil {
		return nil, err
	}

	if c.service == nil {
		return MockChannel(), nil
	}

	call := c.service.Channels.List([]string{"snippet", "statistics", "brandingSettings"}).Context(ctx)
	if strings.HasPrefix(ref, "@") {
		call = call.ForHandle(ref)
	} else {
		call = call.Id(ref)
	}

	resp, err := call.Do()
	if err != nil {
		middleware.Logger.Error().Err(err).Str("ref", ref).Msg("youtube: channel fetch failed, using mock data")
		return MockChannel(), nil
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	ch := resp.Items[0]
	metrics := &model.ChannelMetrics{
		ChannelID:   ch.Id,
		Title:       ch.Snippet.Title,
		Description: ch.Snippet.Description,
		PublishedAt: ch.Snippet.PublishedAt,
		Country:     ch.Snippet.Country,
		CustomURL:   ch.Snippet.CustomUrl,
	}
	if ch.Snippet.Thumbnails != nil && ch.Snippet.Thumbnails.High != nil {
		metrics.Thumbnail = ch.Snippet.Thumbnails.High.Url
	}
	if ch.Statistics != nil {
		metrics.SubscriberCount = int64(ch.Statistics.SubscriberCount)
		metrics.VideoCount = int64(ch.Statistics.VideoCount)
		metrics.ViewCount = int64(ch.Statistics.ViewCount)
	}
	if ch.BrandingSettings != nil && ch.BrandingSettings.Channel != nil {
		metrics.Keywords = ch.BrandingSettings.Channel.Keywords
	}
	return metrics, nil
}

// FetchVideos returns the channel's most recent uploads with statistics,
// newest first. Transport failures degrade to mock data.
func (c *Client) FetchVideos(ctx context.Context, channelID string, limit int64) ([]model.Video, error) {
	if c.service == nil {
		return MockVideos(), nil
	}

	chResp, err := c.service.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil || len(chResp.Items) == 0 {
		if err != nil {
			middleware.Logger.Error().Err(err).Str("channel", channelID).Msg("youtube: uploads lookup failed, using mock data")
			return MockVideos(), nil
		}
		return []model.Video{}, nil
	}

	uploads := chResp.Items[0].ContentDetails.RelatedPlaylists.Uploads
	plResp, err := c.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(uploads).
		MaxResults(limit).
		Context(ctx).Do()
	if err != nil {
		middleware.Logger.Error().Err(err).Str("channel", channelID).Msg("youtube: playlist fetch failed, using mock data")
		return MockVideos(), nil
	}

	videos := make([]model.Video, 0, len(plResp.Items))
	for _, item := range plResp.Items {
		videoID := item.ContentDetails.VideoId

		vResp, err := c.service.Videos.List([]string{"statistics", "contentDetails"}).Id(videoID).Context(ctx).Do()
		if err != nil || len(vResp.Items) == 0 {
			continue
		}
		detail := vResp.Items[0]

		v := model.Video{
			VideoID:     videoID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Duration:    detail.ContentDetails.Duration,
			Tags:        nil,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			v.Thumbnail = item.Snippet.Thumbnails.High.Url
		}
		if t, err := parseRFC3339(item.Snippet.PublishedAt); err == nil {
			v.PublishedAt = t
		}
		if detail.Statistics != nil {
			v.ViewCount = int64(detail.Statistics.ViewCount)
			v.LikeCount = int64(detail.Statistics.LikeCount)
			v.CommentCount = int64(detail.Statistics.CommentCount)
			v.FavoriteCount = int64(detail.Statistics.FavoriteCount)
		}
		videos = append(videos, v)
	}

	middleware.Logger.Info().Int("count", len(videos)).Str("channel", channelID).Msg("youtube: fetched videos")
	return videos, nil
}

// FetchComments returns up to limit top-level comment texts for a video,
// most relevant first. Very short comments are filtered out. Transport
// failures degrade to mock comments.
func (c *Client) FetchComments(ctx context.Context, videoID string, limit int64) ([]string, error) {
	if c.service == nil {
		return MockComments(), nil
	}

	resp, err := c.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(limit).
		Order("relevance").
		Context(ctx).Do()
	if err != nil {
		middleware.Logger.Error().Err(err).Str("video", videoID).Msg("youtube: comment fetch failed, using mock comments")
		return MockComments(), nil
	}

	comments := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		text := item.Snippet.TopLevelComment.Snippet.TextDisplay
		text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
		if len(text) > minCommentLength {
			comments = append(comments, text)
		}
	}

	middleware.Logger.Info().Int("count", len(comments)).Str("video", videoID).Msg("youtube: fetched comments")
	return comments, nil
}
