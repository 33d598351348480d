package service

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/pkg/duration"
)

const (
	analyticsVersion = "1.0.0"

	trendBaseViews   = 1000
	trendDailyGrowth = 1.15
)

// AnalyticsService holds the video and channel snapshot the dashboard reads
// from. A single snapshot lives behind the mutex; POST /fetch-data replaces
// it and every GET endpoint works off a copy.
type AnalyticsService struct {
	mu      sync.RWMutex
	video   model.VideoMetrics
	channel *model.ChannelMetrics

	rng         *rand.Rand
	scorer      *ScoreService
	recommender *RecommendationService
}

func NewAnalyticsService(rng *rand.Rand, scorer *ScoreService, recommender *RecommendationService) *AnalyticsService {
	return &AnalyticsService{
		video:       defaultVideoMetrics(),
		rng:         rng,
		scorer:      scorer,
		recommender: recommender,
	}
}

// defaultVideoMetrics is the dataset served before any channel is fetched.
func defaultVideoMetrics() model.VideoMetrics {
	return model.VideoMetrics{
		ID:                     "dQw4w9WgXcQ",
		Title:                  "How to Build Amazing React Applications - Complete Tutorial",
		Thumbnail:              "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=800&h=450&fit=crop",
		Duration:               "24:35",
		DurationSeconds:        1475,
		PublishedAt:            "2024-07-15T10:30:00Z",
		Views:                  156789,
		Likes:                  12456,
		Dislikes:               234,
		Comments:               1876,
		Shares:                 892,
		Subscribers:            45230,
		WatchTime:              "2.1M hours",
		AvgViewDuration:        "18:42",
		AvgViewDurationSeconds: 1122,
		ClickThroughRate:       8.7,
		Impressions:            2100000,
	}
}

// Update replaces the snapshot with the most recent video of a freshly
// fetched channel. Fields the metadata API no longer exposes are estimated.
func (s *AnalyticsService) Update(channel *model.ChannelMetrics, videos []model.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.channel = channel
	if len(videos) == 0 {
		return
	}

	latest := videos[0]
	durationSeconds := duration.ParseISO(latest.Duration)

	var subscribers int64
	if channel != nil {
		subscribers = channel.SubscriberCount
	}

	s.video = model.VideoMetrics{
		ID:                     latest.VideoID,
		Title:                  latest.Title,
		Thumbnail:              latest.Thumbnail,
		Duration:               duration.FormatClock(durationSeconds),
		DurationSeconds:        durationSeconds,
		PublishedAt:            latest.PublishedAt.UTC().Format(time.RFC3339),
		Views:                  latest.ViewCount,
		Likes:                  latest.LikeCount,
		Dislikes:               0,
		Comments:               latest.CommentCount,
		Shares:                 latest.FavoriteCount,
		Subscribers:            subscribers,
		WatchTime:              fmt.Sprintf("%.1fK hours", float64(latest.ViewCount)*0.015),
		AvgViewDuration:        "18:42",
		AvgViewDurationSeconds: 1122,
		ClickThroughRate:       8.7,
		Impressions:            latest.ViewCount * 10,
	}
}

// CurrentVideo returns a copy of the video snapshot.
func (s *AnalyticsService) CurrentVideo() model.VideoMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.video
}

// Channel returns a copy of the channel snapshot, or nil before any fetch.
func (s *AnalyticsService) Channel() *model.ChannelMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.channel == nil {
		return nil
	}
	c := *s.channel
	return &c
}

// ViewsOverTime simulates a daily views series ending today. Growth compounds
// at 15% per day from a base of 1000 with ±20% jitter; watch time runs at
// 1.5-2.5% of daily views.
func (s *AnalyticsService) ViewsOverTime(days int) []model.ViewsPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	points := make([]model.ViewsPoint, 0, days)
	now := time.Now()
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i))
		views := int64(trendBaseViews * math.Pow(trendDailyGrowth, float64(i)) * (0.8 + s.rng.Float64()*0.4))
		watchTime := float64(views) * (0.015 + s.rng.Float64()*0.01)
		points = append(points, model.ViewsPoint{
			Date:      date.Format("2006-01-02"),
			Views:     views,
			WatchTime: round1(watchTime),
		})
	}
	return points
}

// EngagementMetrics derives engagement figures from the current snapshot.
func (s *AnalyticsService) EngagementMetrics() model.EngagementMetrics {
	s.mu.RLock()
	video := s.video
	s.mu.RUnlock()

	totalEngagements := video.Likes + video.Comments + video.Shares
	var engagementRate float64
	if video.Views > 0 {
		engagementRate = float64(totalEngagements) / float64(video.Views) * 100
	}

	var likeDislikeRatio float64
	if video.Dislikes > 0 {
		likeDislikeRatio = float64(video.Likes) / float64(video.Dislikes)
	}

	var watchTimePct float64
	if video.DurationSeconds > 0 {
		watchTimePct = float64(video.AvgViewDurationSeconds) / float64(video.DurationSeconds) * 100
	}

	return model.EngagementMetrics{
		EngagementRate:         round2(engagementRate),
		LikeToDislikeRatio:     round1(likeDislikeRatio),
		WatchTimePercentage:    round1(watchTimePct),
		TotalEngagements:       totalEngagements,
		AvgViewDurationSeconds: video.AvgViewDurationSeconds,
	}
}

// EngagementRate is the live engagement payload with a simulated short-term
// trend of -1% to +3%.
func (s *AnalyticsService) EngagementRate() model.EngagementRateData {
	s.mu.Lock()
	video := s.video
	change := round1(-1 + s.rng.Float64()*4)
	s.mu.Unlock()

	var rate float64
	if video.Views > 0 {
		rate = float64(video.Likes+video.Comments) / float64(video.Views) * 100
	}

	direction := "stable"
	if change > 0 {
		direction = "up"
	} else if change < 0 {
		direction = "down"
	}

	return model.EngagementRateData{
		EngagementRate:   round2(rate),
		Likes:            video.Likes,
		Comments:         video.Comments,
		Views:            video.Views,
		TotalEngagements: video.Likes + video.Comments,
		Trend: model.EngagementTrend{
			Change:    math.Abs(change),
			Direction: direction,
		},
		Calculation: fmt.Sprintf("(%d likes + %d comments) / %d views × 100",
			video.Likes, video.Comments, video.Views),
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
}

// LikesDislikes breaks reactions down for the donut chart. When the provider
// reports zero dislikes they are estimated at 2% of likes, floored at one.
func (s *AnalyticsService) LikesDislikes() model.LikesDislikes {
	video := s.CurrentVideo()

	likes := video.Likes
	dislikes := video.Dislikes
	if dislikes == 0 {
		dislikes = int64(math.Max(1, float64(likes)*0.02))
	}

	total := likes + dislikes
	var likePct, dislikePct float64
	if total > 0 {
		likePct = float64(likes) / float64(total) * 100
		dislikePct = float64(dislikes) / float64(total) * 100
	}

	ratio := float64(likes)
	if dislikes > 0 {
		ratio = float64(likes) / float64(dislikes)
	}
	ratio = round1(ratio)

	return model.LikesDislikes{
		Likes:             likes,
		Dislikes:          dislikes,
		TotalReactions:    total,
		LikePercentage:    round1(likePct),
		DislikePercentage: round1(dislikePct),
		Ratio:             ratio,
		RatioText:         fmt.Sprintf("%g:1", ratio),
		ChartData: []model.ChartSlice{
			{Name: "Likes", Value: likes, Color: "#10b981"},
			{Name: "Dislikes", Value: dislikes, Color: "#ef4444"},
		},
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
}

// KeyMetrics is the condensed strip for the overview tab. Total views prefer
// the channel figure when a channel has been fetched.
func (s *AnalyticsService) KeyMetrics() model.KeyMetrics {
	s.mu.RLock()
	video := s.video
	channel := s.channel
	s.mu.RUnlock()

	totalViews := video.Views
	if channel != nil {
		totalViews = channel.ViewCount
	}

	return model.KeyMetrics{
		TotalViews:       totalViews,
		WatchTime:        video.WatchTime,
		EngagementRate:   s.EngagementMetrics().EngagementRate,
		ClickThroughRate: video.ClickThroughRate,
		TotalLikes:       video.Likes,
		TotalComments:    video.Comments,
		AvgViewDuration:  video.AvgViewDuration,
	}
}

// PerformanceScore runs the benchmark scorer against the current snapshot.
func (s *AnalyticsService) PerformanceScore() *model.ScoreBreakdown {
	s.mu.RLock()
	video := s.video
	channel := s.channel
	s.mu.RUnlock()
	return s.scorer.Compute(&video, channel)
}

// Recommendations generates suggestions from the current snapshot's score.
func (s *AnalyticsService) Recommendations() []model.Recommendation {
	s.mu.RLock()
	video := s.video
	channel := s.channel
	s.mu.RUnlock()

	breakdown := s.scorer.Compute(&video, channel)
	return s.recommender.Generate(breakdown, &video, channel)
}

// Overview assembles the combined overview payload.
func (s *AnalyticsService) Overview(days int) *model.Overview {
	video := s.CurrentVideo()
	channel := s.Channel()

	channelTotalViews := video.Views
	if channel != nil {
		channelTotalViews = channel.ViewCount
	}

	breakdown := s.scorer.Compute(&video, channel)
	return &model.Overview{
		CurrentVideo: model.OverviewVideo{
			VideoMetrics:      video,
			LastVideoViews:    video.Views,
			ChannelTotalViews: channelTotalViews,
		},
		ViewsOverTime:     s.ViewsOverTime(days),
		EngagementMetrics: s.EngagementMetrics(),
		PerformanceScore:  breakdown,
		Recommendations:   s.recommender.Generate(breakdown, &video, channel),
		ChannelData:       channel,
		LastUpdated:       time.Now().UTC().Format(time.RFC3339),
		AnalyticsVersion:  analyticsVersion,
	}
}
