package model

import "time"

// Video is a single fetched video as returned by the metadata provider.
type Video struct {
	VideoID       string    `json:"videoId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Thumbnail     string    `json:"thumbnail"`
	PublishedAt   time.Time `json:"publishedAt"`
	Duration      string    `json:"duration"` // ISO 8601, e.g. "PT24M35S"
	ViewCount     int64     `json:"viewCount"`
	LikeCount     int64     `json:"likeCount"`
	CommentCount  int64     `json:"commentCount"`
	FavoriteCount int64     `json:"favoriteCount"`
	Tags          []string  `json:"tags,omitempty"`
}

// VideoMetrics is the per-analysis snapshot of the video currently under
// inspection, with channel context folded in. Scoring, recommendation and
// AI-analysis calls all consume a copy of this struct.
type VideoMetrics struct {
	ID                     string  `json:"id"`
	Title                  string  `json:"title"`
	Thumbnail              string  `json:"thumbnail"`
	Duration               string  `json:"duration"` // display form, e.g. "24:35"
	DurationSeconds        int     `json:"durationSeconds"`
	PublishedAt            string  `json:"publishedAt"`
	Views                  int64   `json:"views"`
	Likes                  int64   `json:"likes"`
	Dislikes               int64   `json:"dislikes"`
	Comments               int64   `json:"comments"`
	Shares                 int64   `json:"shares"`
	Subscribers            int64   `json:"subscribers"`
	WatchTime              string  `json:"watchTime"` // display estimate, e.g. "2.1M hours"
	AvgViewDuration        string  `json:"avgViewDuration"`
	AvgViewDurationSeconds int     `json:"avgViewDurationSeconds"`
	ClickThroughRate       float64 `json:"clickThroughRate"`
	Impressions            int64   `json:"impressions"`
}

// EngagementMetrics are derived per-video engagement figures.
type EngagementMetrics struct {
	EngagementRate         float64 `json:"engagementRate"`
	LikeToDislikeRatio     float64 `json:"likeToDislikeRatio"`
	WatchTimePercentage    float64 `json:"watchTimePercentage"`
	TotalEngagements       int64   `json:"totalEngagements"`
	AvgViewDurationSeconds int     `json:"avgViewDurationSeconds"`
}

// ViewsPoint is one day in the simulated views-over-time series.
type ViewsPoint struct {
	Date      string  `json:"date"`
	Views     int64   `json:"views"`
	WatchTime float64 `json:"watchTime"`
}
