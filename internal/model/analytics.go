package model

// OverviewVideo is the current video snapshot plus comparison figures the
// overview tab shows side by side.
type OverviewVideo struct {
	VideoMetrics
	LastVideoViews    int64 `json:"lastVideoViews"`
	ChannelTotalViews int64 `json:"channelTotalViews"`
}

// Overview bundles everything the dashboard's overview tab needs in one call.
type Overview struct {
	CurrentVideo      OverviewVideo     `json:"currentVideo"`
	ViewsOverTime     []ViewsPoint      `json:"viewsOverTime"`
	EngagementMetrics EngagementMetrics `json:"engagementMetrics"`
	PerformanceScore  *ScoreBreakdown   `json:"performanceScore"`
	Recommendations   []Recommendation  `json:"recommendations"`
	ChannelData       *ChannelMetrics   `json:"channelData"`
	LastUpdated       string            `json:"lastUpdated"`
	AnalyticsVersion  string            `json:"analyticsVersion"`
}

// KeyMetrics is the condensed metric strip at the top of the dashboard.
type KeyMetrics struct {
	TotalViews       int64   `json:"totalViews"` // channel total when known
	WatchTime        string  `json:"watchTime"`
	EngagementRate   float64 `json:"engagementRate"`
	ClickThroughRate float64 `json:"clickThroughRate"`
	TotalLikes       int64   `json:"totalLikes"`
	TotalComments    int64   `json:"totalComments"`
	AvgViewDuration  string  `json:"avgViewDuration"`
}

// EngagementTrend is the short-horizon simulated movement of the engagement
// rate.
type EngagementTrend struct {
	Change    float64 `json:"change"`
	Direction string  `json:"direction"`
}

// EngagementRateData is the live engagement-rate payload with its calculation
// spelled out.
type EngagementRateData struct {
	EngagementRate   float64         `json:"engagementRate"`
	Likes            int64           `json:"likes"`
	Comments         int64           `json:"comments"`
	Views            int64           `json:"views"`
	TotalEngagements int64           `json:"totalEngagements"`
	Trend            EngagementTrend `json:"trend"`
	Calculation      string          `json:"calculation"`
	LastUpdated      string          `json:"lastUpdated"`
}

// ChartSlice is one wedge of the likes/dislikes donut.
type ChartSlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// LikesDislikes is the reaction breakdown for the current video. Dislikes are
// estimated at 2% of likes when the provider reports none.
type LikesDislikes struct {
	Likes             int64        `json:"likes"`
	Dislikes          int64        `json:"dislikes"`
	TotalReactions    int64        `json:"totalReactions"`
	LikePercentage    float64      `json:"likePercentage"`
	DislikePercentage float64      `json:"dislikePercentage"`
	Ratio             float64      `json:"ratio"`
	RatioText         string       `json:"ratioText"`
	ChartData         []ChartSlice `json:"chartData"`
	LastUpdated       string       `json:"lastUpdated"`
}
