package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

const maxRecommendations = 6

var levelRank = map[string]int{
	model.LevelHigh:   3,
	model.LevelMedium: 2,
	model.LevelLow:    1,
}

var trendMetricNames = map[string]string{
	"views":      "Views",
	"engagement": "Engagement",
	"watchTime":  "Watch Time",
	"ctr":        "Click-Through Rate",
}

// RecommendationService turns a score breakdown into a ranked, capped list of
// actionable suggestions. Rules fire independently; evaluation order only
// determines the id field, not the final sort order.
type RecommendationService struct{}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

// Generate applies the full rule set and returns at most 6 recommendations
// sorted by (priority, impact) descending.
func (s *RecommendationService) Generate(breakdown *model.ScoreBreakdown, video *model.VideoMetrics, channel *model.ChannelMetrics) []model.Recommendation {
	subscribers := video.Subscribers
	videoCount := int64(defaultVideoCount)
	if channel != nil {
		subscribers = channel.SubscriberCount
		videoCount = channel.VideoCount
	} else if subscribers == 0 {
		subscribers = defaultSubscribers
	}

	engagementRate := EngagementRate(video)
	retention := RetentionPercentage(video)
	scores := breakdown.Scores

	var recs []model.Recommendation

	// Critical issues (component score < 40)
	if scores.Views < 40 {
		viewRate := float64(video.Views) / math.Max(float64(subscribers), 1)
		if viewRate < 0.005 {
			recs = append(recs, model.Recommendation{
				ID:    1,
				Type:  model.RecTypeWarning,
				Title: "Critical: Very Low View Performance",
				Description: fmt.Sprintf("Only %.2f%% of your subscribers viewed this content. Consider: 1) Better thumbnails, 2) More engaging titles, 3) Optimal posting times, 4) Community engagement.",
					viewRate*100),
				Priority: model.LevelHigh,
				Impact:   model.LevelHigh,
				Category: "Views",
				ActionItems: []string{
					"A/B test thumbnail designs",
					"Analyze competitor titles",
					"Post when your audience is most active",
					"Engage with comments within first hour",
				},
			})
		}
	}

	if scores.WatchTime < 40 {
		recs = append(recs, model.Recommendation{
			ID:    2,
			Type:  model.RecTypeWarning,
			Title: "Critical: Poor Audience Retention",
			Description: fmt.Sprintf("Viewers are leaving after %.1f%% of your video. This severely impacts the recommendation algorithm's ranking.",
				retention),
			Priority: model.LevelHigh,
			Impact:   model.LevelHigh,
			Category: "Retention",
			ActionItems: []string{
				"Hook viewers in first 15 seconds",
				"Remove slow/boring sections",
				"Add pattern interrupts every 30 seconds",
				"Use jump cuts and visual variety",
			},
		})
	}

	// Improvement opportunities (score 40–70)
	if scores.CTR >= 40 && scores.CTR < 70 {
		recs = append(recs, model.Recommendation{
			ID:    3,
			Type:  model.RecTypeInfo,
			Title: "Optimize Click-Through Rate",
			Description: fmt.Sprintf("Your CTR of %.1f%% is below optimal. Industry leaders achieve 8-12%% CTR through strategic thumbnail and title optimization.",
				video.ClickThroughRate),
			Priority: model.LevelMedium,
			Impact:   model.LevelHigh,
			Category: "CTR",
			ActionItems: []string{
				"Use bright, contrasting colors in thumbnails",
				"Include emotional expressions in thumbnails",
				"Write curiosity-driven titles",
				"Test different thumbnail styles",
			},
		})
	}

	if scores.Engagement >= 40 && scores.Engagement < 70 {
		recs = append(recs, model.Recommendation{
			ID:    4,
			Type:  model.RecTypeInfo,
			Title: "Boost Audience Engagement",
			Description: fmt.Sprintf("Engagement rate of %.1f%% can be improved. Higher engagement signals quality content to the recommendation algorithm.",
				engagementRate),
			Priority: model.LevelMedium,
			Impact:   model.LevelMedium,
			Category: "Engagement",
			ActionItems: []string{
				"Ask specific questions to encourage comments",
				"Create polls and community posts",
				"Respond to comments quickly",
				"End videos with clear call-to-action",
			},
		})
	}

	// Excellent performance recognition (score > 80)
	if scores.CTR > 80 {
		recs = append(recs, model.Recommendation{
			ID:    5,
			Type:  model.RecTypeSuccess,
			Title: "Excellent Click-Through Rate!",
			Description: fmt.Sprintf("Outstanding CTR of %.1f%%! This is significantly above average. Document what worked for future videos.",
				video.ClickThroughRate),
			Priority: model.LevelLow,
			Impact:   model.LevelHigh,
			Category: "CTR",
			ActionItems: []string{
				"Document successful thumbnail elements",
				"Analyze title structure for patterns",
				"Create template based on this success",
				"Share insights with team/community",
			},
		})
	}

	if scores.Engagement > 80 {
		recs = append(recs, model.Recommendation{
			ID:    6,
			Type:  model.RecTypeSuccess,
			Title: "Exceptional Audience Engagement!",
			Description: fmt.Sprintf("Your engagement rate of %.1f%% is excellent! This content resonates strongly with your audience.",
				engagementRate),
			Priority: model.LevelLow,
			Impact:   model.LevelMedium,
			Category: "Engagement",
			ActionItems: []string{
				"Create similar content themes",
				"Analyze what topics drove engagement",
				"Consider making this a series",
				"Promote this video across platforms",
			},
		})
	}

	// Trend declines
	for _, metric := range []string{"views", "engagement", "watchTime", "ctr"} {
		trend, ok := breakdown.Trends[metric]
		if !ok || trend.Direction != "down" || trend.Strength != "strong" {
			continue
		}
		name := trendMetricNames[metric]
		recs = append(recs, model.Recommendation{
			ID:    7 + len(recs),
			Type:  model.RecTypeWarning,
			Title: fmt.Sprintf("Declining %s Trend", name),
			Description: fmt.Sprintf("%s has dropped by %.1f points recently. This needs immediate attention to prevent further decline.",
				name, math.Abs(trend.Change)),
			Priority: model.LevelHigh,
			Impact:   model.LevelMedium,
			Category: "Trends",
			ActionItems: []string{
				fmt.Sprintf("Analyze recent %s performance", name),
				"Compare with successful past content",
				"Identify what changed in your approach",
				"Test returning to previous successful strategies",
			},
		})
	}

	// Channel maturity strategy
	if breakdown.ChannelMaturity < 30 {
		recs = append(recs, model.Recommendation{
			ID:    10,
			Type:  model.RecTypeInfo,
			Title: "New Channel Growth Strategy",
			Description: fmt.Sprintf("As a newer channel (%d videos), focus on consistency and finding your niche. Establish a regular posting schedule.",
				videoCount),
			Priority: model.LevelMedium,
			Impact:   model.LevelHigh,
			Category: "Growth",
			ActionItems: []string{
				"Post consistently (same days/times)",
				"Focus on one main topic/niche",
				"Engage actively with similar channels",
				"Create eye-catching channel art",
			},
		})
	} else if breakdown.ChannelMaturity > 80 {
		recs = append(recs, model.Recommendation{
			ID:    11,
			Type:  model.RecTypeInfo,
			Title: "Mature Channel Optimization",
			Description: fmt.Sprintf("With %d+ videos, focus on optimizing your best content and exploring new formats to maintain growth.",
				videoCount),
			Priority: model.LevelLow,
			Impact:   model.LevelMedium,
			Category: "Optimization",
			ActionItems: []string{
				"Update thumbnails on top-performing videos",
				"Create playlists to increase session time",
				"Experiment with new content formats",
				"Consider collaborations with other creators",
			},
		})
	}

	// Viral detection
	if breakdown.Bonuses.Viral > 5 {
		recs = append(recs, model.Recommendation{
			ID:          12,
			Type:        model.RecTypeSuccess,
			Title:       "Viral Content Detected!",
			Description: "This content is performing exceptionally well beyond your subscriber base! Capitalize on this momentum.",
			Priority:    model.LevelHigh,
			Impact:      model.LevelHigh,
			Category:    "Viral",
			ActionItems: []string{
				"Promote heavily across all social platforms",
				"Create follow-up content quickly",
				"Engage with all comments to boost algorithm",
				"Consider paid promotion to amplify reach",
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		pi, pj := levelRank[recs[i].Priority], levelRank[recs[j].Priority]
		if pi != pj {
			return pi > pj
		}
		return levelRank[recs[i].Impact] > levelRank[recs[j].Impact]
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
