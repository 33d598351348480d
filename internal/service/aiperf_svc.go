package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/middleware"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

const (
	analysisMethodLLM      = "gemini_ai"
	analysisMethodFallback = "fallback"
)

// AIPerfService asks a language model for a qualitative performance review of
// the current video. When the model is unavailable or returns garbage the
// whole call falls back to a simple two-factor formula.
type AIPerfService struct {
	generator Generator
}

func NewAIPerfService(generator Generator) *AIPerfService {
	return &AIPerfService{generator: generator}
}

// Analyze produces a scored review with recommendations for the given video.
func (s *AIPerfService) Analyze(ctx context.Context, video *model.VideoMetrics, channel *model.ChannelMetrics) *model.AIPerformanceAnalysis {
	if s.generator == nil {
		return s.fallbackAnalysis(video)
	}

	raw, err := s.generator.GenerateText(ctx, buildPerformancePrompt(video, channel))
	if err != nil {
		middleware.Logger.Warn().Err(err).Msg("performance analysis failed, using fallback formula")
		return s.fallbackAnalysis(video)
	}

	analysis, err := parsePerformanceJSON(raw)
	if err != nil {
		middleware.Logger.Warn().Err(err).Msg("unparseable performance analysis, using fallback formula")
		return s.fallbackAnalysis(video)
	}

	analysis.AnalysisMethod = analysisMethodLLM
	analysis.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	return analysis
}

func buildPerformancePrompt(video *model.VideoMetrics, channel *model.ChannelMetrics) string {
	var b strings.Builder
	b.WriteString("You are a YouTube analytics expert. Analyze this video's performance:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", video.Title)
	fmt.Fprintf(&b, "Views: %d\n", video.Views)
	fmt.Fprintf(&b, "Likes: %d\n", video.Likes)
	fmt.Fprintf(&b, "Comments: %d\n", video.Comments)
	fmt.Fprintf(&b, "Duration: %s\n", video.Duration)
	fmt.Fprintf(&b, "Click-through rate: %.1f%%\n", video.ClickThroughRate)
	if channel != nil {
		fmt.Fprintf(&b, "Channel subscribers: %d\n", channel.SubscriberCount)
		fmt.Fprintf(&b, "Channel videos: %d\n", channel.VideoCount)
	}
	b.WriteString(`
Respond with ONLY a JSON object, no markdown fences, shaped exactly like:
{
  "overallScore": <0-100>,
  "grade": "<A+|A|A-|B+|B|B-|C+|C|C-|D|F>",
  "scores": {"views": <0-100>, "engagement": <0-100>, "watchTime": <0-100>, "ctr": <0-100>},
  "analysis": {"strengths": ["..."], "weaknesses": ["..."], "benchmarkComparison": "..."},
  "recommendations": [{"type": "...", "title": "...", "description": "...", "priority": "high|medium|low", "expectedImpact": "..."}],
  "growthPotential": "...",
  "keyInsights": ["..."]
}
`)
	return b.String()
}

// parsePerformanceJSON extracts the first JSON object from model output and
// fills defaults for anything missing.
func parsePerformanceJSON(raw string) (*model.AIPerformanceAnalysis, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var analysis model.AIPerformanceAnalysis
	if err := json.Unmarshal([]byte(raw[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("decode performance analysis: %w", err)
	}

	if analysis.OverallScore < 0 || analysis.OverallScore > 100 {
		analysis.OverallScore = 75
	}
	if analysis.Grade == "" {
		analysis.Grade = "B"
	}
	if analysis.GrowthPotential == "" {
		analysis.GrowthPotential = "moderate"
	}
	return &analysis, nil
}

// fallbackAnalysis scores on views and engagement only. View score saturates
// at 100k views, engagement score at a 5% engagement rate.
func (s *AIPerfService) fallbackAnalysis(video *model.VideoMetrics) *model.AIPerformanceAnalysis {
	views := float64(video.Views)
	engagementRate := float64(video.Likes+video.Comments) / math.Max(views, 1) * 100

	viewScore := math.Min(100, views/100000*100)
	engagementScore := math.Min(100, engagementRate*20)
	overall := (viewScore + engagementScore) / 2

	return &model.AIPerformanceAnalysis{
		OverallScore: round1(overall),
		Grade:        fallbackGrade(overall),
		Scores: model.ComponentScores{
			Views:      round1(viewScore),
			Engagement: round1(engagementScore),
		},
		Analysis: model.AIAnalysisDetail{
			Strengths:           fallbackStrengths(viewScore, engagementScore),
			Weaknesses:          fallbackWeaknesses(viewScore, engagementScore),
			BenchmarkComparison: "Compared against a 100k view and 5% engagement rate baseline.",
		},
		Recommendations: []model.AIRecommendation{
			{
				Type:           "general",
				Title:          "Review top performing content",
				Description:    "Identify what your best videos have in common and double down on those patterns.",
				Priority:       model.LevelMedium,
				ExpectedImpact: "Steady improvement across metrics",
			},
		},
		GrowthPotential: "moderate",
		KeyInsights: []string{
			fmt.Sprintf("Engagement rate is %.2f%%", round2(engagementRate)),
			fmt.Sprintf("View score %.0f of 100 against the 100k baseline", viewScore),
		},
		AnalysisMethod: analysisMethodFallback,
		LastUpdated:    time.Now().UTC().Format(time.RFC3339),
	}
}

func fallbackGrade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	default:
		return "C"
	}
}

func fallbackStrengths(viewScore, engagementScore float64) []string {
	var out []string
	if viewScore >= 70 {
		out = append(out, "Strong view count relative to baseline")
	}
	if engagementScore >= 70 {
		out = append(out, "Audience engages well with the content")
	}
	if len(out) == 0 {
		out = append(out, "Consistent upload presence")
	}
	return out
}

func fallbackWeaknesses(viewScore, engagementScore float64) []string {
	var out []string
	if viewScore < 70 {
		out = append(out, "View count below the 100k baseline")
	}
	if engagementScore < 70 {
		out = append(out, "Engagement rate has room to grow")
	}
	if len(out) == 0 {
		out = append(out, "No significant weaknesses detected")
	}
	return out
}
