package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

func TestAnalyze_NilGeneratorUsesFormula(t *testing.T) {
	svc := NewAIPerfService(nil)
	video := &model.VideoMetrics{Views: 50000, Likes: 2000, Comments: 500}

	analysis := svc.Analyze(context.Background(), video, nil)
	if analysis.AnalysisMethod != analysisMethodFallback {
		t.Fatalf("method = %q, want %q", analysis.AnalysisMethod, analysisMethodFallback)
	}

	// viewScore = 50000/100000*100 = 50
	// engagementRate = 2500/50000*100 = 5 -> engagementScore = min(100, 100) = 100
	// overall = 75
	if !almostEqual(analysis.Scores.Views, 50, 1e-9) {
		t.Errorf("view score = %v, want 50", analysis.Scores.Views)
	}
	if !almostEqual(analysis.Scores.Engagement, 100, 1e-9) {
		t.Errorf("engagement score = %v, want 100", analysis.Scores.Engagement)
	}
	if !almostEqual(analysis.OverallScore, 75, 1e-9) {
		t.Errorf("overall = %v, want 75", analysis.OverallScore)
	}
	if analysis.Grade != "B+" {
		t.Errorf("grade = %q, want B+", analysis.Grade)
	}
	if len(analysis.Recommendations) == 0 || len(analysis.KeyInsights) == 0 {
		t.Error("fallback analysis should carry recommendations and insights")
	}
}

func TestAnalyze_ZeroViewsDoesNotDivideByZero(t *testing.T) {
	svc := NewAIPerfService(nil)
	analysis := svc.Analyze(context.Background(), &model.VideoMetrics{}, nil)
	if analysis.OverallScore != 0 {
		t.Errorf("overall = %v, want 0", analysis.OverallScore)
	}
	if analysis.Grade != "C" {
		t.Errorf("grade = %q, want C", analysis.Grade)
	}
}

func TestFallbackGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "A+"}, {90, "A+"}, {87, "A"}, {82, "A-"},
		{75, "B+"}, {72, "B"}, {60, "C"}, {0, "C"},
	}
	for _, tt := range tests {
		if got := fallbackGrade(tt.score); got != tt.want {
			t.Errorf("fallbackGrade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAnalyze_GeneratorSuccess(t *testing.T) {
	gen := &fakeGenerator{responses: []string{`Here is the analysis:
{
  "overallScore": 82.5,
  "grade": "A-",
  "scores": {"views": 80, "engagement": 85, "watchTime": 78, "ctr": 87},
  "analysis": {"strengths": ["Great hook"], "weaknesses": ["Slow middle"], "benchmarkComparison": "Above average"},
  "recommendations": [{"type": "content", "title": "Tighten pacing", "description": "Cut the middle section", "priority": "medium", "expectedImpact": "Higher retention"}],
  "growthPotential": "high",
  "keyInsights": ["CTR is a strength"]
}`}}
	svc := NewAIPerfService(gen)
	video := &model.VideoMetrics{Views: 156789, Likes: 12456, Comments: 1876, Title: "Test"}

	analysis := svc.Analyze(context.Background(), video, &model.ChannelMetrics{SubscriberCount: 45230})
	if analysis.AnalysisMethod != analysisMethodLLM {
		t.Fatalf("method = %q, want %q", analysis.AnalysisMethod, analysisMethodLLM)
	}
	if analysis.OverallScore != 82.5 || analysis.Grade != "A-" {
		t.Errorf("got score %v grade %q", analysis.OverallScore, analysis.Grade)
	}
	if analysis.Scores.WatchTime != 78 {
		t.Errorf("watch time score = %v, want 78", analysis.Scores.WatchTime)
	}
	if len(analysis.Recommendations) != 1 || analysis.Recommendations[0].Priority != model.LevelMedium {
		t.Errorf("recommendations = %+v", analysis.Recommendations)
	}
	if analysis.LastUpdated == "" {
		t.Error("LastUpdated not set")
	}
}

func TestAnalyze_GeneratorErrorFallsBack(t *testing.T) {
	gen := &fakeGenerator{errs: []error{fmt.Errorf("quota exceeded")}}
	svc := NewAIPerfService(gen)

	analysis := svc.Analyze(context.Background(), &model.VideoMetrics{Views: 1000, Likes: 10}, nil)
	if analysis.AnalysisMethod != analysisMethodFallback {
		t.Fatalf("method = %q, want fallback", analysis.AnalysisMethod)
	}
}

func TestAnalyze_MalformedResponseFallsBack(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"the video is doing fine"}}
	svc := NewAIPerfService(gen)

	analysis := svc.Analyze(context.Background(), &model.VideoMetrics{Views: 1000, Likes: 10}, nil)
	if analysis.AnalysisMethod != analysisMethodFallback {
		t.Fatalf("method = %q, want fallback", analysis.AnalysisMethod)
	}
}

func TestParsePerformanceJSON_Defaults(t *testing.T) {
	analysis, err := parsePerformanceJSON(`{"overallScore": 150}`)
	if err != nil {
		t.Fatal(err)
	}
	if analysis.OverallScore != 75 {
		t.Errorf("out-of-range score -> %v, want default 75", analysis.OverallScore)
	}
	if analysis.Grade != "B" {
		t.Errorf("missing grade -> %q, want B", analysis.Grade)
	}
	if analysis.GrowthPotential != "moderate" {
		t.Errorf("missing growth potential -> %q, want moderate", analysis.GrowthPotential)
	}
}
