package service

import (
	"strings"
	"testing"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

func TestNormalize(t *testing.T) {
	svc := NewLexiconService()
	tests := []struct {
		in   string
		want string
	}{
		{"Hello   World", "hello world"},
		{"check https://example.com/watch?v=abc now", "check now"},
		{"WOW!!!", "wow!"},
		{"really???", "really?"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := svc.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnalyze_Polarity(t *testing.T) {
	svc := NewLexiconService()

	pos := svc.Analyze("This video is amazing, absolutely love the content!")
	if pos.Compound <= 0 {
		t.Errorf("positive text compound = %v, want > 0", pos.Compound)
	}

	neg := svc.Analyze("Terrible video, complete waste of time")
	if neg.Compound >= 0 {
		t.Errorf("negative text compound = %v, want < 0", neg.Compound)
	}

	neu := svc.Analyze("The video was uploaded on Tuesday")
	if neu.Compound != 0 {
		t.Errorf("neutral text compound = %v, want 0", neu.Compound)
	}
}

func TestAnalyze_Negation(t *testing.T) {
	svc := NewLexiconService()

	plain := svc.Analyze("this is good")
	negated := svc.Analyze("this is not good")
	if negated.Compound >= plain.Compound {
		t.Errorf("negation did not lower score: %v >= %v", negated.Compound, plain.Compound)
	}
	if negated.Compound >= 0 {
		t.Errorf("negated positive should flip sign, got %v", negated.Compound)
	}
}

func TestAnalyze_Boosters(t *testing.T) {
	svc := NewLexiconService()

	plain := svc.Analyze("good video")
	boosted := svc.Analyze("really good video")
	if boosted.Compound <= plain.Compound {
		t.Errorf("booster did not raise score: %v <= %v", boosted.Compound, plain.Compound)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	svc := NewLexiconService()
	text := "Great content, but the audio quality was poor"
	first := svc.Analyze(text)
	for i := 0; i < 5; i++ {
		if got := svc.Analyze(text); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestAnalyze_CompoundInRange(t *testing.T) {
	svc := NewLexiconService()
	texts := []string{
		strings.Repeat("amazing awesome excellent ", 20),
		strings.Repeat("terrible awful horrible ", 20),
		"",
		"!",
	}
	for _, text := range texts {
		got := svc.Analyze(text)
		if got.Compound < -1 || got.Compound > 1 {
			t.Errorf("compound %v out of [-1,1] for %q...", got.Compound, text[:min(20, len(text))])
		}
	}
}

func TestClassify(t *testing.T) {
	svc := NewLexiconService()
	tests := []struct {
		compound float64
		want     string
	}{
		{0.5, model.SentimentPositive},
		{0.05, model.SentimentPositive},
		{0.049, model.SentimentNeutral},
		{0, model.SentimentNeutral},
		{-0.049, model.SentimentNeutral},
		{-0.05, model.SentimentNegative},
		{-0.9, model.SentimentNegative},
	}
	for _, tt := range tests {
		if got := svc.Classify(tt.compound); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.compound, got, tt.want)
		}
	}
}

func TestAnalyzeComments_Aggregation(t *testing.T) {
	svc := NewLexiconService()
	comments := []string{
		"Amazing video, loved every minute!",
		"This is terrible, total waste of time",
		"The video covers three topics",
		"ok", // under min length, skipped
	}

	results, overview := svc.AnalyzeComments(comments)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3 (short comment skipped)", len(results))
	}
	if overview.TotalComments != 3 {
		t.Errorf("TotalComments = %d, want 3", overview.TotalComments)
	}

	sum := overview.PositivePercentage + overview.NeutralPercentage + overview.NegativePercentage
	if !almostEqual(sum, 100, 0.1) {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
	if overview.OverallRating < 1 || overview.OverallRating > 5 {
		t.Errorf("rating %v out of [1,5]", overview.OverallRating)
	}
	if results[0].Source != model.SourceLexicon {
		t.Errorf("source = %q, want %q", results[0].Source, model.SourceLexicon)
	}
	if results[0].CommentID != "comment_1" {
		t.Errorf("comment id = %q, want comment_1", results[0].CommentID)
	}
}

func TestAnalyzeComments_Empty(t *testing.T) {
	svc := NewLexiconService()
	results, overview := svc.AnalyzeComments(nil)
	if len(results) != 0 {
		t.Fatalf("got %d results from empty input", len(results))
	}
	if overview.NeutralPercentage != 100 || overview.OverallRating != 3 {
		t.Errorf("empty overview = %+v, want 100%% neutral rating 3", overview)
	}
}

func TestSummarize(t *testing.T) {
	results := []model.SentimentResult{
		{CommentID: "comment_1", Sentiment: model.SentimentPositive, Confidence: 0.6},
		{CommentID: "comment_2", Sentiment: model.SentimentPositive, Confidence: 0.9},
		{CommentID: "comment_3", Sentiment: model.SentimentNegative, Confidence: 0.4},
	}
	overview := model.SentimentOverview{
		PositivePercentage: 66.7,
		NegativePercentage: 33.3,
		AverageConfidence:  0.63,
	}

	summary := Summarize(results, overview)
	if summary.DominantSentiment != model.SentimentPositive {
		t.Errorf("dominant = %q, want positive", summary.DominantSentiment)
	}
	if summary.MostPositive == nil || summary.MostPositive.CommentID != "comment_2" {
		t.Errorf("most positive = %+v, want comment_2", summary.MostPositive)
	}
	if summary.MostNegative == nil || summary.MostNegative.CommentID != "comment_3" {
		t.Errorf("most negative = %+v, want comment_3", summary.MostNegative)
	}
}
