package service

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func testScorer() *ScoreService {
	return NewScoreService(rand.New(rand.NewSource(42)))
}

// exampleVideo mirrors the default dataset: 24:35 video with 18:42 average
// view duration, CTR 8.7, on a 45k-subscriber channel.
func exampleVideo() *model.VideoMetrics {
	return &model.VideoMetrics{
		ID:                     "dQw4w9WgXcQ",
		Title:                  "How to Build Amazing React Applications - Complete Tutorial",
		Duration:               "24:35",
		DurationSeconds:        1475,
		Views:                  156789,
		Likes:                  12456,
		Comments:               1876,
		Shares:                 892,
		Subscribers:            45230,
		AvgViewDuration:        "18:42",
		AvgViewDurationSeconds: 1122,
		ClickThroughRate:       8.7,
	}
}

func TestGradeLadder(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "A+"}, {90, "A+"}, {89.9, "A"}, {85, "A"}, {84.9, "A-"},
		{80, "A-"}, {79.9, "B+"}, {75, "B+"}, {74.9, "B"}, {70, "B"},
		{69.9, "B-"}, {65, "B-"}, {64.9, "C+"}, {60, "C+"}, {59.9, "C"},
		{55, "C"}, {54.9, "C-"}, {50, "C-"}, {49.9, "D"}, {40, "D"},
		{39.9, "F"}, {0, "F"},
	}
	for _, c := range cases {
		if got := Grade(c.score); got != c.want {
			t.Errorf("Grade(%.1f) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestGradeMonotonic(t *testing.T) {
	order := map[string]int{
		"F": 0, "D": 1, "C-": 2, "C": 3, "C+": 4, "B-": 5,
		"B": 6, "B+": 7, "A-": 8, "A": 9, "A+": 10,
	}
	prev := -1
	for s := 0.0; s <= 100; s += 0.5 {
		rank := order[Grade(s)]
		if rank < prev {
			t.Fatalf("grade rank decreased at score %.1f", s)
		}
		prev = rank
	}
}

func TestViewsScore_GoodTierInterpolation(t *testing.T) {
	// 156789 views / 4523000 subscribers = 3.47% view rate, below the 5%
	// viral tier and inside the good tier:
	// 70 + (0.03467 - 0.02) / (0.05 - 0.02) * 25 ≈ 82.2
	got := ViewsScore(156789, 4523000)
	rate := 156789.0 / 4523000.0
	want := 70 + (rate-0.02)/(0.05-0.02)*25
	if !almostEqual(got, want, 0.001) {
		t.Errorf("ViewsScore = %.3f, want %.3f", got, want)
	}
	if got < 70 || got >= 95 {
		t.Errorf("ViewsScore = %.3f, want inside good tier [70,95)", got)
	}
}

func TestViewsScore_ViralTierSaturates(t *testing.T) {
	// The default dataset's raw view rate (156789/45230 = 347%) is far past
	// the 5% viral threshold, so the excess caps the score at 100.
	if got := ViewsScore(156789, 45230); got != 100 {
		t.Errorf("ViewsScore = %.3f, want 100", got)
	}
}

func TestViewsScore_Tiers(t *testing.T) {
	// viral tier floor
	if got := ViewsScore(50, 1000); !almostEqual(got, 95, 0.001) {
		t.Errorf("viral floor = %.3f, want 95", got)
	}
	// good tier floor
	if got := ViewsScore(20, 1000); !almostEqual(got, 70, 0.001) {
		t.Errorf("good floor = %.3f, want 70", got)
	}
	// average tier floor
	if got := ViewsScore(10, 1000); !almostEqual(got, 40, 0.001) {
		t.Errorf("average floor = %.3f, want 40", got)
	}
	// below average scales linearly from 0
	if got := ViewsScore(5, 1000); !almostEqual(got, 20, 0.001) {
		t.Errorf("below-average = %.3f, want 20", got)
	}
	// no subscriber data falls back to raw-views scaling
	if got := ViewsScore(100000, 0); !almostEqual(got, 80, 0.001) {
		t.Errorf("no-subscriber fallback = %.3f, want 80", got)
	}
	if got := ViewsScore(1000000, 0); got != 100 {
		t.Errorf("no-subscriber cap = %.3f, want 100", got)
	}
}

func TestCTRScore_Tiers(t *testing.T) {
	cases := []struct {
		ctr  float64
		want float64
	}{
		{10, 95},    // excellent floor
		{12, 96},    // 95 + (12-10)/2
		{100, 100},  // capped
		{4, 75},     // good floor
		{7, 85},     // 75 + 3/6*20
		{2, 50},     // average floor
		{3, 62.5},   // 50 + 1/2*25
		{1, 25},     // below average
		{0, 0},
	}
	for _, c := range cases {
		if got := CTRScore(c.ctr); !almostEqual(got, c.want, 0.001) {
			t.Errorf("CTRScore(%.1f) = %.3f, want %.3f", c.ctr, got, c.want)
		}
	}
}

func TestRetentionScore_Tiers(t *testing.T) {
	cases := []struct {
		retention float64
		want      float64
	}{
		{70, 95},
		{120, 100},
		{50, 75},
		{60, 85},
		{30, 50},
		{40, 62.5},
		{15, 25},
		{0, 0},
	}
	for _, c := range cases {
		if got := RetentionScore(c.retention); !almostEqual(got, c.want, 0.001) {
			t.Errorf("RetentionScore(%.1f) = %.3f, want %.3f", c.retention, got, c.want)
		}
	}
}

func TestCompute_ScoreAlwaysInRange(t *testing.T) {
	scorer := testScorer()
	videos := []*model.VideoMetrics{
		exampleVideo(),
		{}, // all zero
		{Views: math.MaxInt32, Likes: math.MaxInt32, Comments: math.MaxInt32,
			Shares: math.MaxInt32, ClickThroughRate: 10000,
			DurationSeconds: 1, AvgViewDurationSeconds: 100000},
		{Views: 1, Subscribers: 1000000000},
	}
	for i, v := range videos {
		b := scorer.Compute(v, nil)
		if b.OverallScore < 0 || b.OverallScore > 100 {
			t.Errorf("video %d: overall score %.1f outside [0,100]", i, b.OverallScore)
		}
		if Grade(b.OverallScore) == "" {
			t.Errorf("video %d: empty grade", i)
		}
		for name, s := range map[string]float64{
			"views": b.Scores.Views, "engagement": b.Scores.Engagement,
			"watchTime": b.Scores.WatchTime, "ctr": b.Scores.CTR,
		} {
			if s < 0 || s > 100 {
				t.Errorf("video %d: %s score %.1f outside [0,100]", i, name, s)
			}
		}
	}
}

func TestCompute_DefaultDatasetDoesNotPanic(t *testing.T) {
	b := testScorer().Compute(exampleVideo(), nil)

	ladder := map[string]bool{
		"A+": true, "A": true, "A-": true, "B+": true, "B": true, "B-": true,
		"C+": true, "C": true, "C-": true, "D": true, "F": true,
	}
	if !ladder[b.Grade] {
		t.Errorf("grade %q not in the fixed ladder", b.Grade)
	}
	if len(b.Trends) != 4 {
		t.Errorf("got %d trends, want 4", len(b.Trends))
	}
}

func TestCompute_ChannelMaturityWeights(t *testing.T) {
	scorer := testScorer()
	video := exampleVideo()

	mature := scorer.Compute(video, &model.ChannelMetrics{SubscriberCount: 45230, VideoCount: 1250})
	if mature.ChannelMaturity != 100 {
		t.Errorf("mature channel maturity = %.1f, want 100", mature.ChannelMaturity)
	}

	newly := scorer.Compute(video, &model.ChannelMetrics{SubscriberCount: 45230, VideoCount: 10})
	if newly.ChannelMaturity != 10 {
		t.Errorf("new channel maturity = %.1f, want 10", newly.ChannelMaturity)
	}

	// Consistency bonus is proportional to maturity
	if mature.Bonuses.Consistency != 5 {
		t.Errorf("mature consistency bonus = %.1f, want 5", mature.Bonuses.Consistency)
	}
	if newly.Bonuses.Consistency != 0.5 {
		t.Errorf("new consistency bonus = %.1f, want 0.5", newly.Bonuses.Consistency)
	}
}

func TestCompute_ViralBonus(t *testing.T) {
	scorer := testScorer()

	// 50k views on a 1k-subscriber channel is way past the 10% threshold
	viral := scorer.Compute(&model.VideoMetrics{
		Views: 50000, Likes: 100, Subscribers: 1000,
		DurationSeconds: 600, AvgViewDurationSeconds: 300, ClickThroughRate: 5,
	}, nil)
	if viral.Bonuses.Viral != 10 {
		t.Errorf("viral bonus = %.1f, want capped at 10", viral.Bonuses.Viral)
	}

	// 5% of subscribers is below the 10% viral bonus threshold
	quiet := scorer.Compute(&model.VideoMetrics{
		Views: 50, Likes: 1, Subscribers: 1000,
		DurationSeconds: 600, AvgViewDurationSeconds: 300, ClickThroughRate: 5,
	}, nil)
	if quiet.Bonuses.Viral != 0 {
		t.Errorf("quiet viral bonus = %.1f, want 0", quiet.Bonuses.Viral)
	}
}

func TestSimulateTrends_RangesAndLabels(t *testing.T) {
	scorer := testScorer()
	scores := model.ComponentScores{Views: 50, Engagement: 50, WatchTime: 50, CTR: 50}

	for i := 0; i < 100; i++ {
		trends := scorer.simulateTrends(scores)
		for name, tr := range trends {
			switch tr.Direction {
			case "stable":
				// rounded change may sit right on the boundary
				if math.Abs(tr.Change) > 2.05 {
					t.Errorf("%s: stable with change %.1f", name, tr.Change)
				}
				if tr.Strength != "weak" {
					t.Errorf("%s: stable strength = %q, want weak", name, tr.Strength)
				}
			case "up":
				if tr.Change < 1.95 {
					t.Errorf("%s: up with change %.1f", name, tr.Change)
				}
			case "down":
				if tr.Change > -1.95 {
					t.Errorf("%s: down with change %.1f", name, tr.Change)
				}
			default:
				t.Errorf("%s: unknown direction %q", name, tr.Direction)
			}
			if tr.Strength == "strong" && math.Abs(tr.Change) < 9.95 {
				t.Errorf("%s: strong with change %.1f", name, tr.Change)
			}
		}
	}
}

func TestSimulateTrends_DeterministicWithSeed(t *testing.T) {
	scores := model.ComponentScores{Views: 80, Engagement: 60, WatchTime: 70, CTR: 90}

	a := NewScoreService(rand.New(rand.NewSource(7))).simulateTrends(scores)
	b := NewScoreService(rand.New(rand.NewSource(7))).simulateTrends(scores)

	for name := range a {
		if a[name] != b[name] {
			t.Errorf("%s: trends differ across identically seeded scorers", name)
		}
	}
}

func TestCompute_ConcurrentCallers(t *testing.T) {
	// Compute draws from the scorer's random source; concurrent request
	// handlers share one scorer, so the draws must be safe under -race.
	scorer := testScorer()
	video := exampleVideo()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if b := scorer.Compute(video, nil); len(b.Trends) != 4 {
					t.Errorf("got %d trends, want 4", len(b.Trends))
				}
			}
		}()
	}
	wg.Wait()
}

func TestEngagementRate(t *testing.T) {
	v := exampleVideo()
	// (12456 + 1876 + 892) / 156789 * 100 ≈ 9.71
	want := float64(12456+1876+892) / 156789 * 100
	if got := EngagementRate(v); !almostEqual(got, want, 0.001) {
		t.Errorf("EngagementRate = %.3f, want %.3f", got, want)
	}
	if got := EngagementRate(&model.VideoMetrics{}); got != 0 {
		t.Errorf("EngagementRate(zero views) = %.3f, want 0", got)
	}
}
