package service

import (
	"math"
	"math/rand"
	"sync"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

// Benchmark thresholds derived from the YouTube Creator Playbook tiers.
const (
	excellentCTR = 10.0
	goodCTR      = 4.0
	averageCTR   = 2.0

	excellentEngagement = 8.0
	goodEngagement      = 4.0
	averageEngagement   = 2.0

	excellentRetention = 70.0
	goodRetention      = 50.0
	averageRetention   = 30.0

	// View-rate tiers, as a fraction of subscribers
	viralViewRate   = 0.05
	goodViewRate    = 0.02
	averageViewRate = 0.01

	// Views above 10% of subscribers earn a viral bonus
	viralBonusThreshold = 0.10

	// Channels reach full maturity at 100 videos
	maturityVideos = 100.0

	// Fallback channel context when no channel data is available
	defaultSubscribers = 45230
	defaultVideoCount  = 150
)

// weightSet is one maturity-dependent component weighting.
type weightSet struct {
	views, engagement, watchTime, ctr float64
}

var (
	matureWeights  = weightSet{views: 0.20, engagement: 0.35, watchTime: 0.30, ctr: 0.15}
	growingWeights = weightSet{views: 0.25, engagement: 0.30, watchTime: 0.25, ctr: 0.20}
	newWeights     = weightSet{views: 0.30, engagement: 0.25, watchTime: 0.25, ctr: 0.20}
)

// ScoreService computes performance score breakdowns from video and channel
// metrics. Trend deltas are simulated from the injected random source; seed
// it deterministically in tests, from time in production. The source must
// not be shared with other consumers: Compute is called from concurrent
// request handlers and only the service's own mutex guards it.
type ScoreService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScoreService(rng *rand.Rand) *ScoreService {
	return &ScoreService{rng: rng}
}

// Compute scores a video against its channel context. A nil channel triggers
// fallback defaults for subscribers and video count.
func (s *ScoreService) Compute(video *model.VideoMetrics, channel *model.ChannelMetrics) *model.ScoreBreakdown {
	subscribers := video.Subscribers
	videoCount := int64(defaultVideoCount)
	if channel != nil {
		subscribers = channel.SubscriberCount
		videoCount = channel.VideoCount
	} else if subscribers == 0 {
		subscribers = defaultSubscribers
	}

	engagement := EngagementRate(video)
	retention := RetentionPercentage(video)

	scores := model.ComponentScores{
		Views:      round1(ViewsScore(video.Views, subscribers)),
		Engagement: round1(EngagementScore(engagement)),
		WatchTime:  round1(RetentionScore(retention)),
		CTR:        round1(CTRScore(video.ClickThroughRate)),
	}

	maturity := math.Min(1.0, float64(videoCount)/maturityVideos)
	weights := weightsFor(maturity)

	base := scores.Views*weights.views +
		scores.Engagement*weights.engagement +
		scores.WatchTime*weights.watchTime +
		scores.CTR*weights.ctr

	consistencyBonus := math.Min(5, maturity*5)

	var viralBonus float64
	if subscribers > 0 {
		viralRatio := float64(video.Views) / float64(subscribers)
		if viralRatio > viralBonusThreshold {
			viralBonus = math.Min(10, (viralRatio-viralBonusThreshold)*20)
		}
	}

	final := clamp(base+consistencyBonus+viralBonus, 0, 100)

	viewRate := float64(video.Views) / math.Max(float64(subscribers), 1)

	return &model.ScoreBreakdown{
		OverallScore: round1(final),
		Scores:       scores,
		Grade:        Grade(final),
		Trends:       s.simulateTrends(scores),
		Benchmarks: model.BenchmarkContext{
			ViewRate: round3(viewRate * 100),
			Industry: model.IndustryBenchmarks{
				AvgCTR:        averageCTR,
				AvgEngagement: averageEngagement,
				AvgRetention:  averageRetention,
			},
		},
		Bonuses: model.Bonuses{
			Consistency: round1(consistencyBonus),
			Viral:       round1(viralBonus),
		},
		ChannelMaturity: round1(maturity * 100),
	}
}

// EngagementRate returns (likes+comments+shares)/views as a percentage.
func EngagementRate(video *model.VideoMetrics) float64 {
	if video.Views == 0 {
		return 0
	}
	total := video.Likes + video.Comments + video.Shares
	return float64(total) / float64(video.Views) * 100
}

// RetentionPercentage returns avg view duration over total duration as a percentage.
func RetentionPercentage(video *model.VideoMetrics) float64 {
	if video.DurationSeconds == 0 {
		return 0
	}
	return float64(video.AvgViewDurationSeconds) / float64(video.DurationSeconds) * 100
}

// ViewsScore maps views against the subscriber base onto [0,100] using the
// four-tier view-rate curve. Without subscriber data it scales raw views
// against a 100k reference instead.
func ViewsScore(views, subscribers int64) float64 {
	if subscribers <= 0 {
		return math.Min(100, float64(views)/100000*80)
	}

	rate := float64(views) / float64(subscribers)
	switch {
	case rate >= viralViewRate:
		return 95 + math.Min(5, (rate-viralViewRate)*100)
	case rate >= goodViewRate:
		return 70 + (rate-goodViewRate)/(viralViewRate-goodViewRate)*25
	case rate >= averageViewRate:
		return 40 + (rate-averageViewRate)/(goodViewRate-averageViewRate)*30
	default:
		return math.Min(40, rate/averageViewRate*40)
	}
}

// CTRScore maps a raw click-through-rate percentage onto [0,100].
func CTRScore(ctr float64) float64 {
	switch {
	case ctr >= excellentCTR:
		return 95 + math.Min(5, (ctr-excellentCTR)/2)
	case ctr >= goodCTR:
		return 75 + (ctr-goodCTR)/(excellentCTR-goodCTR)*20
	case ctr >= averageCTR:
		return 50 + (ctr-averageCTR)/(goodCTR-averageCTR)*25
	default:
		return math.Max(0, ctr/averageCTR*50)
	}
}

// EngagementScore maps an engagement-rate percentage onto [0,100].
func EngagementScore(rate float64) float64 {
	switch {
	case rate >= excellentEngagement:
		return 95 + math.Min(5, (rate-excellentEngagement)/2)
	case rate >= goodEngagement:
		return 75 + (rate-goodEngagement)/(excellentEngagement-goodEngagement)*20
	case rate >= averageEngagement:
		return 50 + (rate-averageEngagement)/(goodEngagement-averageEngagement)*25
	default:
		return math.Max(0, rate/averageEngagement*50)
	}
}

// RetentionScore maps a watch-time percentage onto [0,100].
func RetentionScore(retention float64) float64 {
	switch {
	case retention >= excellentRetention:
		return 95 + math.Min(5, (retention-excellentRetention)/10)
	case retention >= goodRetention:
		return 75 + (retention-goodRetention)/(excellentRetention-goodRetention)*20
	case retention >= averageRetention:
		return 50 + (retention-averageRetention)/(goodRetention-averageRetention)*25
	default:
		return math.Max(0, retention/averageRetention*50)
	}
}

func weightsFor(maturity float64) weightSet {
	switch {
	case maturity > 0.8:
		return matureWeights
	case maturity > 0.4:
		return growingWeights
	default:
		return newWeights
	}
}

// Grade maps a score onto the fixed letter-grade ladder.
func Grade(score float64) string {
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
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// simulateTrends samples a synthetic previous-period value within ±10 points
// of each component score. Placeholder until real historical deltas exist.
// Components are visited in a fixed order so a seeded source yields the same
// trends on every run.
func (s *ScoreService) simulateTrends(scores model.ComponentScores) map[string]model.Trend {
	components := []struct {
		name  string
		score float64
	}{
		{"views", scores.Views},
		{"engagement", scores.Engagement},
		{"watchTime", scores.WatchTime},
		{"ctr", scores.CTR},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trends := make(map[string]model.Trend, len(components))
	for _, c := range components {
		name, current := c.name, c.score
		variance := s.rng.Float64()*20 - 10
		previous := clamp(current+variance, 0, 100)

		change := current - previous
		changePct := change / math.Max(previous, 1) * 100

		direction := "stable"
		strength := "weak"
		if math.Abs(change) >= 2 {
			if change > 0 {
				direction = "up"
			} else {
				direction = "down"
			}
			strength = "moderate"
			if math.Abs(change) > 10 {
				strength = "strong"
			}
		}

		trends[name] = model.Trend{
			Change:           round1(change),
			ChangePercentage: round1(changePct),
			Direction:        direction,
			Strength:         strength,
		}
	}
	return trends
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
