package model

// ComponentScores are the four benchmark-curve scores, each in [0,100].
type ComponentScores struct {
	Views      float64 `json:"views"`
	Engagement float64 `json:"engagement"`
	WatchTime  float64 `json:"watchTime"`
	CTR        float64 `json:"ctr"`
}

// Trend describes the simulated period-over-period movement of one component
// score. Values are not reproducible across calls unless the scorer is built
// with a seeded random source.
type Trend struct {
	Change           float64 `json:"change"`
	ChangePercentage float64 `json:"changePercentage"`
	Direction        string  `json:"direction"` // "up", "down", "stable"
	Strength         string  `json:"strength"`  // "strong", "moderate", "weak"
}

// Bonuses are the additive score adjustments applied after weighting.
type Bonuses struct {
	Consistency float64 `json:"consistency"`
	Viral       float64 `json:"viral"`
}

// IndustryBenchmarks are the fixed reference averages included in responses.
type IndustryBenchmarks struct {
	AvgCTR        float64 `json:"avgCTR"`
	AvgEngagement float64 `json:"avgEngagement"`
	AvgRetention  float64 `json:"avgRetention"`
}

// BenchmarkContext reports how the video sits against the benchmark set.
type BenchmarkContext struct {
	ViewRate float64            `json:"viewRate"` // views per subscriber, as a percentage
	Industry IndustryBenchmarks `json:"industry"`
}

// ScoreBreakdown is the full output of a performance-score computation.
// It is derived and recomputed on every request; nothing is persisted.
type ScoreBreakdown struct {
	OverallScore    float64          `json:"overallScore"` // clamped to [0,100]
	Scores          ComponentScores  `json:"scores"`
	Grade           string           `json:"grade"`
	Trends          map[string]Trend `json:"trends"`
	Benchmarks      BenchmarkContext `json:"benchmarks"`
	Bonuses         Bonuses          `json:"bonuses"`
	ChannelMaturity float64          `json:"channelMaturity"` // [0,100]
}
