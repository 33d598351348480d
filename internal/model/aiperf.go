package model

// AIRecommendation is one suggestion inside an AI performance analysis.
// Looser shape than Recommendation because it comes back from the LLM.
type AIRecommendation struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Priority       string `json:"priority"`
	ExpectedImpact string `json:"expectedImpact,omitempty"`
}

// AIAnalysisDetail carries the qualitative portion of an AI analysis.
type AIAnalysisDetail struct {
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	BenchmarkComparison string   `json:"benchmarkComparison"`
}

// AIPerformanceAnalysis is the result of the LLM-backed performance
// analyzer, or of its whole-call fallback formula when the LLM is
// unavailable (AnalysisMethod distinguishes the two).
type AIPerformanceAnalysis struct {
	OverallScore    float64            `json:"overallScore"`
	Grade           string             `json:"grade"`
	Scores          ComponentScores    `json:"scores"`
	Analysis        AIAnalysisDetail   `json:"analysis"`
	Recommendations []AIRecommendation `json:"recommendations"`
	GrowthPotential string             `json:"growthPotential"`
	KeyInsights     []string           `json:"keyInsights"`
	AnalysisMethod  string             `json:"analysisMethod"` // "gemini_ai" or "fallback"
	LastUpdated     string             `json:"lastUpdated"`
}
