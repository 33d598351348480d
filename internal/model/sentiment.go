package model

// Sentiment class labels.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Sentiment result sources. SourceLLM marks results accepted from the LLM;
// SourceLexicon marks direct lexicon classification; SourceFallback marks
// lexicon results produced because an LLM batch failed.
const (
	SourceLLM      = "gemini_api"
	SourceLexicon  = "lexicon"
	SourceFallback = "lexicon_fallback"
)

// SentimentScores are the lexicon polarity proportions for one text.
// Pos, Neu and Neg sum to 1 for non-empty input; Compound is in [-1,1].
type SentimentScores struct {
	Pos      float64 `json:"pos"`
	Neu      float64 `json:"neu"`
	Neg      float64 `json:"neg"`
	Compound float64 `json:"compound"`
}

// SentimentResult is the classified sentiment of a single comment.
type SentimentResult struct {
	CommentID   string  `json:"commentId"`
	CommentText string  `json:"commentText"`
	Sentiment   string  `json:"sentiment"`
	Confidence  float64 `json:"confidence"` // [0,1]
	Source      string  `json:"source"`
}

// SentimentOverview aggregates a batch of sentiment results.
// Percentages sum to 100 (modulo rounding) for any non-empty input.
type SentimentOverview struct {
	PositivePercentage float64 `json:"positivePercentage"`
	NeutralPercentage  float64 `json:"neutralPercentage"`
	NegativePercentage float64 `json:"negativePercentage"`
	OverallRating      float64 `json:"overallRating"` // [1,5]
	TotalComments      int     `json:"totalComments"`
	AverageConfidence  float64 `json:"averageConfidence"`
}

// ConfidenceDistribution buckets results by prediction confidence.
type ConfidenceDistribution struct {
	High   int `json:"highConfidence"`   // > 0.8
	Medium int `json:"mediumConfidence"` // 0.5 – 0.8
	Low    int `json:"lowConfidence"`    // < 0.5
}

// SentimentSummary highlights the extremes of an analyzed batch.
type SentimentSummary struct {
	MostPositive      *SentimentResult       `json:"mostPositive,omitempty"`
	MostNegative      *SentimentResult       `json:"mostNegative,omitempty"`
	DominantSentiment string                 `json:"dominantSentiment"`
	Confidence        ConfidenceDistribution `json:"confidenceDistribution"`
}

// SentimentVideoInfo describes which video and pipeline produced a report.
type SentimentVideoInfo struct {
	VideoID          string `json:"videoId"`
	VideoTitle       string `json:"videoTitle"`
	CommentsAnalyzed int    `json:"commentsAnalyzed"`
	DataSource       string `json:"dataSource"`
	AnalysisMethod   string `json:"analysisMethod"`
	ModelUsed        string `json:"modelUsed,omitempty"`
}

// SentimentReport is the full response of a comment sentiment analysis.
type SentimentReport struct {
	Overview           SentimentOverview  `json:"overview"`
	DetailedSentiments []SentimentResult  `json:"detailedSentiments"`
	Summary            SentimentSummary   `json:"summary"`
	VideoInfo          SentimentVideoInfo `json:"videoInfo"`
	InputCSV           string             `json:"inputCsv,omitempty"`
	CSVResults         string             `json:"csvResults,omitempty"`
	LastUpdated        string             `json:"lastUpdated"`
}
