package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/middleware"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

const (
	sentimentBatchSize    = 10
	defaultBatchDelay     = 500 * time.Millisecond
	csvTextTruncateLength = 100
)

// Generator produces text from a prompt. Satisfied by the Gemini client;
// tests substitute a fake.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type batchEntry struct {
	CommentID  string  `json:"comment_id"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// LLMSentimentService classifies comments through a language model in fixed
// size batches. Any batch that fails, for any reason, is rescored with the
// lexicon analyzer so the pipeline always produces a full result set.
type LLMSentimentService struct {
	generator  Generator
	lexicon    *LexiconService
	modelName  string
	batchDelay time.Duration
}

func NewLLMSentimentService(generator Generator, lexicon *LexiconService, modelName string) *LLMSentimentService {
	return &LLMSentimentService{
		generator:  generator,
		lexicon:    lexicon,
		modelName:  modelName,
		batchDelay: defaultBatchDelay,
	}
}

// SetBatchDelay overrides the pause between model calls.
func (s *LLMSentimentService) SetBatchDelay(d time.Duration) {
	s.batchDelay = d
}

// ModelName reports which model classified the comments, or "lexicon" when no
// generator is configured.
func (s *LLMSentimentService) ModelName() string {
	if s.generator == nil {
		return "lexicon"
	}
	return s.modelName
}

// AnalyzeComments classifies every comment of at least three characters and
// returns the per-comment results plus an aggregate overview.
func (s *LLMSentimentService) AnalyzeComments(ctx context.Context, comments []string) ([]model.SentimentResult, model.SentimentOverview) {
	type indexed struct {
		id   string
		text string
	}
	var usable []indexed
	for i, text := range comments {
		if len(strings.TrimSpace(text)) < minCommentLength {
			continue
		}
		usable = append(usable, indexed{id: commentID(i), text: text})
	}

	var results []model.SentimentResult
	for start := 0; start < len(usable); start += sentimentBatchSize {
		end := start + sentimentBatchSize
		if end > len(usable) {
			end = len(usable)
		}
		batch := usable[start:end]

		ids := make([]string, len(batch))
		texts := make([]string, len(batch))
		for i, c := range batch {
			ids[i] = c.id
			texts[i] = c.text
		}

		batchResults, err := s.classifyBatch(ctx, ids, texts)
		if err != nil {
			middleware.Logger.Warn().
				Err(err).
				Int("batch_start", start).
				Int("batch_size", len(batch)).
				Msg("model classification failed, falling back to lexicon")
			batchResults = s.lexiconBatch(ids, texts)
		}
		results = append(results, batchResults...)

		if end < len(usable) && s.batchDelay > 0 {
			select {
			case <-ctx.Done():
				// Score the remainder locally rather than returning a partial set.
				for _, c := range usable[end:] {
					res := s.lexicon.AnalyzeComment(c.id, c.text)
					res.Source = model.SourceFallback
					results = append(results, res)
				}
				return results, s.aggregate(results)
			case <-time.After(s.batchDelay):
			}
		}
	}

	return results, s.aggregate(results)
}

func (s *LLMSentimentService) classifyBatch(ctx context.Context, ids, texts []string) ([]model.SentimentResult, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("no generator configured")
	}

	raw, err := s.generator.GenerateText(ctx, buildSentimentPrompt(ids, texts))
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	entries, err := parseSentimentJSON(raw)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]batchEntry, len(entries))
	for _, e := range entries {
		byID[e.CommentID] = e
	}

	results := make([]model.SentimentResult, 0, len(ids))
	for i, id := range ids {
		entry, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("response missing %s", id)
		}
		results = append(results, model.SentimentResult{
			CommentID:   id,
			CommentText: texts[i],
			Sentiment:   validSentiment(entry.Sentiment),
			Confidence:  validConfidence(entry.Confidence),
			Source:      model.SourceLLM,
		})
	}
	return results, nil
}

func (s *LLMSentimentService) lexiconBatch(ids, texts []string) []model.SentimentResult {
	results := make([]model.SentimentResult, len(ids))
	for i := range ids {
		results[i] = s.lexicon.AnalyzeComment(ids[i], texts[i])
		results[i].Source = model.SourceFallback
	}
	return results
}

func buildSentimentPrompt(ids, texts []string) string {
	var b strings.Builder
	b.WriteString("Classify the sentiment of each YouTube comment below as positive, neutral or negative.\n")
	b.WriteString("Respond with ONLY a JSON array, no markdown, no explanation. Each element must be:\n")
	b.WriteString(`{"comment_id": "<id>", "sentiment": "positive|neutral|negative", "confidence": <0.0-1.0>}`)
	b.WriteString("\n\nComments:\n")
	for i, id := range ids {
		b.WriteString(id)
		b.WriteString(": ")
		b.WriteString(strings.ReplaceAll(texts[i], "\n", " "))
		b.WriteString("\n")
	}
	return b.String()
}

// parseSentimentJSON extracts the first JSON array from model output, which
// may be wrapped in markdown fences or prose.
func parseSentimentJSON(raw string) ([]batchEntry, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var entries []batchEntry
	if err := json.Unmarshal([]byte(raw[start:end+1]), &entries); err != nil {
		return nil, fmt.Errorf("decode sentiment array: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("empty sentiment array")
	}
	return entries, nil
}

func validSentiment(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case model.SentimentPositive:
		return model.SentimentPositive
	case model.SentimentNegative:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

func validConfidence(c float64) float64 {
	if math.IsNaN(c) || c < 0 || c > 1 {
		return 0.5
	}
	return round2(c)
}

// aggregate derives the overview from individual results. Displayed
// percentages use plain counts; the star rating weights each comment by its
// confidence.
func (s *LLMSentimentService) aggregate(results []model.SentimentResult) model.SentimentOverview {
	total := len(results)
	overview := model.SentimentOverview{TotalComments: total}
	if total == 0 {
		overview.NeutralPercentage = 100
		overview.OverallRating = 3
		return overview
	}

	counts := map[string]int{}
	weighted := map[string]float64{}
	var confidenceSum, weightSum float64
	for _, r := range results {
		counts[r.Sentiment]++
		weighted[r.Sentiment] += r.Confidence
		confidenceSum += r.Confidence
		weightSum += r.Confidence
	}

	overview.PositivePercentage = round1(float64(counts[model.SentimentPositive]) / float64(total) * 100)
	overview.NegativePercentage = round1(float64(counts[model.SentimentNegative]) / float64(total) * 100)
	overview.NeutralPercentage = round1(100 - overview.PositivePercentage - overview.NegativePercentage)
	overview.AverageConfidence = round2(confidenceSum / float64(total))

	posPct := overview.PositivePercentage
	neuPct := overview.NeutralPercentage
	if weightSum > 0 {
		posPct = weighted[model.SentimentPositive] / weightSum * 100
		neuPct = weighted[model.SentimentNeutral] / weightSum * 100
	}
	overview.OverallRating = round1(clamp(1+posPct*0.04+neuPct*0.02, 1, 5))
	return overview
}

// ConfidenceBuckets counts results in high (>0.8), medium (0.5-0.8) and
// low (<0.5) confidence bands.
func ConfidenceBuckets(results []model.SentimentResult) model.ConfidenceDistribution {
	var dist model.ConfidenceDistribution
	for _, r := range results {
		switch {
		case r.Confidence > 0.8:
			dist.High++
		case r.Confidence >= 0.5:
			dist.Medium++
		default:
			dist.Low++
		}
	}
	return dist
}

// CommentsCSV renders the analyzed comments as CSV, the same shape the
// pipeline would accept as file input.
func CommentsCSV(results []model.SentimentResult) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"comment_id", "comment_text"})
	for _, r := range results {
		w.Write([]string{r.CommentID, truncateText(r.CommentText)})
	}
	w.Flush()
	return buf.String()
}

// ResultsCSV renders the classification output as CSV.
func ResultsCSV(results []model.SentimentResult) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"comment_id", "comment_text", "sentiment", "confidence", "source"})
	for _, r := range results {
		w.Write([]string{
			r.CommentID,
			truncateText(r.CommentText),
			r.Sentiment,
			strconv.FormatFloat(r.Confidence, 'f', 2, 64),
			r.Source,
		})
	}
	w.Flush()
	return buf.String()
}

// truncateText shortens long comments to the first csvTextTruncateLength
// runes, never splitting a multi-byte character.
func truncateText(text string) string {
	if utf8.RuneCountInString(text) <= csvTextTruncateLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:csvTextTruncateLength]) + "..."
}
