package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

const (
	minCommentLength  = 3
	sentimentBoundary = 0.05
	compoundNormAlpha = 15.0
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	urlRe        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	exclaimRe    = regexp.MustCompile(`!{2,}`)
	questionRe   = regexp.MustCompile(`\?{2,}`)
	tokenRe      = regexp.MustCompile(`[a-z']+|!|\?`)
)

// valence maps tokens to sentiment intensity on roughly a -4..+4 scale.
var valence = map[string]float64{
	"amazing": 3.0, "awesome": 3.1, "excellent": 3.2, "fantastic": 3.1,
	"incredible": 2.9, "outstanding": 3.0, "perfect": 3.1, "brilliant": 3.0,
	"wonderful": 2.8, "superb": 2.9, "great": 2.5, "good": 1.9,
	"nice": 1.8, "love": 2.8, "loved": 2.9, "loves": 2.7,
	"best": 2.6, "better": 1.9, "beautiful": 2.6, "enjoy": 2.0,
	"enjoyed": 2.1, "helpful": 1.9, "useful": 1.8, "informative": 1.9,
	"interesting": 1.7, "insightful": 2.0, "clear": 1.4, "thanks": 1.9,
	"thank": 1.9, "appreciate": 2.0, "appreciated": 2.0, "recommend": 1.8,
	"recommended": 1.8, "impressive": 2.4, "valuable": 1.9, "quality": 1.6,
	"fun": 1.9, "funny": 1.8, "like": 1.5, "liked": 1.6,
	"likes": 1.5, "happy": 2.1, "glad": 1.9, "cool": 1.6,
	"epic": 2.7, "legend": 2.3, "legendary": 2.5, "masterpiece": 3.2,
	"underrated": 1.5, "fire": 2.2, "solid": 1.5, "top": 1.4,
	"win": 1.8, "winner": 2.0, "fresh": 1.3, "smooth": 1.3,
	"inspiring": 2.3, "inspired": 2.1, "engaging": 1.9, "entertaining": 1.9,

	"bad": -2.5, "terrible": -3.1, "awful": -3.0, "horrible": -3.1,
	"worst": -3.2, "worse": -2.2, "hate": -2.7, "hated": -2.8,
	"hates": -2.6, "boring": -2.2, "bored": -2.0, "poor": -2.0,
	"disappointing": -2.3, "disappointed": -2.3, "useless": -2.4, "waste": -2.4,
	"wasted": -2.3, "annoying": -2.1, "annoyed": -2.0, "stupid": -2.4,
	"dumb": -2.2, "confusing": -1.8, "confused": -1.6, "misleading": -2.3,
	"clickbait": -2.2, "fake": -2.4, "wrong": -1.8, "slow": -1.3,
	"dislike": -1.8, "disliked": -1.9, "sad": -1.8, "angry": -2.3,
	"mad": -1.9, "trash": -2.7, "garbage": -2.8, "cringe": -2.1,
	"overrated": -1.8, "mediocre": -1.5, "meh": -1.2, "broken": -1.9,
	"spam": -2.2, "scam": -2.9, "lies": -2.3, "lying": -2.4,
	"unwatchable": -2.8, "painful": -2.0, "unsubscribe": -2.0, "unsubscribed": -2.1,

	"!": 0.3, "?": -0.1,
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true,
	"nobody": true, "nothing": true, "cannot": true, "can't": true,
	"won't": true, "don't": true, "doesn't": true, "didn't": true,
	"isn't": true, "wasn't": true, "aren't": true, "shouldn't": true,
	"couldn't": true, "wouldn't": true, "hardly": true, "barely": true,
}

var boosters = map[string]float64{
	"very": 0.3, "really": 0.3, "extremely": 0.4, "absolutely": 0.4,
	"totally": 0.3, "so": 0.25, "super": 0.3, "incredibly": 0.4,
	"quite": 0.2, "pretty": 0.15, "slightly": -0.2, "somewhat": -0.15,
	"kinda": -0.15, "barely": -0.3,
}

// LexiconService scores comment text against a fixed valence lexicon. It is
// fully deterministic and needs no network access, which makes it the fallback
// path when the language model is unavailable.
type LexiconService struct{}

func NewLexiconService() *LexiconService {
	return &LexiconService{}
}

// Normalize lowercases, strips URLs, collapses repeated punctuation and
// squeezes whitespace.
func (s *LexiconService) Normalize(text string) string {
	t := strings.ToLower(text)
	t = urlRe.ReplaceAllString(t, "")
	t = exclaimRe.ReplaceAllString(t, "!")
	t = questionRe.ReplaceAllString(t, "?")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Analyze returns positive/neutral/negative proportions and a compound score
// in [-1, 1] for a single piece of text.
func (s *LexiconService) Analyze(text string) model.SentimentScores {
	tokens := tokenRe.FindAllString(s.Normalize(text), -1)
	if len(tokens) == 0 {
		return model.SentimentScores{Neu: 1}
	}

	var posSum, negSum, neuCount float64
	for i, tok := range tokens {
		score, ok := valence[tok]
		if !ok {
			if _, boost := boosters[tok]; !boost && !negations[tok] {
				neuCount++
			}
			continue
		}

		// Look back up to two tokens for negation and intensity modifiers.
		for j := i - 1; j >= 0 && j >= i-2; j-- {
			if negations[tokens[j]] {
				score = -score * 0.74
				break
			}
			if b, ok := boosters[tokens[j]]; ok {
				if score > 0 {
					score += b
				} else {
					score -= b
				}
			}
		}

		if score > 0 {
			posSum += score
		} else if score < 0 {
			negSum += -score
		} else {
			neuCount++
		}
	}

	raw := posSum - negSum
	compound := raw / math.Sqrt(raw*raw+compoundNormAlpha)

	denom := posSum + negSum + neuCount
	scores := model.SentimentScores{Compound: round3(compound)}
	if denom > 0 {
		scores.Pos = round3(posSum / denom)
		scores.Neg = round3(negSum / denom)
		scores.Neu = round3(neuCount / denom)
	} else {
		scores.Neu = 1
	}
	return scores
}

// Classify buckets a compound score into positive, neutral or negative.
func (s *LexiconService) Classify(compound float64) string {
	switch {
	case compound >= sentimentBoundary:
		return model.SentimentPositive
	case compound <= -sentimentBoundary:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// AnalyzeComment scores one comment and tags the result with the lexicon source.
func (s *LexiconService) AnalyzeComment(id, text string) model.SentimentResult {
	scores := s.Analyze(text)
	return model.SentimentResult{
		CommentID:   id,
		CommentText: text,
		Sentiment:   s.Classify(scores.Compound),
		Confidence:  round2(math.Abs(scores.Compound)),
		Source:      model.SourceLexicon,
	}
}

// AnalyzeComments scores a batch of comments and aggregates an overview.
// Comments shorter than three characters are skipped.
func (s *LexiconService) AnalyzeComments(comments []string) ([]model.SentimentResult, model.SentimentOverview) {
	var results []model.SentimentResult
	var compoundSum, confidenceSum float64
	counts := map[string]int{}

	for i, text := range comments {
		if len(strings.TrimSpace(text)) < minCommentLength {
			continue
		}
		res := s.AnalyzeComment(commentID(i), text)
		results = append(results, res)
		counts[res.Sentiment]++
		scores := s.Analyze(text)
		compoundSum += scores.Compound
		confidenceSum += res.Confidence
	}

	total := len(results)
	overview := model.SentimentOverview{TotalComments: total}
	if total == 0 {
		overview.NeutralPercentage = 100
		overview.OverallRating = 3
		return results, overview
	}

	overview.PositivePercentage = round1(float64(counts[model.SentimentPositive]) / float64(total) * 100)
	overview.NegativePercentage = round1(float64(counts[model.SentimentNegative]) / float64(total) * 100)
	overview.NeutralPercentage = round1(100 - overview.PositivePercentage - overview.NegativePercentage)
	overview.OverallRating = round1(clamp(3+2*(compoundSum/float64(total)), 1, 5))
	overview.AverageConfidence = round2(confidenceSum / float64(total))
	return results, overview
}

// Summarize picks the strongest positive and negative results and the
// dominant class across the batch.
func Summarize(results []model.SentimentResult, overview model.SentimentOverview) model.SentimentSummary {
	summary := model.SentimentSummary{
		DominantSentiment: model.SentimentNeutral,
		Confidence:        ConfidenceBuckets(results),
	}

	dominant := overview.NeutralPercentage
	if overview.PositivePercentage > dominant {
		summary.DominantSentiment = model.SentimentPositive
		dominant = overview.PositivePercentage
	}
	if overview.NegativePercentage > dominant {
		summary.DominantSentiment = model.SentimentNegative
	}

	for i := range results {
		r := &results[i]
		switch r.Sentiment {
		case model.SentimentPositive:
			if summary.MostPositive == nil || r.Confidence > summary.MostPositive.Confidence {
				summary.MostPositive = r
			}
		case model.SentimentNegative:
			if summary.MostNegative == nil || r.Confidence > summary.MostNegative.Confidence {
				summary.MostNegative = r
			}
		}
	}
	return summary
}

func commentID(index int) string {
	return "comment_" + strconv.Itoa(index+1)
}
