package youtube

import (
	"time"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// MockChannel returns the fixed channel payload served when the API is
// unavailable. Deterministic: every call returns identical data.
func MockChannel() *model.ChannelMetrics {
	return &model.ChannelMetrics{
		ChannelID:       "UC_x5XG1OV2P6uZZ5FSM9Ttw",
		Title:           "Google Developers",
		Description:     "The official YouTube channel for Google Developers.",
		Thumbnail:       "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=800&h=450&fit=crop",
		SubscriberCount: 4523000,
		VideoCount:      1250,
		ViewCount:       1250000000,
		PublishedAt:     "2007-08-23T00:34:19Z",
		Country:         "US",
		CustomURL:       "@GoogleDevelopers",
		Keywords:        "google,developers,programming,coding,technology",
		TopicCategories: []string{"Science & Technology"},
	}
}

// MockVideos returns the fixed video list served when the API is unavailable.
func MockVideos() []model.Video {
	published, _ := parseRFC3339("2024-07-15T10:30:00Z")
	return []model.Video{
		{
			VideoID:       "dQw4w9WgXcQ",
			Title:         "How to Build Amazing React Applications - Complete Tutorial",
			Description:   "Learn how to build modern React applications with this comprehensive tutorial.",
			Thumbnail:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=800&h=450&fit=crop",
			PublishedAt:   published,
			Duration:      "PT24M35S",
			ViewCount:     156789,
			LikeCount:     12456,
			CommentCount:  1876,
			FavoriteCount: 892,
			Tags:          []string{"react", "javascript", "tutorial", "web development"},
		},
	}
}

// MockComments returns the fixed comment list served when the API is
// unavailable or a comment fetch fails.
func MockComments() []string {
	return []string{
		"This video is absolutely amazing! Thank you for the great content.",
		"Really helpful tutorial, learned so much from this.",
		"Not sure I agree with this approach, seems overly complicated.",
		"Love your videos! Keep up the excellent work.",
		"Could have been explained better in some parts.",
		"Excellent explanation, very clear and easy to follow.",
		"This helped me solve my exact problem, thank you so much!",
		"Good video overall but the audio quality could be improved.",
		"Amazing content as always! You're the best.",
		"Perfect timing, I was just looking for this information.",
		"I disagree with some points but overall good video.",
		"Fantastic tutorial! Very well structured and informative.",
		"This is exactly what I needed, thank you!",
		"Great job explaining complex concepts in simple terms.",
		"Not my favorite video but still useful information.",
		"Incredible work! This channel never disappoints.",
		"Very helpful, will definitely try this approach.",
		"Good content but could be more concise.",
		"Outstanding tutorial! Subscribed immediately.",
		"This video changed my perspective completely.",
	}
}
