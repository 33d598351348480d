package handler

import (
	"testing"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/youtube"
)

func TestCommentsWithFallback(t *testing.T) {
	// An empty fetch substitutes the mock comment set so the report never
	// comes back hollow.
	comments, source := commentsWithFallback(nil, false)
	if len(comments) != len(youtube.MockComments()) {
		t.Errorf("got %d comments, want the full mock set", len(comments))
	}
	if source != "mock" {
		t.Errorf("source = %q, want mock", source)
	}

	fetched := []string{"great video", "not a fan"}
	comments, source = commentsWithFallback(fetched, false)
	if len(comments) != 2 || source != "youtube_api" {
		t.Errorf("real comments: %d comments, source %q", len(comments), source)
	}

	_, source = commentsWithFallback(fetched, true)
	if source != "mock" {
		t.Errorf("mock client source = %q, want mock", source)
	}
}
