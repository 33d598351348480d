package youtube

import (
	"errors"
	"testing"
)

func TestExtractChannelRef(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/@GoogleDevelopers", "@GoogleDevelopers"},
		{"https://youtube.com/@handle?sub_confirmation=1", "@handle"},
		{"https://www.youtube.com/channel/UC_x5XG1OV2P6uZZ5FSM9Ttw", "UC_x5XG1OV2P6uZZ5FSM9Ttw"},
		{"https://www.youtube.com/c/CustomName", "CustomName"},
		{"https://www.youtube.com/user/LegacyUser", "LegacyUser"},
		{"https://www.youtube.com/channel/UCabc/videos", "UCabc"},
	}
	for _, c := range cases {
		got, err := ExtractChannelRef(c.url)
		if err != nil {
			t.Errorf("ExtractChannelRef(%q) error: %v", c.url, err)
			continue
		}
		if got != c.want {
			t.Errorf("ExtractChannelRef(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestExtractChannelRef_Invalid(t *testing.T) {
	for _, url := range []string{
		"",
		"https://example.com/@handle",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"not a url",
	} {
		if _, err := ExtractChannelRef(url); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("ExtractChannelRef(%q) err = %v, want ErrInvalidURL", url, err)
		}
	}
}

func TestMockDataDeterministic(t *testing.T) {
	a, b := MockChannel(), MockChannel()
	if a.ChannelID != b.ChannelID || a.SubscriberCount != b.SubscriberCount || a.ViewCount != b.ViewCount {
		t.Error("MockChannel not deterministic")
	}

	v1, v2 := MockVideos(), MockVideos()
	if len(v1) != len(v2) || v1[0].ViewCount != v2[0].ViewCount || v1[0].VideoID != v2[0].VideoID {
		t.Error("MockVideos not deterministic")
	}

	c1, c2 := MockComments(), MockComments()
	if len(c1) != 20 || len(c1) != len(c2) || c1[0] != c2[0] {
		t.Error("MockComments not deterministic")
	}
}

func TestMockClientServesMockData(t *testing.T) {
	c := &Client{}
	if !c.UsingMockData() {
		t.Fatal("client without service should report mock data")
	}
}
