package model

// ChannelMetrics holds the channel-level statistics used to contextualize
// video scores. A nil ChannelMetrics is valid everywhere and triggers the
// scorer's fallback defaults.
type ChannelMetrics struct {
	ChannelID       string   `json:"channelId"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Thumbnail       string   `json:"thumbnail"`
	SubscriberCount int64    `json:"subscriberCount"`
	VideoCount      int64    `json:"videoCount"`
	ViewCount       int64    `json:"viewCount"`
	PublishedAt     string   `json:"publishedAt"`
	Country         string   `json:"country,omitempty"`
	CustomURL       string   `json:"customUrl,omitempty"`
	Keywords        string   `json:"keywords,omitempty"`
	TopicCategories []string `json:"topicCategories,omitempty"`
}
