package model

// VideoRecord is one search hit from the upstream API.
type VideoRecord struct {
	VideoID   string `json:"videoId"`
	ChannelID string `json:"channelId"`
	Title     string `json:"title"`
	URL       string `json:"url"`
}

// ChannelStats holds the per-channel fields the pipeline scores on.
// One instance is reused across all videos of the channel within a request.
type ChannelStats struct {
	ChannelID   string `json:"channelId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CustomURL   string `json:"customUrl,omitempty"`
	Videos      int64  `json:"videos"`
	Subscribers int64  `json:"subscribers"`
}
