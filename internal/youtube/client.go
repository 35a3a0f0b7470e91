package youtube

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/smd67/youtube-scraper/internal/model"
)

// channels.list accepts at most this many IDs per call.
const channelChunkSize = 50

// Client is a typed wrapper around the YouTube Data API v3. It is
// constructed once at startup and reused read-only across requests.
type Client struct {
	service          *ytapi.Service
	searchMaxResults int64
}

// NewClient builds the Data API service with an API key credential.
// Extra options (custom endpoint, custom HTTP client) are appended after
// the defaults so tests can point the client at a fake upstream.
func NewClient(ctx context.Context, apiKey string, searchMaxResults int64, timeout time.Duration, extra ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: API key is required")
	}
	if searchMaxResults <= 0 || searchMaxResults > 50 {
		searchMaxResults = 50
	}

	opts := []option.ClientOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	opts = append(opts, extra...)

	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}

	return &Client{service: service, searchMaxResults: searchMaxResults}, nil
}

// SearchVideos runs one search.list call and returns the matching videos in
// API order. Zero matches is a valid empty result, not an error.
func (c *Client) SearchVideos(ctx context.Context, query string) ([]model.VideoRecord, error) {
	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(c.searchMaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("search.list", err)
	}

	records := make([]model.VideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		// Validate at the boundary: rows without an id or snippet are
		// malformed and dropped rather than propagated inward.
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil || item.Snippet.ChannelId == "" {
			continue
		}
		records = append(records, model.VideoRecord{
			VideoID:   item.Id.VideoId,
			ChannelID: item.Snippet.ChannelId,
			Title:     item.Snippet.Title,
			URL:       "https://www.youtube.com/watch?v=" + item.Id.VideoId,
		})
	}
	return records, nil
}

// ChannelStats returns the stats for a single channel id.
func (c *Client) ChannelStats(ctx context.Context, channelID string) (*model.ChannelStats, error) {
	stats, err := c.ChannelStatsBatch(ctx, []string{channelID})
	if err != nil {
		return nil, err
	}
	cs, ok := stats[channelID]
	if !ok {
		return nil, fmt.Errorf("%w: channel %s", ErrNotFound, channelID)
	}
	return &cs, nil
}

// ChannelStatsBatch fetches stats for the given channel ids, chunking into
// channels.list calls of up to 50 ids. IDs the API does not return (deleted
// channels) are simply absent from the result map.
func (c *Client) ChannelStatsBatch(ctx context.Context, channelIDs []string) (map[string]model.ChannelStats, error) {
	stats := make(map[string]model.ChannelStats, len(channelIDs))

	for start := 0; start < len(channelIDs); start += channelChunkSize {
		end := min(start+channelChunkSize, len(channelIDs))
		chunk := channelIDs[start:end]

		resp, err := c.service.Channels.List([]string{"id", "snippet", "statistics"}).
			Id(chunk...).
			MaxResults(int64(len(chunk))).
			Context(ctx).
			Do()
		if err != nil {
			return nil, classify("channels.list", err)
		}

		for _, item := range resp.Items {
			if item.Id == "" || item.Snippet == nil || item.Statistics == nil {
				continue
			}
			stats[item.Id] = model.ChannelStats{
				ChannelID:   item.Id,
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				CustomURL:   item.Snippet.CustomUrl,
				Videos:      int64(item.Statistics.VideoCount),
				Subscribers: int64(item.Statistics.SubscriberCount),
			}
		}
	}

	return stats, nil
}

// VideoComments returns the comment texts of one video: top-level comments
// plus their replies, in thread order. Comment availability is not
// guaranteed (comments disabled, video deleted); callers treat a failure
// here as a per-video condition.
func (c *Client) VideoComments(ctx context.Context, videoID string) ([]string, error) {
	resp, err := c.service.CommentThreads.List([]string{"id", "snippet", "replies"}).
		VideoId(videoID).
		TextFormat("plainText").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("commentThreads.list", err)
	}

	var comments []string
	for _, thread := range resp.Items {
		if thread.Snippet != nil && thread.Snippet.TopLevelComment != nil &&
			thread.Snippet.TopLevelComment.Snippet != nil {
			comments = append(comments, thread.Snippet.TopLevelComment.Snippet.TextOriginal)
		}
		if thread.Replies != nil {
			for _, reply := range thread.Replies.Comments {
				if reply.Snippet != nil {
					comments = append(comments, reply.Snippet.TextOriginal)
				}
			}
		}
	}
	return comments, nil
}
