package service

import (
	"context"
	"log"

	"github.com/smd67/youtube-scraper/internal/model"
	"github.com/smd67/youtube-scraper/pkg/rank"
)

// SearchAPI is the slice of the upstream client the pipeline depends on.
type SearchAPI interface {
	SearchVideos(ctx context.Context, query string) ([]model.VideoRecord, error)
	ChannelStatsBatch(ctx context.Context, channelIDs []string) (map[string]model.ChannelStats, error)
	VideoComments(ctx context.Context, videoID string) ([]string, error)
}

// RecommendService runs the query pipeline: search, per-channel stats,
// per-video comment sentiment, description similarity, then rank.
type RecommendService struct {
	api        SearchAPI
	sentiment  *SentimentService
	similarity *SimilarityService
	maxResults int
}

// NewRecommendService wires the pipeline. maxResults caps the response
// length after ranking; <= 0 means uncapped.
func NewRecommendService(api SearchAPI, sentiment *SentimentService, similarity *SimilarityService, maxResults int) *RecommendService {
	return &RecommendService{
		api:        api,
		sentiment:  sentiment,
		similarity: similarity,
		maxResults: maxResults,
	}
}

// Query produces one Recommendation per searched video, ranked by the
// average of the four signal ranks. Zero matches yields an empty slice.
//
// Failure semantics: a failed search or stats call fails the whole
// request. A channel the stats call did not return (deleted channel)
// drops only that channel's videos; a failed comment fetch degrades that
// video to neutral sentiment. Sibling videos are never affected.
func (s *RecommendService) Query(ctx context.Context, query string) ([]model.Recommendation, error) {
	videos, err := s.api.SearchVideos(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return []model.Recommendation{}, nil
	}

	stats, err := s.api.ChannelStatsBatch(ctx, distinctChannelIDs(videos))
	if err != nil {
		return nil, err
	}

	// Similarity depends only on the channel description; compute it once
	// per channel and reuse across that channel's videos.
	similarity := make(map[string]float64, len(stats))
	for id, cs := range stats {
		similarity[id] = s.similarity.Score(query, cs.Description)
	}

	results := make([]model.Recommendation, 0, len(videos))
	for _, v := range videos {
		cs, ok := stats[v.ChannelID]
		if !ok {
			log.Printf("recommend: channel %s no longer resolves, skipping video %s", v.ChannelID, v.VideoID)
			continue
		}

		comments, err := s.api.VideoComments(ctx, v.VideoID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("recommend: comments unavailable for video %s, scoring neutral: %v", v.VideoID, err)
			comments = nil
		}

		results = append(results, model.Recommendation{
			Title:       v.Title,
			URL:         v.URL,
			Videos:      cs.Videos,
			Subscribers: cs.Subscribers,
			Score:       s.sentiment.ScoreBatch(comments),
			Similarity:  similarity[v.ChannelID],
		})
	}

	return s.rankResults(results), nil
}

// rankResults orders results by the mean of four dense ranks (video count,
// subscribers, sentiment, similarity — each ranked descending) and applies
// the response cap. The underlying sort is stable, so equally ranked
// entries keep search order.
func (s *RecommendService) rankResults(results []model.Recommendation) []model.Recommendation {
	n := len(results)
	if n == 0 {
		return results
	}

	videos := make([]float64, n)
	subs := make([]float64, n)
	score := make([]float64, n)
	sim := make([]float64, n)
	for i, r := range results {
		videos[i] = float64(r.Videos)
		subs[i] = float64(r.Subscribers)
		score[i] = r.Score
		sim[i] = r.Similarity
	}

	order := rank.ByAverage(n,
		rank.DenseDesc(videos),
		rank.DenseDesc(subs),
		rank.DenseDesc(score),
		rank.DenseDesc(sim),
	)

	ranked := make([]model.Recommendation, 0, n)
	for _, i := range order {
		ranked = append(ranked, results[i])
	}

	if s.maxResults > 0 && len(ranked) > s.maxResults {
		ranked = ranked[:s.maxResults]
	}
	return ranked
}

// distinctChannelIDs returns the channel ids in first-seen order.
func distinctChannelIDs(videos []model.VideoRecord) []string {
	seen := make(map[string]struct{}, len(videos))
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.ChannelID]; !ok {
			seen[v.ChannelID] = struct{}{}
			ids = append(ids, v.ChannelID)
		}
	}
	return ids
}
