package service

import "github.com/jonreiter/govader"

// SentimentService scores comment batches with the VADER lexicon. The
// analyzer holds the pretrained lexicon and is read-only after construction.
type SentimentService struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewSentimentService() *SentimentService {
	return &SentimentService{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// ScoreComment returns the positive polarity of one comment in [0, 1]:
// 0 means no positive sentiment, 1 means fully positive.
func (s *SentimentService) ScoreComment(text string) float64 {
	return s.analyzer.PolarityScores(text).Positive
}

// ScoreBatch returns the mean positive polarity across all comments of a
// video. An empty batch scores neutral 0, never an error — comment
// availability is not guaranteed upstream.
func (s *SentimentService) ScoreBatch(comments []string) float64 {
	if len(comments) == 0 {
		return 0
	}

	var sum float64
	for _, text := range comments {
		sum += s.ScoreComment(text)
	}
	return sum / float64(len(comments))
}
