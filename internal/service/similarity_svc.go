package service

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

var wordRe = regexp.MustCompile(`\w+`)

// SimilarityService measures how closely a channel description matches the
// search string. Search terms rarely appear verbatim in descriptions, so
// matching is fuzzy per word rather than substring.
type SimilarityService struct{}

func NewSimilarityService() *SimilarityService {
	return &SimilarityService{}
}

// Score returns a similarity in [0, 100]. It slides over every suffix of
// the description, averages the fuzzy ratio of each query word against the
// word aligned with it, and keeps the best window. Suffixes are taken per
// character so a query word can also match the tail of a longer word.
// An empty description or empty query scores 0.
func (s *SimilarityService) Score(query, description string) float64 {
	query = strings.ToLower(query)
	description = strings.ToLower(description)

	queryWords := wordRe.FindAllString(query, -1)
	if len(queryWords) == 0 {
		return 0
	}

	runes := []rune(description)
	var best float64
	for i := range runes {
		textWords := wordRe.FindAllString(string(runes[i:]), -1)
		if len(textWords) < len(queryWords) {
			break
		}

		var sum float64
		for j, w := range queryWords {
			sum += float64(fuzzy.Ratio(w, textWords[j]))
		}
		if avg := sum / float64(len(queryWords)); avg > best {
			best = avg
		}
	}
	return best
}
