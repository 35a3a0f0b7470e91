package model

// Recommendation is one scored entry of the /query/ response array.
// Field names are part of the API contract consumed by the frontend tables
// and charts, hence the capitalised JSON keys.
type Recommendation struct {
	Title       string  `json:"Title"`
	URL         string  `json:"Url"`
	Videos      int64   `json:"Videos"`
	Subscribers int64   `json:"Subscribers"`
	Score       float64 `json:"Score"`
	Similarity  float64 `json:"Similarity"`
}
