package model

// QueryRequest is the body of POST /query/.
type QueryRequest struct {
	QueryString string `json:"query_string"`
}
