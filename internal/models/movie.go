// Package models defines data types for the movies graph API.
package models

// Movie is the detail view of a movie node, including its aggregated cast.
// All scalar fields are pointers because the underlying graph properties are
// optional; a missing property marshals as JSON null, matching the store.
type Movie struct {
	Released *int64       `json:"released"`
	Title    *string      `json:"title"`
	Tagline  *string      `json:"tagline"`
	Votes    *int64       `json:"votes"`
	Cast     []CastMember `json:"cast,omitempty"`
}

// CastMember is one person attached to a movie, with the job derived from the
// relationship type (ACTED_IN -> "acted") and the roles carried on the edge.
type CastMember struct {
	Name string   `json:"name"`
	Job  string   `json:"job"`
	Role []string `json:"role,omitempty"`
}

// MovieResult wraps a movie for search responses.
type MovieResult struct {
	Movie Movie `json:"movie"`
}

// VoteResult is the response to a vote increment.
type VoteResult struct {
	Votes int64 `json:"votes"`
}
