package client

// Movie is a single movie with its cast.
type Movie struct {
	Released *int64       `json:"released,omitempty"`
	Title    *string      `json:"title,omitempty"`
	Tagline  *string      `json:"tagline,omitempty"`
	Votes    *int64       `json:"votes,omitempty"`
	Cast     []CastMember `json:"cast"`
}

// CastMember is one person's involvement in a movie.
type CastMember struct {
	Name string   `json:"name"`
	Job  string   `json:"job"`
	Role []string `json:"role,omitempty"`
}

// MovieResult is a single search hit.
type MovieResult struct {
	Movie Movie `json:"movie"`
}

// VoteResult reports the vote tally after a vote is cast.
type VoteResult struct {
	Votes int64 `json:"votes"`
}

// GraphNode is one display node in a browse result.
type GraphNode struct {
	Title string         `json:"title"`
	Label string         `json:"label"`
	Props map[string]any `json:"props"`
}

// GraphLink connects two nodes in a browse result by index.
type GraphLink struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Rel    string `json:"rel"`
}

// GraphResult is the nodes-and-links payload of a graph browse.
type GraphResult struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadinessResponse is the readiness payload.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
