package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Version: "1.0.0", Database: "connected"})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
	if resp.Database != "connected" {
		t.Errorf("got database %q, want connected", resp.Database)
	}
}

func TestReady_NotReady(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /ready": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 503, ReadinessResponse{Status: "not_ready", Checks: map[string]string{"database": "unreachable"}})
		},
	})
	_, err := c.Ready(context.Background())
	if err == nil {
		t.Fatal("expected error for 503 readiness")
	}
}

func TestMovieGetAndVote(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /movie/The Matrix": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Movie{
				Title:    strPtr("The Matrix"),
				Released: int64Ptr(1999),
				Cast:     []CastMember{{Name: "Keanu Reeves", Job: "acted", Role: []string{"Neo"}}},
			})
		},
		"POST /movie/vote/The Matrix": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, VoteResult{Votes: 5})
		},
	})

	ctx := context.Background()

	movie, err := c.Movies.Get(ctx, "The Matrix")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if movie.Title == nil || *movie.Title != "The Matrix" {
		t.Errorf("got title %v, want The Matrix", movie.Title)
	}
	if len(movie.Cast) != 1 || movie.Cast[0].Name != "Keanu Reeves" {
		t.Errorf("unexpected cast: %+v", movie.Cast)
	}

	vote, err := c.Movies.Vote(ctx, "The Matrix")
	if err != nil {
		t.Fatalf("Vote error: %v", err)
	}
	if vote.Votes != 5 {
		t.Errorf("got %d votes, want 5", vote.Votes)
	}
}

func TestMovieGet_NotFound(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /movie/Missing": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 404, map[string]string{"code": "not_found", "message": "movie not found", "request_id": "abc-123"})
		},
	})

	_, err := c.Movies.Get(context.Background(), "Missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != "not_found" || apiErr.RequestID != "abc-123" {
		t.Errorf("unexpected error fields: %+v", apiErr)
	}
}

func TestSearchMovies(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /search": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("q") != "matrix" || q.Get("limit") != "5" || q.Get("offset") != "10" {
				jsonResponse(w, 400, map[string]string{"code": "invalid_request", "message": "bad params"})
				return
			}
			jsonResponse(w, 200, []MovieResult{{Movie: Movie{Title: strPtr("The Matrix")}}})
		},
	})

	results, err := c.Search.Movies(context.Background(), "matrix", 10, 5)
	if err != nil {
		t.Fatalf("Movies error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestGraphBrowse(t *testing.T) {
	var gotQuery map[string]string

	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /graph": func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{}
			for k, v := range r.URL.Query() {
				gotQuery[k] = v[0]
			}
			jsonResponse(w, 200, GraphResult{
				Nodes: []GraphNode{
					{Title: "The Matrix", Label: "movie"},
					{Title: "Keanu Reeves", Label: "person"},
				},
				Links: []GraphLink{{Source: 1, Target: 0, Rel: "ACTED_IN"}},
			})
		},
	})

	result, err := c.Graph.Browse(context.Background(), BrowseOptions{
		Rels:        []string{"ACTED_IN", "DIRECTED"},
		Root:        "The Matrix",
		Depth:       2,
		NodeExclude: []string{"Genre"},
		ReleasedGTE: int64Ptr(1990),
		Limit:       100,
	})
	if err != nil {
		t.Fatalf("Browse error: %v", err)
	}
	if len(result.Nodes) != 2 || len(result.Links) != 1 {
		t.Errorf("got %d nodes and %d links", len(result.Nodes), len(result.Links))
	}

	want := map[string]string{
		"rel":          "ACTED_IN,DIRECTED",
		"root":         "The Matrix",
		"depth":        "2",
		"node_excl":    "Genre",
		"released_gte": "1990",
		"limit":        "100",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
	if _, ok := gotQuery["node_incl"]; ok {
		t.Error("empty node_incl must be omitted")
	}
	if _, ok := gotQuery["released_lte"]; ok {
		t.Error("nil released_lte must be omitted")
	}
}

func TestGraphBrowse_ZeroOptionsOmitted(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /graph": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.RawQuery != "" {
				jsonResponse(w, 400, map[string]string{"code": "invalid_request", "message": "unexpected params"})
				return
			}
			jsonResponse(w, 200, GraphResult{Nodes: []GraphNode{}, Links: []GraphLink{}})
		},
	})

	if _, err := c.Graph.Browse(context.Background(), BrowseOptions{}); err != nil {
		t.Fatalf("Browse error: %v", err)
	}
}

func TestParseAPIError_NonJSONBody(t *testing.T) {
	apiErr := parseAPIError(502, []byte("bad gateway"))
	if apiErr.Code != "unknown" {
		t.Errorf("got code %q, want unknown", apiErr.Code)
	}
	if apiErr.Message != "bad gateway" {
		t.Errorf("got message %q", apiErr.Message)
	}
}
