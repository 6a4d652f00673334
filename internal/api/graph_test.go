package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/cinegraph/cinegraph/internal/api"
	"github.com/cinegraph/cinegraph/internal/browse"
)

func TestGraphBrowse_ResultPassthrough(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{
		browseFn: func(_ context.Context, _ browse.Filters) (*browse.Result, error) {
			return &browse.Result{
				Nodes: []browse.Node{
					{Title: "The Matrix", Label: "movie", Props: map[string]any{"released": int64(1999)}},
					{Title: "Keanu Reeves", Label: "person", Props: map[string]any{}},
				},
				Links: []browse.Link{{Source: 1, Target: 0, Rel: "ACTED_IN"}},
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewGraphHandler(repo, testLogger())
	r.GET("/graph", h.Browse)

	w := doRequest(r, http.MethodGet, "/graph", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result browse.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(result.Nodes) != 2 || len(result.Links) != 1 {
		t.Fatalf("expected 2 nodes and 1 link, got %d and %d", len(result.Nodes), len(result.Links))
	}

	if result.Links[0].Source != 1 || result.Links[0].Target != 0 || result.Links[0].Rel != "ACTED_IN" {
		t.Errorf("unexpected link: %+v", result.Links[0])
	}
}

func TestGraphBrowse_FiltersNormalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  browse.Filters
	}{
		{
			name:  "defaults",
			query: "",
			want: browse.Filters{
				Rels:        []string{},
				NodeInclude: []string{},
				NodeExclude: []string{},
				Depth:       0,
				Limit:       200,
			},
		},
		{
			name:  "relations uppercased and split",
			query: "rel=directed,%20acted_in",
			want: browse.Filters{
				Rels:        []string{"DIRECTED", "ACTED_IN"},
				NodeInclude: []string{},
				NodeExclude: []string{},
				Depth:       0,
				Limit:       200,
			},
		},
		{
			name:  "labels kept verbatim",
			query: "node_incl=Movie,Person&node_excl=Genre",
			want: browse.Filters{
				Rels:        []string{},
				NodeInclude: []string{"Movie", "Person"},
				NodeExclude: []string{"Genre"},
				Depth:       0,
				Limit:       200,
			},
		},
		{
			name:  "depth and limit clamped",
			query: "root=The%20Matrix&depth=99&limit=50000",
			want: browse.Filters{
				Rels:        []string{},
				NodeInclude: []string{},
				NodeExclude: []string{},
				Root:        "The Matrix",
				Depth:       6,
				Limit:       1000,
			},
		},
		{
			name:  "year bounds forwarded",
			query: "released_gte=1990&released_lte=2005",
			want: browse.Filters{
				Rels:        []string{},
				NodeInclude: []string{},
				NodeExclude: []string{},
				Depth:       0,
				Limit:       200,
				ReleasedGTE: int64Ptr(1990),
				ReleasedLTE: int64Ptr(2005),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got browse.Filters

			repo := &mockGraphRepo{
				browseFn: func(_ context.Context, filters browse.Filters) (*browse.Result, error) {
					got = filters

					return &browse.Result{Nodes: []browse.Node{}, Links: []browse.Link{}}, nil
				},
			}

			r := newTestRouter()
			h := api.NewGraphHandler(repo, testLogger())
			r.GET("/graph", h.Browse)

			w := doRequest(r, http.MethodGet, "/graph?"+tt.query, "")

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filters mismatch\n got: %+v\nwant: %+v", got, tt.want)
			}
		})
	}
}

func TestGraphBrowse_InvalidParameter(t *testing.T) {
	t.Parallel()

	for _, query := range []string{
		"depth=abc",
		"limit=many",
		"released_gte=nineteen-ninety",
		"released_lte=1.5",
	} {
		t.Run(query, func(t *testing.T) {
			t.Parallel()

			repo := &mockGraphRepo{
				browseFn: func(_ context.Context, _ browse.Filters) (*browse.Result, error) {
					t.Fatal("repository must not be called on coercion failure")

					return nil, nil
				},
			}

			r := newTestRouter()
			h := api.NewGraphHandler(repo, testLogger())
			r.GET("/graph", h.Browse)

			w := doRequest(r, http.MethodGet, "/graph?"+query, "")

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}

			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}

			if resp["code"] != api.ErrCodeValidationError {
				t.Errorf("expected code %q, got %q", api.ErrCodeValidationError, resp["code"])
			}
		})
	}
}

func TestGraphBrowse_StoreError(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{
		browseFn: func(_ context.Context, _ browse.Filters) (*browse.Result, error) {
			return nil, errors.New("neo4j: session expired")
		},
	}

	r := newTestRouter()
	h := api.NewGraphHandler(repo, testLogger())
	r.GET("/graph", h.Browse)

	w := doRequest(r, http.MethodGet, "/graph", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if resp["message"] != "internal server error" {
		t.Errorf("response leaks internals: %q", resp["message"])
	}
}

func int64Ptr(v int64) *int64 { return &v }
