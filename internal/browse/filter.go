// Package browse implements the graph-browsing core: normalization of the
// declarative filter parameters, construction of the parameterized traversal
// query, and streaming assembly of the resulting edge records into a
// deduplicated, index-addressed graph.
//
// All state lives within one request. Nothing here is shared or reused across
// requests.
package browse

import "strings"

// Bounds for the browse parameters.
const (
	MaxDepth     = 6
	DefaultLimit = 200
	MaxLimit     = 1000
)

// RawFilters carries the browse parameters as supplied by the caller, before
// normalization. Nil pointer fields mean the parameter was absent.
type RawFilters struct {
	Rel         string
	Root        string
	Depth       *int
	NodeInclude string
	NodeExclude string
	ReleasedGTE *int64
	ReleasedLTE *int64
	Limit       *int
}

// Filters is the canonical filter set. Empty slices mean no restriction
// (wildcard); an empty Root means no root anchor.
type Filters struct {
	Rels        []string
	NodeInclude []string
	NodeExclude []string
	Root        string
	Depth       int
	ReleasedGTE *int64
	ReleasedLTE *int64
	Limit       int
}

// Normalize converts raw browse parameters into a canonical Filters. It never
// fails: out-of-range values are clamped and empty CSV tokens dropped.
// Relation types are uppercased to match the store's naming convention; node
// labels are matched case-sensitively and kept verbatim.
func Normalize(raw RawFilters) Filters {
	return Filters{
		Rels:        splitCSV(raw.Rel, strings.ToUpper),
		NodeInclude: splitCSV(raw.NodeInclude, nil),
		NodeExclude: splitCSV(raw.NodeExclude, nil),
		Root:        strings.TrimSpace(raw.Root),
		Depth:       clamp(valueOr(raw.Depth, 0), 0, MaxDepth),
		ReleasedGTE: raw.ReleasedGTE,
		ReleasedLTE: raw.ReleasedLTE,
		Limit:       clamp(valueOr(raw.Limit, DefaultLimit), 1, MaxLimit),
	}
}

// splitCSV splits a comma-separated value into trimmed, non-empty tokens.
// The result is never nil so it always binds as a list parameter.
func splitCSV(s string, transform func(string) string) []string {
	out := []string{}

	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		if transform != nil {
			tok = transform(tok)
		}

		out = append(out, tok)
	}

	return out
}

func valueOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}

	return *p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
