package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// GraphService handles graph browsing.
type GraphService struct {
	c *Client
}

// BrowseOptions are the filters for a graph browse. Zero values are omitted
// from the request; the server applies its documented defaults and clamps.
type BrowseOptions struct {
	Rels        []string // relationship types, matched case-insensitively
	Root        string   // anchor node for a rooted walk
	Depth       int      // walk depth from the root, capped server-side at 6
	NodeInclude []string // node labels to include, exact match
	NodeExclude []string // node labels to exclude, exact match
	ReleasedGTE *int64   // minimum release year for movie endpoints
	ReleasedLTE *int64   // maximum release year for movie endpoints
	Limit       int      // max links returned, capped server-side at 1000
}

// Browse fetches a nodes-and-links subgraph matching the given filters.
func (s *GraphService) Browse(ctx context.Context, opts BrowseOptions) (*GraphResult, error) {
	params := url.Values{}
	if len(opts.Rels) > 0 {
		params.Set("rel", strings.Join(opts.Rels, ","))
	}
	if opts.Root != "" {
		params.Set("root", opts.Root)
	}
	if opts.Depth > 0 {
		params.Set("depth", strconv.Itoa(opts.Depth))
	}
	if len(opts.NodeInclude) > 0 {
		params.Set("node_incl", strings.Join(opts.NodeInclude, ","))
	}
	if len(opts.NodeExclude) > 0 {
		params.Set("node_excl", strings.Join(opts.NodeExclude, ","))
	}
	if opts.ReleasedGTE != nil {
		params.Set("released_gte", strconv.FormatInt(*opts.ReleasedGTE, 10))
	}
	if opts.ReleasedLTE != nil {
		params.Set("released_lte", strconv.FormatInt(*opts.ReleasedLTE, 10))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}

	var resp GraphResult
	if err := s.c.get(ctx, "/graph", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
