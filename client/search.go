package client

import (
	"context"
	"net/url"
	"strconv"
)

// SearchService handles movie title search.
type SearchService struct {
	c *Client
}

// Movies runs a case-insensitive substring search over movie titles.
// Offset and limit are optional; zero values fall back to server defaults.
func (s *SearchService) Movies(ctx context.Context, query string, offset, limit int) ([]MovieResult, error) {
	params := url.Values{}
	params.Set("q", query)
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp []MovieResult
	if err := s.c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
