package client

import (
	"context"
	"net/url"
)

// MovieService handles single-movie operations.
type MovieService struct {
	c *Client
}

// Get fetches one movie by its exact title, including its cast.
func (s *MovieService) Get(ctx context.Context, title string) (*Movie, error) {
	var resp Movie
	if err := s.c.get(ctx, "/movie/"+url.PathEscape(title), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Vote increments the vote tally of a movie and returns the new count.
func (s *MovieService) Vote(ctx context.Context, title string) (*VoteResult, error) {
	var resp VoteResult
	if err := s.c.post(ctx, "/movie/vote/"+url.PathEscape(title), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
