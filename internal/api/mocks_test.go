package api_test

import (
	"context"

	"github.com/cinegraph/cinegraph/internal/browse"
	"github.com/cinegraph/cinegraph/internal/models"
)

// mockMovieRepo implements api.MovieRepository for testing.
type mockMovieRepo struct {
	findFn   func(ctx context.Context, title string) (*models.Movie, error)
	voteFn   func(ctx context.Context, title string) (*models.VoteResult, error)
	searchFn func(ctx context.Context, query string, offset, limit int) ([]models.MovieResult, error)
}

func (m *mockMovieRepo) FindMovie(ctx context.Context, title string) (*models.Movie, error) {
	return m.findFn(ctx, title)
}

func (m *mockMovieRepo) Vote(ctx context.Context, title string) (*models.VoteResult, error) {
	return m.voteFn(ctx, title)
}

func (m *mockMovieRepo) Search(ctx context.Context, query string, offset, limit int) ([]models.MovieResult, error) {
	return m.searchFn(ctx, query, offset, limit)
}

// mockGraphRepo implements api.GraphRepository for testing.
type mockGraphRepo struct {
	browseFn func(ctx context.Context, filters browse.Filters) (*browse.Result, error)
}

func (m *mockGraphRepo) Browse(ctx context.Context, filters browse.Filters) (*browse.Result, error) {
	return m.browseFn(ctx, filters)
}
