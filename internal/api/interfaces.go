package api

import (
	"context"

	"github.com/cinegraph/cinegraph/internal/browse"
	"github.com/cinegraph/cinegraph/internal/models"
)

// MovieRepository defines movie operations used by MovieHandler and SearchHandler.
type MovieRepository interface {
	FindMovie(ctx context.Context, title string) (*models.Movie, error)
	Vote(ctx context.Context, title string) (*models.VoteResult, error)
	Search(ctx context.Context, query string, offset, limit int) ([]models.MovieResult, error)
}

// GraphRepository defines the browse operation used by GraphHandler.
type GraphRepository interface {
	Browse(ctx context.Context, filters browse.Filters) (*browse.Result, error)
}
