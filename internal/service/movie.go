// Package service provides business logic between API handlers and data stores.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/models"
)

// MovieStore is the data-access interface MovieService depends on.
type MovieStore interface {
	FindMovie(ctx context.Context, title string) (*models.Movie, error)
	Vote(ctx context.Context, title string) (*models.VoteResult, error)
	Search(ctx context.Context, query string, offset, limit int) ([]models.MovieResult, error)
}

// MovieService wraps MovieStore with context-aware logging.
type MovieService struct {
	store MovieStore
	log   *logrus.Logger
}

// NewMovieService creates a MovieService.
func NewMovieService(store MovieStore, log *logrus.Logger) *MovieService {
	return &MovieService{store: store, log: log}
}

// FindMovie returns the movie with the exact title.
func (s *MovieService) FindMovie(ctx context.Context, title string) (*models.Movie, error) {
	s.log.WithField("title", title).Debug("movie.find")

	return s.store.FindMovie(ctx, title)
}

// Vote increments and returns the movie's vote counter.
func (s *MovieService) Vote(ctx context.Context, title string) (*models.VoteResult, error) {
	s.log.WithField("title", title).Debug("movie.vote")

	return s.store.Vote(ctx, title)
}

// Search returns movies whose title contains the query substring.
func (s *MovieService) Search(ctx context.Context, query string, offset, limit int) ([]models.MovieResult, error) {
	s.log.WithFields(logrus.Fields{
		"query":  query,
		"offset": offset,
		"limit":  limit,
	}).Debug("movie.search")

	return s.store.Search(ctx, query, offset, limit)
}
