package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/browse"
)

// GraphStore is the data-access interface GraphService depends on.
type GraphStore interface {
	Browse(ctx context.Context, filters browse.Filters) (*browse.Result, error)
}

// GraphService wraps GraphStore with context-aware logging.
type GraphService struct {
	store GraphStore
	log   *logrus.Logger
}

// NewGraphService creates a GraphService.
func NewGraphService(store GraphStore, log *logrus.Logger) *GraphService {
	return &GraphService{store: store, log: log}
}

// Browse executes a graph browse for the canonical filter set.
func (s *GraphService) Browse(ctx context.Context, filters browse.Filters) (*browse.Result, error) {
	s.log.WithFields(logrus.Fields{
		"mode":  filters.Mode().String(),
		"rels":  filters.Rels,
		"root":  filters.Root,
		"depth": filters.Depth,
		"limit": filters.Limit,
	}).Debug("graph.browse")

	return s.store.Browse(ctx, filters)
}
