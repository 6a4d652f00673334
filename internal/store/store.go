// Package store provides focused, single-concern data access stores over the
// movies property graph.
//
// Each store owns one domain (movies, graph browsing) and embeds shared
// dependencies (DB, logger) via the Base struct. Stores never import each
// other; shared logic lives in this file.
package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/graphdb"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	DB  *graphdb.DB
	Log *logrus.Logger
}

// withTimeout creates a context with the default query timeout. Point
// queries use it; the browse path does not, because browse timeout
// enforcement belongs to the caller-supplied request context.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// optString reads an optional string property from a node property map.
func optString(props map[string]any, key string) *string {
	if v, ok := props[key].(string); ok {
		return &v
	}

	return nil
}

// optInt64 reads an optional integer property from a node property map.
func optInt64(props map[string]any, key string) *int64 {
	if v, ok := props[key].(int64); ok {
		return &v
	}

	return nil
}
