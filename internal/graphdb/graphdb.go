// Package graphdb provides Neo4j driver management.
package graphdb

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// DB wraps a Neo4j driver with the target database name and health check
// capabilities. The underlying driver is unexported so callers go through
// the session helpers, which always pin the configured database.
type DB struct {
	driver   neo4j.DriverWithContext
	database string
}

// Connect creates a Neo4j driver and verifies connectivity before returning.
func Connect(ctx context.Context, uri, user, password, database string) (*DB, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx) //nolint:errcheck // best-effort close on setup failure.

		return nil, fmt.Errorf("verifying neo4j connectivity: %w", err)
	}

	return &DB{driver: driver, database: database}, nil
}

// ReadSession opens a read-mode session against the configured database.
// The caller owns the session and must close it.
func (db *DB) ReadSession(ctx context.Context) neo4j.SessionWithContext {
	return db.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: db.database,
	})
}

// WriteSession opens a write-mode session against the configured database.
func (db *DB) WriteSession(ctx context.Context) neo4j.SessionWithContext {
	return db.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: db.database,
	})
}

// HealthCheck verifies store connectivity by executing a trivial query.
func (db *DB) HealthCheck(ctx context.Context) error {
	session := db.ReadSession(ctx)
	defer session.Close(ctx) //nolint:errcheck // read-only session.

	result, err := session.Run(ctx, "RETURN 1 AS ok", nil)
	if err != nil {
		return fmt.Errorf("health check query: %w", err)
	}

	record, err := result.Single(ctx)
	if err != nil {
		return fmt.Errorf("health check result: %w", err)
	}

	if ok, _ := record.Get("ok"); ok != int64(1) {
		return fmt.Errorf("health check returned %v", ok)
	}

	return nil
}

// Database returns the configured database name.
func (db *DB) Database() string {
	return db.database
}

// Close shuts down the driver and its connection pool.
func (db *DB) Close(ctx context.Context) error {
	return db.driver.Close(ctx)
}
