// Package store persists finished simulations and per-user usage counters
// in PostgreSQL. It is the document-store collaborator of the forecasting
// core: nothing inside the engine depends on it.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// schema is the DDL for the tables this store owns.
const schema = `
CREATE TABLE IF NOT EXISTS simulations (
	id UUID PRIMARY KEY,
	user_id TEXT,
	choice_a JSONB NOT NULL,
	choice_b JSONB NOT NULL,
	user_context JSONB NOT NULL,
	choice_a_timeline JSONB NOT NULL,
	choice_b_timeline JSONB NOT NULL,
	summary TEXT NOT NULL,
	is_public BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS simulations_user_created_idx
	ON simulations (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS feature_usage (
	id BIGSERIAL PRIMARY KEY,
	user_id TEXT NOT NULL,
	feature TEXT NOT NULL,
	used_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS feature_usage_lookup_idx
	ON feature_usage (user_id, feature, used_at);
`

// EnsureSchema creates the store's tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
