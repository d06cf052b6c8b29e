package store

import (
	"context"
	"fmt"
	"time"
)

// RecordUsage appends one usage event for a user and feature.
func (db *DB) RecordUsage(ctx context.Context, userID, feature string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO feature_usage (user_id, feature) VALUES ($1, $2)`,
		userID, feature,
	)
	if err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}

// CountUsageSince counts a user's usage events for a feature since a time.
func (db *DB) CountUsageSince(ctx context.Context, userID, feature string, since time.Time) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM feature_usage
		 WHERE user_id = $1 AND feature = $2 AND used_at >= $3`,
		userID, feature, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count usage: %w", err)
	}
	return count, nil
}
