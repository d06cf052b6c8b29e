package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"lifecast/internal/types"
)

// ErrNotFound is returned when a simulation id does not exist.
var ErrNotFound = errors.New("simulation not found")

// SaveSimulation persists a finished simulation record.
func (db *DB) SaveSimulation(ctx context.Context, sim *types.Simulation) error {
	choiceA, err := json.Marshal(sim.ChoiceA)
	if err != nil {
		return fmt.Errorf("failed to marshal choice A: %w", err)
	}
	choiceB, err := json.Marshal(sim.ChoiceB)
	if err != nil {
		return fmt.Errorf("failed to marshal choice B: %w", err)
	}
	userContext, err := json.Marshal(sim.UserContext)
	if err != nil {
		return fmt.Errorf("failed to marshal user context: %w", err)
	}
	timelineA, err := json.Marshal(sim.ChoiceATimeline)
	if err != nil {
		return fmt.Errorf("failed to marshal timeline A: %w", err)
	}
	timelineB, err := json.Marshal(sim.ChoiceBTimeline)
	if err != nil {
		return fmt.Errorf("failed to marshal timeline B: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO simulations
			(id, user_id, choice_a, choice_b, user_context,
			 choice_a_timeline, choice_b_timeline, summary, is_public, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		sim.ID, nullable(sim.UserID), choiceA, choiceB, userContext,
		timelineA, timelineB, sim.Summary, sim.IsPublic, sim.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save simulation: %w", err)
	}
	return nil
}

// GetSimulation loads one simulation by id.
func (db *DB) GetSimulation(ctx context.Context, id string) (*types.Simulation, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, COALESCE(user_id, ''), choice_a, choice_b, user_context,
			choice_a_timeline, choice_b_timeline, summary, is_public, created_at
		 FROM simulations WHERE id = $1`,
		id,
	)

	sim, err := scanSimulation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get simulation: %w", err)
	}
	return sim, nil
}

// ListSimulations returns a user's simulations, newest first.
func (db *DB) ListSimulations(ctx context.Context, userID string, limit int) ([]*types.Simulation, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, COALESCE(user_id, ''), choice_a, choice_b, user_context,
			choice_a_timeline, choice_b_timeline, summary, is_public, created_at
		 FROM simulations WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	defer rows.Close()

	var sims []*types.Simulation
	for rows.Next() {
		sim, err := scanSimulation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation: %w", err)
		}
		sims = append(sims, sim)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read simulations: %w", err)
	}
	return sims, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSimulation(row rowScanner) (*types.Simulation, error) {
	var sim types.Simulation
	var choiceA, choiceB, userContext, timelineA, timelineB []byte

	if err := row.Scan(&sim.ID, &sim.UserID, &choiceA, &choiceB, &userContext,
		&timelineA, &timelineB, &sim.Summary, &sim.IsPublic, &sim.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(choiceA, &sim.ChoiceA); err != nil {
		return nil, fmt.Errorf("decode choice A: %w", err)
	}
	if err := json.Unmarshal(choiceB, &sim.ChoiceB); err != nil {
		return nil, fmt.Errorf("decode choice B: %w", err)
	}
	if err := json.Unmarshal(userContext, &sim.UserContext); err != nil {
		return nil, fmt.Errorf("decode user context: %w", err)
	}
	if err := json.Unmarshal(timelineA, &sim.ChoiceATimeline); err != nil {
		return nil, fmt.Errorf("decode timeline A: %w", err)
	}
	if err := json.Unmarshal(timelineB, &sim.ChoiceBTimeline); err != nil {
		return nil, fmt.Errorf("decode timeline B: %w", err)
	}
	return &sim, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
