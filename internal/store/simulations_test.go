package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	assert.Equal(t, "user-1", nullable("user-1"))
}

// fakeRow feeds canned column values into scanSimulation.
type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch target := d.(type) {
		case *string:
			*target = r.values[i].(string)
		case *[]byte:
			*target = r.values[i].([]byte)
		case *bool:
			*target = r.values[i].(bool)
		default:
			// created_at and any other column keep its zero value
		}
	}
	return nil
}

func TestScanSimulation(t *testing.T) {
	row := &fakeRow{values: []any{
		"sim-1", "user-1",
		[]byte(`{"title":"Stay"}`), []byte(`{"title":"Leave"}`),
		[]byte(`{"age":"30"}`),
		[]byte(`[{"year":2026,"happiness_score":7}]`),
		[]byte(`[{"year":2026,"happiness_score":7.5}]`),
		"summary text", false, nil,
	}}

	sim, err := scanSimulation(row)
	require.NoError(t, err)
	assert.Equal(t, "sim-1", sim.ID)
	assert.Equal(t, "user-1", sim.UserID)
	assert.Equal(t, "Stay", sim.ChoiceA.Title)
	assert.Equal(t, "Leave", sim.ChoiceB.Title)
	assert.Equal(t, "30", sim.UserContext.Age)
	require.Len(t, sim.ChoiceATimeline, 1)
	assert.Equal(t, 2026, sim.ChoiceATimeline[0].Year)
	assert.InDelta(t, 7.5, sim.ChoiceBTimeline[0].HappinessScore, 0.001)
}

func TestScanSimulation_BadJSON(t *testing.T) {
	row := &fakeRow{values: []any{
		"sim-1", "user-1",
		[]byte(`{broken`), []byte(`{}`), []byte(`{}`),
		[]byte(`[]`), []byte(`[]`),
		"", false, nil,
	}}

	_, err := scanSimulation(row)
	assert.Error(t, err)
}

func TestScanSimulation_ScanErrorPassesThrough(t *testing.T) {
	row := &fakeRow{err: pgx.ErrNoRows}
	_, err := scanSimulation(row)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}
