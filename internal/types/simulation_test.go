package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulation(t *testing.T) {
	req := SimulationRequest{
		ChoiceA:     Choice{Title: "Stay at current job", Category: "career"},
		ChoiceB:     Choice{Title: "Join a startup", Category: "career"},
		UserContext: UserContext{Age: "30", CurrentLocation: "Chicago"},
	}
	cmp := &Comparison{
		ChoiceATimeline: []TimelinePoint{{Year: 2026, HappinessScore: 7.0}},
		ChoiceBTimeline: []TimelinePoint{{Year: 2026, HappinessScore: 7.5}},
		Summary:         "Join a startup offers better long-term happiness.",
	}

	sim := NewSimulation("user-123", req, cmp)
	require.NotNil(t, sim)

	assert.NotEmpty(t, sim.ID)
	assert.Equal(t, "user-123", sim.UserID)
	assert.Equal(t, req.ChoiceA, sim.ChoiceA)
	assert.Equal(t, req.ChoiceB, sim.ChoiceB)
	assert.Equal(t, cmp.ChoiceATimeline, sim.ChoiceATimeline)
	assert.Equal(t, cmp.ChoiceBTimeline, sim.ChoiceBTimeline)
	assert.Equal(t, cmp.Summary, sim.Summary)
	assert.False(t, sim.IsPublic)
	assert.WithinDuration(t, time.Now().UTC(), sim.CreatedAt, time.Minute)
}

func TestNewSimulation_UniqueIDs(t *testing.T) {
	req := SimulationRequest{}
	cmp := &Comparison{}

	a := NewSimulation("", req, cmp)
	b := NewSimulation("", req, cmp)
	assert.NotEqual(t, a.ID, b.ID)
}
