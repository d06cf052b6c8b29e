package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lifecast/internal/types"
)

func baselineState() state {
	return state{
		salary:            90000,
		level:             types.LevelMid,
		performance:       7.0,
		workLifeBalance:   6.5,
		stability:         7.5,
		satisfaction:      7.0,
		financialSecurity: 5.0,
		totalExperience:   4,
	}
}

func TestMajorEvents_PromotionAboveThreshold(t *testing.T) {
	in := engineInput()
	in.PositionLevel = types.LevelEntry // base rate 0.25

	events := majorEvents(in, baselineState(), 0)
	assert.Contains(t, events, EventPromotion)
	assert.Greater(t, events[EventPromotion], promotionReportThreshold)
}

func TestMajorEvents_PromotionBelowThresholdOmitted(t *testing.T) {
	in := engineInput()
	in.PositionLevel = types.LevelExecutive // base rate 0.02
	in.IndustryGrowthRate = 0

	events := majorEvents(in, baselineState(), 0)
	assert.NotContains(t, events, EventPromotion)
}

func TestMajorEvents_JobChangeScalesWithDissatisfaction(t *testing.T) {
	in := engineInput()

	st := baselineState()
	st.satisfaction = 4.0
	events := majorEvents(in, st, 0)
	assert.InDelta(t, 0.20, events[EventJobChange], 0.001)

	st.satisfaction = 3.0
	events = majorEvents(in, st, 0)
	assert.InDelta(t, 0.25, events[EventJobChange], 0.001)

	st.satisfaction = 7.0
	events = majorEvents(in, st, 0)
	assert.NotContains(t, events, EventJobChange)
}

func TestMajorEvents_Relocation(t *testing.T) {
	in := engineInput()
	in.IsLocationChange = true

	// Low right after a move.
	events := majorEvents(in, baselineState(), 1)
	assert.InDelta(t, 0.05, events[EventRelocation], 0.001)

	// Creeps back up after year five.
	events = majorEvents(in, baselineState(), 6)
	assert.InDelta(t, 0.08, events[EventRelocation], 0.001)

	// Middle years carry no relocation entry.
	events = majorEvents(in, baselineState(), 3)
	assert.NotContains(t, events, EventRelocation)
}

func TestMajorEvents_MajorPurchase(t *testing.T) {
	in := engineInput()

	st := baselineState()
	st.financialSecurity = 8.0
	events := majorEvents(in, st, 0)
	assert.InDelta(t, 0.12, events[EventMajorPurchase], 0.001)

	st.financialSecurity = 6.0
	events = majorEvents(in, st, 0)
	assert.NotContains(t, events, EventMajorPurchase)
}

func TestMajorEvents_CareerMilestoneEveryFiveYears(t *testing.T) {
	in := engineInput()

	st := baselineState()
	st.totalExperience = 5
	events := majorEvents(in, st, 0)
	assert.InDelta(t, 0.6, events[EventCareerMilestone], 0.001)

	st.totalExperience = 10
	events = majorEvents(in, st, 0)
	assert.InDelta(t, 0.6, events[EventCareerMilestone], 0.001)

	st.totalExperience = 4
	events = majorEvents(in, st, 0)
	assert.NotContains(t, events, EventCareerMilestone)

	// Zero experience is not a milestone.
	st.totalExperience = 0
	events = majorEvents(in, st, 0)
	assert.NotContains(t, events, EventCareerMilestone)
}

func TestMajorEvents_MilestoneSurfacesInTimeline(t *testing.T) {
	in := engineInput()
	in.YearsExperience = 5

	e := New(WithSource(neverPromote()))
	result, err := e.PredictTimeline(in, 6, 2026)
	assert.NoError(t, err)

	// Experience 5 at year zero, 10 at year five.
	assert.Contains(t, result.Predictions[0].MajorEventProbability, EventCareerMilestone)
	assert.Contains(t, result.Predictions[5].MajorEventProbability, EventCareerMilestone)
	assert.NotContains(t, result.Predictions[1].MajorEventProbability, EventCareerMilestone)
}
