package engine

import (
	"math"

	"lifecast/internal/features"
	"lifecast/internal/types"
)

// Major life event names surfaced in yearly predictions.
const (
	EventPromotion       = "promotion"
	EventJobChange       = "job_change"
	EventRelocation      = "relocation"
	EventMajorPurchase   = "major_purchase"
	EventCareerMilestone = "career_milestone"
)

// promotionReportThreshold gates which promotion probabilities are worth
// surfacing as an event at all.
const promotionReportThreshold = 0.1

// majorEvents estimates the probability of major life events for one
// simulated year. Entries are present only when the probability clears the
// event's relevance threshold.
func majorEvents(in *types.PredictionInput, st state, offset int) map[string]float64 {
	events := make(map[string]float64)

	if prob := features.PromotionProbability(in, st.yearsInPosition, st.performance); prob > promotionReportThreshold {
		events[EventPromotion] = prob
	}

	// Low satisfaction raises job-change risk, scaled by the deficit.
	if st.satisfaction < 5 {
		events[EventJobChange] = 0.15 + (5-st.satisfaction)*0.05
	}

	// Relocation risk is low right after a move and creeps back up later.
	if in.IsLocationChange && offset < 2 {
		events[EventRelocation] = 0.05
	} else if offset > 5 {
		events[EventRelocation] = 0.08
	}

	if st.financialSecurity > 7 {
		events[EventMajorPurchase] = 0.12
	}

	// A milestone lands on every fifth year of cumulative experience.
	if st.totalExperience > 0 && math.Mod(st.totalExperience, 5) == 0 {
		events[EventCareerMilestone] = 0.6
	}

	return events
}
