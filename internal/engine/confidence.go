package engine

import "lifecast/internal/types"

// Confidence scores how much weight a whole run deserves, from data
// completeness alone: a supplied current salary anchors the projection,
// experience stabilizes it, and career or location changes widen the
// uncertainty. Always within [0.5, 1.0].
func Confidence(in *types.PredictionInput) float64 {
	confidence := 0.75

	if in.CurrentSalary != nil && *in.CurrentSalary > 0 {
		confidence += 0.10
	}
	if in.YearsExperience > 3 {
		confidence += 0.05
	}
	if in.IsCareerChange {
		confidence -= 0.10
	}
	if in.IsLocationChange {
		confidence -= 0.05
	}

	return clamp(confidence, 0.5, 1.0)
}
