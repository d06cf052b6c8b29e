package features

import (
	"math"

	"lifecast/internal/types"
)

// neutralPerformance is the assumed-average performance score the
// promotion model normalizes around.
const neutralPerformance = 7.0

// PromotionProbability estimates the chance of a promotion this year: the
// base rate for the input's level, scaled by time in position (+10% per
// year, capped at 1.5x), relative performance, and industry growth.
func PromotionProbability(in *types.PredictionInput, yearsInPosition int, performanceScore float64) float64 {
	baseRate, ok := levelPromotionRate[in.PositionLevel]
	if !ok {
		baseRate = 0.10
	}

	timeFactor := math.Min(1.5, 1+float64(yearsInPosition)*0.1)
	performanceFactor := performanceScore / neutralPerformance
	growthFactor := 1 + in.IndustryGrowthRate

	prob := baseRate * timeFactor * performanceFactor * growthFactor

	return clamp(prob, 0, 1)
}

// EncodeFeatures flattens the categorical and numeric inputs into the
// metadata map attached to a prediction result.
func EncodeFeatures(in *types.PredictionInput) map[string]any {
	return map[string]any{
		"education_level":   string(in.EducationLevel),
		"education_numeric": in.EducationLevel.Index(),

		"career_field":   string(in.CareerField),
		"career_numeric": in.CareerField.Index(),

		"location_type":    string(in.LocationType),
		"location_numeric": in.LocationType.Index(),

		"position_level":   string(in.PositionLevel),
		"position_numeric": in.PositionLevel.Index(),

		"age":                  in.Age,
		"years_experience":     in.YearsExperience,
		"is_career_change":     boolToInt(in.IsCareerChange),
		"is_location_change":   boolToInt(in.IsLocationChange),
		"has_remote_option":    boolToInt(in.HasRemoteOption),
		"industry_growth_rate": in.IndustryGrowthRate,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
