package features

import (
	"math"

	"lifecast/internal/types"
)

// CareerStability scores 1-10 how stable the chosen career is in year zero.
// A career change costs a flat 2.0 in the transition year; experience adds
// 0.1 per year capped at +2.0; industry growth contributes linearly.
func CareerStability(in *types.PredictionInput) float64 {
	stability := fieldStability[in.CareerField]

	if in.IsCareerChange {
		stability -= 2.0
	}

	stability += math.Min(2.0, in.YearsExperience*0.1)
	stability += in.IndustryGrowthRate * 10

	return clamp(stability, 1, 10)
}

// JobSatisfaction scores 1-10, weighting the field base 60% against the
// current work-life balance at 40%.
func JobSatisfaction(in *types.PredictionInput, workLifeBalance float64) float64 {
	satisfaction := fieldSatisfaction[in.CareerField]*0.6 + workLifeBalance*0.4

	if in.HasRemoteOption {
		satisfaction += 0.5
	}
	if in.IsCareerChange {
		satisfaction -= 1.0
	}
	if in.IsLocationChange {
		satisfaction -= 0.5
	}

	return clamp(satisfaction, 1, 10)
}

// WorkLifeBalance scores 1-10 from the position-level base, a 1.5 remote
// bonus, and the per-field adjustment.
func WorkLifeBalance(in *types.PredictionInput) float64 {
	balance, ok := levelBalance[in.PositionLevel]
	if !ok {
		balance = 6.0
	}

	if in.HasRemoteOption {
		balance += 1.5
	}
	balance += fieldBalanceAdjustment[in.CareerField]

	return clamp(balance, 1, 10)
}

// StressLevel scores 1-10 (higher is worse): the inverse of work-life
// balance plus the seniority add-on and transition stress.
func StressLevel(in *types.PredictionInput, workLifeBalance float64) float64 {
	stress := 10 - workLifeBalance
	stress += levelStress[in.PositionLevel]

	if in.IsCareerChange {
		stress += 2.0
	}
	if in.IsLocationChange {
		stress += 1.5
	}

	return clamp(stress, 1, 10)
}

// FinancialSecurity scores 1-10 by bucketing the cost-of-living adjusted
// salary into income brackets, then scaling by an age factor standing in
// for savings accumulation.
func FinancialSecurity(salary float64, age int, location types.LocationType) float64 {
	adjusted := salary / CostOfLivingMultiplier(location)

	var base float64
	switch {
	case adjusted < 40000:
		base = 3.0
	case adjusted < 60000:
		base = 5.0
	case adjusted < 90000:
		base = 7.0
	case adjusted < 150000:
		base = 8.5
	default:
		base = 9.5
	}

	ageFactor := math.Min(1.5, float64(age)/100)

	return math.Min(10.0, base*ageFactor)
}

// HealthScore scores 1-10 as a weighted composite: age decline 40%,
// inverted stress 30%, work-life balance 20%, financial security 10%.
// The age factor declines 0.05 per year past 30 and floors at 5.0.
func HealthScore(age int, stressLevel, workLifeBalance, financialSecurity float64) float64 {
	ageFactor := math.Max(5.0, 10-float64(age-30)*0.05)
	stressFactor := (10 - stressLevel) / 10
	balanceFactor := workLifeBalance / 10
	financeFactor := financialSecurity / 10

	health := ageFactor*0.4 +
		stressFactor*10*0.3 +
		balanceFactor*10*0.2 +
		financeFactor*10*0.1

	return clamp(health, 1, 10)
}

// clamp bounds v to [lo, hi]; raw formula results are never trusted.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
