package engine

import (
	"math"

	"lifecast/internal/features"
	"lifecast/internal/types"
)

// baseAnnualGrowth is the inflation-plus-merit growth applied before the
// industry rate and performance scaling.
const baseAnnualGrowth = 0.03

// careerMetrics computes the career metrics for one simulated year from
// the current state.
func (e *Engine) careerMetrics(in *types.PredictionInput, st state, offset int) types.CareerMetrics {
	salary := e.growSalary(in, st)

	promotionProb := features.PromotionProbability(in, st.yearsInPosition, st.performance)
	title := features.PositionTitle(in.CareerField, st.level)

	// Stability settles upward once the initial transition is behind.
	stability := st.stability
	if offset > 2 {
		stability = math.Min(10.0, stability+0.3*float64(offset))
	}

	// Satisfaction adapts over time: a career change carries a shrinking
	// penalty for the first three years; long tenure earns a mastery bonus.
	satisfaction := features.JobSatisfaction(in, st.workLifeBalance)
	switch {
	case in.IsCareerChange && offset < 3:
		satisfaction -= float64(3-offset) * 0.3
	case offset > 5:
		satisfaction += math.Min(1.0, float64(offset-5)*0.1)
	}

	return types.CareerMetrics{
		Salary:               round2(salary),
		PromotionProbability: round3(promotionProb),
		PositionTitle:        title,
		CareerStability:      round1(stability),
		JobSatisfaction:      round1(clamp(satisfaction, 1.0, 10.0)),
		WorkLifeBalance:      round1(st.workLifeBalance),
		StressLevel:          round1(features.StressLevel(in, st.workLifeBalance)),
	}
}

// growSalary grows the previous year's salary (never recomputed from
// scratch) by the base-plus-industry rate scaled by relative performance,
// with a ±5% uniform jitter modeling real-world variance.
func (e *Engine) growSalary(in *types.PredictionInput, st state) float64 {
	growthRate := (baseAnnualGrowth + in.IndustryGrowthRate) * (st.performance / 7.0)
	salary := st.salary * (1 + growthRate)
	salary *= 1 + e.src.Uniform(-0.05, 0.05)
	return salary
}

// lifeQuality computes the life-quality metrics for one simulated year
// from the year's career metrics and the age at that year.
func (e *Engine) lifeQuality(in *types.PredictionInput, st state, career types.CareerMetrics, offset int) types.LifeQualityMetrics {
	age := in.Age + offset

	financial := features.FinancialSecurity(career.Salary, age, in.LocationType)
	health := features.HealthScore(age, career.StressLevel, career.WorkLifeBalance, financial)
	relationship := e.relationshipQuality(career.WorkLifeBalance, career.StressLevel, st.stability, offset)
	growth := e.personalGrowth(career.JobSatisfaction, in.IsCareerChange, offset)

	happiness := career.JobSatisfaction*0.25 +
		financial*0.20 +
		health*0.20 +
		relationship*0.20 +
		growth*0.15

	return types.LifeQualityMetrics{
		HappinessScore:      round1(clamp(happiness, 1.0, 10.0)),
		FinancialSecurity:   round1(financial),
		HealthScore:         round1(health),
		RelationshipQuality: round1(relationship),
		PersonalGrowth:      round1(growth),
	}
}

// relationshipQuality weights work-life balance 60%, inverse stress 30%,
// and stability 10%, scaled by a time factor that grows 5% a year up to
// 1.5x, with a small jitter for life events.
func (e *Engine) relationshipQuality(workLifeBalance, stressLevel, stability float64, offset int) float64 {
	quality := workLifeBalance*0.6 + (10-stressLevel)*0.3 + stability*0.1

	timeFactor := math.Min(1.5, 1+float64(offset)*0.05)
	quality *= timeFactor

	quality += e.src.Uniform(-0.5, 0.5)

	return clamp(quality, 1.0, 10.0)
}

// personalGrowth starts high on a career change (8.5, decaying 0.5 a year
// for three years) and otherwise blends a flat base 50/50 with job
// satisfaction, plateauing after year five absent a change.
func (e *Engine) personalGrowth(jobSatisfaction float64, isCareerChange bool, offset int) float64 {
	base := 7.0
	if isCareerChange && offset < 3 {
		base = 8.5 - float64(offset)*0.5
	}

	growth := base*0.5 + jobSatisfaction*0.5

	if offset > 5 && !isCareerChange {
		growth -= float64(offset-5) * 0.2
	}

	growth += e.src.Uniform(-0.3, 0.3)

	return clamp(growth, 1.0, 10.0)
}
