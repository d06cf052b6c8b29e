package engine

import (
	"math"

	"lifecast/internal/features"
	"lifecast/internal/types"
)

// state is the per-run working record carried across yearly steps. It is
// a value type: every transition returns a new snapshot, so no two years
// ever alias the same storage.
type state struct {
	salary            float64
	level             types.PositionLevel
	yearsInPosition   int
	totalExperience   float64
	workLifeBalance   float64
	location          string
	promotions        int
	performance       float64
	stability         float64
	satisfaction      float64
	financialSecurity float64
}

// Initial values for the metrics that are only observed after the first
// simulated year completes.
const (
	initialPerformance       = 7.0
	initialSatisfaction      = 7.0
	initialFinancialSecurity = 5.0
)

// initialState derives the year-zero state from the input.
func initialState(in *types.PredictionInput) state {
	return state{
		salary:            features.BaseSalary(in),
		level:             in.PositionLevel,
		yearsInPosition:   0,
		totalExperience:   in.YearsExperience,
		workLifeBalance:   features.WorkLifeBalance(in),
		location:          string(in.LocationType),
		performance:       initialPerformance,
		stability:         features.CareerStability(in),
		satisfaction:      initialSatisfaction,
		financialSecurity: initialFinancialSecurity,
	}
}

// advance produces the next year's state from the current one and the
// year's computed metrics. A successful promotion draw advances exactly
// one rung; otherwise time in position accrues. Experience always accrues,
// and performance random-walks ±0.5 within [4, 10].
func (e *Engine) advance(st state, career types.CareerMetrics, quality types.LifeQualityMetrics) state {
	next := st
	next.salary = career.Salary

	if e.src.Float64() < career.PromotionProbability {
		next = e.promote(next)
	} else {
		next.yearsInPosition++
	}

	next.totalExperience++
	next.performance = clamp(next.performance+e.src.Uniform(-0.5, 0.5), 4.0, 10.0)

	// Carry the just-computed scores forward as next year's baseline.
	next.workLifeBalance = career.WorkLifeBalance
	next.stability = career.CareerStability
	next.satisfaction = career.JobSatisfaction
	next.financialSecurity = quality.FinancialSecurity

	return next
}

// promote applies promotion effects: one rung up, years in position reset,
// a 10-25% salary bump, and a work-life balance cost floored at 3.0. At the
// top of the ladder the state is returned unchanged.
func (e *Engine) promote(st state) state {
	if st.level.Index() >= len(types.PositionLadder)-1 {
		return st
	}

	next := st
	next.level = st.level.Next()
	next.yearsInPosition = 0
	next.promotions++
	next.salary *= e.src.Uniform(1.10, 1.25)
	next.workLifeBalance = math.Max(3.0, st.workLifeBalance-0.5)
	return next
}
