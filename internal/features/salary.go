package features

import (
	"math"

	"lifecast/internal/types"
)

// remoteBonusFields are the high-demand fields that command a remote-work premium.
var remoteBonusFields = map[types.CareerField]bool{
	types.FieldTechnology: true,
	types.FieldFinance:    true,
	types.FieldBusiness:   true,
}

// BaseSalary computes the year-zero salary for an input: the field×level
// base figure scaled by education, cost of living, an experience boost of
// 2% per year capped at 50%, and a 10% remote premium for high-demand
// fields. When a current salary is supplied the result is blended 70%
// computed / 30% supplied, anchoring the projection to reality without
// discarding the model.
func BaseSalary(in *types.PredictionInput) float64 {
	base := baseSalaries[in.CareerField][in.PositionLevel]

	educationMult := educationSalaryMultiplier[in.EducationLevel]
	locationMult := CostOfLivingMultiplier(in.LocationType)
	experienceMult := 1 + math.Min(0.5, in.YearsExperience*0.02)

	remoteMult := 1.0
	if in.HasRemoteOption && remoteBonusFields[in.CareerField] {
		remoteMult = 1.1
	}

	salary := base * educationMult * locationMult * experienceMult * remoteMult

	if in.CurrentSalary != nil && *in.CurrentSalary > 0 {
		salary = salary*0.7 + *in.CurrentSalary*0.3
	}

	return round2(salary)
}
