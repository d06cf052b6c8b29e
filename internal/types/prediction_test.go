package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() PredictionInput {
	return PredictionInput{
		Age:                30,
		EducationLevel:     EducationBachelors,
		YearsExperience:    5,
		CareerField:        FieldTechnology,
		PositionLevel:      LevelMid,
		LocationType:       LocationMajorCity,
		IndustryGrowthRate: 0.08,
	}
}

func TestPredictionInput_Validate_Valid(t *testing.T) {
	in := validInput()
	assert.NoError(t, in.Validate())
}

func TestPredictionInput_Validate_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PredictionInput)
	}{
		{"age too low", func(in *PredictionInput) { in.Age = 17 }},
		{"age too high", func(in *PredictionInput) { in.Age = 101 }},
		{"negative experience", func(in *PredictionInput) { in.YearsExperience = -1 }},
		{"experience too high", func(in *PredictionInput) { in.YearsExperience = 51 }},
		{"negative salary", func(in *PredictionInput) { s := -1.0; in.CurrentSalary = &s }},
		{"growth too low", func(in *PredictionInput) { in.IndustryGrowthRate = -0.21 }},
		{"growth too high", func(in *PredictionInput) { in.IndustryGrowthRate = 0.51 }},
		{"unknown field", func(in *PredictionInput) { in.CareerField = "astrology" }},
		{"unknown education", func(in *PredictionInput) { in.EducationLevel = "kindergarten" }},
		{"unknown level", func(in *PredictionInput) { in.PositionLevel = "intern" }},
		{"unknown location", func(in *PredictionInput) { in.LocationType = "moon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			require.Error(t, err)

			var invalid *InvalidInputError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestPredictionInput_Validate_Boundaries(t *testing.T) {
	in := validInput()
	in.Age = 18
	in.YearsExperience = 0
	in.IndustryGrowthRate = -0.2
	assert.NoError(t, in.Validate())

	in = validInput()
	in.Age = 100
	in.YearsExperience = 50
	in.IndustryGrowthRate = 0.5
	assert.NoError(t, in.Validate())
}

func TestPredictionInput_Validate_NilSalaryAllowed(t *testing.T) {
	in := validInput()
	in.CurrentSalary = nil
	assert.NoError(t, in.Validate())
}
