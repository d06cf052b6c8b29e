package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// PredictionInput is the immutable input for one simulation run.
// Age and YearsExperience are independent inputs; no cross-validation is
// enforced beyond the range bounds, that is the caller's responsibility.
type PredictionInput struct {
	// User context
	Age             int            `json:"age" validate:"gte=18,lte=100"`
	EducationLevel  EducationLevel `json:"education_level" validate:"required,oneof=high_school associates bachelors masters phd bootcamp self_taught"`
	YearsExperience float64        `json:"years_experience" validate:"gte=0,lte=50"`
	CurrentSalary   *float64       `json:"current_salary,omitempty" validate:"omitempty,gte=0"`

	// Career context
	CareerField   CareerField   `json:"career_field" validate:"required,oneof=technology healthcare finance education engineering business creative service other"`
	PositionLevel PositionLevel `json:"position_level" validate:"required,oneof=entry mid senior lead executive"`
	LocationType  LocationType  `json:"location_type" validate:"required,oneof=major_city suburb small_city rural international"`

	// Choice-specific
	IsCareerChange     bool    `json:"is_career_change"`
	IsLocationChange   bool    `json:"is_location_change"`
	IndustryGrowthRate float64 `json:"industry_growth_rate" validate:"gte=-0.2,lte=0.5"`

	// Optional factors
	HasRemoteOption bool   `json:"has_remote_option"`
	CompanySize     string `json:"company_size,omitempty"`
}

// InvalidInputError reports a PredictionInput that fails its declared
// range or shape constraints. It is returned before any simulation starts.
type InvalidInputError struct {
	Cause error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid prediction input: %v", e.Cause)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

// Validate checks the declared range and shape constraints.
func (p *PredictionInput) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return &InvalidInputError{Cause: err}
	}
	return nil
}

// CareerMetrics holds the career-related predictions for a single year.
type CareerMetrics struct {
	Salary               float64 `json:"salary"`
	PromotionProbability float64 `json:"promotion_probability"`
	PositionTitle        string  `json:"position_title"`
	CareerStability      float64 `json:"career_stability"`
	JobSatisfaction      float64 `json:"job_satisfaction"`
	WorkLifeBalance      float64 `json:"work_life_balance"`
	StressLevel          float64 `json:"stress_level"`
}

// LifeQualityMetrics holds the life-quality predictions for a single year.
type LifeQualityMetrics struct {
	HappinessScore      float64 `json:"happiness_score"`
	FinancialSecurity   float64 `json:"financial_security"`
	HealthScore         float64 `json:"health_score"`
	RelationshipQuality float64 `json:"relationship_quality"`
	PersonalGrowth      float64 `json:"personal_growth"`
}

// YearlyPrediction is the full prediction record for a single year.
// MajorEventProbability only carries entries whose probability cleared the
// relevance threshold for that event.
type YearlyPrediction struct {
	Year                  int                `json:"year"`
	CareerMetrics         CareerMetrics      `json:"career_metrics"`
	LifeQuality           LifeQualityMetrics `json:"life_quality"`
	MajorEventProbability map[string]float64 `json:"major_event_probability,omitempty"`
	Location              string             `json:"location"`
}

// PredictionResult is the complete result for one simulation run.
// Predictions are ordered chronologically; slice order is the iteration contract.
type PredictionResult struct {
	Predictions     []YearlyPrediction `json:"predictions"`
	ConfidenceScore float64            `json:"confidence_score"`
	ModelVersion    string             `json:"model_version"`
	Metadata        map[string]any     `json:"prediction_metadata,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}
