package types

import (
	"time"

	"github.com/google/uuid"
)

// Choice is a candidate life/career decision being evaluated.
// Fields are loose free text exactly as the caller supplied them.
type Choice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UserContext carries the user's current situation as loose strings.
// The categorical mapper resolves these to closed enumerations and never fails.
type UserContext struct {
	Age             string `json:"age,omitempty"`
	CurrentLocation string `json:"current_location,omitempty"`
	CurrentSalary   string `json:"current_salary,omitempty"`
	EducationLevel  string `json:"education_level,omitempty"`
}

// SimulationRequest pairs two choices with a user context for comparison.
type SimulationRequest struct {
	ChoiceA     Choice      `json:"choice_a"`
	ChoiceB     Choice      `json:"choice_b"`
	UserContext UserContext `json:"user_context"`
}

// TimelinePoint is the simplified per-year projection consumed by the
// rest of the system. MajorEvent is empty unless a single event cleared
// the reporting threshold for that year.
type TimelinePoint struct {
	Year           int     `json:"year"`
	Salary         float64 `json:"salary,omitempty"`
	HappinessScore float64 `json:"happiness_score"`
	MajorEvent     string  `json:"major_event,omitempty"`
	Location       string  `json:"location,omitempty"`
	CareerTitle    string  `json:"career_title,omitempty"`
}

// Comparison is the result of forecasting two choices side by side.
type Comparison struct {
	ChoiceATimeline []TimelinePoint `json:"choice_a_timeline"`
	ChoiceBTimeline []TimelinePoint `json:"choice_b_timeline"`
	Summary         string          `json:"summary"`
}

// Simulation is a finished comparison as persisted by the document store.
type Simulation struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id,omitempty"`
	ChoiceA         Choice          `json:"choice_a"`
	ChoiceB         Choice          `json:"choice_b"`
	UserContext     UserContext     `json:"user_context"`
	ChoiceATimeline []TimelinePoint `json:"choice_a_timeline"`
	ChoiceBTimeline []TimelinePoint `json:"choice_b_timeline"`
	Summary         string          `json:"summary"`
	CreatedAt       time.Time       `json:"created_at"`
	IsPublic        bool            `json:"is_public"`
}

// NewSimulation builds a Simulation record from a request and its comparison.
func NewSimulation(userID string, req SimulationRequest, cmp *Comparison) *Simulation {
	return &Simulation{
		ID:              uuid.NewString(),
		UserID:          userID,
		ChoiceA:         req.ChoiceA,
		ChoiceB:         req.ChoiceB,
		UserContext:     req.UserContext,
		ChoiceATimeline: cmp.ChoiceATimeline,
		ChoiceBTimeline: cmp.ChoiceBTimeline,
		Summary:         cmp.Summary,
		CreatedAt:       time.Now().UTC(),
	}
}
