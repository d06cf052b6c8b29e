// Package adapter bridges loosely-typed choice/context pairs to the strict
// prediction engine input, and converts engine output back into the
// timeline representation the rest of the system consumes. The adapter
// never surfaces an engine failure to its caller: a degraded fallback
// timeline is always returned instead.
package adapter

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"lifecast/internal/engine"
	"lifecast/internal/features"
	"lifecast/internal/mapping"
	"lifecast/internal/types"
)

// assumedWorkStartAge is used to estimate experience when only age is known.
const assumedWorkStartAge = 22

// defaultAge stands in when the user context carries no parseable age.
const defaultAge = 30

// eventReportThreshold is the minimum probability for the single selected
// per-year event to be reported at all; below it the year carries no event,
// avoiding noisy low-confidence narrative.
const eventReportThreshold = 0.5

// TimelinePredictor is the engine-side dependency of the adapter.
// *engine.Engine satisfies it.
type TimelinePredictor interface {
	PredictTimeline(in *types.PredictionInput, years, startYear int) (*types.PredictionResult, error)
}

// Generator is the hosted-model collaborator used as an alternative
// timeline source. Failures fall through to the engine.
type Generator interface {
	Timeline(ctx context.Context, choice types.Choice, user types.UserContext, years int) ([]types.TimelinePoint, error)
}

// Adapter converts between the external and engine representations.
type Adapter struct {
	predictor TimelinePredictor
	generator Generator
	logger    *zap.Logger
	years     int
	startYear int
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithGenerator installs the hosted-model collaborator, tried before the engine.
func WithGenerator(g Generator) Option {
	return func(a *Adapter) { a.generator = g }
}

// WithLogger installs the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// WithHorizon sets the number of simulated years per timeline.
func WithHorizon(years int) Option {
	return func(a *Adapter) { a.years = years }
}

// WithStartYear pins the first simulated calendar year; 0 means the current year.
func WithStartYear(year int) Option {
	return func(a *Adapter) { a.startYear = year }
}

// New constructs an Adapter around a predictor.
func New(predictor TimelinePredictor, opts ...Option) *Adapter {
	a := &Adapter{
		predictor: predictor,
		years:     engine.DefaultHorizon,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// BuildInput converts a loose choice/context pair into strict engine input.
// Unparseable context fields resolve to documented defaults; this never fails.
func (a *Adapter) BuildInput(choice types.Choice, user types.UserContext) *types.PredictionInput {
	field := mapping.MapCategoryToField(choice.Category)
	education := mapping.ParseEducationLevel(user.EducationLevel)
	location := mapping.ParseLocationType(user.CurrentLocation)

	age := mapping.ParseAge(user.Age, defaultAge)
	yearsExperience := float64(age - assumedWorkStartAge)
	if yearsExperience < 0 {
		yearsExperience = 0
	}

	var currentSalary *float64
	if salary, ok := mapping.ParseSalary(user.CurrentSalary); ok {
		currentSalary = &salary
	}

	category := strings.ToLower(choice.Category)
	title := strings.ToLower(choice.Title)
	description := strings.ToLower(choice.Description)

	return &types.PredictionInput{
		Age:                age,
		EducationLevel:     education,
		YearsExperience:    yearsExperience,
		CurrentSalary:      currentSalary,
		CareerField:        field,
		PositionLevel:      mapping.InferPositionLevel(choice.Description, yearsExperience),
		LocationType:       location,
		IsCareerChange:     strings.Contains(category, "career") || strings.Contains(title, "job"),
		IsLocationChange:   strings.Contains(category, "location") || strings.Contains(title, "move"),
		IndustryGrowthRate: features.IndustryGrowthRate(field),
		HasRemoteOption:    strings.Contains(description, "remote"),
	}
}

// Predict returns the full prediction result for a choice, for callers
// that want every metric rather than the simplified timeline.
func (a *Adapter) Predict(choice types.Choice, user types.UserContext) (*types.PredictionResult, error) {
	in := a.BuildInput(choice, user)
	result, err := a.predictor.PredictTimeline(in, a.years, a.startYear)
	if err != nil {
		return nil, fmt.Errorf("predict timeline: %w", err)
	}
	return result, nil
}

// Timeline produces the per-year timeline for a choice. The generator
// collaborator is preferred when configured; on its failure the engine
// runs; on engine failure a minimal deterministic timeline is returned.
// The caller always gets a forecast.
func (a *Adapter) Timeline(ctx context.Context, choice types.Choice, user types.UserContext) []types.TimelinePoint {
	if a.generator != nil {
		points, err := a.generator.Timeline(ctx, choice, user, a.years)
		if err == nil {
			return points
		}
		a.logger.Warn("generator timeline failed, using engine",
			zap.String("choice", choice.Title), zap.Error(err))
	}

	points, err := a.engineTimeline(choice, user)
	if err != nil {
		a.logger.Error("engine timeline failed, using fallback",
			zap.String("choice", choice.Title), zap.Error(err))
		return a.fallbackTimeline(choice, user)
	}
	return points
}

// engineTimeline runs the engine and converts its output. A panic inside
// the loop is a logic bug, not a transient condition; it is converted to
// an error here so the caller still receives the fallback.
func (a *Adapter) engineTimeline(choice types.Choice, user types.UserContext) (points []types.TimelinePoint, err error) {
	defer func() {
		if r := recover(); r != nil {
			points = nil
			err = fmt.Errorf("engine panic: %v", r)
		}
	}()

	result, err := a.Predict(choice, user)
	if err != nil {
		return nil, err
	}

	points = make([]types.TimelinePoint, 0, len(result.Predictions))
	for _, pred := range result.Predictions {
		points = append(points, types.TimelinePoint{
			Year:           pred.Year,
			Salary:         pred.CareerMetrics.Salary,
			HappinessScore: pred.LifeQuality.HappinessScore,
			MajorEvent:     selectMajorEvent(pred.MajorEventProbability),
			Location:       pred.Location,
			CareerTitle:    pred.CareerMetrics.PositionTitle,
		})
	}
	return points, nil
}

// selectMajorEvent picks the single highest-probability event for a year,
// reporting it only above the threshold. Ties break alphabetically so the
// selection is deterministic.
func selectMajorEvent(probabilities map[string]float64) string {
	best := ""
	bestProb := 0.0
	for name, prob := range probabilities {
		if prob > bestProb || (prob == bestProb && (best == "" || name < best)) {
			best = name
			bestProb = prob
		}
	}
	if bestProb <= eventReportThreshold {
		return ""
	}
	return titleCase(strings.ReplaceAll(best, "_", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
