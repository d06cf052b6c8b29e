// Package engine drives the year-by-year career and life-quality
// simulation. It owns the per-run state machine: each year's metrics are
// computed from the previous year's state, promotion and career events are
// applied, and the state advances to the next snapshot.
package engine

import (
	"fmt"
	"math"
	"time"

	"lifecast/internal/features"
	"lifecast/internal/types"
)

// ModelVersion tags every prediction result produced by this engine.
const ModelVersion = "1.0.0-baseline"

// DefaultHorizon is the number of years simulated when the caller does not
// ask for a specific horizon.
const DefaultHorizon = 10

// Engine generates multi-year predictions. The zero value is not usable;
// construct with New.
type Engine struct {
	src Source
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource injects the randomness source. Tests pass a seeded or stub
// source for reproducible runs.
func WithSource(src Source) Option {
	return func(e *Engine) { e.src = src }
}

// New constructs an Engine. Without options it uses a time-seeded source.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = NewSource(time.Now().UnixNano())
	}
	return e
}

// PredictTimeline runs the simulation for exactly `years` iterations
// (DefaultHorizon when years <= 0) starting at startYear (the current
// calendar year when startYear is 0). Input failing its declared bounds is
// rejected before the loop starts; it is never silently clamped.
func (e *Engine) PredictTimeline(in *types.PredictionInput, years, startYear int) (*types.PredictionResult, error) {
	if in == nil {
		return nil, fmt.Errorf("prediction input is nil")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if years <= 0 {
		years = DefaultHorizon
	}
	if startYear == 0 {
		startYear = time.Now().Year()
	}

	predictions := make([]types.YearlyPrediction, 0, years)
	st := initialState(in)

	for offset := 0; offset < years; offset++ {
		career := e.careerMetrics(in, st, offset)
		quality := e.lifeQuality(in, st, career, offset)
		events := majorEvents(in, st, offset)

		predictions = append(predictions, types.YearlyPrediction{
			Year:                  startYear + offset,
			CareerMetrics:         career,
			LifeQuality:           quality,
			MajorEventProbability: events,
			Location:              st.location,
		})

		st = e.advance(st, career, quality)
	}

	return &types.PredictionResult{
		Predictions:     predictions,
		ConfidenceScore: Confidence(in),
		ModelVersion:    ModelVersion,
		Metadata: map[string]any{
			"input_features":  features.EncodeFeatures(in),
			"start_year":      startYear,
			"years_predicted": years,
		},
		CreatedAt: time.Now().UTC(),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
