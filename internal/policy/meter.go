// Package policy applies subscription usage limits around the integration
// adapter's entry point. Metering is a policy object wrapped around the
// adapter, never logic inside the simulation engine.
package policy

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// FeatureSimulation is the metered feature name for timeline comparisons.
const FeatureSimulation = "simulation"

// Tier is a subscription tier.
type Tier string

// Subscription tiers.
const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// usagePeriod is the rolling window usage limits apply over.
const usagePeriod = 30 * 24 * time.Hour

// unlimited marks a tier without a cap.
const unlimited = -1

// tierLimits caps simulations per rolling period by tier.
var tierLimits = map[Tier]int{
	TierFree:    3,
	TierPremium: unlimited,
}

// UsageCounter is the persistence these checks run against; *store.DB
// satisfies it.
type UsageCounter interface {
	RecordUsage(ctx context.Context, userID, feature string) error
	CountUsageSince(ctx context.Context, userID, feature string, since time.Time) (int, error)
}

// LimitExceededError reports a usage limit hit, with enough detail for the
// caller to explain the denial.
type LimitExceededError struct {
	Feature string
	Tier    Tier
	Limit   int
	Used    int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s tier limit reached: %d of %d %s uses in the current period",
		e.Tier, e.Used, e.Limit, e.Feature)
}

// Meter enforces per-tier usage limits.
type Meter struct {
	counter UsageCounter
	logger  *zap.Logger
}

// NewMeter builds a Meter over a usage counter.
func NewMeter(counter UsageCounter, logger *zap.Logger) *Meter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Meter{counter: counter, logger: logger}
}

// Allow checks whether a user may run one more simulation. Anonymous runs
// (empty user id) are never metered.
func (m *Meter) Allow(ctx context.Context, userID string, tier Tier) error {
	if userID == "" {
		return nil
	}

	limit, ok := tierLimits[tier]
	if !ok {
		limit = tierLimits[TierFree]
	}
	if limit == unlimited {
		return nil
	}

	used, err := m.counter.CountUsageSince(ctx, userID, FeatureSimulation, time.Now().Add(-usagePeriod))
	if err != nil {
		return fmt.Errorf("check usage: %w", err)
	}

	if used >= limit {
		m.logger.Info("simulation limit reached",
			zap.String("user_id", userID), zap.String("tier", string(tier)),
			zap.Int("used", used), zap.Int("limit", limit))
		return &LimitExceededError{
			Feature: FeatureSimulation,
			Tier:    tier,
			Limit:   limit,
			Used:    used,
		}
	}
	return nil
}

// Record notes one successful simulation for a user. Anonymous runs are
// not recorded.
func (m *Meter) Record(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	if err := m.counter.RecordUsage(ctx, userID, FeatureSimulation); err != nil {
		return fmt.Errorf("record usage: %w", err)
	}
	return nil
}
