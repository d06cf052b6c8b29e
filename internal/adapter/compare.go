package adapter

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lifecast/internal/types"
)

// Compare forecasts both choices of a request and builds the comparison
// summary. The two timelines are generated concurrently; each run owns its
// own state, so no coordination beyond the errgroup is needed. Timeline
// never fails (it degrades to a fallback), so the only error source is
// context cancellation.
func (a *Adapter) Compare(ctx context.Context, req types.SimulationRequest) (*types.Comparison, error) {
	var timelineA, timelineB []types.TimelinePoint

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		timelineA = a.Timeline(ctx, req.ChoiceA, req.UserContext)
		return ctx.Err()
	})
	g.Go(func() error {
		timelineB = a.Timeline(ctx, req.ChoiceB, req.UserContext)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.Comparison{
		ChoiceATimeline: timelineA,
		ChoiceBTimeline: timelineB,
		Summary:         Summary(req.ChoiceA.Title, timelineA, req.ChoiceB.Title, timelineB),
	}, nil
}
