package planner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PlanConcurrent is Plan with entrances fanned out over a bounded errgroup.
//
// The occupancy grid is built and marked once, before any search starts;
// after that it is read-only, so concurrent searches share it without
// locking; each FindPath call owns its private open/closed state. Route
// order matches the sequential Plan (results are collected per entrance
// slot, then flattened in input order).
//
// ctx cancels outstanding entrance work between searches; an in-flight A*
// call is not interrupted (searches are short and CPU-bound).
func PlanConcurrent(ctx context.Context, plan FloorPlan, opts ...Option) ([]Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := buildGrid(plan, cfg)
	if err != nil {
		return nil, err
	}

	unitIndex := newUnitIndex(plan.Units)

	perEntrance := make([][]Route, len(plan.Entrances))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallelism)

	for i, entrance := range plan.Entrances {
		i, entrance := i, entrance
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perEntrance[i] = planEntrance(g, unitIndex, entrance, i, cfg)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var routes []Route
	for _, rs := range perEntrance {
		routes = append(routes, rs...)
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("planner: floor planned concurrently",
			"entrances", len(plan.Entrances),
			"routes", len(routes),
			"workers", cfg.Parallelism)
	}

	return routes, nil
}
