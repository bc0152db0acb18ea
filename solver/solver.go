package solver

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/bound"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/ip"
)

// Engine is a configured solver. It holds no per-call state and may be
// shared between goroutines.
type Engine struct {
	opts Options
}

// New applies opts over DefaultOptions.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Engine{opts: o}
}

// Options returns a copy of the engine configuration.
func (e *Engine) Options() Options { return e.opts }

// Solve is New(opts...).Solve(ctx, items, capacity).
func Solve(ctx context.Context, items []core.Item, capacity int64, opts ...Option) (core.Solution, error) {
	return New(opts...).Solve(ctx, items, capacity)
}

// Solve validates the instance, runs the configured strategy and checks the
// result before returning it. Taken is always in Item.Index order.
//
// Errors: core validation sentinels, ErrUnknownStrategy,
// dp.ErrTableTooLarge (DynamicProgramming above the cell limit),
// ctx.Err() for strategies that cannot return an incumbent, backend errors,
// and core.ErrInfeasible / core.ErrValueMismatch (wrapped) when a strategy
// returns a solution that does not check.
func (e *Engine) Solve(ctx context.Context, items []core.Item, capacity int64) (core.Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := e.opts.Tracer.Start(ctx, "knapsack.Solve", trace.WithAttributes(
		attribute.String("knapsack.strategy", e.opts.Strategy.String()),
		attribute.Int("knapsack.items", len(items)),
		attribute.Int64("knapsack.capacity", capacity),
	))
	defer span.End()

	log := e.logger(ctx).WithValues("strategy", e.opts.Strategy.String(), "items", len(items), "capacity", capacity)

	sol, used, err := e.solve(ctx, log, items, capacity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(err, "solve failed")

		return core.Solution{}, err
	}

	span.SetAttributes(
		attribute.String("knapsack.solved_by", used),
		attribute.Int64("knapsack.value", sol.Value),
		attribute.Bool("knapsack.optimal", sol.Optimal),
	)
	log.V(1).Info("solved", "solvedBy", used, "value", sol.Value, "optimal", sol.Optimal)

	return sol, nil
}

func (e *Engine) logger(ctx context.Context) logr.Logger {
	if e.opts.Logger != nil {
		return *e.opts.Logger
	}

	return logr.FromContextOrDiscard(ctx)
}

// solve returns the checked solution and the name of the step that produced it.
func (e *Engine) solve(ctx context.Context, log logr.Logger, items []core.Item, capacity int64) (core.Solution, string, error) {
	if err := core.Validate(items, capacity); err != nil {
		return core.Solution{}, "", err
	}

	var (
		sol  core.Solution
		used string
		err  error
	)
	if b, ok := e.opts.backends[e.opts.Strategy]; ok {
		sol, err = b.Solve(ctx, items, capacity)
		used = e.opts.Strategy.String() + "/backend"
	} else if e.opts.Strategy == Auto {
		sol, used, err = e.auto(ctx, log, items, capacity)
	} else {
		sol, used, err = e.run(ctx, log, e.opts.Strategy, items, capacity, nil)
	}
	if err != nil {
		return core.Solution{}, "", err
	}

	if err = sol.Check(items, capacity); err != nil {
		return core.Solution{}, "", fmt.Errorf("solver: %s returned an invalid solution: %w", used, err)
	}

	return sol, used, nil
}

// auto is the default pipeline:
//  1. Greedy incumbent: the better of the density fill and Options.Heuristic.
//  2. Root fractional bound; when the incumbent reaches it, it is optimal.
//  3. DP when the table fits Options.DPCellLimit.
//  4. Otherwise branch-and-bound seeded with the incumbent.
func (e *Engine) auto(ctx context.Context, log logr.Logger, items []core.Item, capacity int64) (core.Solution, string, error) {
	ordered := core.ByDensity(items)
	incumbent, order := greedy.Best(ordered, capacity, greedy.DescendingDensity, e.opts.Heuristic)
	root := bound.Fractional(ordered, capacity)
	log.V(1).Info("greedy incumbent", "heuristic", order.String(), "value", incumbent.Value, "rootBound", root)

	if incumbent.Value == root {
		incumbent.Optimal = true

		return incumbent, "greedy:" + order.String(), nil
	}

	limit := e.cellLimit()
	cells, ok := dp.Cells(len(items), capacity, limit)
	if ok {
		return e.run(ctx, log, DynamicProgramming, items, capacity, &incumbent)
	}
	log.V(1).Info("dp table too large, using branch-and-bound", "cells", cells, "limit", limit)

	return e.run(ctx, log, BranchAndBound, items, capacity, &incumbent)
}

// run executes one concrete strategy. seed, when set, warm-starts
// branch-and-bound.
func (e *Engine) run(
	ctx context.Context,
	log logr.Logger,
	s Strategy,
	items []core.Item,
	capacity int64,
	seed *core.Solution,
) (core.Solution, string, error) {
	if b, ok := e.opts.backends[s]; ok {
		sol, err := b.Solve(ctx, items, capacity)

		return sol, s.String() + "/backend", err
	}

	switch s {
	case Greedy:
		return greedy.Fill(items, capacity, e.opts.Heuristic), "greedy:" + e.opts.Heuristic.String(), nil

	case DynamicProgramming:
		if err := ctx.Err(); err != nil {
			return core.Solution{}, "", err
		}
		sol, err := dp.Solve(items, capacity, dp.Options{MaxCells: e.cellLimit()})

		return sol, s.String(), err

	case BranchAndBound:
		opts := bnb.DefaultOptions()
		opts.Bound = e.opts.Bound
		opts.TimeLimit = e.opts.TimeLimit
		opts.Incumbent = seed
		sol, stats, err := bnb.SearchWithStats(ctx, items, capacity, opts)
		if err != nil {
			return core.Solution{}, "", err
		}
		if stats.Interrupted {
			log.V(1).Info("branch-and-bound interrupted, returning incumbent",
				"value", sol.Value, "nodes", stats.Nodes, "timeLimit", e.opts.TimeLimit.String())
		} else {
			log.V(1).Info("branch-and-bound finished",
				"nodes", stats.Nodes, "prunedBound", stats.PrunedBound, "improvements", stats.Improvements)
		}

		return sol, s.String(), nil

	case IntegerProgramming:
		sol, err := ip.Solver{}.Solve(ctx, items, capacity)

		return sol, s.String(), err

	default:
		return core.Solution{}, "", fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}

// cellLimit resolves Options.DPCellLimit to the dp.Cells convention.
func (e *Engine) cellLimit() int64 {
	if e.opts.DPCellLimit == 0 {
		return dp.DefaultMaxCells
	}

	return e.opts.DPCellLimit
}
