package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/valvenet/oracle"
)

// OptimizeSingle finds the visit order for one agent starting at start that
// maximizes Σ value × remaining time within budget.
//
// The search is exact: it returns the optimum unless interrupted, in which
// case it returns the best result found so far (Complete == false) together
// with an error matching ErrInterrupted and the context error. An
// unreachable pair among the active sites and the start aborts the search
// with the oracle's *oracle.UnreachableError.
func OptimizeSingle(ctx context.Context, o *oracle.Oracle, start string, budget int, opts ...Option) (Result, error) {
	return optimize(ctx, ModeSingle, o, start, budget, opts)
}

// OptimizeDual is OptimizeSingle for two agents that start together at
// start, each with budget time units, and share one set of sites: every
// site is activated at most once in total. Result.Routes holds one route
// per agent and Result.Path their chronological interleaving.
func OptimizeDual(ctx context.Context, o *oracle.Oracle, start string, budgetPerAgent int, opts ...Option) (Result, error) {
	return optimize(ctx, ModeDual, o, start, budgetPerAgent, opts)
}

// Evaluate replays routes (at most one per agent, agents = len(routes)) from
// start and returns their total value. It fails with ErrInvalidRoute when a
// route names an inactive site, revisits a site or exceeds the budget.
func Evaluate(o *oracle.Oracle, start string, budget int, routes [][]string, opts ...Option) (int, error) {
	options, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	agents := len(routes)
	if agents == 0 {
		agents = 1
	}
	p, err := newProblem(o, start, budget, agents, options.ActivationCost)
	if err != nil {
		return 0, err
	}
	v, _, err := p.evaluate(routes)

	return v, err
}

func optimize(ctx context.Context, mode string, o *oracle.Oracle, start string, budget int, opts []Option) (Result, error) {
	options, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	began := time.Now()

	agents := 1
	if mode == ModeDual {
		agents = 2
	}
	p, err := newProblem(o, start, budget, agents, options.ActivationCost)
	if err != nil {
		return Result{}, err
	}
	if options.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.TimeLimit)
		defer cancel()
	}

	seed, err := p.seed(&options)
	if err != nil {
		return Result{}, err
	}
	shared := newSharedBest(mode, &options, seed.value)

	var (
		best  incumbent
		nodes int64
	)
	if options.Workers > 1 {
		best, nodes, err = searchParallel(ctx, p, options.Workers, options.UpperBound, shared, seed)
	} else {
		e := newEngine(ctx, p, options.UpperBound, shared, seed)
		err = e.run(track{rem: budget, at: p.n})
		best, nodes = e.best, e.nodes
	}

	res := p.result(best.value, best.moves)
	res.Seed = seed.value
	res.Nodes = nodes
	res.Complete = err == nil
	elapsed := time.Since(began)
	if options.Recorder != nil {
		options.Recorder.Finished(mode, res, elapsed)
	}

	ev := options.Logger.Debug()
	if err != nil {
		ev = options.Logger.Warn().Err(err)
	}
	ev.Str("mode", mode).
		Int("value", res.Value).
		Int("seed", res.Seed).
		Int64("nodes", res.Nodes).
		Bool("complete", res.Complete).
		Dur("elapsed", elapsed).
		Msg("search finished")

	if err != nil && !errors.Is(err, ErrInterrupted) {
		return Result{}, err
	}

	return res, err
}

// run explores the whole tree from the root.
func (e *engine) run(root track) error {
	if e.p.agents == 1 {
		return e.single(root)
	}

	return e.dual(root, root)
}

// seed assembles the starting incumbent from the greedy tour and any
// caller-supplied incumbent, keeping the larger.
func (p *problem) seed(o *Options) (incumbent, error) {
	var best incumbent
	if o.Seed {
		v, moves := p.greedy()
		best = incumbent{value: v, moves: moves, found: true}
	}
	if o.Incumbent != nil {
		v, moves, err := p.evaluate(o.Incumbent.Routes)
		if err != nil {
			return incumbent{}, fmt.Errorf("%w: incumbent: %w", ErrOptionViolation, err)
		}
		if v != o.Incumbent.Value {
			return incumbent{}, fmt.Errorf("%w: incumbent claims %d, routes are worth %d", ErrOptionViolation, o.Incumbent.Value, v)
		}
		if !best.found || v > best.value {
			best = incumbent{value: v, moves: moves, found: true}
		}
	}

	return best, nil
}
