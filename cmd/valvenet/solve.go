package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/metrics"
	"github.com/katalvlaran/valvenet/planner"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		start      string
		budget     int
		agents     int
		workers    int
		timeout    string
		noBound    bool
		noSeed     bool
		activation int
		withMetric bool
	)
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Find the activation schedule with the highest total value",
		Long: `Search exhaustively (with branch-and-bound pruning) for the schedule that
maximizes the sum of value × remaining time over all activated sites.

With --agents 2 two agents start together at the start site, each with the
full budget, and never activate the same site twice.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &a.cfg.Search
			f := cmd.Flags()
			if f.Changed("start") {
				s.Start = start
			}
			if f.Changed("budget") {
				s.Budget = budget
			}
			if f.Changed("agents") {
				s.Agents = agents
			}
			if f.Changed("workers") {
				s.Workers = workers
			}
			if f.Changed("timeout") {
				d, err := parseTimeout(timeout)
				if err != nil {
					return err
				}
				s.Timeout = d
			}
			if noBound {
				s.UpperBound = false
			}
			if noSeed {
				s.Seed = false
			}
			if f.Changed("activation-cost") {
				s.ActivationCost = activation
			}
			if withMetric {
				a.cfg.Metrics.Enabled = true
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.solve(cmd.Context(), args[0])
		},
	}
	f := cmd.Flags()
	f.StringVar(&start, "start", "AA", "start site")
	f.IntVar(&budget, "budget", 30, "time budget per agent")
	f.IntVar(&agents, "agents", 1, "number of agents (1 or 2)")
	f.IntVar(&workers, "workers", 1, "goroutines exploring root moves")
	f.StringVar(&timeout, "timeout", "0s", "wall-clock limit, 0 for none")
	f.BoolVar(&noBound, "no-bound", false, "disable the upper-bound pruning")
	f.BoolVar(&noSeed, "no-seed", false, "do not seed the search with the greedy tour")
	f.IntVar(&activation, "activation-cost", planner.DefaultActivationCost, "time spent activating a site")
	f.BoolVar(&withMetric, "metrics", false, "print Prometheus metrics after the result")

	return cmd
}

func (a *app) solve(ctx context.Context, path string) error {
	_, o, err := a.load(path)
	if err != nil {
		return err
	}
	s := a.cfg.Search
	opts := []planner.Option{
		planner.WithActivationCost(s.ActivationCost),
		planner.WithWorkers(s.Workers),
		planner.WithTimeLimit(s.Timeout),
		planner.WithUpperBound(s.UpperBound),
		planner.WithLogger(a.log),
	}
	if !s.Seed {
		opts = append(opts, planner.WithoutSeed())
	}
	var m *metrics.Metrics
	if a.cfg.Metrics.Enabled {
		m = metrics.New(nil)
		opts = append(opts, planner.WithRecorder(m))
	}

	var res planner.Result
	if s.Agents == 2 {
		res, err = planner.OptimizeDual(ctx, o, s.Start, s.Budget, opts...)
	} else {
		res, err = planner.OptimizeSingle(ctx, o, s.Start, s.Budget, opts...)
	}
	switch {
	case errors.Is(err, planner.ErrInterrupted):
		a.log.Warn().Err(err).Msg("search stopped early; reporting best schedule found")
	case err != nil:
		return err
	}

	a.printResult(res, s.Agents)
	if m != nil {
		m.ObserveOracle(o.Stats())
		return m.Write(a.stdout)
	}

	return nil
}

func (a *app) printResult(res planner.Result, agents int) {
	a.printf("value     %d\n", res.Value)
	a.printf("path      %s\n", strings.Join(res.Path, " "))
	if agents > 1 {
		for k, r := range res.Routes {
			a.printf("agent %d   %s\n", k+1, strings.Join(r, " "))
		}
	}
	a.printf("seed      %d\n", res.Seed)
	a.printf("nodes     %d\n", res.Nodes)
	a.printf("complete  %t\n", res.Complete)
}

// parseTimeout accepts a Go duration or a bare number of seconds.
func parseTimeout(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	var secs float64
	if _, err := fmt.Sscan(s, &secs); err != nil {
		return 0, fmt.Errorf("invalid --timeout %q", s)
	}

	return time.Duration(secs * float64(time.Second)), nil
}
