package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/planner"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		start  string
		budget int
	)
	cmd := &cobra.Command{
		Use:   "seed FILE",
		Short: "Print the greedy value/cost schedule (a lower bound)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("start") {
				a.cfg.Search.Start = start
			}
			if cmd.Flags().Changed("budget") {
				a.cfg.Search.Budget = budget
			}
			_, o, err := a.load(args[0])
			if err != nil {
				return err
			}
			s := a.cfg.Search
			res, err := planner.GreedySeed(o, s.Start, s.Budget,
				planner.WithActivationCost(s.ActivationCost), planner.WithLogger(a.log))
			if err != nil {
				return err
			}
			a.printf("value     %d\n", res.Value)
			a.printf("path      %s\n", strings.Join(res.Path, " "))

			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "AA", "start site")
	cmd.Flags().IntVar(&budget, "budget", 30, "time budget")

	return cmd
}

func newDistancesCmd(a *app) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "distances FILE",
		Short: "Print hop distances among the active sites and the start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("start") {
				a.cfg.Search.Start = start
			}
			g, o, err := a.load(args[0])
			if err != nil {
				return err
			}
			if !g.Has(a.cfg.Search.Start) {
				return fmt.Errorf("%w: %q", planner.ErrStartNotFound, a.cfg.Search.Start)
			}
			sites := append(g.ActiveSites(), a.cfg.Search.Start)
			if err := o.BuildCache(sites); err != nil {
				return err
			}
			for _, p := range o.Cache().Pairs() {
				a.printf("%s %s %d\n", p.A, p.B, p.Hops)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "AA", "start site")

	return cmd
}
