package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/oracle"
)

func sampleProblem(t *testing.T, budget, agents int) *problem {
	t.Helper()
	g, err := core.NewBuilder(core.WithUndirected()).
		AddSite("AA", 0, "DD", "II", "BB").
		AddSite("BB", 13, "CC", "AA").
		AddSite("CC", 2, "DD", "BB").
		AddSite("DD", 20, "CC", "AA", "EE").
		AddSite("EE", 3, "FF", "DD").
		AddSite("FF", 0, "EE", "GG").
		AddSite("GG", 0, "FF", "HH").
		AddSite("HH", 22, "GG").
		AddSite("II", 0, "AA", "JJ").
		AddSite("JJ", 21, "II").
		Build()
	require.NoError(t, err)
	o, err := oracle.New(g)
	require.NoError(t, err)
	p, err := newProblem(o, "AA", budget, agents, DefaultActivationCost)
	require.NoError(t, err)

	return p
}

// requireRestored checks that a finished search left no trace in the
// engine's mutable state.
func requireRestored(t *testing.T, e *engine) {
	t.Helper()
	require.Zero(t, e.ledger.Total())
	require.Zero(t, e.ledger.Sum())
	require.Empty(t, e.path)
	for s, v := range e.visited {
		require.False(t, v, "site %s still visited", e.p.sites[s])
	}
}

func TestEngine_RestoresStateAfterSearch(t *testing.T) {
	cases := []struct {
		name    string
		budget  int
		agents  int
		bounded bool
		want    int
	}{
		{"single", 30, 1, true, 1651},
		{"single/unbounded", 30, 1, false, 1651},
		{"dual", 26, 2, true, 1707},
		{"dual/unbounded", 26, 2, false, 1707},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := sampleProblem(t, tc.budget, tc.agents)
			o := DefaultOptions()
			shared := newSharedBest(ModeSingle, &o, 0)
			e := newEngine(context.Background(), p, tc.bounded, shared, incumbent{})

			require.NoError(t, e.run(track{rem: tc.budget, at: p.n}))
			requireRestored(t, e)
			require.True(t, e.best.found)
			require.Equal(t, tc.want, e.best.value)

			v, _, err := p.evaluate(p.result(e.best.value, e.best.moves).Routes)
			require.NoError(t, err)
			require.Equal(t, tc.want, v)
		})
	}
}

func TestEngine_RestoresStateAfterInterrupt(t *testing.T) {
	p := sampleProblem(t, 30, 1)
	o := DefaultOptions()
	ctx, cancel := context.WithCancel(context.Background())
	o.OnImprove = func(int, []string) { cancel() }
	shared := newSharedBest(ModeSingle, &o, 0)
	e := newEngine(ctx, p, true, shared, incumbent{})

	err := e.run(track{rem: 30, at: p.n})
	require.ErrorIs(t, err, ErrInterrupted)
	require.ErrorIs(t, err, context.Canceled)
	requireRestored(t, e)
	require.True(t, e.best.found)
}

func TestEngine_HopelessIsAdmissible(t *testing.T) {
	p := sampleProblem(t, 30, 1)
	o := DefaultOptions()
	shared := newSharedBest(ModeSingle, &o, 0)

	// Just below the optimum the root stays open; at the optimum the search
	// finds nothing better.
	e := newEngine(context.Background(), p, true, shared, incumbent{value: 1650, found: true})
	root := track{rem: 30, at: p.n}
	require.False(t, e.hopeless(root, track{retired: true}))

	e.best.value = 1651
	require.NoError(t, e.run(root))
	require.Equal(t, 1651, e.best.value)
}

func TestProblem_CostMatrix(t *testing.T) {
	p := sampleProblem(t, 30, 1)
	require.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ"}, p.sites)

	dd, hh := p.index["DD"], p.index["HH"]
	require.Equal(t, 2, p.cost[p.n][dd]) // AA→DD one hop
	require.Equal(t, 5, p.cost[dd][hh])  // DD→EE→FF→GG→HH
	require.Equal(t, 1, p.cost[dd][dd])

	for from := 0; from <= p.n; from++ {
		row := p.order[from]
		for k := 1; k < len(row); k++ {
			require.LessOrEqual(t, p.cost[from][row[k-1]], p.cost[from][row[k]])
		}
	}
}

func TestRootBranches(t *testing.T) {
	p := sampleProblem(t, 2, 2)
	root := track{rem: 2, at: p.n}
	// Only BB and DD (cost 2) fit.
	bb, dd := p.index["BB"], p.index["DD"]
	require.ElementsMatch(t, []branch{{i: min(bb, dd), j: max(bb, dd)}, {i: -1, j: -1}}, p.rootBranches(root))

	p = sampleProblem(t, 2, 1)
	require.ElementsMatch(t, []branch{{i: bb, j: -1}, {i: dd, j: -1}}, p.rootBranches(root))
}
