package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/oracle"
	"github.com/katalvlaran/valvenet/planner"
)

// Known optima of the ten-site sample (activation cost 1).
const (
	sampleGreedy30 = 1649
	sampleSingle30 = 1651
	sampleSingle26 = 1327
	sampleDual26   = 1707
)

// sampleGraph is the ten-site tunnel system of the classic valve puzzle:
// DD(20) one hop from AA, HH(22) five hops away behind a corridor, JJ(21)
// at the end of a two-hop spur.
func sampleGraph(t testing.TB) *core.Graph {
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

	return g
}

func sampleOracle(t testing.TB) *oracle.Oracle {
	t.Helper()
	o, err := oracle.New(sampleGraph(t))
	require.NoError(t, err)

	return o
}

// requireValidSchedule checks that every active site appears at most once
// across all routes, that each route fits in budget, and that the reported
// value matches a replay of the routes.
func requireValidSchedule(t *testing.T, o *oracle.Oracle, budget int, res planner.Result) {
	t.Helper()
	seen := map[string]bool{}
	for _, route := range res.Routes {
		for _, id := range route {
			require.False(t, seen[id], "site %s activated twice", id)
			seen[id] = true
			require.Positive(t, o.Graph().Value(id), "site %s is not active", id)
		}
	}
	require.Len(t, res.Path, len(seen))
	require.Len(t, res.Steps, len(seen))
	for i := 1; i < len(res.Steps); i++ {
		require.GreaterOrEqual(t, res.Steps[i-1].At, res.Steps[i].At, "path is chronological")
	}

	v, err := planner.Evaluate(o, "AA", budget, res.Routes)
	require.NoError(t, err)
	require.Equal(t, res.Value, v)
}
