package parse_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/parse"
)

func requireSample(t *testing.T, g *core.Graph) {
	t.Helper()
	assert.Equal(t, 10, g.Len())
	assert.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ"}, g.ActiveSites())
	assert.Equal(t, 81, g.TotalValue())

	nbrs, err := g.Neighbors("HH")
	require.NoError(t, err)
	assert.Equal(t, []string{"GG"}, nbrs)

	nbrs, err = g.Neighbors("AA")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"DD", "II", "BB"}, nbrs)
}

func TestLines_Verbose(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	defer f.Close()

	g, err := parse.Lines(f)
	require.NoError(t, err)
	requireSample(t, g)
}

func TestLines_CompactAndComments(t *testing.T) {
	in := `
# start
AA 0 BB, CC
BB 5 AA

CC 7
   # indented comment
DD 1 CC DD
`
	g, err := parse.Lines(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())

	nbrs, err := g.Neighbors("CC")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AA", "DD"}, nbrs, "tunnels are mirrored")

	nbrs, err = g.Neighbors("DD")
	require.NoError(t, err)
	assert.Equal(t, []string{"CC", "DD"}, nbrs, "space-separated neighbors")
}

func TestLines_Strict(t *testing.T) {
	_, err := parse.Lines(strings.NewReader("AA 0 BB\nBB 1\n"), parse.WithStrict())
	require.ErrorIs(t, err, parse.ErrMalformedInput)
	require.ErrorIs(t, err, core.ErrOneWayTunnel)

	g, err := parse.Lines(strings.NewReader("AA 0 BB\nBB 1 AA\n"), parse.WithStrict())
	require.NoError(t, err)
	nbrs, err := g.Neighbors("BB")
	require.NoError(t, err)
	assert.Equal(t, []string{"AA"}, nbrs)

	f, err := os.Open(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	defer f.Close()
	g, err = parse.Lines(f, parse.WithStrict())
	require.NoError(t, err)
	requireSample(t, g)
}

func TestLines_MirrorsOneWayTunnels(t *testing.T) {
	g, err := parse.Lines(strings.NewReader("AA 0 BB\nBB 1\n"))
	require.NoError(t, err)

	nbrs, err := g.Neighbors("BB")
	require.NoError(t, err)
	assert.Equal(t, []string{"AA"}, nbrs)
}

func TestLines_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		line  int
		cause error
	}{
		{"garbled valve", "Valve AA has flow rate=x; tunnels lead to valves BB", 1, nil},
		{"missing value", "AA 0 BB\nBB", 2, nil},
		{"non-numeric value", "AA zero", 1, nil},
		{"negative value", "AA -4", 1, core.ErrNegativeValue},
		{"duplicate", "AA 1\n\nAA 2", 3, core.ErrDuplicateSite},
		{"unknown neighbor", "AA 1 ZZ", 0, core.ErrUnknownNeighbor},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := parse.Lines(strings.NewReader(tc.in))
			assert.Nil(t, g)
			require.ErrorIs(t, err, parse.ErrMalformedInput)

			var me *parse.MalformedInputError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tc.line, me.Line)
			assert.NotEmpty(t, me.Reason)
			if tc.cause != nil {
				require.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestYAML(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "sample.yaml"))
	require.NoError(t, err)
	defer f.Close()

	g, err := parse.YAML(f)
	require.NoError(t, err)
	requireSample(t, g)
}

func TestYAML_Malformed(t *testing.T) {
	_, err := parse.YAML(strings.NewReader("sites: [{id: AA, value: 1, flow: 3}]"))
	require.ErrorIs(t, err, parse.ErrMalformedInput)

	_, err = parse.YAML(strings.NewReader("sites:\n  - id: AA\n    value: -1\n"))
	require.ErrorIs(t, err, parse.ErrMalformedInput)
	require.ErrorIs(t, err, core.ErrNegativeValue)

	_, err = parse.YAML(strings.NewReader("sites: [{id: AA, neighbors: [BB]}]"))
	require.ErrorIs(t, err, core.ErrUnknownNeighbor)

	g, err := parse.YAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

func TestFile(t *testing.T) {
	for _, name := range []string{"sample.txt", "sample.yaml"} {
		g, err := parse.File(filepath.Join("testdata", name))
		require.NoError(t, err, name)
		requireSample(t, g)
	}

	_, err := parse.File(filepath.Join("testdata", "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
