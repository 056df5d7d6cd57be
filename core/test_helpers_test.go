package core_test

import (
	"testing"

	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/geo"
	"github.com/stretchr/testify/require"
)

// Fixture coordinates used across core tests.
var (
	coordA = geo.Coordinate{Lat: 0, Lon: 0}
	coordB = geo.Coordinate{Lat: 0, Lon: 1}
	coordC = geo.Coordinate{Lat: 1, Lon: 1}
)

// mustNode adds c to g and fails the test on error.
func mustNode(t testing.TB, g *core.Graph, c geo.Coordinate) *core.Node {
	t.Helper()
	n, _, err := g.AddNode(c)
	require.NoError(t, err)

	return n
}

// mustEdge connects a and b with their haversine length.
func mustEdge(t testing.TB, g *core.Graph, a, b *core.Node, opts ...core.EdgeOption) *core.Edge {
	t.Helper()
	e, err := g.AddEdge(a, b, geo.Haversine(a.Coordinate(), b.Coordinate()), opts...)
	require.NoError(t, err)

	return e
}

// triangle builds A-B-C-A with labels "ab", "bc" and an unnamed C-A edge.
func triangle(t testing.TB) (*core.Graph, *core.Node, *core.Node, *core.Node) {
	t.Helper()
	g := core.NewGraph()
	a, b, c := mustNode(t, g, coordA), mustNode(t, g, coordB), mustNode(t, g, coordC)
	mustEdge(t, g, a, b, core.WithLabel("ab"))
	mustEdge(t, g, b, c, core.WithLabel("bc"))
	mustEdge(t, g, c, a)

	return g, a, b, c
}
