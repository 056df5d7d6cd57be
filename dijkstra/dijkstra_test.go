package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/streetpath/builder"
	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/dijkstra"
	"github.com/katalvlaran/streetpath/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Reference scenarios.
// ------------------------------------------------------------------------

func TestShortestPath_TwoLinesSharingEndpoint(t *testing.T) {
	g := mustBuild(t, []builder.Polyline{
		line("Rua A", 0, 0, 0, 1),
		line("Rua B", 0, 1, 1, 1),
	})
	start, end := g.Node(0), g.Node(2)

	res, err := dijkstra.ShortestPath(g, start, end)
	require.NoError(t, err)
	require.True(t, res.Reachable())

	want := geo.Haversine(geo.Coordinate{Lat: 0, Lon: 0}, geo.Coordinate{Lat: 0, Lon: 1}) +
		geo.Haversine(geo.Coordinate{Lat: 0, Lon: 1}, geo.Coordinate{Lat: 1, Lon: 1})
	assert.Equal(t, []core.NodeID{0, 1, 2}, pathIDs(res.Path))
	assert.Equal(t, []string{"Rua A", "Rua B"}, res.Labels)
	assert.InDelta(t, want, res.Total, 1e-6)
	assert.Len(t, res.Edges, 2)
	assert.Nil(t, res.Trace)
}

func TestShortestPath_SinglePolylineChain(t *testing.T) {
	pl := line("Chain", 0, 0, 0, 0.001, 0.001, 0.001, 0.001, 0.002)
	g := mustBuild(t, []builder.Polyline{pl})

	res, err := dijkstra.ShortestPath(g, g.Node(0), g.Node(3))
	require.NoError(t, err)

	var want float64
	for i := 1; i < len(pl.Points); i++ {
		want += geo.Haversine(pl.Points[i-1], pl.Points[i])
	}
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, pathIDs(res.Path))
	assert.Equal(t, []string{"Chain", "Chain", "Chain"}, res.Labels)
	assert.InDelta(t, want, res.Total, 1e-9)

	id, err := dijkstra.ShortestPath(g, g.Node(1), g.Node(1))
	require.NoError(t, err)
	assert.True(t, id.Identity())
	assert.Equal(t, []core.NodeID{1}, pathIDs(id.Path))
	assert.Zero(t, id.Total)
	assert.Empty(t, id.Labels)
}

func TestShortestPath_EmptyGraph(t *testing.T) {
	g := mustBuild(t, nil)
	require.Zero(t, g.NodeCount())

	res, err := dijkstra.ShortestPath(g, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Reachable())
	assert.Empty(t, res.Path)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Labels)

	res, err = dijkstra.ShortestPath(nil, nil, nil, dijkstra.WithTrace())
	require.NoError(t, err)
	assert.False(t, res.Reachable())
	assert.Nil(t, res.Trace)
}

// ------------------------------------------------------------------------
// 2. Reachability and validity of inputs.
// ------------------------------------------------------------------------

func TestShortestPath_Disconnected(t *testing.T) {
	g := mustBuild(t, []builder.Polyline{
		line("west", 0, 0, 0, 1),
		line("east", 5, 5, 5, 6),
	})

	for _, f := range []dijkstra.Frontier{dijkstra.FrontierScan, dijkstra.FrontierHeap} {
		res, err := dijkstra.ShortestPath(g, g.Node(0), g.Node(3), dijkstra.WithTrace(), dijkstra.WithFrontier(f))
		require.NoError(t, err)
		assert.False(t, res.Reachable(), f.String())
		assert.Zero(t, res.Total)

		last := res.Trace[len(res.Trace)-1]
		assert.Equal(t, dijkstra.EventExhausted, last.Event)
		assert.Equal(t, core.NoNode, last.Popped)
		assert.True(t, math.IsInf(last.Dist[3], 1))
	}
}

func TestShortestPath_ForeignAndNilNodes(t *testing.T) {
	lines := []builder.Polyline{line("x", 0, 0, 0, 1)}
	g := mustBuild(t, lines)
	stale := mustBuild(t, lines)

	res, err := dijkstra.ShortestPath(g, stale.Node(0), g.Node(1))
	require.NoError(t, err)
	assert.False(t, res.Reachable(), "node of a discarded graph is not found")

	res, err = dijkstra.ShortestPath(g, g.Node(0), nil)
	require.NoError(t, err)
	assert.False(t, res.Reachable())

	res, err = dijkstra.ShortestPath(g, stale.Node(0), stale.Node(0))
	require.NoError(t, err)
	assert.False(t, res.Identity(), "identity requires membership")
}

// ------------------------------------------------------------------------
// 3. Selection rules: tie-break, parallel edges, self-loops.
// ------------------------------------------------------------------------

func TestShortestPath_TieBreakPrefersFirstCreated(t *testing.T) {
	// 0=(0,0) 1=(0,1) 2=(1,1) 3=(1,0); both routes 0→2 have length 2.
	g := mustBuild(t, []builder.Polyline{
		line("north", 0, 0, 0, 1, 1, 1),
		line("south", 0, 0, 1, 0, 1, 1),
	}, unitLength)

	for _, f := range []dijkstra.Frontier{dijkstra.FrontierScan, dijkstra.FrontierHeap} {
		res, err := dijkstra.ShortestPath(g, g.Node(0), g.Node(2), dijkstra.WithFrontier(f))
		require.NoError(t, err)
		assert.Equal(t, []core.NodeID{0, 1, 2}, pathIDs(res.Path), f.String())
		assert.Equal(t, []string{"north", "north"}, res.Labels)
		assert.Equal(t, 2.0, res.Total)
	}
}

func TestShortestPath_ParallelEdgesUseCheapest(t *testing.T) {
	g := core.NewGraph()
	a, _, _ := g.AddNode(geo.Coordinate{Lat: 0, Lon: 0})
	b, _, _ := g.AddNode(geo.Coordinate{Lat: 0, Lon: 1})
	_, err := g.AddEdge(a, b, 10, core.WithLabel("long way"))
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, 3, core.WithLabel("short cut"))
	require.NoError(t, err)
	_, err = g.AddEdge(a, a, 0, core.WithLabel("roundabout"))
	require.NoError(t, err)
	g.Freeze()

	res, err := dijkstra.ShortestPath(g, a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"short cut"}, res.Labels)
	assert.Equal(t, 3.0, res.Total)

	back, err := dijkstra.ShortestPath(g, b, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"short cut"}, back.Labels)
}

// ------------------------------------------------------------------------
// 4. Metric properties on a mesh.
// ------------------------------------------------------------------------

func TestShortestPath_SymmetryAndTriangle(t *testing.T) {
	g := meshGraph(t, 6)
	n := g.NodeCount()
	total := func(a, b int) float64 {
		res, err := dijkstra.ShortestPath(g, g.Node(core.NodeID(a)), g.Node(core.NodeID(b)), dijkstra.WithFrontier(dijkstra.FrontierHeap))
		require.NoError(t, err)
		require.True(t, res.Reachable())

		return res.Total
	}

	picks := []int{0, 5, 7, 14, 21, n - 1}
	for _, a := range picks {
		for _, b := range picks {
			ab := total(a, b)
			assert.InDelta(t, ab, total(b, a), 1e-6, "symmetry %d-%d", a, b)
			for _, c := range picks {
				assert.LessOrEqual(t, ab, total(a, c)+total(c, b)+1e-6, "triangle %d-%d via %d", a, b, c)
			}
		}
	}
}

func TestShortestPath_TotalMatchesEdges(t *testing.T) {
	g := meshGraph(t, 5)
	res, err := dijkstra.ShortestPath(g, g.Node(0), g.Node(core.NodeID(g.NodeCount()-1)))
	require.NoError(t, err)

	require.Len(t, res.Edges, len(res.Path)-1)
	var sum float64
	for i, e := range res.Edges {
		sum += e.Weight()
		assert.Same(t, res.Path[i+1], e.Other(res.Path[i]))
		assert.Equal(t, e.Label(), res.Labels[i])
	}
	assert.InDelta(t, res.Total, sum, 1e-6)
}

// ------------------------------------------------------------------------
// 5. Determinism and frontier equivalence.
// ------------------------------------------------------------------------

func TestShortestPath_Deterministic(t *testing.T) {
	g := meshGraph(t, 5)
	start, end := g.Node(3), g.Node(17)

	r1, err := dijkstra.ShortestPath(g, start, end, dijkstra.WithTrace())
	require.NoError(t, err)
	r2, err := dijkstra.ShortestPath(g, start, end, dijkstra.WithTrace())
	require.NoError(t, err)

	if diff := cmp.Diff(pathIDs(r1.Path), pathIDs(r2.Path)); diff != "" {
		t.Errorf("path mismatch (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(r1.Trace, r2.Trace); diff != "" {
		t.Errorf("trace mismatch (-first +second):\n%s", diff)
	}
}

func TestShortestPath_HeapMatchesScan(t *testing.T) {
	meshes := map[string]*core.Graph{
		"mesh": meshGraph(t, 6),
		"ties": mustBuild(t, []builder.Polyline{
			line("a", 0, 0, 0, 1, 0, 2, 0, 3),
			line("b", 0, 0, 1, 0, 1, 1, 1, 2, 0, 3),
			line("c", 1, 1, 0, 1),
			line("island", 9, 9, 9, 8),
		}, unitLength),
	}

	for name, g := range meshes {
		for s := 0; s < g.NodeCount(); s += 3 {
			for e := 0; e < g.NodeCount(); e += 4 {
				start, end := g.Node(core.NodeID(s)), g.Node(core.NodeID(e))
				scan, err := dijkstra.ShortestPath(g, start, end, dijkstra.WithTrace())
				require.NoError(t, err)
				hp, err := dijkstra.ShortestPath(g, start, end, dijkstra.WithTrace(), dijkstra.WithFrontier(dijkstra.FrontierHeap))
				require.NoError(t, err)

				if diff := cmp.Diff(pathIDs(scan.Path), pathIDs(hp.Path)); diff != "" {
					t.Errorf("%s %d→%d path (-scan +heap):\n%s", name, s, e, diff)
				}
				assert.Equal(t, scan.Labels, hp.Labels)
				assert.Equal(t, scan.Total, hp.Total)
				if diff := cmp.Diff(scan.Trace, hp.Trace); diff != "" {
					t.Errorf("%s %d→%d trace (-scan +heap):\n%s", name, s, e, diff)
				}
			}
		}
	}
}

// ------------------------------------------------------------------------
// 6. Cancellation and option validation.
// ------------------------------------------------------------------------

func TestShortestPath_Cancelled(t *testing.T) {
	g := meshGraph(t, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dijkstra.ShortestPath(g, g.Node(0), g.Node(5), dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestOptions(t *testing.T) {
	def := dijkstra.DefaultOptions()
	assert.False(t, def.Trace)
	assert.Equal(t, dijkstra.FrontierScan, def.Frontier)
	assert.NotNil(t, def.Ctx)

	assert.Panics(t, func() { dijkstra.WithFrontier(dijkstra.Frontier(9)) })
	assert.Panics(t, func() { dijkstra.WithContext(nil) }) //nolint:staticcheck

	f, err := dijkstra.ParseFrontier("heap")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.FrontierHeap, f)
	_, err = dijkstra.ParseFrontier("fibonacci")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownFrontier)
}
