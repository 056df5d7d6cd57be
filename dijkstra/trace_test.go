package dijkstra_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/streetpath/builder"
	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_Chain(t *testing.T) {
	g := mustBuild(t, []builder.Polyline{line("Chain", 0, 0, 0, 1, 0, 2)}, unitLength)
	inf := math.Inf(1)
	none := core.NoNode

	res, err := dijkstra.ShortestPath(g, g.Node(0), g.Node(2), dijkstra.WithTrace())
	require.NoError(t, err)

	want := []dijkstra.TraceEntry{
		{
			Iteration: 0, Event: dijkstra.EventInit, Popped: none,
			Dist:     []float64{0, inf, inf},
			Prev:     []core.NodeID{none, none, none},
			Frontier: []core.NodeID{0, 1, 2},
		},
		{
			Iteration: 1, Event: dijkstra.EventSettle, Popped: 0,
			Relaxations: []dijkstra.Relaxation{
				{Neighbor: 1, Edge: 0, Label: "Chain", Weight: 1, Old: inf, Candidate: 1, New: 1, Relaxed: true},
			},
			Dist:     []float64{0, 1, inf},
			Prev:     []core.NodeID{none, 0, none},
			Frontier: []core.NodeID{1, 2},
		},
		{
			Iteration: 2, Event: dijkstra.EventSettle, Popped: 1,
			Relaxations: []dijkstra.Relaxation{
				{Neighbor: 0, Edge: 0, Label: "Chain", Weight: 1, Old: 0, Candidate: 2, New: 0},
				{Neighbor: 2, Edge: 1, Label: "Chain", Weight: 1, Old: inf, Candidate: 2, New: 2, Relaxed: true},
			},
			Dist:     []float64{0, 1, 2},
			Prev:     []core.NodeID{none, 0, 1},
			Frontier: []core.NodeID{2},
		},
		{
			Iteration: 3, Event: dijkstra.EventTarget, Popped: 2,
			Dist:     []float64{0, 1, 2},
			Prev:     []core.NodeID{none, 0, 1},
			Frontier: []core.NodeID{2},
		},
	}
	if diff := cmp.Diff(want, res.Trace); diff != "" {
		t.Fatalf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestTrace_IdentityStopsImmediately(t *testing.T) {
	g := mustBuild(t, []builder.Polyline{line("x", 0, 0, 0, 1)})

	res, err := dijkstra.ShortestPath(g, g.Node(1), g.Node(1), dijkstra.WithTrace())
	require.NoError(t, err)
	require.Len(t, res.Trace, 2)
	assert.Equal(t, dijkstra.EventInit, res.Trace[0].Event)
	assert.Equal(t, dijkstra.EventTarget, res.Trace[1].Event)
	assert.Equal(t, core.NodeID(1), res.Trace[1].Popped)
	assert.Empty(t, res.Trace[1].Relaxations)
}

// TestTrace_Consistency checks, on a mesh, that every step settles the
// minimum of the previous frontier and that the final snapshot reproduces
// the returned path and total.
func TestTrace_Consistency(t *testing.T) {
	g := meshGraph(t, 5)
	start, end := g.Node(2), g.Node(core.NodeID(g.NodeCount()-3))

	res, err := dijkstra.ShortestPath(g, start, end, dijkstra.WithTrace())
	require.NoError(t, err)
	require.True(t, res.Reachable())
	require.NotEmpty(t, res.Trace)

	first := res.Trace[0]
	assert.Equal(t, dijkstra.EventInit, first.Event)
	assert.Len(t, first.Frontier, g.NodeCount())
	assert.Equal(t, start.ID(), first.Frontier[0])

	for i := 1; i < len(res.Trace); i++ {
		before, step := res.Trace[i-1], res.Trace[i]
		assert.Equal(t, i, step.Iteration)
		assert.Equal(t, before.Frontier[0], step.Popped, "step %d pops the frontier head", i)
		if step.Event == dijkstra.EventSettle {
			assert.Len(t, step.Frontier, len(before.Frontier)-1)
			assert.Len(t, step.Relaxations, g.Node(step.Popped).Degree())
		}
		for j := 1; j < len(step.Frontier); j++ {
			a, b := step.Frontier[j-1], step.Frontier[j]
			da, db := step.Dist[a], step.Dist[b]
			assert.True(t, da < db || (da == db && a < b), "frontier order at step %d", i)
		}
	}

	last := res.Trace[len(res.Trace)-1]
	assert.Equal(t, dijkstra.EventTarget, last.Event)
	assert.Equal(t, res.Total, last.Dist[end.ID()])

	var chain []core.NodeID
	for id := end.ID(); id != core.NoNode; id = last.Prev[id] {
		chain = append([]core.NodeID{id}, chain...)
	}
	assert.Equal(t, pathIDs(res.Path), chain)
}

func TestEventAndFrontierNames(t *testing.T) {
	assert.Equal(t, "init", dijkstra.EventInit.String())
	assert.Equal(t, "exhausted", dijkstra.EventExhausted.String())
	assert.Equal(t, "scan", dijkstra.FrontierScan.String())
	assert.Equal(t, "heap", dijkstra.FrontierHeap.String())

	b, err := dijkstra.EventTarget.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "target", string(b))
}
