package dijkstra

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/streetpath/core"
)

// ShortestPath returns the shortest path from start to end in g.
//
// Returns:
//   - a Result with the node path, traversed edges and labels, the total
//     length in meters and, with WithTrace, the step trace;
//   - an error only when the WithContext context is cancelled.
//
// A nil graph or a nil/foreign node gives an unreachable Result.
//
// Complexity:
//   - FrontierScan: O(V² + E) time, O(V) space.
//   - FrontierHeap: O((V + E) log V) time, O(V + E) space.
//   - WithTrace adds O(V log V) per step.
func ShortestPath(g *core.Graph, start, end *core.Node, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res := &Result{Start: start, End: end}
	if g == nil || !g.Contains(start) || !g.Contains(end) {
		return res, nil
	}

	r := newRunner(g, start, end, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	r.reconstruct(res)
	res.Trace = r.trace

	return res, nil
}

// runner holds the mutable state of one query.
type runner struct {
	g       *core.Graph
	opts    Options
	start   *core.Node
	end     *core.Node
	dist    []float64
	prev    []core.NodeID
	via     []*core.Edge
	removed []bool
	front   frontier
	trace   []TraceEntry
}

func newRunner(g *core.Graph, start, end *core.Node, opts Options) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		opts:    opts,
		start:   start,
		end:     end,
		dist:    make([]float64, n),
		prev:    make([]core.NodeID, n),
		via:     make([]*core.Edge, n),
		removed: make([]bool, n),
	}
	if opts.Frontier == FrontierHeap {
		r.front = newHeapFrontier(r.dist, r.removed)
	} else {
		r.front = &scanFrontier{dist: r.dist, removed: r.removed}
	}

	return r
}

// init sets every distance to +Inf except the start and seeds the frontier.
func (r *runner) init() {
	inf := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = inf
		r.prev[i] = core.NoNode
	}
	r.dist[r.start.ID()] = 0
	r.front.push(r.start.ID())

	if r.opts.Trace {
		r.record(EventInit, core.NoNode, nil)
	}
}

// process settles nodes until the target is taken or nothing reachable is left.
func (r *runner) process() error {
	ctx := r.opts.Ctx
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}

		u, ok := r.front.pop()
		if !ok {
			if r.opts.Trace {
				r.record(EventExhausted, core.NoNode, nil)
			}

			return nil
		}
		if u == r.end.ID() {
			if r.opts.Trace {
				r.record(EventTarget, u, nil)
			}

			return nil
		}

		r.removed[u] = true
		relaxed := r.relax(r.g.Node(u))
		if r.opts.Trace {
			r.record(EventSettle, u, relaxed)
		}
	}
}

// relax lowers the tentative distance of every neighbor of u reachable more
// cheaply through u. It returns the per-edge record only when tracing.
func (r *runner) relax(u *core.Node) []Relaxation {
	var out []Relaxation
	if r.opts.Trace {
		out = make([]Relaxation, 0, u.Degree())
	}

	du := r.dist[u.ID()]
	for _, e := range u.Edges() {
		v := e.Other(u).ID()
		old := r.dist[v]
		cand := du + e.Weight()
		better := cand < old
		if better {
			r.dist[v] = cand
			r.prev[v] = u.ID()
			r.via[v] = e
			r.front.push(v)
		}
		if out != nil {
			out = append(out, Relaxation{
				Neighbor:  v,
				Edge:      e.ID(),
				Label:     e.Label(),
				Weight:    e.Weight(),
				Old:       old,
				Candidate: cand,
				New:       r.dist[v],
				Relaxed:   better,
			})
		}
	}

	return out
}

// record appends a trace entry with snapshots of the current state.
func (r *runner) record(ev Event, popped core.NodeID, relaxed []Relaxation) {
	dist := make([]float64, len(r.dist))
	copy(dist, r.dist)
	prev := make([]core.NodeID, len(r.prev))
	copy(prev, r.prev)

	front := make([]core.NodeID, 0, len(r.removed))
	for id, gone := range r.removed {
		if !gone {
			front = append(front, core.NodeID(id))
		}
	}
	sort.SliceStable(front, func(i, j int) bool {
		return dist[front[i]] < dist[front[j]]
	})

	r.trace = append(r.trace, TraceEntry{
		Iteration:   len(r.trace),
		Event:       ev,
		Popped:      popped,
		Relaxations: relaxed,
		Dist:        dist,
		Prev:        prev,
		Frontier:    front,
	})
}

// reconstruct fills res from the predecessor chain ending at the target.
func (r *runner) reconstruct(res *Result) {
	if r.start == r.end {
		res.Path = []*core.Node{r.start}

		return
	}
	endID := r.end.ID()
	if r.prev[endID] == core.NoNode {
		return
	}

	var (
		nodes []*core.Node
		edges []*core.Edge
	)
	for id := endID; id != core.NoNode; id = r.prev[id] {
		nodes = append(nodes, r.g.Node(id))
		if e := r.via[id]; e != nil {
			edges = append(edges, e)
		}
	}
	reverseNodes(nodes)
	reverseEdges(edges)

	res.Path = nodes
	res.Edges = edges
	res.Labels = make([]string, len(edges))
	for i, e := range edges {
		res.Labels[i] = e.Label()
	}
	res.Total = r.dist[endID]
}

func reverseNodes(s []*core.Node) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseEdges(s []*core.Edge) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
