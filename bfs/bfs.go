package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/streetpath/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
func BFS(g *core.Graph, start *core.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, ErrStartNotFound
	}

	n := g.NodeCount()
	w := &walker{
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start.ID(),
			Order:  make([]core.NodeID, 0, n),
			Depth:  make([]int, n),
			Parent: make([]core.NodeID, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = core.NoNode
	}

	w.enqueue(start, 0, core.NoNode)

	return w.res, w.loop()
}

// enqueue marks n reached at depth d with the given parent.
func (w *walker) enqueue(n *core.Node, d int, parent core.NodeID) {
	w.res.Depth[n.ID()] = d
	w.res.Parent[n.ID()] = parent
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node.ID())
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at node %d: %w", item.node.ID(), err)
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues each unseen neighbor of item within MaxDepth.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range item.node.Edges() {
		if !w.opts.FilterEdge(e) {
			continue
		}
		nbr := e.Other(item.node)
		if w.res.Depth[nbr.ID()] < 0 {
			w.enqueue(nbr, next, item.node.ID())
		}
	}
}
