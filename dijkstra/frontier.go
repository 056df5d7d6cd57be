package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/streetpath/core"
)

// frontier yields the unsettled node with the smallest finite tentative
// distance, ties broken by the lower NodeID. It never marks nodes removed;
// the runner does that when it settles one.
type frontier interface {
	// push notes that dist[id] decreased.
	push(id core.NodeID)
	// pop returns the next node, or false when none has a finite distance.
	pop() (core.NodeID, bool)
}

// scanFrontier walks every node on each pop.
type scanFrontier struct {
	dist    []float64
	removed []bool
}

func (s *scanFrontier) push(core.NodeID) {}

func (s *scanFrontier) pop() (core.NodeID, bool) {
	best, low := core.NoNode, math.Inf(1)
	for id, d := range s.dist {
		if !s.removed[id] && d < low {
			best, low = core.NodeID(id), d
		}
	}

	return best, best != core.NoNode
}

// heapFrontier is a lazy-deletion binary heap: stale entries stay in place
// and are discarded when popped.
type heapFrontier struct {
	dist    []float64
	removed []bool
	pq      nodePQ
}

func newHeapFrontier(dist []float64, removed []bool) *heapFrontier {
	return &heapFrontier{dist: dist, removed: removed, pq: make(nodePQ, 0, len(dist))}
}

func (h *heapFrontier) push(id core.NodeID) {
	heap.Push(&h.pq, nodeItem{id: id, dist: h.dist[id]})
}

func (h *heapFrontier) pop() (core.NodeID, bool) {
	for h.pq.Len() > 0 {
		it := heap.Pop(&h.pq).(nodeItem)
		if h.removed[it.id] || it.dist != h.dist[it.id] {
			continue
		}

		return it.id, true
	}

	return core.NoNode, false
}

// nodeItem is a heap entry carrying the distance at push time.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ orders entries by (dist, id).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
