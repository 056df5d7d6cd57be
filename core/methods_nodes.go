// File: methods_nodes.go
// Role: Node creation, freezing and nearest-node lookup.

package core

import (
	"math"

	"github.com/katalvlaran/streetpath/geo"
)

// AddNode returns the node at c, creating it when no node has that exact key.
//
// created is true only when a new node was allocated. Coordinates are matched
// by geo.Key, so 0 and -0 collapse to the same node while any other difference,
// however small, yields a distinct node.
//
// Errors: ErrGraphFrozen.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(c geo.Coordinate) (n *Node, created bool, err error) {
	if g.frozen {
		return nil, false, ErrGraphFrozen
	}
	key := geo.Key(c)
	if existing, ok := g.index[key]; ok {
		return existing, false, nil
	}

	n = &Node{
		id:    NodeID(len(g.nodes)),
		coord: c,
		key:   key,
		owner: g,
	}
	g.nodes = append(g.nodes, n)
	g.index[key] = n
	g.bounds.Extend(c)

	return n, true, nil
}

// Freeze seals g against further mutation. It is idempotent.
func (g *Graph) Freeze() { g.frozen = true }

// Nearest returns the node closest to c by great-circle distance, together
// with that distance in meters. Ties go to the node created first.
// It returns (nil, +Inf) on an empty graph.
//
// Complexity: O(V).
func (g *Graph) Nearest(c geo.Coordinate) (*Node, float64) {
	var (
		best *Node
		dist = math.Inf(1)
	)
	for _, n := range g.nodes {
		if d := geo.Haversine(c, n.coord); d < dist {
			best, dist = n, d
		}
	}

	return best, dist
}
