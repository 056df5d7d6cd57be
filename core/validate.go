package core

import "fmt"

// Validate checks that every edge appears exactly twice across the adjacency
// lists of its endpoints (twice on the same node for a self-loop) and that no
// adjacency list references an edge outside the catalog.
//
// Errors: ErrCorruptAdjacency wrapped with the offending edge or node.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	seen := make([]int, len(g.edges))
	for _, n := range g.nodes {
		for _, e := range n.edges {
			if e == nil || int(e.id) >= len(g.edges) || g.edges[e.id] != e {
				return fmt.Errorf("%w: node %d lists an unknown edge", ErrCorruptAdjacency, n.id)
			}
			if e.a != n && e.b != n {
				return fmt.Errorf("%w: node %d lists edge %d it is not an endpoint of", ErrCorruptAdjacency, n.id, e.id)
			}
			seen[e.id]++
		}
	}
	for id, count := range seen {
		if count != 2 {
			return fmt.Errorf("%w: edge %d referenced %d times, want 2", ErrCorruptAdjacency, id, count)
		}
	}

	return nil
}
