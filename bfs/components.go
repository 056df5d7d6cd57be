package bfs

import "github.com/katalvlaran/streetpath/core"

// Components labels the connected components of a graph.
//
// Of is indexed by NodeID. Component IDs are dense and numbered in order of
// their lowest NodeID; Sizes[c] is the node count of component c.
type Components struct {
	Of    []int
	Sizes []int
}

// Count returns the number of components.
func (c Components) Count() int { return len(c.Sizes) }

// Connected reports whether a and b lie in the same component.
func (c Components) Connected(a, b core.NodeID) bool {
	if a < 0 || b < 0 || int(a) >= len(c.Of) || int(b) >= len(c.Of) {
		return false
	}

	return c.Of[a] == c.Of[b]
}

// Largest returns the ID of the biggest component, the lowest ID on ties,
// or -1 for an empty graph.
func (c Components) Largest() int {
	best := -1
	for id, size := range c.Sizes {
		if best < 0 || size > c.Sizes[best] {
			best = id
		}
	}

	return best
}

// ComponentsOf labels the connected components of g with one BFS per
// component. A nil graph yields an empty labeling.
// Complexity: O(V + E).
func ComponentsOf(g *core.Graph) Components {
	if g == nil {
		return Components{}
	}
	n := g.NodeCount()
	out := Components{Of: make([]int, n)}
	for i := range out.Of {
		out.Of[i] = -1
	}

	queue := make([]*core.Node, 0, n)
	for i := 0; i < n; i++ {
		if out.Of[i] >= 0 {
			continue
		}
		id := len(out.Sizes)
		out.Sizes = append(out.Sizes, 0)

		root := g.Node(core.NodeID(i))
		out.Of[i] = id
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			out.Sizes[id]++
			for _, e := range u.Edges() {
				v := e.Other(u)
				if out.Of[v.ID()] < 0 {
					out.Of[v.ID()] = id
					queue = append(queue, v)
				}
			}
		}
	}

	return out
}
