// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors for Node, Edge and Graph.
// Policy:
//   - No mutation here; see methods_nodes.go and methods_edges.go.
//   - Slices returned to callers are copies unless documented otherwise.

package core

import "github.com/katalvlaran/streetpath/geo"

// ID returns the dense creation index of n.
func (n *Node) ID() NodeID { return n.id }

// Coordinate returns the location of n.
func (n *Node) Coordinate() geo.Coordinate { return n.coord }

// Key returns the exact coordinate key that identifies n.
func (n *Node) Key() string { return n.key }

// Degree returns the number of adjacency entries of n.
// A self-loop counts twice.
func (n *Node) Degree() int { return len(n.edges) }

// Edges returns the incident edges of n in insertion order.
//
// The returned slice is shared with the graph and must not be modified.
// Callers on hot paths (Dijkstra relaxation, BFS) iterate it directly.
func (n *Node) Edges() []*Edge { return n.edges }

// ID returns the dense creation index of e.
func (e *Edge) ID() EdgeID { return e.id }

// Endpoints returns the two nodes of e in insertion order.
func (e *Edge) Endpoints() (*Node, *Node) { return e.a, e.b }

// Other returns the endpoint of e opposite to n.
// For a self-loop it returns n itself; for a node not on e it returns nil.
func (e *Edge) Other(n *Node) *Node {
	switch n {
	case e.a:
		return e.b
	case e.b:
		return e.a
	default:
		return nil
	}
}

// Weight returns the length of e in meters.
func (e *Edge) Weight() float64 { return e.weight }

// Label returns the street name of e, or the fallback label when unnamed.
func (e *Edge) Label() string { return e.label }

// Named reports whether the label came from the source data.
func (e *Edge) Named() bool { return e.named }

// Segment returns the raw geometry of e.
func (e *Edge) Segment() Segment {
	return Segment{From: e.a.coord, To: e.b.coord, Label: e.label}
}

// NodeCount returns the number of nodes in g.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in g.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given id, or nil when out of range.
func (g *Graph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}

	return g.nodes[id]
}

// Lookup returns the node located exactly at c, if any.
// Complexity: O(1) average.
func (g *Graph) Lookup(c geo.Coordinate) (*Node, bool) {
	n, ok := g.index[geo.Key(c)]

	return n, ok
}

// Contains reports whether n was created by g.
func (g *Graph) Contains(n *Node) bool {
	return n != nil && n.owner == g
}

// Nodes returns a copy of the node catalog ordered by NodeID.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge catalog ordered by EdgeID.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Segments returns the raw segment list in insertion order.
// Complexity: O(E).
func (g *Graph) Segments() []Segment {
	out := make([]Segment, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Segment()
	}

	return out
}

// Bounds returns the bounding box of all node coordinates.
// It is empty when g has no nodes.
func (g *Graph) Bounds() geo.Bounds { return g.bounds }

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen }

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Nodes     int        `json:"nodes"`
	Edges     int        `json:"edges"`
	SelfLoops int        `json:"selfLoops"`
	Named     int        `json:"namedEdges"`
	Length    float64    `json:"totalLength"`
	Bounds    geo.Bounds `json:"bounds"`
}

// Stats summarizes g.
// Complexity: O(E).
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges), Bounds: g.bounds}
	for _, e := range g.edges {
		if e.a == e.b {
			s.SelfLoops++
		}
		if e.named {
			s.Named++
		}
		s.Length += e.weight
	}

	return s
}
