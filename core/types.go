// Package core declares Node, Edge, Segment, Graph, the option types and
// the sentinel errors used throughout the module.
package core

import (
	"errors"

	"github.com/katalvlaran/streetpath/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphFrozen indicates a mutation on a Graph that was already sealed.
	ErrGraphFrozen = errors.New("core: graph is frozen")

	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrForeignNode indicates a node that was created by another Graph.
	ErrForeignNode = errors.New("core: node belongs to another graph")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrCorruptAdjacency indicates that adjacency lists disagree with the edge catalog.
	ErrCorruptAdjacency = errors.New("core: adjacency lists are inconsistent")
)

// DefaultLabel is the label given to edges whose source line has no name.
const DefaultLabel = "Unknown street"

// NodeID is the dense creation index of a Node within its Graph.
type NodeID int

// NoNode is the NodeID sentinel for "no node" (no predecessor, nothing popped).
const NoNode NodeID = -1

// EdgeID is the dense creation index of an Edge within its Graph.
type EdgeID int

// Node is a graph vertex located at a unique coordinate.
//
// The adjacency slice keeps insertion order. A self-loop appears twice.
type Node struct {
	id    NodeID
	coord geo.Coordinate
	key   string
	edges []*Edge
	owner *Graph
}

// Edge is an undirected, weighted, labeled connection between two nodes.
// The same *Edge is referenced from both endpoints.
type Edge struct {
	id     EdgeID
	a, b   *Node
	weight float64
	label  string
	named  bool
}

// Segment is the raw geometry of one edge, as recorded during construction.
type Segment struct {
	From  geo.Coordinate `json:"from"`
	To    geo.Coordinate `json:"to"`
	Label string         `json:"label"`
}

// GraphOption configures a Graph before any node is added.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node and edge catalogs.
// Negative hints are ignored.
func WithCapacity(nodes, edges int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.nodes = make([]*Node, 0, nodes)
			g.index = make(map[string]*Node, nodes)
		}
		if edges > 0 {
			g.edges = make([]*Edge, 0, edges)
		}
	}
}

// EdgeOption configures an individual edge when it is added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	name     string
	fallback string
}

// WithLabel names the edge. An empty name leaves the edge unnamed.
func WithLabel(name string) EdgeOption {
	return func(c *edgeConfig) { c.name = name }
}

// WithFallbackLabel sets the label used when the edge is unnamed.
// Panics on an empty fallback, which would make unnamed edges unreadable.
func WithFallbackLabel(label string) EdgeOption {
	if label == "" {
		panic("core: WithFallbackLabel(\"\")")
	}

	return func(c *edgeConfig) { c.fallback = label }
}

// Graph is the in-memory road network.
//
// nodes is indexed by NodeID, edges by EdgeID; index maps geo.Key to node.
type Graph struct {
	nodes  []*Node
	index  map[string]*Node
	edges  []*Edge
	bounds geo.Bounds
	frozen bool
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1) plus any capacity requested through options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.index == nil {
		g.index = make(map[string]*Node)
	}

	return g
}
