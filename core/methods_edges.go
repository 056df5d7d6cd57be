// File: methods_edges.go
// Role: Edge creation.
// Determinism:
//   - EdgeIDs are dense and follow call order.
//   - Each endpoint appends the edge in call order; a self-loop is appended twice.

package core

import (
	"fmt"
	"math"
)

// AddEdge connects a and b with an undirected edge of the given weight.
//
// The edge is labeled by WithLabel when the name is non-empty, otherwise by
// WithFallbackLabel, otherwise by DefaultLabel. Parallel edges and self-loops
// are accepted and kept as distinct records.
//
// Errors: ErrGraphFrozen, ErrNilNode, ErrForeignNode, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b *Node, weight float64, opts ...EdgeOption) (*Edge, error) {
	if g.frozen {
		return nil, ErrGraphFrozen
	}
	if a == nil || b == nil {
		return nil, ErrNilNode
	}
	if a.owner != g || b.owner != g {
		return nil, ErrForeignNode
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}

	cfg := edgeConfig{fallback: DefaultLabel}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Edge{
		id:     EdgeID(len(g.edges)),
		a:      a,
		b:      b,
		weight: weight,
		label:  cfg.fallback,
	}
	if cfg.name != "" {
		e.label, e.named = cfg.name, true
	}

	g.edges = append(g.edges, e)
	a.edges = append(a.edges, e)
	b.edges = append(b.edges, e)

	return e, nil
}
