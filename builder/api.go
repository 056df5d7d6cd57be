// SPDX-License-Identifier: MIT
// Package: streetpath/builder
//
// api.go - Build, the single entry point of the package.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/geo"
)

// Polyline is a named sequence of coordinates, typically one LineString
// feature of the source dataset. An empty Name means "unnamed".
type Polyline struct {
	Name   string
	Points []geo.Coordinate
}

// Build constructs and freezes a graph from lines.
//
// Implementation:
//   - Stage 1: size the catalogs from the total point count.
//   - Stage 2: for every consecutive point pair, resolve both endpoints,
//     measure the segment and add one edge labeled with the polyline name.
//   - Stage 3: optionally validate adjacency, then freeze.
//
// An empty input yields an empty, frozen graph.
//
// Errors: ErrBadWeight, core.ErrCorruptAdjacency (both wrapped with context).
// Complexity: O(P) for P total points.
func Build(lines []Polyline, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)

	points := 0
	for _, l := range lines {
		points += len(l.Points)
	}
	g := core.NewGraph(core.WithCapacity(points, points))

	for li, line := range lines {
		if len(line.Points) < 2 {
			continue
		}
		edgeOpts := []core.EdgeOption{
			core.WithLabel(line.Name),
			core.WithFallbackLabel(cfg.defaultLabel),
		}

		prev, _, err := g.AddNode(line.Points[0])
		if err != nil {
			return nil, fmt.Errorf("builder: line %d: %w", li, err)
		}
		for pi := 1; pi < len(line.Points); pi++ {
			next, _, err := g.AddNode(line.Points[pi])
			if err != nil {
				return nil, fmt.Errorf("builder: line %d: %w", li, err)
			}

			w := cfg.distance(prev.Coordinate(), next.Coordinate())
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: line %d, segment %d: %v", ErrBadWeight, li, pi-1, w)
			}
			if _, err = g.AddEdge(prev, next, w, edgeOpts...); err != nil {
				return nil, fmt.Errorf("builder: line %d, segment %d: %w", li, pi-1, err)
			}
			prev = next
		}
	}

	if cfg.validate {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}
	g.Freeze()

	return g, nil
}
