package itinerary

import (
	"fmt"

	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/dijkstra"
)

const (
	// UnknownSegment replaces an empty edge label in a narration.
	UnknownSegment = "Unknown segment"
	// UnknownLocation names a node with no incident edges.
	UnknownLocation = "Unknown location"
)

// Leg is a run of consecutive edges sharing one label.
type Leg struct {
	Label    string  `json:"label"`
	Distance float64 `json:"distance"`
	Edges    int     `json:"edges"`
}

// Narrate returns one line per traversed edge, in path order.
// It is empty for unreachable and identity results.
func Narrate(res *dijkstra.Result) []string {
	if res == nil {
		return nil
	}
	out := make([]string, len(res.Labels))
	for i, l := range res.Labels {
		out[i] = display(l)
	}

	return out
}

// Legs merges consecutive edges with the same label, summing their lengths.
func Legs(res *dijkstra.Result) []Leg {
	if res == nil || len(res.Edges) == 0 {
		return nil
	}
	var legs []Leg
	for _, e := range res.Edges {
		label := display(e.Label())
		if n := len(legs); n > 0 && legs[n-1].Label == label {
			legs[n-1].Distance += e.Weight()
			legs[n-1].Edges++

			continue
		}
		legs = append(legs, Leg{Label: label, Distance: e.Weight(), Edges: 1})
	}

	return legs
}

// StreetName describes a node by the first named street touching it,
// falling back to the first incident edge label and then UnknownLocation.
func StreetName(n *core.Node) string {
	if n == nil || n.Degree() == 0 {
		return UnknownLocation
	}
	for _, e := range n.Edges() {
		if e.Named() && e.Label() != "" {
			return e.Label()
		}
	}
	if l := n.Edges()[0].Label(); l != "" {
		return l
	}

	return UnknownLocation
}

// Summary returns the one-line outcome of a query between two named places.
func Summary(res *dijkstra.Result, from, to string) string {
	if !res.Reachable() {
		return fmt.Sprintf("No path found between %s and %s.", from, to)
	}

	return fmt.Sprintf("Total: %.2f m. From %s to %s.", res.Total, from, to)
}

func display(label string) string {
	if label == "" {
		return UnknownSegment
	}

	return label
}
