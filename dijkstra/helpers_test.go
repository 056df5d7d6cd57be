package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/streetpath/builder"
	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/geo"
	"github.com/stretchr/testify/require"
)

// unitLength makes every segment one meter long.
var unitLength = builder.WithDistanceFunc(func(a, b geo.Coordinate) float64 { return 1 })

// mustBuild builds lines and fails the test on error.
func mustBuild(t testing.TB, lines []builder.Polyline, opts ...builder.Option) *core.Graph {
	t.Helper()
	g, err := builder.Build(lines, opts...)
	require.NoError(t, err)

	return g
}

// line is shorthand for a polyline from lat/lon pairs.
func line(name string, latlon ...float64) builder.Polyline {
	pts := make([]geo.Coordinate, 0, len(latlon)/2)
	for i := 0; i+1 < len(latlon); i += 2 {
		pts = append(pts, geo.Coordinate{Lat: latlon[i], Lon: latlon[i+1]})
	}

	return builder.Polyline{Name: name, Points: pts}
}

// meshLines returns a size x size street mesh with slightly irregular
// spacing so that distinct routes rarely tie. Horizontal streets are named
// "H<i>", vertical ones "V<j>".
func meshLines(size int) []builder.Polyline {
	at := func(i, j int) (float64, float64) {
		return float64(i)*0.001 + float64(j)*0.00007, float64(j)*0.001 + float64(i*i)*0.00003
	}
	var lines []builder.Polyline
	for i := 0; i < size; i++ {
		var h, v []float64
		for j := 0; j < size; j++ {
			lat, lon := at(i, j)
			h = append(h, lat, lon)
			lat, lon = at(j, i)
			v = append(v, lat, lon)
		}
		lines = append(lines, line("H"+string(rune('0'+i)), h...), line("V"+string(rune('0'+i)), v...))
	}

	return lines
}

// meshGraph builds meshLines(size).
func meshGraph(t testing.TB, size int) *core.Graph {
	t.Helper()

	return mustBuild(t, meshLines(size))
}

// pathIDs returns the NodeIDs along a path.
func pathIDs(path []*core.Node) []core.NodeID {
	out := make([]core.NodeID, len(path))
	for i, n := range path {
		out[i] = n.ID()
	}

	return out
}
