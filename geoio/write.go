package geoio

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/dijkstra"
	"github.com/katalvlaran/streetpath/geo"
)

// SegmentsCollection exports every edge of g as a two-point LineString
// feature, in insertion order, with name, named, length and edge properties.
// A nil graph gives an empty collection.
func SegmentsCollection(g *core.Graph) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if g == nil {
		return fc
	}
	for _, e := range g.Edges() {
		a, b := e.Endpoints()
		f := geojson.NewFeature(orb.LineString{geo.ToPoint(a.Coordinate()), geo.ToPoint(b.Coordinate())})
		f.ID = int(e.ID())
		f.Properties[NameProperty] = e.Label()
		f.Properties["named"] = e.Named()
		f.Properties["length"] = e.Weight()
		f.Properties["from"] = int(a.ID())
		f.Properties["to"] = int(b.ID())
		fc.Append(f)
	}

	return fc
}

// PathFeature exports a computed path. A reachable result becomes a
// LineString through the path nodes, the identity result a Point, and an
// unreachable result nil.
func PathFeature(res *dijkstra.Result) *geojson.Feature {
	if !res.Reachable() {
		return nil
	}

	var f *geojson.Feature
	if res.Identity() {
		f = geojson.NewFeature(geo.ToPoint(res.Path[0].Coordinate()))
	} else {
		ls := make(orb.LineString, len(res.Path))
		for i, n := range res.Path {
			ls[i] = geo.ToPoint(n.Coordinate())
		}
		f = geojson.NewFeature(ls)
	}

	nodes := make([]int, len(res.Path))
	for i, n := range res.Path {
		nodes[i] = int(n.ID())
	}
	labels := res.Labels
	if labels == nil {
		labels = []string{}
	}
	f.Properties["total"] = res.Total
	f.Properties["labels"] = labels
	f.Properties["nodes"] = nodes

	return f
}
