// Package geo holds the geographic primitives shared by every other package:
// the Coordinate value, the haversine DistanceModel used for edge weights,
// the exact node key used for deduplication, and a bounding box.
//
// Distances:
//
//	Haversine(a, b) evaluates the great-circle distance on a sphere of radius
//	EarthRadius (6 371 000 m). The evaluation order is fixed so that edge
//	weights and path totals are reproducible bit-for-bit across runs.
//
// Keys:
//
//	Key(c) renders "lat,lon" with the shortest decimal form that round-trips.
//	No tolerance or snapping is applied: two coordinates that differ in the
//	last bit are two different nodes.
//
// Complexity:
//
//	Every function in this package is O(1) and allocation-free except Key.
package geo
