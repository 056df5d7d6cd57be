// Package builder turns named polylines into a frozen road-network graph.
//
// Every consecutive point pair of a polyline becomes one undirected edge:
//
//   - both endpoints are resolved (or created) by their exact coordinate key,
//     so shared vertices stitch polylines into a network;
//   - the edge weight is the haversine distance in meters (replaceable with
//     WithDistanceFunc);
//   - the edge label is the polyline name, or the default label when the name
//     is empty (WithDefaultLabel).
//
// Polylines with fewer than two points contribute nothing. Parallel edges are
// kept, self-loops from repeated points are kept. Node creation order follows
// the first occurrence of each coordinate in input order, which makes the
// shortest-path tie-break reproducible across builds of the same input.
//
// Errors:
//
//	ErrBadWeight              - the distance function produced a negative,
//	                            NaN or infinite value.
//	core.ErrCorruptAdjacency  - post-build validation failed.
//
// Complexity: O(P) time and memory for P total points.
package builder
