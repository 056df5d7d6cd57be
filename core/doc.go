// Package core defines the road-network graph: Node, Edge, Segment and Graph,
// together with the sentinel errors and the validation routine used to reject
// corrupted adjacency data.
//
// Model:
//
//   - A Node is a deduplicated coordinate. Its identity is the exact key
//     produced by geo.Key; IDs are dense creation indexes (0, 1, 2, ...) and
//     creation order is the tie-break used by the shortest-path engine.
//   - An Edge is one immutable record shared by both endpoints. Each endpoint
//     lists the same *Edge in its adjacency slice, so weight and label can
//     never diverge between the two directions.
//   - A Segment is the raw (from, to, label) triple of an edge, kept in
//     insertion order for renderers.
//   - A Graph owns its nodes and edges. Builders populate it through AddNode
//     and AddEdge, then call Freeze; after that it is read-only.
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Once frozen it may be read
//	from any number of goroutines without locking.
//
// Errors:
//
//	ErrGraphFrozen       - mutation attempted after Freeze.
//	ErrNilNode           - nil *Node passed to a mutating method.
//	ErrForeignNode       - node created by a different Graph.
//	ErrBadWeight         - negative, NaN or infinite edge weight.
//	ErrCorruptAdjacency  - Validate found an edge missing from (or duplicated in)
//	                       an endpoint's adjacency list.
package core
