// Package dijkstra computes the shortest path between two nodes of a road
// network and, on request, records every step of the computation.
//
// Algorithm:
//
//   - Initialization: every node starts at +Inf except the start (0); the
//     frontier holds all nodes.
//   - Step: the frontier node with the smallest finite tentative distance is
//     taken, ties going to the node created first. When no such node is left
//     the search is exhausted. When the taken node is the target the search
//     stops without relaxing it.
//   - Relaxation: each incident edge (u, v, w) lowers dist(v) to dist(u)+w when
//     that is strictly smaller, recording u and the edge as v's predecessor.
//   - Reconstruction: predecessors are walked back from the target.
//
// Frontiers:
//
//	FrontierScan  - linear scan over node IDs, O(V² + E). Default.
//	FrontierHeap  - binary heap keyed by (distance, node ID) with lazy
//	                deletion, O((V + E) log V).
//
// Both frontiers settle nodes in exactly the same order, so results and traces
// are identical.
//
// Expected outcomes are values, not errors: a nil graph, a nil node, or a node
// created by another graph yields an unreachable Result. The only error
// ShortestPath returns is the cancellation of the context given to WithContext.
//
// Tracing (WithTrace) records one TraceEntry per step with full snapshots of
// the distance, predecessor and frontier state. It costs O(V) per step and is
// meant for teaching and debugging, not for large graphs.
package dijkstra
