// Package bfs walks a road network breadth-first, counting hops rather than
// meters, and labels its connected components.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start node and
//     returns a Result with the visit Order, the hop Depth of every node and
//     the Parent links of the BFS tree.
//   - Components partitions the graph into connected components; a query
//     between two components is always unreachable.
//   - Hooks: OnVisit may abort the walk with an error; FilterEdge prunes edges.
//   - MaxDepth limits the walk (d > 0) or disables the limit (d == 0).
//
// Determinism
//
//	Neighbors are expanded in adjacency (insertion) order, so the visit order
//	is reproducible for a given build.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartNotFound     if the start node is nil or belongs to another graph.
//   - ErrOptionViolation   if an option was invalid (e.g. negative MaxDepth).
//   - the context error on cancellation, and wrapped OnVisit errors.
package bfs
