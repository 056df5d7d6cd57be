// Package session holds the state of one interactive routing session: the
// graph built from the last loaded dataset, the user's current selection of
// up to two nodes and the last query result.
//
// A Session is safe for concurrent use. Reloads take the write lock, queries
// the read lock, so no query runs across a reload. Nodes obtained before a
// reload belong to the discarded graph and are treated as not found.
package session
