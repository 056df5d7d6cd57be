// Package itinerary turns a shortest-path Result into text for people:
// per-edge street lines, merged legs, the name of a picked location and a
// one-line summary.
package itinerary
