// Package server exposes a routing Session over HTTP with gin.
//
// Routes:
//
//	GET    /health                  liveness
//	GET    /metrics                 Prometheus exposition
//	POST   /graph                   load a GeoJSON FeatureCollection
//	GET    /graph                   graph statistics and bounds
//	GET    /graph/segments          segments as GeoJSON
//	GET    /nodes/nearest?lat=&lon= node closest to a coordinate
//	POST   /selection               pick a node by {node} or {lat, lon}
//	DELETE /selection               clear the selection
//	DELETE /selection/last          drop the last pick
//	POST   /route                   route between {start, end} node IDs
//	POST   /route/selection         route between the two picked nodes
//	GET    /route/last              last computed route
//	GET    /route/last/feature      last computed route as a GeoJSON feature
//
// Errors are returned as {"error": "..."}. Infinite distances in traces are
// encoded as null.
package server
