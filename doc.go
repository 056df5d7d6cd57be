// Package streetpath computes shortest walking routes over street networks
// described as GeoJSON LineStrings.
//
// Every distinct coordinate becomes a node and every consecutive pair of
// points on a street becomes an undirected edge weighted by its great-circle
// length in meters. Queries run Dijkstra's algorithm and can record a
// step-by-step trace of the search.
//
// Packages:
//
//	geo/        coordinates, haversine distance, bounding boxes
//	core/       the street graph: nodes, labelled edges, validation
//	builder/    polylines to graph, with coordinate deduplication
//	dijkstra/   shortest path with optional trace (scan or heap frontier)
//	bfs/        hop-count traversal and connected components
//	itinerary/  narration, legs and summaries of a route
//	geoio/      GeoJSON input and output
//	session/    current graph, node selection and last result
//	config/     HCL + dotenv + environment configuration, logger setup
//	server/     HTTP API with Prometheus metrics
//
// Binaries live under cmd/: streetpath serves the HTTP API and streetroute
// answers a single query from the command line.
//
// Quick example:
//
//	lines, _ := geoio.LoadFile("streets.geojson")
//	g, _ := builder.Build(lines)
//	res, _ := dijkstra.ShortestPath(g, g.Node(0), g.Node(42))
//	fmt.Println(itinerary.Summary(res, "A", "B"))
package streetpath
