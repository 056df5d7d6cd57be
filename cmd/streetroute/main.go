// Command streetroute answers one shortest-path query over a GeoJSON street
// network and prints the itinerary.
//
// Endpoints are node IDs (-from, -to) or coordinates snapped to the nearest
// node (-from-at, -to-at, as "lat,lon").
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/streetpath/builder"
	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/dijkstra"
	"github.com/katalvlaran/streetpath/geo"
	"github.com/katalvlaran/streetpath/geoio"
	"github.com/katalvlaran/streetpath/itinerary"
)

var (
	errNoInput    = errors.New("streetroute: -in is required")
	errNoEndpoint = errors.New("streetroute: give -from or -from-at, and -to or -to-at")
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type endpoint struct {
	id int
	at string
}

func run(out io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("streetroute", flag.ContinueOnError)
	flagSet.SetOutput(out)
	in := flagSet.String("in", "", "GeoJSON FeatureCollection of LineString streets.")
	var from, to endpoint
	flagSet.IntVar(&from.id, "from", -1, "Start node ID.")
	flagSet.IntVar(&to.id, "to", -1, "End node ID.")
	flagSet.StringVar(&from.at, "from-at", "", "Start coordinate as lat,lon.")
	flagSet.StringVar(&to.at, "to-at", "", "End coordinate as lat,lon.")
	label := flagSet.String("label", core.DefaultLabel, "Label of unnamed streets.")
	frontierFlag := flagSet.String("frontier", "scan", "Frontier: scan or heap.")
	traceFlag := flagSet.Bool("trace", false, "Print the step-by-step trace.")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}
	if *in == "" {
		return errNoInput
	}
	frontier, err := dijkstra.ParseFrontier(*frontierFlag)
	if err != nil {
		return err
	}

	lines, err := geoio.LoadFile(*in)
	if err != nil {
		return err
	}
	g, err := builder.Build(lines, builder.WithDefaultLabel(*label))
	if err != nil {
		return err
	}

	start, err := resolve(g, from)
	if err != nil {
		return err
	}
	end, err := resolve(g, to)
	if err != nil {
		return err
	}

	opts := []dijkstra.Option{dijkstra.WithFrontier(frontier)}
	if *traceFlag {
		opts = append(opts, dijkstra.WithTrace())
	}
	res, err := dijkstra.ShortestPath(g, start, end, opts...)
	if err != nil {
		return err
	}

	return report(out, res, *traceFlag)
}

// resolve picks the node for ep; an unknown ID resolves to nil, which
// routes as unreachable.
func resolve(g *core.Graph, ep endpoint) (*core.Node, error) {
	if ep.at != "" {
		c, err := parseLatLon(ep.at)
		if err != nil {
			return nil, err
		}
		n, _ := g.Nearest(c)

		return n, nil
	}
	if ep.id < 0 {
		return nil, errNoEndpoint
	}

	return g.Node(core.NodeID(ep.id)), nil
}

func parseLatLon(s string) (geo.Coordinate, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Coordinate{}, fmt.Errorf("streetroute: coordinate %q: want lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("streetroute: latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("streetroute: longitude: %w", err)
	}

	return geo.Coordinate{Lat: lat, Lon: lon}, nil
}

func nodeName(n *core.Node) string {
	if n == nil {
		return "?"
	}

	return fmt.Sprintf("%s (#%d)", itinerary.StreetName(n), n.ID())
}

func report(out io.Writer, res *dijkstra.Result, trace bool) error {
	fmt.Fprintln(out, itinerary.Summary(res, nodeName(res.Start), nodeName(res.End)))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, leg := range itinerary.Legs(res) {
		fmt.Fprintf(tw, "%d.\t%s\t%.1f m\t%d segment(s)\n", i+1, leg.Label, leg.Distance, leg.Edges)
	}
	if trace {
		fmt.Fprintln(tw, "\nstep\tevent\tpopped\tfrontier")
		for _, e := range res.Trace {
			popped := "-"
			if e.Popped != core.NoNode {
				popped = strconv.Itoa(int(e.Popped))
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%v\n", e.Iteration, e.Event, popped, e.Frontier)
		}
	}

	return tw.Flush()
}
