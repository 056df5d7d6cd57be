package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/streetpath/core"
)

// ErrUnknownFrontier indicates a frontier name that ParseFrontier does not know.
var ErrUnknownFrontier = errors.New("dijkstra: unknown frontier")

// Frontier selects the data structure used to find the next node to settle.
type Frontier int

const (
	// FrontierScan scans every node on each step.
	FrontierScan Frontier = iota
	// FrontierHeap keeps a binary heap of (distance, node ID) entries.
	FrontierHeap
)

// String returns the lowercase name used by ParseFrontier.
func (f Frontier) String() string {
	switch f {
	case FrontierScan:
		return "scan"
	case FrontierHeap:
		return "heap"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "scan" or "heap" to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch s {
	case "scan", "":
		return FrontierScan, nil
	case "heap":
		return FrontierHeap, nil
	default:
		return FrontierScan, fmt.Errorf("%w: %q", ErrUnknownFrontier, s)
	}
}

// Options configures ShortestPath.
//
// Trace    - record a TraceEntry per step.
// Frontier - FrontierScan or FrontierHeap.
// Ctx      - checked once per step; nil means context.Background().
type Options struct {
	Trace    bool
	Frontier Frontier
	Ctx      context.Context
}

// DefaultOptions returns the options ShortestPath uses when none are given:
// no trace, scan frontier, background context.
func DefaultOptions() Options {
	return Options{
		Trace:    false,
		Frontier: FrontierScan,
		Ctx:      context.Background(),
	}
}

// Option is a functional option for ShortestPath.
type Option func(*Options)

// WithTrace enables step-by-step tracing.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithFrontier selects the frontier implementation.
// Panics on a value other than FrontierScan or FrontierHeap.
func WithFrontier(f Frontier) Option {
	if f != FrontierScan && f != FrontierHeap {
		panic(fmt.Sprintf("dijkstra: WithFrontier(%d)", int(f)))
	}

	return func(o *Options) { o.Frontier = f }
}

// WithContext makes the search cancellable. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("dijkstra: WithContext(nil)")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// Event classifies a TraceEntry.
type Event int

const (
	// EventInit is the state right after initialization.
	EventInit Event = iota
	// EventSettle is a node taken from the frontier and relaxed.
	EventSettle
	// EventTarget is the target taken from the frontier; the search stops.
	EventTarget
	// EventExhausted means no reachable node was left in the frontier.
	EventExhausted
)

// String returns a short lowercase name for e.
func (e Event) String() string {
	switch e {
	case EventInit:
		return "init"
	case EventSettle:
		return "settle"
	case EventTarget:
		return "target"
	case EventExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// MarshalText encodes e by name.
func (e Event) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// Relaxation records one incident edge considered while settling a node.
//
// Old is dist(Neighbor) before the step, Candidate is dist(u)+Weight and New is
// dist(Neighbor) after it. Relaxed reports Candidate < Old.
type Relaxation struct {
	Neighbor  core.NodeID
	Edge      core.EdgeID
	Label     string
	Weight    float64
	Old       float64
	Candidate float64
	New       float64
	Relaxed   bool
}

// TraceEntry is one step of the search with post-step snapshots.
//
// Dist and Prev are indexed by NodeID. Frontier lists the nodes still in the
// frontier ordered by tentative distance then node ID, +Inf entries last.
type TraceEntry struct {
	Iteration   int
	Event       Event
	Popped      core.NodeID
	Relaxations []Relaxation
	Dist        []float64
	Prev        []core.NodeID
	Frontier    []core.NodeID
}

// Result is the outcome of one query.
//
// Path is empty when the target is unreachable and holds just the start for
// the identity query. Labels and Edges have len(Path)-1 entries when non-empty.
type Result struct {
	Start  *core.Node
	End    *core.Node
	Path   []*core.Node
	Edges  []*core.Edge
	Labels []string
	Total  float64
	Trace  []TraceEntry
}

// Reachable reports whether a path was found.
func (r *Result) Reachable() bool { return r != nil && len(r.Path) > 0 }

// Identity reports whether the query had the same start and end.
func (r *Result) Identity() bool { return r != nil && len(r.Path) == 1 }
