package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/streetpath/bfs"
	"github.com/katalvlaran/streetpath/builder"
	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/dijkstra"
	"github.com/katalvlaran/streetpath/geo"
)

// Sentinel errors returned by Session methods.
var (
	// ErrNoGraph indicates an operation that needs a loaded graph.
	ErrNoGraph = errors.New("session: no graph loaded")

	// ErrSelectionIncomplete indicates RouteSelection with fewer than two picks.
	ErrSelectionIncomplete = errors.New("session: two nodes must be selected")
)

// maxSelection is the number of picks that form a query.
const maxSelection = 2

// Stats describes the loaded graph.
type Stats struct {
	core.Stats
	Segments   int `json:"segments"`
	Components int `json:"components"`
	Largest    int `json:"largestComponent"`
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}

	return func(s *Session) { s.log = l }
}

// WithFrontier selects the frontier used for every query.
func WithFrontier(f dijkstra.Frontier) Option {
	opt := dijkstra.WithFrontier(f)

	return func(s *Session) { s.frontier = opt }
}

// WithBuildOptions sets builder options applied on every Load, before the
// options passed to Load itself.
func WithBuildOptions(opts ...builder.Option) Option {
	return func(s *Session) { s.buildOpts = append(s.buildOpts, opts...) }
}

// Session owns the current graph, selection and last result.
type Session struct {
	mu        sync.RWMutex
	g         *core.Graph
	stats     Stats
	selection []*core.Node
	last      *dijkstra.Result

	log       *slog.Logger
	frontier  dijkstra.Option
	buildOpts []builder.Option
}

// New returns a Session with no graph loaded.
func New(opts ...Option) *Session {
	s := &Session{
		log:      slog.Default(),
		frontier: dijkstra.WithFrontier(dijkstra.FrontierScan),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load builds a graph from lines and makes it current, clearing the
// selection and the last result. On error the previous graph stays.
func (s *Session) Load(lines []builder.Polyline, opts ...builder.Option) (Stats, error) {
	began := time.Now()
	all := append(append([]builder.Option{}, s.buildOpts...), opts...)
	g, err := builder.Build(lines, all...)
	if err != nil {
		s.log.Error("graph build failed", "lines", len(lines), "error", err)

		return Stats{}, fmt.Errorf("session: load: %w", err)
	}
	st := summarize(g)

	s.mu.Lock()
	s.g = g
	s.stats = st
	s.selection = nil
	s.last = nil
	s.mu.Unlock()

	s.log.Info("graph loaded",
		"lines", len(lines),
		"nodes", st.Nodes,
		"edges", st.Edges,
		"components", st.Components,
		"elapsed", time.Since(began))

	return st, nil
}

func summarize(g *core.Graph) Stats {
	cc := bfs.ComponentsOf(g)
	st := Stats{Stats: g.Stats(), Segments: g.EdgeCount(), Components: cc.Count()}
	if l := cc.Largest(); l >= 0 {
		st.Largest = cc.Sizes[l]
	}

	return st
}

// Graph returns the current graph, or nil before the first Load.
func (s *Session) Graph() *core.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g
}

// Stats returns the statistics of the current graph.
func (s *Session) Stats() (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.g == nil {
		return Stats{}, ErrNoGraph
	}

	return s.stats, nil
}

// Node returns the node with the given ID in the current graph, or nil.
func (s *Session) Node(id core.NodeID) *core.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.g == nil {
		return nil
	}

	return s.g.Node(id)
}

// Nearest returns the node closest to c and its distance in meters.
// It returns nil when no graph is loaded or the graph is empty.
func (s *Session) Nearest(c geo.Coordinate) (*core.Node, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.g == nil {
		return nil, 0
	}
	n, d := s.g.Nearest(c)
	if n == nil {
		return nil, 0
	}

	return n, d
}

// Route computes the shortest path between start and end on the current
// graph and stores it as the last result. Nodes that do not belong to the
// current graph give the unreachable result.
func (s *Session) Route(ctx context.Context, start, end *core.Node, trace bool) (*dijkstra.Result, error) {
	s.mu.RLock()
	g := s.g
	if g == nil {
		s.mu.RUnlock()

		return nil, ErrNoGraph
	}
	res, err := s.run(ctx, g, start, end, trace)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.g == g {
		s.last = res
	}
	s.mu.Unlock()

	return res, nil
}

// RouteIDs resolves both IDs against the current graph and routes between
// them. Unknown IDs give the unreachable result.
func (s *Session) RouteIDs(ctx context.Context, start, end core.NodeID, trace bool) (*dijkstra.Result, error) {
	s.mu.RLock()
	g := s.g
	s.mu.RUnlock()
	if g == nil {
		return nil, ErrNoGraph
	}

	return s.Route(ctx, g.Node(start), g.Node(end), trace)
}

// RouteSelection routes between the two selected nodes.
func (s *Session) RouteSelection(ctx context.Context, trace bool) (*dijkstra.Result, error) {
	sel := s.Selection()
	if len(sel) < maxSelection {
		return nil, fmt.Errorf("%w: have %d", ErrSelectionIncomplete, len(sel))
	}

	return s.Route(ctx, sel[0], sel[1], trace)
}

// run executes one query; the caller holds the read lock.
func (s *Session) run(ctx context.Context, g *core.Graph, start, end *core.Node, trace bool) (*dijkstra.Result, error) {
	opts := []dijkstra.Option{s.frontier, dijkstra.WithContext(ctx)}
	if trace {
		opts = append(opts, dijkstra.WithTrace())
	}

	began := time.Now()
	res, err := dijkstra.ShortestPath(g, start, end, opts...)
	if err != nil {
		s.log.Warn("route aborted", "error", err)

		return nil, fmt.Errorf("session: route: %w", err)
	}
	s.log.Debug("route computed",
		"reachable", res.Reachable(),
		"hops", len(res.Edges),
		"total_m", res.Total,
		"trace_steps", len(res.Trace),
		"elapsed", time.Since(began))

	return res, nil
}

// Last returns the last stored result, or nil.
func (s *Session) Last() *dijkstra.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}
