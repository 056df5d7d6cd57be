package server

import (
	"math"
	"strconv"

	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/dijkstra"
	"github.com/katalvlaran/streetpath/itinerary"
)

// meters is a distance that encodes +Inf as JSON null.
type meters float64

func (m meters) MarshalJSON() ([]byte, error) {
	f := float64(m)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

type nodeDTO struct {
	ID     int     `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Street string  `json:"street"`
}

func toNode(n *core.Node) nodeDTO {
	c := n.Coordinate()

	return nodeDTO{ID: int(n.ID()), Lat: c.Lat, Lon: c.Lon, Street: itinerary.StreetName(n)}
}

func toNodes(ns []*core.Node) []nodeDTO {
	out := make([]nodeDTO, len(ns))
	for i, n := range ns {
		out[i] = toNode(n)
	}

	return out
}

type nearestDTO struct {
	Node     nodeDTO `json:"node"`
	Distance float64 `json:"distance"`
}

type selectionDTO struct {
	Selection []nodeDTO `json:"selection"`
	Ready     bool      `json:"ready"`
}

func toSelection(ns []*core.Node) selectionDTO {
	return selectionDTO{Selection: toNodes(ns), Ready: len(ns) == 2}
}

type relaxationDTO struct {
	Neighbor  int     `json:"neighbor"`
	Edge      int     `json:"edge"`
	Label     string  `json:"label"`
	Weight    float64 `json:"weight"`
	Old       meters  `json:"old"`
	Candidate meters  `json:"candidate"`
	New       meters  `json:"new"`
	Relaxed   bool    `json:"relaxed"`
}

type traceDTO struct {
	Iteration   int             `json:"iteration"`
	Event       dijkstra.Event  `json:"event"`
	Popped      *int            `json:"popped"`
	Relaxations []relaxationDTO `json:"relaxations"`
	Dist        []meters        `json:"dist"`
	Prev        []*int          `json:"prev"`
	Frontier    []int           `json:"frontier"`
}

// nodeRef encodes core.NoNode as null.
func nodeRef(id core.NodeID) *int {
	if id == core.NoNode {
		return nil
	}
	v := int(id)

	return &v
}

func toTrace(entries []dijkstra.TraceEntry) []traceDTO {
	if entries == nil {
		return nil
	}
	out := make([]traceDTO, len(entries))
	for i, e := range entries {
		t := traceDTO{
			Iteration:   e.Iteration,
			Event:       e.Event,
			Popped:      nodeRef(e.Popped),
			Relaxations: make([]relaxationDTO, len(e.Relaxations)),
			Dist:        make([]meters, len(e.Dist)),
			Prev:        make([]*int, len(e.Prev)),
			Frontier:    make([]int, len(e.Frontier)),
		}
		for j, r := range e.Relaxations {
			t.Relaxations[j] = relaxationDTO{
				Neighbor:  int(r.Neighbor),
				Edge:      int(r.Edge),
				Label:     r.Label,
				Weight:    r.Weight,
				Old:       meters(r.Old),
				Candidate: meters(r.Candidate),
				New:       meters(r.New),
				Relaxed:   r.Relaxed,
			}
		}
		for j, d := range e.Dist {
			t.Dist[j] = meters(d)
		}
		for j, p := range e.Prev {
			t.Prev[j] = nodeRef(p)
		}
		for j, f := range e.Frontier {
			t.Frontier[j] = int(f)
		}
		out[i] = t
	}

	return out
}

type routeDTO struct {
	Reachable bool            `json:"reachable"`
	Identity  bool            `json:"identity"`
	Start     *nodeDTO        `json:"start"`
	End       *nodeDTO        `json:"end"`
	Path      []nodeDTO       `json:"path"`
	Total     float64         `json:"total"`
	Labels    []string        `json:"labels"`
	Narration []string        `json:"narration"`
	Legs      []itinerary.Leg `json:"legs"`
	Summary   string          `json:"summary"`
	Trace     []traceDTO      `json:"trace,omitempty"`
}

// Placeholders used in summaries when an endpoint is unknown.
const (
	unknownFrom = "A"
	unknownTo   = "B"
)

func toRoute(res *dijkstra.Result) routeDTO {
	from, to := unknownFrom, unknownTo
	out := routeDTO{
		Reachable: res.Reachable(),
		Identity:  res.Identity(),
		Path:      toNodes(res.Path),
		Total:     res.Total,
		Labels:    res.Labels,
		Narration: itinerary.Narrate(res),
		Legs:      itinerary.Legs(res),
		Trace:     toTrace(res.Trace),
	}
	if res.Start != nil {
		n := toNode(res.Start)
		out.Start, from = &n, n.Street
	}
	if res.End != nil {
		n := toNode(res.End)
		out.End, to = &n, n.Street
	}
	if out.Labels == nil {
		out.Labels = []string{}
	}
	if out.Narration == nil {
		out.Narration = []string{}
	}
	if out.Legs == nil {
		out.Legs = []itinerary.Leg{}
	}
	out.Summary = itinerary.Summary(res, from, to)

	return out
}

type routeRequest struct {
	Start *int `json:"start" binding:"required"`
	End   *int `json:"end" binding:"required"`
	Trace bool `json:"trace"`
}

type selectionRequest struct {
	Node *int     `json:"node"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

type traceRequest struct {
	Trace bool `json:"trace"`
}
