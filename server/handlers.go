package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/dijkstra"
	"github.com/katalvlaran/streetpath/geo"
	"github.com/katalvlaran/streetpath/geoio"
	"github.com/katalvlaran/streetpath/session"
)

func abort(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// statusOf maps session and engine errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, session.ErrNoGraph), errors.Is(err, session.ErrSelectionIncomplete):
		return http.StatusConflict
	case errors.Is(err, core.ErrForeignNode):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleLoadGraph(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
	lines, err := geoio.ReadFeatureCollection(body)
	if err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			s.metrics.observeLoad(loadInvalid, session.Stats{})
			abort(c, http.StatusRequestEntityTooLarge, err)
		case errors.Is(err, geoio.ErrInvalidGeoJSON), errors.Is(err, geoio.ErrNotFeatureCollection):
			s.metrics.observeLoad(loadInvalid, session.Stats{})
			abort(c, http.StatusBadRequest, err)
		default:
			s.metrics.observeLoad(loadError, session.Stats{})
			abort(c, http.StatusInternalServerError, err)
		}

		return
	}

	st, err := s.sess.Load(lines)
	if err != nil {
		s.metrics.observeLoad(loadError, session.Stats{})
		abort(c, http.StatusUnprocessableEntity, err)

		return
	}
	s.metrics.observeLoad(loadOK, st)
	c.JSON(http.StatusOK, st)
}

func (s *Server) handleGraphStats(c *gin.Context) {
	st, err := s.sess.Stats()
	if err != nil {
		abort(c, http.StatusNotFound, err)

		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) handleSegments(c *gin.Context) {
	g := s.sess.Graph()
	if g == nil {
		abort(c, http.StatusNotFound, session.ErrNoGraph)

		return
	}
	c.JSON(http.StatusOK, geoio.SegmentsCollection(g))
}

func parseCoordinate(c *gin.Context) (geo.Coordinate, error) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("lat: %w", err)
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("lon: %w", err)
	}

	return geo.Coordinate{Lat: lat, Lon: lon}, nil
}

var errNoNodes = errors.New("server: no node available")

func (s *Server) handleNearest(c *gin.Context) {
	at, err := parseCoordinate(c)
	if err != nil {
		abort(c, http.StatusBadRequest, err)

		return
	}
	n, d := s.sess.Nearest(at)
	if n == nil {
		abort(c, http.StatusNotFound, errNoNodes)

		return
	}
	c.JSON(http.StatusOK, nearestDTO{Node: toNode(n), Distance: d})
}

var errSelectionTarget = errors.New("server: give either node or both lat and lon")

func (s *Server) handleSelect(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)

		return
	}

	var n *core.Node
	switch {
	case req.Node != nil:
		n = s.sess.Node(core.NodeID(*req.Node))
	case req.Lat != nil && req.Lon != nil:
		n, _ = s.sess.Nearest(geo.Coordinate{Lat: *req.Lat, Lon: *req.Lon})
	default:
		abort(c, http.StatusBadRequest, errSelectionTarget)

		return
	}
	if n == nil {
		if s.sess.Graph() == nil {
			abort(c, http.StatusConflict, session.ErrNoGraph)
		} else {
			abort(c, http.StatusNotFound, errNoNodes)
		}

		return
	}

	sel, err := s.sess.Select(n)
	if err != nil {
		abort(c, statusOf(err), err)

		return
	}
	c.JSON(http.StatusOK, toSelection(sel))
}

func (s *Server) handleResetSelection(c *gin.Context) {
	s.sess.Reset()
	c.JSON(http.StatusOK, toSelection(nil))
}

func (s *Server) handleUnselect(c *gin.Context) {
	c.JSON(http.StatusOK, toSelection(s.sess.Unselect()))
}

func (s *Server) handleRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)

		return
	}

	s.respondRoute(c, func(ctx context.Context, trace bool) (*dijkstra.Result, error) {
		return s.sess.RouteIDs(ctx, core.NodeID(*req.Start), core.NodeID(*req.End), trace)
	}, req.Trace)
}

func (s *Server) handleRouteSelection(c *gin.Context) {
	var req traceRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abort(c, http.StatusBadRequest, err)

			return
		}
	}

	s.respondRoute(c, s.sess.RouteSelection, req.Trace)
}

// respondRoute runs query with the request context, records metrics and
// writes the route or the error.
func (s *Server) respondRoute(c *gin.Context, query func(context.Context, bool) (*dijkstra.Result, error), trace bool) {
	began := time.Now()
	res, err := query(c.Request.Context(), trace && s.traceEnabled)
	s.metrics.observeRoute(res, err, time.Since(began))
	if err != nil {
		abort(c, statusOf(err), err)

		return
	}
	c.JSON(http.StatusOK, toRoute(res))
}

var errNoRoute = errors.New("server: no route computed yet")

func (s *Server) handleLastRoute(c *gin.Context) {
	res := s.sess.Last()
	if res == nil {
		abort(c, http.StatusNotFound, errNoRoute)

		return
	}
	c.JSON(http.StatusOK, toRoute(res))
}

func (s *Server) handleLastRouteFeature(c *gin.Context) {
	f := geoio.PathFeature(s.sess.Last())
	if f == nil {
		abort(c, http.StatusNotFound, errNoRoute)

		return
	}
	c.JSON(http.StatusOK, f)
}
