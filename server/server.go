package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/streetpath/session"
)

// Defaults applied by New.
const (
	DefaultMaxUploadBytes int64 = 32 << 20
	shutdownTimeout             = 10 * time.Second
	readHeaderTimeout           = 10 * time.Second
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("server: WithLogger(nil)")
	}

	return func(s *Server) { s.log = l }
}

// WithMetrics uses m instead of a fresh Metrics. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("server: WithMetrics(nil)")
	}

	return func(s *Server) { s.metrics = m }
}

// WithCORSOrigins restricts cross-origin requests to origins; "*" allows all.
// Panics when origins is empty.
func WithCORSOrigins(origins ...string) Option {
	if len(origins) == 0 {
		panic("server: WithCORSOrigins needs at least one origin")
	}

	return func(s *Server) { s.origins = origins }
}

// WithMaxUploadBytes caps the size of POST /graph bodies. Panics on n <= 0.
func WithMaxUploadBytes(n int64) Option {
	if n <= 0 {
		panic("server: WithMaxUploadBytes must be positive")
	}

	return func(s *Server) { s.maxUpload = n }
}

// WithTrace allows or forbids trace requests. Allowed by default.
func WithTrace(enabled bool) Option {
	return func(s *Server) { s.traceEnabled = enabled }
}

// Server is the HTTP front end of a Session.
type Server struct {
	sess         *session.Session
	engine       *gin.Engine
	log          *slog.Logger
	metrics      *Metrics
	origins      []string
	maxUpload    int64
	traceEnabled bool
}

// New builds the gin engine and registers every route.
func New(sess *session.Session, opts ...Option) *Server {
	s := &Server{
		sess:         sess,
		log:          slog.Default(),
		origins:      []string{"*"},
		maxUpload:    DefaultMaxUploadBytes,
		traceEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log), cors.New(corsConfig(s.origins)))
	s.routes(r)
	s.engine = r

	return s
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	for _, o := range origins {
		if o == "*" {
			config.AllowAllOrigins = true
		}
	}
	if !config.AllowAllOrigins {
		config.AllowOrigins = origins
	}

	return config
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	r.POST("/graph", s.handleLoadGraph)
	r.GET("/graph", s.handleGraphStats)
	r.GET("/graph/segments", s.handleSegments)
	r.GET("/nodes/nearest", s.handleNearest)

	r.POST("/selection", s.handleSelect)
	r.DELETE("/selection", s.handleResetSelection)
	r.DELETE("/selection/last", s.handleUnselect)

	r.POST("/route", s.handleRoute)
	r.POST("/route/selection", s.handleRouteSelection)
	r.GET("/route/last", s.handleLastRoute)
	r.GET("/route/last/feature", s.handleLastRouteFeature)
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		s.log.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs one line per request after it is served.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(began),
			"client_ip", c.ClientIP())
	}
}
