package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rbarriuso/hellosvc/internal/probes"
)

// MetricsCollector is the slice of the metrics adapter the HTTP layer records to
type MetricsCollector interface {
	RecordRequest(method, path string, status int, duration time.Duration)
	IncRequestsInFlight()
	DecRequestsInFlight()
	Handler() http.Handler
}

// Server represents the HTTP server
type Server struct {
	router   *gin.Engine
	server   *http.Server
	listener net.Listener
	probes   *probes.State
	metrics  MetricsCollector
	logger   *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Port    int
	H2C     bool
	Probes  *probes.State
	Metrics MetricsCollector
	Logger  *zap.Logger
}

// NewServer creates a new HTTP server and binds its listener. A port
// that cannot be bound is a constructor error, so startup fails fast.
func NewServer(cfg *Config) (*Server, error) {
	// Set Gin mode before building the engine
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(cfg.Logger))
	router.Use(requestMetrics(cfg.Metrics))

	s := &Server{
		router:  router,
		probes:  cfg.Probes,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}

	s.setupRoutes()

	var handler http.Handler = router
	if cfg.H2C {
		handler = h2c.NewHandler(router, &http2.Server{})
	}

	// Bind on all interfaces
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind port %d: %w", cfg.Port, err)
	}
	s.listener = listener

	s.server = &http.Server{
		Addr:    listener.Addr().String(),
		Handler: handler,
	}

	return s, nil
}

// setupRoutes configures the service routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHello)

	// Probe endpoints
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ready", s.handleReady)

	// Metrics
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

// Addr returns the bound listener address
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start marks the service ready and serves until Shutdown
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.Addr()))

	s.probes.MarkReady()

	if err := s.server.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown marks the service draining, stops accepting new connections
// and lets in-flight responses complete
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	s.probes.MarkDraining()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
