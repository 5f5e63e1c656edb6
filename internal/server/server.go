package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tupyy/async-engine/internal/config"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	srv *http.Server
}

// NewServer builds the admin server. registerHandlerFn receives the /api/v1
// group; metrics from gatherer are served on /metrics.
func NewServer(cfg *config.Configuration, gatherer prometheus.Gatherer, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	switch cfg.Server.ServerMode {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "dev":
		gin.SetMode(gin.DebugMode)
	default:
		return nil, fmt.Errorf("unknown server mode %q", cfg.Server.ServerMode)
	}

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logger := zap.L().Named("http")

	engine := gin.New()
	engine.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
	)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := engine.Group("/api/v1")
	registerHandlerFn(api)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start blocks until the server stops. It returns nil after Stop.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	zap.S().Named("server").Infow("starting server", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	zap.S().Named("server").Info("stopping server")
	return s.srv.Shutdown(ctx)
}
