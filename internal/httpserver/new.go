package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"smart-travel-planner/internal/middleware"
	"smart-travel-planner/internal/planner"
	"smart-travel-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	tracingEnabled bool
	metricsEnabled bool
	mw             middleware.Middleware
	ready          func(ctx context.Context) error

	// Planner domain
	plannerUC planner.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TracingEnabled  bool
	MetricsEnabled  bool
	RateLimitPerMin int
	// ReadyCheck backs /ready; nil means always ready.
	ReadyCheck func(ctx context.Context) error

	PlannerUseCase planner.UseCase
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		tracingEnabled: cfg.TracingEnabled,
		metricsEnabled: cfg.MetricsEnabled,
		mw:             middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimitPerMin}),
		ready:          cfg.ReadyCheck,
		plannerUC:      cfg.PlannerUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.plannerUC == nil {
		return errors.New("planner use case is required")
	}
	return nil
}

// Handler exposes the router, for tests and embedding.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
