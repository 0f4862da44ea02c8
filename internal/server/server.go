package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/agent-models/internal/analytics"
	"github.com/nulzo/agent-models/internal/config"
	"github.com/nulzo/agent-models/internal/core/ports"
	"github.com/nulzo/agent-models/internal/server/validator"
	"go.uber.org/zap"
)

type Server struct {
	router    *gin.Engine
	config    *config.Config
	logger    *zap.Logger
	registry  ports.ModelRegistry
	analytics analytics.Service
	validator *validator.Validator
	version   string
}

type Option func(*Server)

// WithAnalytics exposes the lookup statistics endpoints.
func WithAnalytics(svc analytics.Service) Option {
	return func(s *Server) { s.analytics = svc }
}

func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

func New(cfg *config.Config, logger *zap.Logger, registry ports.ModelRegistry, opts ...Option) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	v, err := validator.New()
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	s := &Server{
		router:    engine,
		config:    cfg,
		logger:    logger,
		registry:  registry,
		validator: v,
		version:   "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.SetupRoutes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on the configured port until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting agent model registry", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
