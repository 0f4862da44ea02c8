package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/agent-models/internal/server/middleware"
	v1 "github.com/nulzo/agent-models/internal/server/v1"
	"github.com/nulzo/agent-models/pkg/api"
)

func (s *Server) SetupRoutes() {
	// 1. Global Middleware
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.Recovery(s.logger))
	if s.config.Tracing.Enabled {
		s.router.Use(middleware.Tracing(s.config.Tracing.ServiceName))
	}
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.ErrorHandler(s.logger))

	s.router.NoRoute(func(c *gin.Context) {
		_ = c.Error(api.NotFoundError("Route not found"))
	})
	s.router.NoMethod(func(c *gin.Context) {
		_ = c.Error(api.NewProblem(http.StatusMethodNotAllowed, "Method Not Allowed", "Method not allowed on this route"))
	})

	// 2. Health Check (Public)
	healthHandler := v1.NewHealthHandler(s.version)
	s.router.GET("/health", healthHandler.Health)

	// 3. API V1 Group
	limiter := middleware.NewRateLimiter(s.config.RateLimit.RequestsPerSecond, s.config.RateLimit.Burst, s.logger)

	v1Group := s.router.Group("/v1")
	v1Group.Use(middleware.Auth(s.config.Server.APIKeys))
	v1Group.Use(limiter.Middleware())
	{
		aliasHandler := v1.NewAliasHandler(s.registry)
		v1Group.GET("/aliases", aliasHandler.List)
		v1Group.GET("/aliases/:alias", aliasHandler.Resolve)

		providerHandler := v1.NewProviderHandler(s.registry)
		v1Group.GET("/providers", providerHandler.List)
		v1Group.GET("/providers/:provider/default", providerHandler.GetDefault)

		agentModelHandler := v1.NewAgentModelHandler(s.registry, s.validator)
		v1Group.GET("/agent-models", agentModelHandler.List)
		v1Group.POST("/agent-models/validate", agentModelHandler.Validate)
		v1Group.POST("/agent-models/resolve", agentModelHandler.Resolve)

		catalogHandler := v1.NewCatalogHandler(s.registry)
		v1Group.GET("/catalog", catalogHandler.Get)

		if s.analytics != nil {
			analyticsHandler := v1.NewAnalyticsHandler(s.analytics)
			v1Group.GET("/stats", analyticsHandler.GetUsage)
			v1Group.GET("/stats/top", analyticsHandler.GetTopKeys)
		}
	}
}
