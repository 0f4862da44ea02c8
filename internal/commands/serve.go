package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nulzo/agent-models/internal/adapters/cache/memory"
	rediscache "github.com/nulzo/agent-models/internal/adapters/cache/redis"
	"github.com/nulzo/agent-models/internal/analytics"
	"github.com/nulzo/agent-models/internal/config"
	"github.com/nulzo/agent-models/internal/core/ports"
	"github.com/nulzo/agent-models/internal/core/services"
	"github.com/nulzo/agent-models/internal/platform/logger"
	"github.com/nulzo/agent-models/internal/platform/otel"
	"github.com/nulzo/agent-models/internal/server"
	"github.com/nulzo/agent-models/internal/store/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(opts *options) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
					return err
				}
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to a config file (default ./config.yaml)")
	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, opts *options) error {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	if opts.debug {
		logCfg.Level = "debug"
	}
	logger.Initialize(logCfg)
	defer logger.Sync()
	log := logger.Get()

	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.Bool("redis", cfg.Redis.Enabled),
		zap.Bool("database", cfg.Database.Enabled),
		zap.Bool("tracing", cfg.Tracing.Enabled),
	)

	if cfg.Tracing.Enabled {
		shutdown, err := otel.InitTracer(cfg.Tracing.ServiceName, opts.version, log, os.Stderr)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Warn("Tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	cache, closeCache, err := newCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	registryOpts := []services.Option{services.WithCache(cache, cfg.Cache.TTL)}
	var serverOpts []server.Option
	serverOpts = append(serverOpts, server.WithVersion(opts.version))

	if cfg.Database.Enabled {
		repo, err := sqlite.NewSQLiteStorage(cfg.Database.DSN, log)
		if err != nil {
			return err
		}
		defer func() { _ = repo.Close() }()

		ingestor := analytics.NewIngestor(log, repo)
		ingestor.Start(context.WithoutCancel(ctx))
		// runs before repo.Close
		defer ingestor.Stop()

		registryOpts = append(registryOpts, services.WithRecorder(ingestor))
		serverOpts = append(serverOpts, server.WithAnalytics(analytics.NewService(repo)))
	}

	registry := services.NewRegistryService(log, registryOpts...)

	srv, err := server.New(cfg, log, registry, serverOpts...)
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}

// newCache picks Redis when enabled and the in-process cache otherwise.
func newCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (ports.CacheService, func(), error) {
	if !cfg.Redis.Enabled {
		return memory.NewMemoryCache(), func() {}, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c, err := rediscache.NewRedisCache(pingCtx, rediscache.Config{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		KeyPrefix:    "agentmodels:",
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}

	log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	return c, func() { _ = c.Close() }, nil
}
