package services

import (
	"context"
	"errors"
	"time"

	"github.com/nulzo/agent-models/internal/core/ports"
	"github.com/nulzo/agent-models/internal/store"
	"github.com/nulzo/agent-models/internal/store/model"
	"github.com/nulzo/agent-models/pkg/api"
	"github.com/nulzo/agent-models/pkg/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName      = "github.com/nulzo/agent-models/internal/core/services"
	catalogCacheKey = "catalog:v1"
)

// RegistryService exposes the static model tables to the transport layers,
// adding tracing, miss logging and lookup analytics around each call.
type RegistryService struct {
	logger   *zap.Logger
	tracer   trace.Tracer
	recorder ports.LookupRecorder
	cache    ports.CacheService
	cacheTTL time.Duration
}

type Option func(*RegistryService)

// WithRecorder sends one event per lookup to r.
func WithRecorder(r ports.LookupRecorder) Option {
	return func(s *RegistryService) { s.recorder = r }
}

// WithCache caches the rendered catalog in c for ttl.
func WithCache(c ports.CacheService, ttl time.Duration) Option {
	return func(s *RegistryService) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func NewRegistryService(logger *zap.Logger, opts ...Option) *RegistryService {
	s := &RegistryService{
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ModelRegistry = (*RegistryService)(nil)

func (s *RegistryService) ResolveAlias(ctx context.Context, alias string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "registry.ResolveAlias",
		trace.WithAttributes(attribute.String("model.alias", alias)))
	defer span.End()

	id, err := models.ResolveAlias(alias)
	s.finish(ctx, span, models.KindAlias, alias, id, err)
	return id, err
}

func (s *RegistryService) DefaultModelFor(ctx context.Context, provider string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "registry.DefaultModelFor",
		trace.WithAttributes(attribute.String("model.provider", provider)))
	defer span.End()

	id, err := models.DefaultModelFor(provider)
	s.finish(ctx, span, models.KindProvider, provider, id, err)
	return id, err
}

func (s *RegistryService) IsValidAgentModel(ctx context.Context, value string) bool {
	_, err := s.ParseAgentModel(ctx, value)
	return err == nil
}

func (s *RegistryService) ParseAgentModel(ctx context.Context, value string) (models.AgentModel, error) {
	ctx, span := s.tracer.Start(ctx, "registry.ParseAgentModel",
		trace.WithAttributes(attribute.String("model.value", value)))
	defer span.End()

	m, err := models.ParseAgentModel(value)
	canonical := ""
	if err == nil {
		canonical = m.Canonical()
	}
	s.finish(ctx, span, models.KindAgentModel, value, canonical, err)
	return m, err
}

// Catalog renders every table. The result is served from cache when one is
// configured; cache failures fall back to building it in place.
func (s *RegistryService) Catalog(ctx context.Context) (*api.Catalog, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Catalog")
	defer span.End()

	if s.cache != nil {
		var cached api.Catalog
		err := s.cache.Get(ctx, catalogCacheKey, &cached)
		if err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &cached, nil
		}
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn("Catalog cache read failed", zap.Error(err))
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	catalog := buildCatalog()

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, catalog, s.cacheTTL); err != nil {
			s.logger.Warn("Catalog cache write failed", zap.Error(err))
		}
	}

	return catalog, nil
}

// ListAgentModels returns the agent model entries matching filter.
func (s *RegistryService) ListAgentModels(ctx context.Context, filter ports.AgentModelFilter) ([]api.AgentModel, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return applyFilters(catalog.AgentModels, filter), nil
}

func (s *RegistryService) finish(ctx context.Context, span trace.Span, kind, key, result string, err error) {
	found := err == nil
	span.SetAttributes(attribute.Bool("model.found", found))

	if !found {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup miss")
		s.logger.Debug("Registry lookup miss",
			zap.String("kind", kind),
			zap.String("key", key),
			zap.String("request_id", store.RequestIDFromContext(ctx)),
		)
	} else {
		span.SetAttributes(attribute.String("model.canonical", result))
	}

	if s.recorder == nil {
		return
	}
	s.recorder.Record(&model.LookupEvent{
		Kind:      kind,
		Key:       key,
		Result:    result,
		Found:     found,
		Source:    store.SourceFromContext(ctx),
		RequestID: store.RequestIDFromContext(ctx),
		CreatedAt: time.Now(),
	})
}

func buildCatalog() *api.Catalog {
	aliases := models.Aliases()
	defaults := models.DefaultModels()

	catalog := &api.Catalog{
		Aliases:     make([]api.AliasEntry, 0, len(aliases)),
		Defaults:    make([]api.DefaultModelEntry, 0, len(defaults)),
		AgentModels: make([]api.AgentModel, 0),
	}

	for _, alias := range models.AliasNames() {
		catalog.Aliases = append(catalog.Aliases, api.AliasEntry{Alias: alias, Model: aliases[alias]})
	}
	for _, provider := range models.Providers() {
		catalog.Defaults = append(catalog.Defaults, api.DefaultModelEntry{Provider: provider, Model: defaults[provider]})
	}
	for _, m := range models.AgentModels() {
		catalog.AgentModels = append(catalog.AgentModels, api.AgentModel{
			ID:        m.String(),
			Object:    "agent_model",
			Aliased:   m.IsAlias(),
			Canonical: m.Canonical(),
		})
	}
	return catalog
}
