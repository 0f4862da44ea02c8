package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nulzo/agent-models/internal/adapters/cache/memory"
	"github.com/nulzo/agent-models/internal/core/ports"
	"github.com/nulzo/agent-models/internal/store"
	"github.com/nulzo/agent-models/internal/store/model"
	"github.com/nulzo/agent-models/pkg/api"
	"github.com/nulzo/agent-models/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRecorder implements ports.LookupRecorder for testing
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(event *model.LookupEvent) {
	m.Called(event)
}

// MockCache implements ports.CacheService for testing
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) error {
	return m.Called(ctx, key, dest).Error(0)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestResolveAlias_RecordsHit(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("Record", mock.MatchedBy(func(e *model.LookupEvent) bool {
		return e.Kind == models.KindAlias &&
			e.Key == "sonnet" &&
			e.Result == "claude-sonnet-4-5-20250929" &&
			e.Found &&
			e.Source == "cli" &&
			e.RequestID == "req-1"
	})).Return()

	svc := NewRegistryService(zap.NewNop(), WithRecorder(rec))

	ctx := context.WithValue(context.Background(), store.ContextKeyRequestID, "req-1")
	ctx = context.WithValue(ctx, store.ContextKeySource, "cli")

	id, err := svc.ResolveAlias(ctx, "sonnet")
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5-20250929", id)

	rec.AssertExpectations(t)
}

func TestResolveAlias_RecordsMiss(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("Record", mock.MatchedBy(func(e *model.LookupEvent) bool {
		return e.Key == "gpt4" && !e.Found && e.Result == "" && e.Source == "http"
	})).Return()

	svc := NewRegistryService(zap.NewNop(), WithRecorder(rec))

	_, err := svc.ResolveAlias(context.Background(), "gpt4")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	rec.AssertExpectations(t)
}

func TestDefaultModelFor(t *testing.T) {
	svc := NewRegistryService(zap.NewNop())

	id, err := svc.DefaultModelFor(context.Background(), "claude")
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-5-20251101", id)

	_, err = svc.DefaultModelFor(context.Background(), "mistral")
	assert.True(t, models.IsNotFound(err))
}

func TestIsValidAgentModel(t *testing.T) {
	svc := NewRegistryService(zap.NewNop())
	ctx := context.Background()

	assert.True(t, svc.IsValidAgentModel(ctx, "opus"))
	assert.True(t, svc.IsValidAgentModel(ctx, "GLM-4.7"))
	assert.False(t, svc.IsValidAgentModel(ctx, "gpt4"))
}

func TestCatalog_Contents(t *testing.T) {
	svc := NewRegistryService(zap.NewNop())

	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []api.AliasEntry{
		{Alias: "haiku", Model: "claude-haiku-4-5-20251001"},
		{Alias: "opus", Model: "claude-opus-4-5-20251101"},
		{Alias: "sonnet", Model: "claude-sonnet-4-5-20250929"},
	}, catalog.Aliases)
	assert.Equal(t, []api.DefaultModelEntry{{Provider: "claude", Model: "claude-opus-4-5-20251101"}}, catalog.Defaults)

	require.Len(t, catalog.AgentModels, 4)
	assert.Equal(t, api.AgentModel{ID: "GLM-4.7", Object: "agent_model", Aliased: false, Canonical: "GLM-4.7"}, catalog.AgentModels[0])
}

func TestCatalog_UsesCache(t *testing.T) {
	cache := memory.NewMemoryCache()
	svc := NewRegistryService(zap.NewNop(), WithCache(cache, time.Minute))
	ctx := context.Background()

	first, err := svc.Catalog(ctx)
	require.NoError(t, err)

	var cached api.Catalog
	require.NoError(t, cache.Get(ctx, catalogCacheKey, &cached))
	assert.Equal(t, *first, cached)

	second, err := svc.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCatalog_CacheFailureFallsBack(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, catalogCacheKey, mock.Anything).Return(errors.New("connection refused"))
	cache.On("Set", mock.Anything, catalogCacheKey, mock.Anything, time.Minute).Return(errors.New("connection refused"))

	svc := NewRegistryService(zap.NewNop(), WithCache(cache, time.Minute))

	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog.Aliases, 3)

	cache.AssertExpectations(t)
}

func TestListAgentModels_Filters(t *testing.T) {
	svc := NewRegistryService(zap.NewNop())
	ctx := context.Background()

	all, err := svc.ListAgentModels(ctx, ports.AgentModelFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	unaliased := false
	bare, err := svc.ListAgentModels(ctx, ports.AgentModelFilter{Aliased: &unaliased})
	require.NoError(t, err)
	require.Len(t, bare, 1)
	assert.Equal(t, "GLM-4.7", bare[0].ID)

	byID, err := svc.ListAgentModels(ctx, ports.AgentModelFilter{ID: "OP"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "opus", byID[0].ID)
}
