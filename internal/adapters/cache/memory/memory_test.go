package memory

import (
	"context"
	"testing"
	"time"

	"github.com/nulzo/agent-models/internal/core/ports"
	"github.com/nulzo/agent-models/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	in := api.AliasResponse{Alias: "opus", Model: "claude-opus-4-5-20251101"}
	require.NoError(t, c.Set(ctx, "k", in, time.Minute))

	var out api.AliasResponse
	require.NoError(t, c.Get(ctx, "k", &out))
	assert.Equal(t, in, out)
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache()
	var out string
	assert.ErrorIs(t, c.Get(context.Background(), "missing", &out), ports.ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Second))
	now = now.Add(2 * time.Second)

	var out string
	assert.ErrorIs(t, c.Get(ctx, "k", &out), ports.ErrCacheMiss)
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	c := NewMemoryCache()
	now := time.Now()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	now = now.Add(24 * time.Hour)

	var out string
	require.NoError(t, c.Get(ctx, "k", &out))
	assert.Equal(t, "v", out)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var out string
	assert.ErrorIs(t, c.Get(ctx, "k", &out), ports.ErrCacheMiss)
}
