package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nulzo/agent-models/internal/store"
	"github.com/nulzo/agent-models/internal/store/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) store.Repository {
	t.Helper()
	repo, err := NewSQLiteStorage(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestLookups_LogAndDailyStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	events := []*model.LookupEvent{
		{Kind: "alias", Key: "opus", Result: "claude-opus-4-5-20251101", Found: true},
		{Kind: "alias", Key: "opus", Result: "claude-opus-4-5-20251101", Found: true},
		{Kind: "alias", Key: "gpt4", Found: false},
		{Kind: "provider", Key: "claude", Result: "claude-opus-4-5-20251101", Found: true},
	}
	for _, e := range events {
		require.NoError(t, repo.Lookups().Log(ctx, e))
		assert.NotEmpty(t, e.ID)
	}

	stats, err := repo.Lookups().GetDailyStats(ctx, 7)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, model.DailyStats{Day: today, Kind: "alias", Hits: 2, Misses: 1}, stats[0])
	assert.Equal(t, model.DailyStats{Day: today, Kind: "provider", Hits: 1, Misses: 0}, stats[1])
}

func TestLookups_DailyStatsExcludesOldEvents(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	old := &model.LookupEvent{Kind: "alias", Key: "haiku", Found: true, CreatedAt: time.Now().AddDate(0, 0, -30)}
	require.NoError(t, repo.Lookups().Log(ctx, old))

	stats, err := repo.Lookups().GetDailyStats(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestLookups_GetTopKeys(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, key := range []string{"sonnet", "opus", "sonnet", "haiku", "sonnet", "opus"} {
		require.NoError(t, repo.Lookups().Log(ctx, &model.LookupEvent{Kind: "alias", Key: key, Found: true}))
	}
	require.NoError(t, repo.Lookups().Log(ctx, &model.LookupEvent{Kind: "provider", Key: "claude", Found: true}))

	keys, err := repo.Lookups().GetTopKeys(ctx, "alias", time.Now().Add(-time.Hour), 2)
	require.NoError(t, err)
	assert.Equal(t, []model.KeyCount{{Key: "sonnet", Count: 3}, {Key: "opus", Count: 2}}, keys)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := repo.WithTx(ctx, func(tx store.Repository) error {
		require.NoError(t, tx.Lookups().Log(ctx, &model.LookupEvent{Kind: "alias", Key: "opus", Found: true}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stats, err := repo.Lookups().GetDailyStats(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, stats)
}
