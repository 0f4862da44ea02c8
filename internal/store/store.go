package store

import (
	"context"
	"time"

	"github.com/nulzo/agent-models/internal/store/model"
)

type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeySource    contextKey = "source"
)

// Repository is the main contract for the data layer.
type Repository interface {
	Lookups() LookupRepository

	// transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	Close() error
}

type LookupRepository interface {
	// Log stores a single lookup event.
	Log(ctx context.Context, event *model.LookupEvent) error
	// GetDailyStats returns hit/miss counts grouped by day and kind.
	GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error)
	// GetTopKeys returns the most requested keys of a kind since the given time.
	GetTopKeys(ctx context.Context, kind string, since time.Time, limit int) ([]model.KeyCount, error)
}

// RequestIDFromContext returns the request ID injected by the HTTP layer.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

// SourceFromContext returns where the lookup came from, "http" by default.
func SourceFromContext(ctx context.Context) string {
	if src, ok := ctx.Value(ContextKeySource).(string); ok && src != "" {
		return src
	}
	return "http"
}
