package analytics

import (
	"context"
	"time"

	"github.com/nulzo/agent-models/internal/store"
	"github.com/nulzo/agent-models/internal/store/model"
)

type Service interface {
	GetUsageOverview(ctx context.Context, days int) ([]model.DailyStats, error)
	GetTopKeys(ctx context.Context, kind string, days, limit int) ([]model.KeyCount, error)
}

type service struct {
	repo store.Repository
}

func NewService(repo store.Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetUsageOverview(ctx context.Context, days int) ([]model.DailyStats, error) {
	if days <= 0 {
		days = 7 // default to last week
	}
	return s.repo.Lookups().GetDailyStats(ctx, days)
}

func (s *service) GetTopKeys(ctx context.Context, kind string, days, limit int) ([]model.KeyCount, error) {
	if days <= 0 {
		days = 7
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	since := time.Now().AddDate(0, 0, -days)
	return s.repo.Lookups().GetTopKeys(ctx, kind, since, limit)
}
