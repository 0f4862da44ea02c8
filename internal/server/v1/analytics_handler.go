package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/agent-models/internal/analytics"
	"github.com/nulzo/agent-models/internal/store/model"
	"github.com/nulzo/agent-models/pkg/api"
	"github.com/nulzo/agent-models/pkg/models"
)

type AnalyticsHandler struct {
	service analytics.Service
}

func NewAnalyticsHandler(service analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// GetUsage returns daily hit/miss counts per lookup kind.
//
// GET /v1/stats?days=7
func (h *AnalyticsHandler) GetUsage(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 0 {
		_ = c.Error(api.BadRequestError("Invalid 'days' parameter"))
		return
	}

	stats, err := h.service.GetUsageOverview(c.Request.Context(), days)
	if err != nil {
		_ = c.Error(api.InternalError("Failed to fetch analytics", err))
		return
	}

	out := make([]api.DailyStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, api.DailyStats(s))
	}
	c.JSON(http.StatusOK, api.NewList(out))
}

// GetTopKeys returns the most requested keys of one lookup kind.
//
// GET /v1/stats/top?kind=alias&days=7&limit=10
func (h *AnalyticsHandler) GetTopKeys(c *gin.Context) {
	kind := c.DefaultQuery("kind", models.KindAlias)
	switch kind {
	case models.KindAlias, models.KindProvider, models.KindAgentModel:
	default:
		_ = c.Error(api.BadRequestError("Invalid 'kind' parameter",
			api.WithExtension("valid", []string{models.KindAlias, models.KindProvider, models.KindAgentModel})))
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 0 {
		_ = c.Error(api.BadRequestError("Invalid 'days' parameter"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		_ = c.Error(api.BadRequestError("Invalid 'limit' parameter"))
		return
	}

	keys, err := h.service.GetTopKeys(c.Request.Context(), kind, days, limit)
	if err != nil {
		_ = c.Error(api.InternalError("Failed to fetch analytics", err))
		return
	}

	c.JSON(http.StatusOK, api.NewList(toKeyCounts(keys)))
}

func toKeyCounts(keys []model.KeyCount) []api.KeyCount {
	out := make([]api.KeyCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, api.KeyCount(k))
	}
	return out
}
