package services

import (
	"strings"

	"github.com/nulzo/agent-models/internal/core/ports"
	"github.com/nulzo/agent-models/pkg/api"
)

func applyFilters(list []api.AgentModel, filter ports.AgentModelFilter) []api.AgentModel {
	filtered := make([]api.AgentModel, 0, len(list))
	for _, m := range list {
		if matchesFilter(m, filter) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func matchesFilter(m api.AgentModel, f ports.AgentModelFilter) bool {
	if f.ID != "" && !strings.Contains(strings.ToLower(m.ID), strings.ToLower(f.ID)) {
		return false
	}
	if f.Aliased != nil && m.Aliased != *f.Aliased {
		return false
	}
	return true
}
