package ports

import (
	"context"

	"github.com/nulzo/agent-models/pkg/api"
	"github.com/nulzo/agent-models/pkg/models"
)

// ModelRegistry is the lookup surface the transport layers depend on.
type ModelRegistry interface {
	// ResolveAlias returns the canonical identifier for a short alias
	ResolveAlias(ctx context.Context, alias string) (string, error)

	// DefaultModelFor returns the default identifier configured for a provider
	DefaultModelFor(ctx context.Context, provider string) (string, error)

	// IsValidAgentModel reports membership in the agent model set
	IsValidAgentModel(ctx context.Context, value string) bool

	// ParseAgentModel is IsValidAgentModel with the rejection reason attached
	ParseAgentModel(ctx context.Context, value string) (models.AgentModel, error)

	// Catalog returns every table in one read-only view
	Catalog(ctx context.Context) (*api.Catalog, error)

	// ListAgentModels returns the catalog's agent models matching filter
	ListAgentModels(ctx context.Context, filter AgentModelFilter) ([]api.AgentModel, error)
}

// AgentModelFilter narrows the agent model listing. Zero values match all.
type AgentModelFilter struct {
	ID      string // case-insensitive substring of the agent model ID
	Aliased *bool
}
