package api

// AliasEntry pairs a short alias with the identifier it resolves to.
type AliasEntry struct {
	Alias string `json:"alias"`
	Model string `json:"model"`
}

type DefaultModelEntry struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// AgentModel describes one member of the accepted agent model set.
type AgentModel struct {
	ID        string `json:"id"`
	Object    string `json:"object"` // always "agent_model"
	Aliased   bool   `json:"aliased"`
	Canonical string `json:"canonical"`
}

// Catalog is the full read-only view of the model tables.
type Catalog struct {
	Aliases     []AliasEntry        `json:"aliases"`
	Defaults    []DefaultModelEntry `json:"defaults"`
	AgentModels []AgentModel        `json:"agent_models"`
}

// ListResponse wraps collections the same way for every list endpoint.
type ListResponse[T any] struct {
	Object string `json:"object"`
	Data   []T    `json:"data"`
}

func NewList[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Object: "list", Data: data}
}
