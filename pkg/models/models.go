// Package models holds the fixed model tables: short aliases, per-provider
// defaults, and the closed set of identifiers accepted as an agent model.
//
// The tables are built once from literals and are never written afterwards.
// Every accessor hands back a copy, so concurrent readers need no locking.
package models

import (
	"maps"
	"slices"
)

// AgentModel is any identifier, aliased or bare, that callers may select.
type AgentModel string

const (
	Haiku  AgentModel = "haiku"
	Sonnet AgentModel = "sonnet"
	Opus   AgentModel = "opus"

	// GLM47 is accepted as-is and has no alias.
	GLM47 AgentModel = "GLM-4.7"
)

// ProviderClaude is the only provider with a configured default.
const ProviderClaude = "claude"

var aliases = map[string]string{
	string(Haiku):  "claude-haiku-4-5-20251001",
	string(Sonnet): "claude-sonnet-4-5-20250929",
	string(Opus):   "claude-opus-4-5-20251101",
}

var defaultModels = map[string]string{
	ProviderClaude: "claude-opus-4-5-20251101",
}

// identifiers that are valid agent models without going through an alias
var unaliasedAgentModels = []AgentModel{
	GLM47,
}

var agentModels = buildAgentModels()

func buildAgentModels() map[AgentModel]struct{} {
	set := make(map[AgentModel]struct{}, len(aliases)+len(unaliasedAgentModels))
	for alias := range aliases {
		set[AgentModel(alias)] = struct{}{}
	}
	for _, m := range unaliasedAgentModels {
		set[m] = struct{}{}
	}
	return set
}

// ResolveAlias returns the canonical identifier for alias. The lookup is
// exact: no trimming, normalization or case folding is applied.
func ResolveAlias(alias string) (string, error) {
	if id, ok := aliases[alias]; ok {
		return id, nil
	}
	return "", &NotFoundError{Kind: KindAlias, Key: alias, Valid: AliasNames()}
}

// DefaultModelFor returns the default canonical identifier for provider.
func DefaultModelFor(provider string) (string, error) {
	if id, ok := defaultModels[provider]; ok {
		return id, nil
	}
	return "", &NotFoundError{Kind: KindProvider, Key: provider, Valid: Providers()}
}

// IsValidAgentModel reports whether value belongs to the agent model set.
func IsValidAgentModel(value string) bool {
	_, ok := agentModels[AgentModel(value)]
	return ok
}

// ParseAgentModel converts value into an AgentModel, failing when it is not
// part of the closed set.
func ParseAgentModel(value string) (AgentModel, error) {
	if !IsValidAgentModel(value) {
		valid := make([]string, 0, len(agentModels))
		for _, m := range AgentModels() {
			valid = append(valid, string(m))
		}
		return "", &NotFoundError{Kind: KindAgentModel, Key: value, Valid: valid}
	}
	return AgentModel(value), nil
}

// IsAlias reports whether m is reachable through the alias table.
func (m AgentModel) IsAlias() bool {
	_, ok := aliases[string(m)]
	return ok
}

// Canonical returns the identifier sent to the provider: the aliased target
// for an alias, the value itself for a bare identifier.
func (m AgentModel) Canonical() string {
	if id, ok := aliases[string(m)]; ok {
		return id
	}
	return string(m)
}

func (m AgentModel) String() string {
	return string(m)
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	return maps.Clone(aliases)
}

// DefaultModels returns a copy of the provider default table.
func DefaultModels() map[string]string {
	return maps.Clone(defaultModels)
}

// AliasNames returns the alias keys in sorted order.
func AliasNames() []string {
	return slices.Sorted(maps.Keys(aliases))
}

// Providers returns the providers that have a default model, sorted.
func Providers() []string {
	return slices.Sorted(maps.Keys(defaultModels))
}

// AgentModels returns every valid agent model, sorted.
func AgentModels() []AgentModel {
	return slices.Sorted(maps.Keys(agentModels))
}
