package api

// ValidateRequest asks whether a value is an accepted agent model.
type ValidateRequest struct {
	Model string `json:"model" binding:"required"`
}

// ResolveRequest resolves several agent models at once. Every entry must be
// a member of the agent model set.
type ResolveRequest struct {
	Models []string `json:"models" binding:"required,min=1,max=32,dive,required,agent_model"`
}
