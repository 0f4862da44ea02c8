package api

type AliasResponse struct {
	Alias string `json:"alias"`
	Model string `json:"model"`
}

type DefaultModelResponse struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type ValidateResponse struct {
	Model     string `json:"model"`
	Valid     bool   `json:"valid"`
	Aliased   bool   `json:"aliased,omitempty"`
	Canonical string `json:"canonical,omitempty"`
}

type ResolveResponse struct {
	Object string            `json:"object"`
	Models map[string]string `json:"models"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// DailyStats is one row of the lookup usage overview.
type DailyStats struct {
	Day    string `json:"day"`
	Kind   string `json:"kind"`
	Hits   int64  `json:"hits"`
	Misses int64  `json:"misses"`
}

type KeyCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}
