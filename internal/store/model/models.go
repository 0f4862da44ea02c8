package model

import "time"

// LookupEvent is a single registry lookup, hit or miss.
type LookupEvent struct {
	ID        string    `db:"id" json:"id"`
	Kind      string    `db:"kind" json:"kind"`     // 'alias', 'provider', 'agent model'
	Key       string    `db:"key" json:"key"`       // what the caller asked for
	Result    string    `db:"result" json:"result"` // canonical identifier, empty on a miss
	Found     bool      `db:"found" json:"found"`
	Source    string    `db:"source" json:"source"` // 'http', 'cli'
	RequestID string    `db:"request_id" json:"request_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DailyStats aggregates lookups per day and kind.
type DailyStats struct {
	Day    string `db:"day" json:"day"`
	Kind   string `db:"kind" json:"kind"`
	Hits   int64  `db:"hits" json:"hits"`
	Misses int64  `db:"misses" json:"misses"`
}

type KeyCount struct {
	Key   string `db:"key" json:"key"`
	Count int64  `db:"count" json:"count"`
}
