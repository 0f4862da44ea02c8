package ports

import "github.com/nulzo/agent-models/internal/store/model"

// LookupRecorder receives one event per registry lookup. Implementations
// must not block the caller.
type LookupRecorder interface {
	Record(event *model.LookupEvent)
}
