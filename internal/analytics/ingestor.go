package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/nulzo/agent-models/internal/store"
	"github.com/nulzo/agent-models/internal/store/model"
	"go.uber.org/zap"
)

// Ingestor handles the asynchronous persistence of lookup events.
type Ingestor interface {
	Record(event *model.LookupEvent)
	Start(ctx context.Context)
	Stop()
}

type Option func(*ingestor)

func WithBatchSize(n int) Option {
	return func(i *ingestor) { i.batchSize = n }
}

func WithFlushInterval(d time.Duration) Option {
	return func(i *ingestor) { i.flushTime = d }
}

func WithBufferSize(n int) Option {
	return func(i *ingestor) { i.bufferSize = n }
}

type ingestor struct {
	logger     *zap.Logger
	repo       store.Repository
	events     chan *model.LookupEvent
	batchSize  int
	bufferSize int
	flushTime  time.Duration

	mu      sync.RWMutex
	stopped bool
	done    chan struct{}
}

func NewIngestor(logger *zap.Logger, repo store.Repository, opts ...Option) Ingestor {
	i := &ingestor{
		logger:     logger,
		repo:       repo,
		batchSize:  50,
		bufferSize: 10000,
		flushTime:  5 * time.Second,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.events = make(chan *model.LookupEvent, i.bufferSize)
	return i
}

// Record never blocks; events are dropped when the buffer is full or the
// ingestor has been stopped.
func (i *ingestor) Record(event *model.LookupEvent) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.stopped {
		return
	}

	select {
	case i.events <- event:
	default:
		i.logger.Warn("Analytics buffer full, dropping lookup event",
			zap.String("kind", event.Kind),
			zap.String("key", event.Key),
		)
	}
}

func (i *ingestor) Start(ctx context.Context) {
	go i.worker(ctx)
}

// Stop closes the buffer and waits for the final flush.
func (i *ingestor) Stop() {
	i.mu.Lock()
	if i.stopped {
		i.mu.Unlock()
		return
	}
	i.stopped = true
	close(i.events)
	i.mu.Unlock()

	<-i.done
}

func (i *ingestor) worker(ctx context.Context) {
	defer close(i.done)

	batch := make([]*model.LookupEvent, 0, i.batchSize)
	ticker := time.NewTicker(i.flushTime)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		err := i.repo.WithTx(context.Background(), func(tx store.Repository) error {
			for _, event := range batch {
				if err := tx.Lookups().Log(context.Background(), event); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			i.logger.Error("Failed to persist lookup events", zap.Int("count", len(batch)), zap.Error(err))
		}
		batch = batch[:0]
	}

	for {
		select {
		case event, ok := <-i.events:
			if !ok {
				flush()
				return
			}
			batch = append(batch, event)
			if len(batch) >= i.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			// drain whatever is already buffered before exiting
			for {
				select {
				case event, ok := <-i.events:
					if !ok {
						flush()
						return
					}
					batch = append(batch, event)
				default:
					flush()
					return
				}
			}
		}
	}
}
