package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/nulzo/agent-models/internal/store"
	"github.com/nulzo/agent-models/internal/store/model"
)

// DB defines the interface for database operations (satisfied by *sqlx.DB and *sqlx.Tx)
type DB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SqliteRepository implements store.Repository
type SqliteRepository struct {
	db       *sqlx.DB // Required for starting new transactions
	executor DB       // Used for actual queries (can be *sqlx.DB or *sqlx.Tx)
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{
		db:       db,
		executor: db,
	}
}

func (r *SqliteRepository) Close() error {
	return r.db.Close()
}

func (r *SqliteRepository) WithTx(ctx context.Context, fn func(repo store.Repository) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	txRepo := &SqliteRepository{
		db:       r.db,
		executor: tx,
	}

	if err := fn(txRepo); err != nil {
		// attempt rollback, but prioritize original error
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *SqliteRepository) Lookups() store.LookupRepository {
	return &lookupRepo{db: r.executor}
}

type lookupRepo struct {
	db DB
}

func (r *lookupRepo) Log(ctx context.Context, event *model.LookupEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	event.CreatedAt = event.CreatedAt.UTC()

	query := `
		INSERT INTO lookup_events (id, kind, key, result, found, source, request_id, created_at)
		VALUES (:id, :kind, :key, :result, :found, :source, :request_id, :created_at)`
	_, err := r.db.NamedExecContext(ctx, query, event)
	return err
}

func (r *lookupRepo) GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)

	query := `
		SELECT
			date(created_at) AS day,
			kind,
			SUM(CASE WHEN found THEN 1 ELSE 0 END) AS hits,
			SUM(CASE WHEN found THEN 0 ELSE 1 END) AS misses
		FROM lookup_events
		WHERE created_at >= ?
		GROUP BY day, kind
		ORDER BY day ASC, kind ASC`

	var stats []model.DailyStats
	if err := r.db.SelectContext(ctx, &stats, query, since); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *lookupRepo) GetTopKeys(ctx context.Context, kind string, since time.Time, limit int) ([]model.KeyCount, error) {
	query := `
		SELECT key, COUNT(*) AS count
		FROM lookup_events
		WHERE kind = ? AND created_at >= ?
		GROUP BY key
		ORDER BY count DESC, key ASC
		LIMIT ?`

	var keys []model.KeyCount
	if err := r.db.SelectContext(ctx, &keys, query, kind, since.UTC(), limit); err != nil {
		return nil, err
	}
	return keys, nil
}
