package snapshot

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotTableName = "solidaria.snapshots"

var snapshotSchema = []string{
	`CREATE SCHEMA IF NOT EXISTS solidaria`,
	`CREATE TABLE IF NOT EXISTS solidaria.snapshots (
		key        text PRIMARY KEY,
		data       jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// Postgres keeps the blob in a single JSONB row, keyed so several
// deployments can share a database.
type Postgres struct {
	pool *pgxpool.Pool
	key  string
}

// Connect opens a pool and ensures the snapshot table exists.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolConfig.MaxConnIdleTime = 15 * time.Minute
	poolConfig.MaxConnLifetime = 45 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, stmt := range snapshotSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure snapshot table: %w", err)
		}
	}

	return pool, nil
}

func NewPostgres(pool *pgxpool.Pool, key string) *Postgres {
	return &Postgres{pool: pool, key: key}
}

func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	query, args, err := psql().
		Select("data").
		From(snapshotTableName).
		Where(sq.Eq{"key": p.key}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build snapshot query: %w", err)
	}

	var row struct {
		Data []byte `db:"data"`
	}
	err = pgxscan.Get(ctx, p.pool, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch snapshot %s: %w", p.key, err)
	}

	return row.Data, nil
}

func (p *Postgres) Save(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO solidaria.snapshots (key, data)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	_, err := p.pool.Exec(ctx, query, p.key, data)
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", p.key, err)
	}

	return nil
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
