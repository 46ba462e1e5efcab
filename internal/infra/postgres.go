package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPgxPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, dsn)
}

// Migrate ensures the three tables exist. Идемпотентно, гоняется на каждом старте.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS video_summaries (
			id UUID PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			video_url TEXT NOT NULL,
			summary TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_video_summaries_user
			ON video_summaries (user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS user_usage (
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			video_count INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, date)
		)`,
	}

	for _, q := range stmts {
		if _, err := pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
