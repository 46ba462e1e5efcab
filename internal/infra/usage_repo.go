package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vovarama1992/vidbrief/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUsageRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresUsageRepo(pool *pgxpool.Pool) ports.UsageRepository {
	return &PostgresUsageRepo{pool: pool}
}

func (r *PostgresUsageRepo) CountForDay(ctx context.Context, userID int, day string) (int, error) {
	query := `
		SELECT video_count
		FROM user_usage
		WHERE user_id = $1 AND date = $2
	`

	var count int
	err := r.pool.QueryRow(ctx, query, userID, day).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("count usage: %w", err)
	}

	return count, nil
}

// IncrementWithCeiling performs the increment and the ceiling check in
// one statement, so the counter cannot pass the limit even when the
// same user fires requests concurrently.
func (r *PostgresUsageRepo) IncrementWithCeiling(ctx context.Context, userID int, day string, limit int) (int, error) {
	query := `
		INSERT INTO user_usage (user_id, date, video_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, date) DO UPDATE
		SET video_count = user_usage.video_count + 1
		WHERE user_usage.video_count < $3
		RETURNING video_count
	`

	var count int
	err := r.pool.QueryRow(ctx, query, userID, day, limit).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// счётчик уже на потолке, инкремент не прошёл
			return limit, nil
		}
		return 0, fmt.Errorf("increment usage: %w", err)
	}

	return count, nil
}
