package infra

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/vidbrief/internal/models"
	"github.com/Vovarama1992/vidbrief/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSummaryRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresSummaryRepo(pool *pgxpool.Pool) ports.SummaryRepository {
	return &PostgresSummaryRepo{pool: pool}
}

func (r *PostgresSummaryRepo) InsertSummary(ctx context.Context, s *models.VideoSummary) error {
	query := `
		INSERT INTO video_summaries (id, user_id, video_url, summary)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	row := r.pool.QueryRow(ctx, query, s.ID, s.UserID, s.VideoURL, s.Summary)
	if err := row.Scan(&s.CreatedAt); err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}
	return nil
}

func (r *PostgresSummaryRepo) ListRecent(ctx context.Context, userID, limit int) ([]models.VideoSummary, error) {
	query := `
		SELECT id, user_id, video_url, summary, created_at
		FROM video_summaries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var out []models.VideoSummary
	for rows.Next() {
		var s models.VideoSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.VideoURL, &s.Summary, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *PostgresSummaryRepo) CountForUser(ctx context.Context, userID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM video_summaries
		WHERE user_id = $1
	`

	var count int
	err := r.pool.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}
