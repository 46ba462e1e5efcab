package ports

import (
	"context"

	"github.com/Vovarama1992/vidbrief/internal/models"
)

type SummaryRepository interface {
	InsertSummary(ctx context.Context, s *models.VideoSummary) error
	ListRecent(ctx context.Context, userID, limit int) ([]models.VideoSummary, error)
	CountForUser(ctx context.Context, userID int) (int, error)
}
