package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoSummary is one finished summarization, immutable after insert.
type VideoSummary struct {
	ID        uuid.UUID `db:"id"`
	UserID    int       `db:"user_id"`
	VideoURL  string    `db:"video_url"`
	Summary   string    `db:"summary"`
	CreatedAt time.Time `db:"created_at"`
}
