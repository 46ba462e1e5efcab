package ports

import "context"

type TranscriptService interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}
