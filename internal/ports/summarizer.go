package ports

import "context"

type SummarizerService interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
