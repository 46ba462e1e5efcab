package ports

import "context"

type SummaryResult struct {
	Summary   string
	Remaining int
}

// SummarizeService runs the whole pipeline for one request:
// quota gate, URL parse, transcript fetch, generation, persistence.
type SummarizeService interface {
	Summarize(ctx context.Context, userID int, videoURL string) (*SummaryResult, error)
}
