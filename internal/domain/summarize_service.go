package domain

import (
	"context"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/vidbrief/internal/models"
	"github.com/Vovarama1992/vidbrief/internal/ports"
	"github.com/google/uuid"
)

// SummarizeService is the request orchestrator: quota gate, then
// parse -> fetch transcript -> generate summary -> persist. Every
// external call happens exactly once, in sequence, no retries.
type SummarizeService struct {
	transcripts ports.TranscriptService
	generator   ports.SummarizerService
	summaries   ports.SummaryRepository
	usage       ports.UsageRepository
	limit       int
	log         *logger.ZapLogger
}

func NewSummarizeService(
	transcripts ports.TranscriptService,
	generator ports.SummarizerService,
	summaries ports.SummaryRepository,
	usage ports.UsageRepository,
	limit int,
	log *logger.ZapLogger,
) *SummarizeService {
	return &SummarizeService{
		transcripts: transcripts,
		generator:   generator,
		summaries:   summaries,
		usage:       usage,
		limit:       limit,
		log:         log,
	}
}

func (s *SummarizeService) Summarize(ctx context.Context, userID int, videoURL string) (*ports.SummaryResult, error) {
	today := time.Now().UTC().Format("2006-01-02")

	// Quota gate before anything else, so a blocked user costs us
	// zero provider calls. The read is advisory; the conditional
	// upsert below is what actually holds the ceiling.
	used, err := s.usage.CountForDay(ctx, userID, today)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "usage count read failed",
			Error:   err,
			Fields:  map[string]any{"userID": userID},
		})
		used = 0
	}
	if used >= s.limit {
		return nil, ErrQuotaExceeded
	}

	videoID, ok := ExtractVideoID(videoURL)
	if !ok {
		return nil, ErrInvalidURL
	}

	transcript, err := s.transcripts.Fetch(ctx, videoID)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "transcript fetch failed",
			Error:   err,
			Fields:  map[string]any{"userID": userID, "videoID": videoID},
		})
		return nil, err
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrTranscriptUnavailable
	}

	summary, err := s.generator.Summarize(ctx, transcript)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "summary generation failed",
			Error:   err,
			Fields:  map[string]any{"userID": userID, "videoID": videoID},
		})
		return nil, err
	}
	if strings.TrimSpace(summary) == "" {
		return nil, ErrSummaryFailed
	}

	// The summary is final from here on. Counter and history writes
	// are best-effort: a store failure gets logged, never surfaced.
	remaining := s.limit - used - 1
	if count, err := s.usage.IncrementWithCeiling(ctx, userID, today, s.limit); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "usage increment failed",
			Error:   err,
			Fields:  map[string]any{"userID": userID},
		})
	} else {
		remaining = s.limit - count
	}
	if remaining < 0 {
		remaining = 0
	}

	record := &models.VideoSummary{
		ID:       uuid.New(),
		UserID:   userID,
		VideoURL: videoURL,
		Summary:  summary,
	}
	if err := s.summaries.InsertSummary(ctx, record); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "history insert failed",
			Error:   err,
			Fields:  map[string]any{"userID": userID, "videoID": videoID},
		})
	}

	return &ports.SummaryResult{
		Summary:   summary,
		Remaining: remaining,
	}, nil
}
