package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for every failure kind the pipeline can produce.
// The delivery layer selects HTTP status and response message by
// errors.Is/As instead of parsing strings.
var (
	ErrInvalidURL            = errors.New("Invalid YouTube URL provided.")
	ErrTranscriptUnavailable = errors.New("Failed to fetch transcript.")
	ErrSummaryFailed         = errors.New("Failed to generate summary.")
	ErrQuotaExceeded         = errors.New("daily request limit reached")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailTaken            = errors.New("email already registered")
)

// TranscriptKind classifies a transcript provider failure. It only
// selects the user-facing message; control flow is the same for all.
type TranscriptKind int

const (
	TranscriptUnknown TranscriptKind = iota
	TranscriptNotConfigured
	TranscriptAuthRejected
	TranscriptNotFound
	TranscriptRateLimited
	TranscriptBadResponse
)

// TranscriptError carries provider status and raw body for the logs.
// It unwraps to ErrTranscriptUnavailable so callers match it the same
// way as an empty transcript.
type TranscriptError struct {
	Kind   TranscriptKind
	Status int
	Body   string
}

func (e *TranscriptError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transcript provider: http %d", e.Status)
	}
	return "transcript provider failed"
}

func (e *TranscriptError) Unwrap() error { return ErrTranscriptUnavailable }

// Message returns the localized text shown to the user for this kind.
// Raw provider bodies never reach the client.
func (e *TranscriptError) Message() string {
	switch e.Kind {
	case TranscriptNotConfigured:
		return "Сервис транскрипции не настроен."
	case TranscriptAuthRejected:
		return "Сервис транскрипции отклонил ключ доступа."
	case TranscriptNotFound:
		return "Субтитры для этого видео не найдены."
	case TranscriptRateLimited:
		return "Сервис транскрипции перегружен. Попробуйте позже."
	case TranscriptBadResponse:
		return "Сервис транскрипции временно недоступен."
	default:
		return ErrTranscriptUnavailable.Error()
	}
}
