package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/vidbrief/internal/domain"
	"github.com/Vovarama1992/vidbrief/internal/ports"
)

type SummarizeHandler struct {
	svc ports.SummarizeService
	log *logger.ZapLogger
}

func NewSummarizeHandler(svc ports.SummarizeService, log *logger.ZapLogger) *SummarizeHandler {
	return &SummarizeHandler{
		svc: svc,
		log: log,
	}
}

type summarizeRequest struct {
	VideoURL string `json:"videoUrl"`
}

type summarizeResponse struct {
	Summary           string `json:"summary"`
	RemainingRequests int    `json:"remainingRequests"`
}

// POST /api/summarize
func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing token")
		return
	}

	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid json")
		return
	}

	// синтаксическая проверка до оркестрации
	if u, err := url.Parse(req.VideoURL); err != nil || u.Scheme == "" || u.Host == "" {
		writeJSONError(w, http.StatusBadRequest, "Please provide a valid URL.")
		return
	}

	res, err := h.svc.Summarize(r.Context(), userID, req.VideoURL)
	if err != nil {
		status, msg := summarizeErrorResponse(err)
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "summarize failed",
			Error:   err,
			Fields: map[string]any{
				"userID": userID,
				"status": status,
			},
		})
		writeJSONError(w, status, msg)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "summary created",
		Fields: map[string]any{
			"userID":    userID,
			"remaining": res.Remaining,
			"length":    len(res.Summary),
		},
	})

	writeJSON(w, http.StatusOK, summarizeResponse{
		Summary:           res.Summary,
		RemainingRequests: res.Remaining,
	})
}

// summarizeErrorResponse maps a pipeline error to HTTP status and a
// sanitized message. Provider bodies stay in the logs.
func summarizeErrorResponse(err error) (int, string) {
	var te *domain.TranscriptError
	if errors.As(err, &te) {
		return http.StatusInternalServerError, te.Message()
	}

	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return http.StatusBadRequest, domain.ErrInvalidURL.Error()
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusTooManyRequests, "Дневной лимит запросов исчерпан. Попробуйте завтра."
	case errors.Is(err, domain.ErrTranscriptUnavailable):
		return http.StatusInternalServerError, domain.ErrTranscriptUnavailable.Error()
	case errors.Is(err, domain.ErrSummaryFailed):
		return http.StatusInternalServerError, domain.ErrSummaryFailed.Error()
	default:
		return http.StatusInternalServerError, "An unexpected error occurred on the server."
	}
}
