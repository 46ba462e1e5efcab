package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/vidbrief/internal/ports"
)

type ProfileHandler struct {
	users      ports.UserRepository
	usage      ports.UsageRepository
	summaries  ports.SummaryRepository
	dailyLimit int
	log        *logger.ZapLogger
}

func NewProfileHandler(
	users ports.UserRepository,
	usage ports.UsageRepository,
	summaries ports.SummaryRepository,
	dailyLimit int,
	log *logger.ZapLogger,
) *ProfileHandler {
	return &ProfileHandler{
		users:      users,
		usage:      usage,
		summaries:  summaries,
		dailyLimit: dailyLimit,
		log:        log,
	}
}

type profileResponse struct {
	Email             string `json:"email"`
	TodayCount        int    `json:"todayCount"`
	TotalCount        int    `json:"totalCount"`
	RemainingRequests int    `json:"remainingRequests"`
}

// GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing token")
		return
	}

	user, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil || user == nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	today := time.Now().UTC().Format("2006-01-02")
	todayCount, err := h.usage.CountForDay(r.Context(), userID, today)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "usage read failed",
			Error:   err,
			Fields:  map[string]any{"userID": userID},
		})
	}

	total, err := h.summaries.CountForUser(r.Context(), userID)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "summary count failed",
			Error:   err,
			Fields:  map[string]any{"userID": userID},
		})
	}

	remaining := h.dailyLimit - todayCount
	if remaining < 0 {
		remaining = 0
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Email:             user.Email,
		TodayCount:        todayCount,
		TotalCount:        total,
		RemainingRequests: remaining,
	})
}

type summaryItem struct {
	ID        string    `json:"id"`
	VideoURL  string    `json:"videoUrl"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

// GET /api/summaries — last 10 records, newest first
func (h *ProfileHandler) ListSummaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing token")
		return
	}

	records, err := h.summaries.ListRecent(r.Context(), userID, 10)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "history list failed",
			Error:   err,
			Fields:  map[string]any{"userID": userID},
		})
		writeJSONError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	items := make([]summaryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, summaryItem{
			ID:        rec.ID.String(),
			VideoURL:  rec.VideoURL,
			Summary:   rec.Summary,
			CreatedAt: rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"summaries": items})
}
