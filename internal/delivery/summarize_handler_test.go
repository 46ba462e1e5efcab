package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/vidbrief/internal/domain"
	"github.com/Vovarama1992/vidbrief/internal/ports"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubAuth struct{}

func (stubAuth) Register(ctx context.Context, email, password string) (string, error) {
	return "", nil
}

func (stubAuth) Login(ctx context.Context, email, password string) (string, error) {
	return "", nil
}

func (stubAuth) ValidateToken(ctx context.Context, token string) (int, error) {
	if token == "valid-token" {
		return 7, nil
	}
	return 0, domain.ErrInvalidCredentials
}

type stubSummarize struct {
	gotUserID int
	gotURL    string
	res       *ports.SummaryResult
	err       error
}

func (s *stubSummarize) Summarize(ctx context.Context, userID int, videoURL string) (*ports.SummaryResult, error) {
	s.gotUserID = userID
	s.gotURL = videoURL
	return s.res, s.err
}

func newTestRouter(svc ports.SummarizeService) http.Handler {
	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	h := NewSummarizeHandler(svc, zl)

	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(stubAuth{}))
		pr.Post("/api/summarize", h.Summarize)
	})
	return r
}

func doSummarize(t *testing.T, router http.Handler, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Auth", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSummarizeHandlerNoToken(t *testing.T) {
	router := newTestRouter(&stubSummarize{})

	rec := doSummarize(t, router, "", `{"videoUrl":"https://youtu.be/dQw4w9WgXcQ"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSummarizeHandlerInvalidToken(t *testing.T) {
	router := newTestRouter(&stubSummarize{})

	rec := doSummarize(t, router, "wrong", `{"videoUrl":"https://youtu.be/dQw4w9WgXcQ"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSummarizeHandlerBadJSON(t *testing.T) {
	router := newTestRouter(&stubSummarize{})

	rec := doSummarize(t, router, "valid-token", `{"videoUrl":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSummarizeHandlerNotAURL(t *testing.T) {
	svc := &stubSummarize{}
	router := newTestRouter(svc)

	rec := doSummarize(t, router, "valid-token", `{"videoUrl":"invalid-url"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if svc.gotURL != "" {
		t.Errorf("orchestrator called for syntactically invalid url")
	}

	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] == "" {
		t.Errorf("missing validation message")
	}
}

func TestSummarizeHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid youtube url", domain.ErrInvalidURL, http.StatusBadRequest},
		{"quota exceeded", domain.ErrQuotaExceeded, http.StatusTooManyRequests},
		{"transcript unavailable", domain.ErrTranscriptUnavailable, http.StatusInternalServerError},
		{"transcript provider error", &domain.TranscriptError{Kind: domain.TranscriptNotFound, Status: 404}, http.StatusInternalServerError},
		{"summary failed", domain.ErrSummaryFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubSummarize{err: tt.err})

			rec := doSummarize(t, router, "valid-token", `{"videoUrl":"https://www.google.com/watch"}`)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("non-json error body: %v", err)
			}
			if body["error"] == "" {
				t.Errorf("missing error message")
			}
		})
	}
}

func TestSummarizeHandlerRawProviderBodyNotLeaked(t *testing.T) {
	svc := &stubSummarize{err: &domain.TranscriptError{
		Kind:   domain.TranscriptUnknown,
		Status: 502,
		Body:   "internal provider stacktrace",
	}}
	router := newTestRouter(svc)

	rec := doSummarize(t, router, "valid-token", `{"videoUrl":"https://youtu.be/dQw4w9WgXcQ"}`)
	if strings.Contains(rec.Body.String(), "stacktrace") {
		t.Errorf("provider body leaked to client: %s", rec.Body.String())
	}
}

func TestSummarizeHandlerSuccess(t *testing.T) {
	svc := &stubSummarize{res: &ports.SummaryResult{
		Summary:   "Это сгенерированное резюме на русском языке.",
		Remaining: 2,
	}}
	router := newTestRouter(svc)

	rec := doSummarize(t, router, "valid-token", `{"videoUrl":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body summarizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Summary != "Это сгенерированное резюме на русском языке." {
		t.Errorf("summary = %q", body.Summary)
	}
	if body.RemainingRequests != 2 {
		t.Errorf("remainingRequests = %d, want 2", body.RemainingRequests)
	}
	if svc.gotUserID != 7 {
		t.Errorf("userID = %d, want 7 from token", svc.gotUserID)
	}
}
