package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/vidbrief/internal/domain"
	"github.com/Vovarama1992/vidbrief/internal/ports"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel   = "gemini-2.0-flash"

	summaryPrompt = "Пожалуйста, создайте краткое резюме следующего транскрипта на русском языке:\n\n"
)

// GeminiClient asks the generative-language API for a Russian summary
// of a transcript. Single request/response: no retry, no streaming,
// no conversation state.
type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *logger.ZapLogger
}

func NewGeminiClient(apiKey string, timeout time.Duration, log *logger.ZapLogger) ports.SummarizerService {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) Summarize(ctx context.Context, transcript string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not configured: %w", domain.ErrSummaryFailed)
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: summaryPrompt + transcript}}},
		},
	}

	j, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, geminiModel)

	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(j))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	rawResp, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		// тело ошибки только в лог, наружу не отдаём
		g.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "gemini non-success response",
			Fields: map[string]any{
				"status": resp.StatusCode,
				"body":   string(rawResp),
			},
		})
		return "", fmt.Errorf("gemini http %d: %w", resp.StatusCode, domain.ErrSummaryFailed)
	}

	var out geminiResponse
	if err := json.Unmarshal(rawResp, &out); err != nil {
		return "", fmt.Errorf("gemini response parse: %w", domain.ErrSummaryFailed)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates: %w", domain.ErrSummaryFailed)
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
