package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Vovarama1992/vidbrief/internal/domain"
	"github.com/Vovarama1992/vidbrief/internal/ports"
)

const supadataBaseURL = "https://api.supadata.ai"

// SupadataClient fetches video transcripts in text mode. One GET per
// call, no retries; failures come back as *domain.TranscriptError so
// the boundary can pick the right message.
type SupadataClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSupadataClient(apiKey string, timeout time.Duration) ports.TranscriptService {
	return &SupadataClient{
		apiKey:  apiKey,
		baseURL: supadataBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type supadataResponse struct {
	Content json.RawMessage `json:"content"`
}

func (c *SupadataClient) Fetch(ctx context.Context, videoID string) (string, error) {
	if c.apiKey == "" {
		return "", &domain.TranscriptError{Kind: domain.TranscriptNotConfigured}
	}

	watchURL := "https://www.youtube.com/watch?v=" + videoID
	reqURL := fmt.Sprintf("%s/v1/transcript?url=%s&text=true",
		c.baseURL, url.QueryEscape(watchURL))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("supadata request: %w", err)
	}
	defer resp.Body.Close()

	rawResp, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", &domain.TranscriptError{
			Kind:   classifyTranscriptStatus(resp.StatusCode),
			Status: resp.StatusCode,
			Body:   string(rawResp),
		}
	}

	var parsed supadataResponse
	if err := json.Unmarshal(rawResp, &parsed); err != nil {
		// провайдер вернул HTML или мусор — считаем временным сбоем
		return "", &domain.TranscriptError{
			Kind:   domain.TranscriptBadResponse,
			Status: resp.StatusCode,
			Body:   string(rawResp),
		}
	}

	// text=true normally yields a plain string
	var text string
	if json.Unmarshal(parsed.Content, &text) == nil {
		return domain.DecodeHTMLEntities(text), nil
	}

	// fallback: array of segments, each with a text field
	var segments []struct {
		Text string `json:"text"`
	}
	if json.Unmarshal(parsed.Content, &segments) == nil && segments != nil {
		parts := make([]string, len(segments))
		for i, seg := range segments {
			parts[i] = seg.Text
		}
		return domain.DecodeHTMLEntities(strings.Join(parts, " ")), nil
	}

	// neither shape: empty transcript, caller treats it as failure
	return "", nil
}

func classifyTranscriptStatus(status int) domain.TranscriptKind {
	switch status {
	case http.StatusUnauthorized:
		return domain.TranscriptAuthRejected
	case http.StatusNotFound:
		return domain.TranscriptNotFound
	case http.StatusTooManyRequests:
		return domain.TranscriptRateLimited
	default:
		return domain.TranscriptUnknown
	}
}
