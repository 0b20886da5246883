package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nkwain/reviewbot/internal/config"
)

// HTTPInvoker talks to an OpenAI-compatible chat-completions endpoint.
type HTTPInvoker struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
}

func NewHTTPInvoker(cfg config.ProviderConfig) *HTTPInvoker {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &HTTPInvoker{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// Review sends the request and normalizes whatever text comes back. The
// error return covers transport problems only; unparsable content degrades
// inside ParseAssessment instead.
func (h *HTTPInvoker) Review(ctx context.Context, instructions, content string) (Assessment, error) {
	text, err := h.complete(ctx, []chatMessage{
		{Role: "system", Content: instructions},
		{Role: "user", Content: content},
	}, h.maxTokens)
	if err != nil {
		return Assessment{}, err
	}
	return ParseAssessment(text), nil
}

// Ping issues a minimal completion to confirm the service is reachable.
func (h *HTTPInvoker) Ping(ctx context.Context) error {
	_, err := h.complete(ctx, []chatMessage{{Role: "user", Content: "Reply with OK."}}, 8)
	return err
}

func (h *HTTPInvoker) complete(ctx context.Context, messages []chatMessage, maxTokens int) (string, error) {
	body := chatRequest{
		Model:       h.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: 0,
		Stream:      false,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	res, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("provider: status %d: %s", res.StatusCode, string(b))
	}

	var resp chatResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("provider: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		FinishReason string      `json:"finish_reason"`
		Message      chatMessage `json:"message"`
	} `json:"choices"`
}
