package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkwain/reviewbot/internal/config"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestInvoker(rt roundTripFunc) *HTTPInvoker {
	inv := NewHTTPInvoker(config.ProviderConfig{
		BaseURL: "http://mock",
		APIKey:  "key",
		Model:   "test-model",
	})
	inv.client = &http.Client{Transport: rt}
	return inv
}

func chatReply(content string) *http.Response {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"finish_reason": "stop", "message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(string(body))),
	}
}

func TestReviewSendsRequestAndParses(t *testing.T) {
	t.Parallel()

	inv := newTestInvoker(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &req))
		require.Equal(t, "test-model", req["model"])
		messages := req["messages"].([]interface{})
		require.Len(t, messages, 2)
		require.Equal(t, "system", messages[0].(map[string]interface{})["role"])

		return chatReply(`{"summary": "fine", "severity": "APPROVED", "recommended_action": "APPROVE"}`), nil
	})

	a, err := inv.Review(context.Background(), "instructions", "content")
	require.NoError(t, err)
	require.False(t, a.Degraded)
	require.Equal(t, SeverityApproved, a.Severity)
	require.Equal(t, ActionApprove, a.RecommendedAction)
}

func TestReviewDegradesOnUnstructuredContent(t *testing.T) {
	t.Parallel()

	inv := newTestInvoker(func(r *http.Request) (*http.Response, error) {
		return chatReply("sorry, I cannot produce JSON today"), nil
	})

	a, err := inv.Review(context.Background(), "i", "c")
	require.NoError(t, err)
	require.True(t, a.Degraded)
	require.Equal(t, ActionComment, a.RecommendedAction)
	require.Empty(t, a.Issues)
}

func TestReviewFailsOnHTTPError(t *testing.T) {
	t.Parallel()

	inv := newTestInvoker(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader("upstream down")),
		}, nil
	})

	_, err := inv.Review(context.Background(), "i", "c")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 502")
}

func TestReviewFailsOnEmptyChoices(t *testing.T) {
	t.Parallel()

	inv := newTestInvoker(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader(`{"choices": []}`)),
		}, nil
	})

	_, err := inv.Review(context.Background(), "i", "c")
	require.Error(t, err)
}

func TestPing(t *testing.T) {
	t.Parallel()

	inv := newTestInvoker(func(r *http.Request) (*http.Response, error) {
		return chatReply("OK"), nil
	})
	require.NoError(t, inv.Ping(context.Background()))
}
