package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesql/internal/config"
)

const mockCompletion = `{
  "id": "chatcmpl-test",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4-turbo-preview",
  "choices": [
    {
      "index": 0,
      "message": {"role": "assistant", "content": "{\"sql_query\": \"SELECT 1\"}"},
      "finish_reason": "stop"
    }
  ],
  "usage": {"prompt_tokens": 50, "completion_tokens": 20, "total_tokens": 70}
}`

func TestOpenAICompletePassesWireFields(t *testing.T) {
	var captured map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mockCompletion))
	}))
	defer ts.Close()

	provider, err := NewOpenAI(&config.OpenAIConfig{
		APIKey:         "test-key",
		APIEndpoint:    ts.URL,
		PrimaryModel:   "gpt-4-turbo-preview",
		Temperature:    0.3,
		MaxTokens:      2000,
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	resp, err := provider.Complete(context.Background(), "system text", "user text",
		WithJSONMode(),
		WithReasoningEffort("medium"),
	)
	require.NoError(t, err)

	assert.Equal(t, `{"sql_query": "SELECT 1"}`, resp.Content)
	assert.Equal(t, int64(70), resp.Usage.TotalTokens)

	assert.Equal(t, "gpt-4-turbo-preview", captured["model"])
	assert.Equal(t, "medium", captured["reasoning_effort"])

	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok, "response_format should be present")
	assert.Equal(t, "json_object", format["type"])

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
}

func TestOpenAICompleteModelOverride(t *testing.T) {
	var captured map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mockCompletion))
	}))
	defer ts.Close()

	provider, err := NewOpenAI(&config.OpenAIConfig{
		APIKey:         "test-key",
		APIEndpoint:    ts.URL,
		PrimaryModel:   "gpt-4-turbo-preview",
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	_, err = provider.Complete(context.Background(), "s", "u", WithModel("gpt-3.5-turbo-1106"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo-1106", captured["model"])

	// No JSON mode or effort requested: fields stay off the wire.
	assert.NotContains(t, captured, "response_format")
	assert.NotContains(t, captured, "reasoning_effort")
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAI(&config.OpenAIConfig{})
	assert.Error(t, err)
}
