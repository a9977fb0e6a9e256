package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// fakeUpstream stands in for the OpenAI-compatible endpoint and records the
// last prompt it was given.
func fakeUpstream(t *testing.T, reply string, lastPrompt *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		*lastPrompt = req.Messages[0].Content

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		})
	}))
}

func TestProviderRequiresAPIKey(t *testing.T) {
	provider := NewProvider(&Config{})
	assert.False(t, provider.Enabled())

	_, err := provider.Generate(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestProviderGenerate(t *testing.T) {
	var lastPrompt string
	upstream := fakeUpstream(t, "the answer is 7", &lastPrompt)
	defer upstream.Close()

	provider := NewProvider(&Config{
		APIKey:  "test-key",
		BaseURL: upstream.URL,
		Model:   "gemini-2.5-flash",
		Timeout: 5 * time.Second,
	})

	text, err := provider.Generate(context.Background(), "Which of these is prime?")
	require.NoError(t, err)
	assert.Equal(t, "the answer is 7", text)
	assert.Equal(t, "Which of these is prime?", lastPrompt)
}

func TestProviderTruncatesOverlengthPrompt(t *testing.T) {
	var lastPrompt string
	upstream := fakeUpstream(t, "ok", &lastPrompt)
	defer upstream.Close()

	provider := NewProvider(&Config{APIKey: "test-key", BaseURL: upstream.URL})

	_, err := provider.Generate(context.Background(), strings.Repeat("x", MaxPromptLen+500))
	require.NoError(t, err)
	assert.Len(t, lastPrompt, MaxPromptLen)
}

func TestProviderEmptyUpstreamTextIsAnError(t *testing.T) {
	var lastPrompt string
	upstream := fakeUpstream(t, "", &lastPrompt)
	defer upstream.Close()

	provider := NewProvider(&Config{APIKey: "test-key", BaseURL: upstream.URL})

	_, err := provider.Generate(context.Background(), "prompt")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoAPIKey)
}
