package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiComplete(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"days\":[]}"}]},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	provider := NewGeminiProvider("google-key", Flash25)
	provider.BaseURL = server.URL + "/"
	reply, err := provider.Complete(context.Background(), ChatRequest{
		System:      "plan",
		Text:        "week",
		Images:      []string{EncodeDataURL("image/png", []byte("png-bytes"))},
		Temperature: 0.5,
		MaxTokens:   3000,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"days":[]}`, reply)

	contents := captured["contents"].([]any)
	require.Len(t, contents, 1)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Len(t, parts, 2)
	assert.Equal(t, "week", parts[0].(map[string]any)["text"])
	inline := parts[1].(map[string]any)["inlineData"].(map[string]any)
	assert.Equal(t, "image/png", inline["mimeType"])
}

func TestGeminiUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`))
	}))
	defer server.Close()

	provider := NewGeminiProvider("google-key", Flash25)
	provider.BaseURL = server.URL + "/"
	_, err := provider.Complete(context.Background(), ChatRequest{Text: "x"})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
}

func TestGeminiRejectsNonDataURLImages(t *testing.T) {
	provider := NewGeminiProvider("google-key", Flash25)
	_, err := provider.Complete(context.Background(), ChatRequest{Text: "x", Images: []string{"https://example.com/a.png"}})
	assert.ErrorIs(t, err, ErrInvalidDataURL)
}

func TestLLMModelName(t *testing.T) {
	assert.Equal(t, "gemini-2.5-pro", Pro25.String())
	assert.Equal(t, Pro25, ParseLLMModelName("gemini-2.5-pro"))
	assert.Equal(t, Flash25, ParseLLMModelName("something-else"))
	assert.ErrorIs(t, NewGeminiProvider("", Flash25).Ready(), ErrMissingCredential)
}
