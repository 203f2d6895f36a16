package services

import (
	"context"
	"errors"
	"fmt"
)

// ChatRequest is one multimodal completion: a system prompt, a user text and
// optional images as data URLs, in the order the model should see them.
type ChatRequest struct {
	System      string
	Text        string
	Images      []string
	Temperature float64
	MaxTokens   int64
}

type LLMProvider interface {
	Name() string
	// Ready reports ErrMissingCredential when the provider cannot be called.
	Ready() error
	// Complete returns the raw text of the first choice. An empty reply is not
	// an error at this level.
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

var ErrMissingCredential = errors.New("AI service credential is not configured")

type UpstreamError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI service error: %d %s", e.StatusCode, e.Status)
}
