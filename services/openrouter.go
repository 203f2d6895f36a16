package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel   = "anthropic/claude-sonnet-4.5"
)

// OpenRouterProvider talks to any OpenAI compatible chat completions endpoint,
// OpenRouter by default.
type OpenRouterProvider struct {
	APIKey  string
	BaseURL string
	Model   string
	// Opts are appended after the defaults, tests use them to swap the HTTP client.
	Opts []option.RequestOption
}

func NewOpenRouterProvider(apiKey, baseURL, model string) *OpenRouterProvider {
	if baseURL == "" {
		baseURL = DefaultOpenRouterBaseURL
	}
	if model == "" {
		model = DefaultOpenRouterModel
	}
	return &OpenRouterProvider{APIKey: apiKey, BaseURL: baseURL, Model: model}
}

func (p *OpenRouterProvider) Name() string {
	return "openrouter"
}

func (p *OpenRouterProvider) Ready() error {
	if p.APIKey == "" {
		return ErrMissingCredential
	}
	return nil
}

func (p *OpenRouterProvider) Complete(ctx context.Context, req ChatRequest) (string, error) {
	if err := p.Ready(); err != nil {
		return "", err
	}
	opts := []option.RequestOption{
		option.WithAPIKey(p.APIKey),
		option.WithBaseURL(p.BaseURL),
		option.WithMaxRetries(0),
	}
	opts = append(opts, p.Opts...)
	client := openai.NewClient(opts...)

	parts := []openai.ChatCompletionContentPartUnionParam{openai.TextContentPart(req.Text)}
	for _, image := range req.Images {
		parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: image,
		}))
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(parts),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{
				StatusCode: apiErr.StatusCode,
				Status:     http.StatusText(apiErr.StatusCode),
				Body:       apiErr.Message,
			}
		}
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
