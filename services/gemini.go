package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// LLMModelName is the Gemini model used by GeminiProvider.
type LLMModelName int32

const (
	Pro25 LLMModelName = iota
	Flash25
	FlashLite25
	Flash20
)

func (t LLMModelName) String() string {
	switch t {
	case Pro25:
		return "gemini-2.5-pro"
	case Flash25:
		return "gemini-2.5-flash"
	case FlashLite25:
		return "gemini-2.5-flash-lite"
	case Flash20:
		return "gemini-2.0-flash"
	default:
		return "gemini-2.5-flash"
	}
}

// ParseLLMModelName maps a model id back to the enum, Flash25 when unknown.
func ParseLLMModelName(name string) LLMModelName {
	for _, model := range []LLMModelName{Pro25, Flash25, FlashLite25, Flash20} {
		if model.String() == name {
			return model
		}
	}
	return Flash25
}

func floatPointer(f float32) *float32 {
	return &f
}

type GeminiProvider struct {
	APIKey string
	Model  LLMModelName
	// BaseURL overrides the Gemini API endpoint, empty means the SDK default.
	BaseURL string
}

func NewGeminiProvider(apiKey string, model LLMModelName) *GeminiProvider {
	return &GeminiProvider{APIKey: apiKey, Model: model}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Ready() error {
	if p.APIKey == "" {
		return ErrMissingCredential
	}
	return nil
}

func (p *GeminiProvider) Complete(ctx context.Context, req ChatRequest) (string, error) {
	if err := p.Ready(); err != nil {
		return "", err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      p.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: p.BaseURL},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	parts := []*genai.Part{{Text: req.Text}}
	for i, image := range req.Images {
		mimeType, data, err := ParseDataURL(image)
		if err != nil {
			return "", fmt.Errorf("image %d: %w", i, err)
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: mimeType, Data: data},
		})
	}

	config := &genai.GenerateContentConfig{
		CandidateCount:   1,
		Temperature:      floatPointer(float32(req.Temperature)),
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	result, err := client.Models.GenerateContent(ctx, p.Model.String(), []*genai.Content{{Role: "user", Parts: parts}}, config)
	if err != nil {
		if upstream := geminiUpstreamError(err); upstream != nil {
			return "", upstream
		}
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		logrus.WithFields(logrus.Fields{
			"model":  p.Model.String(),
			"reason": result.PromptFeedback.BlockReason,
		}).Warn("gemini blocked the prompt")
		return "", nil
	}
	if result.UsageMetadata != nil {
		logrus.WithFields(logrus.Fields{
			"model":  p.Model.String(),
			"input":  result.UsageMetadata.PromptTokenCount,
			"output": result.UsageMetadata.CandidatesTokenCount,
		}).Debug("gemini token usage")
	}
	return result.Text(), nil
}

func geminiUpstreamError(err error) *UpstreamError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.Code, Status: http.StatusText(apiErr.Code), Body: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &UpstreamError{StatusCode: apiErrPtr.Code, Status: http.StatusText(apiErrPtr.Code), Body: apiErrPtr.Message}
	}
	return nil
}
