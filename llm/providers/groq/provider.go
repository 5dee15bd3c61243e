// Package groq implements the unified LLMProvider interface for the Groq
// inference API. Groq exposes an OpenAI-compatible chat completions endpoint,
// so the provider is built on the go-openai SDK pointed at the Groq base URL.
package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/your-org/swot-reporter/llm/providers/shared"
)

// DefaultBaseURL is Groq's OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Config holds Groq provider configuration
type Config struct {
	APIKey  string
	BaseURL string
	// DefaultModel is used when a request does not name a model.
	DefaultModel string
}

// Provider implements the unified LLMProvider interface for Groq
type Provider struct {
	client *openai.Client
	config Config
}

// NewProvider creates a new Groq provider
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, &shared.ProviderError{
			Code:    shared.ErrAuth,
			Message: "groq api key is required",
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	openaiConfig := openai.DefaultConfig(cfg.APIKey)
	openaiConfig.BaseURL = cfg.BaseURL

	return &Provider{
		client: openai.NewClientWithConfig(openaiConfig),
		config: cfg,
	}, nil
}

// Name returns the provider name
func (p *Provider) Name() string { return "groq" }

// GetModelCapabilities returns capabilities for the specified model
func (p *Provider) GetModelCapabilities(model string) shared.ModelCapabilities {
	// Conservative defaults for the llama3 family hosted on Groq.
	return shared.ModelCapabilities{
		Streaming:        true,
		Tools:            true,
		JSONMode:         true,
		SystemMessage:    true,
		MaxContextTokens: 8192,
	}
}

// CountTokens estimates token count for the given messages and model
func (p *Provider) CountTokens(messages []shared.Message, model string) (int, error) {
	// Rough estimation: ~4 characters per token, plus role overhead.
	totalTokens := 0
	for _, msg := range messages {
		totalTokens += len(msg.Content) / 4
		totalTokens += 4
	}
	return totalTokens, nil
}

// Complete performs a completion request
func (p *Provider) Complete(ctx context.Context, req *shared.CompletionRequest) (*shared.CompletionResponse, error) {
	if req != nil && req.Options.Model == "" {
		req.Options.Model = p.config.DefaultModel
	}
	if err := shared.ValidateCompletionRequest(req); err != nil {
		return nil, err
	}

	groqReq, err := toGroqRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to convert request: %w", err)
	}

	resp, err := p.client.CreateChatCompletion(ctx, *groqReq)
	if err != nil {
		return nil, NormalizeGroqError(err)
	}

	return fromGroqResponse(resp), nil
}

// NormalizeGroqError converts SDK errors to normalized ProviderError
func NormalizeGroqError(err error) *shared.ProviderError {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := shared.ErrUnknown
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			code = shared.ErrAuth
		case http.StatusTooManyRequests:
			code = shared.ErrRateLimited
		case http.StatusNotFound:
			code = shared.ErrModelNotFound
		case http.StatusBadRequest:
			code = shared.ErrInvalidRequest
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			code = shared.ErrTimeout
		case http.StatusServiceUnavailable, http.StatusBadGateway:
			code = shared.ErrUnavailable
		}
		return &shared.ProviderError{
			Code:       code,
			Message:    apiErr.Message,
			HTTPStatus: apiErr.HTTPStatusCode,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &shared.ProviderError{
			Code:    shared.ErrTimeout,
			Message: err.Error(),
		}
	}

	return &shared.ProviderError{
		Code:    shared.ErrUnknown,
		Message: err.Error(),
	}
}
