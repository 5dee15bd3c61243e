package groq

import (
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/swot-reporter/llm/providers/shared"
)

func TestNewProviderRequiresAPIKey(t *testing.T) {
	_, err := NewProvider(Config{})
	require.Error(t, err)

	var pe *shared.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, shared.ErrAuth, pe.Code)
}

func TestNewProviderDefaults(t *testing.T) {
	p, err := NewProvider(Config{APIKey: "gsk-test"})
	require.NoError(t, err)
	assert.Equal(t, "groq", p.Name())
	assert.Equal(t, DefaultBaseURL, p.config.BaseURL)
}

func TestToGroqRequest(t *testing.T) {
	req := &shared.CompletionRequest{
		System: "You are a summarizer.",
		Messages: []shared.Message{
			{Role: shared.RoleUser, Content: "summarize this"},
		},
		Options: shared.CompletionOptions{
			Model:       "llama3-8b-8192",
			MaxTokens:   512,
			Temperature: 0.3,
		},
	}

	out, err := toGroqRequest(req)
	require.NoError(t, err)

	require.Len(t, out.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, out.Messages[0].Role)
	assert.Equal(t, "You are a summarizer.", out.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, out.Messages[1].Role)
	assert.Equal(t, "llama3-8b-8192", out.Model)
	assert.Equal(t, 512, out.MaxTokens)
	assert.InDelta(t, 0.3, out.Temperature, 0.001)
}

func TestFromGroqResponse(t *testing.T) {
	resp := openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{
				Message:      openai.ChatCompletionMessage{Role: "assistant", Content: "done"},
				FinishReason: openai.FinishReasonStop,
			},
		},
		Usage: openai.Usage{PromptTokens: 12, CompletionTokens: 8, TotalTokens: 20},
	}

	out := fromGroqResponse(resp)
	assert.Equal(t, "done", out.Content)
	assert.Equal(t, "stop", out.StopReason)
	assert.Equal(t, 20, out.Usage.TotalTokens)
}

func TestNormalizeGroqError(t *testing.T) {
	tests := []struct {
		status int
		code   shared.ErrorCode
	}{
		{http.StatusUnauthorized, shared.ErrAuth},
		{http.StatusTooManyRequests, shared.ErrRateLimited},
		{http.StatusNotFound, shared.ErrModelNotFound},
		{http.StatusBadRequest, shared.ErrInvalidRequest},
		{http.StatusServiceUnavailable, shared.ErrUnavailable},
		{http.StatusTeapot, shared.ErrUnknown},
	}

	for _, tt := range tests {
		err := NormalizeGroqError(&openai.APIError{
			HTTPStatusCode: tt.status,
			Message:        "api failure",
		})
		assert.Equal(t, tt.code, err.Code, "status %d", tt.status)
		assert.Equal(t, tt.status, err.HTTPStatus)
	}
}

func TestCountTokens(t *testing.T) {
	p, err := NewProvider(Config{APIKey: "gsk-test"})
	require.NoError(t, err)

	count, err := p.CountTokens([]shared.Message{
		{Role: shared.RoleUser, Content: "12345678"},
	}, "llama3-8b-8192")
	require.NoError(t, err)
	assert.Equal(t, 6, count) // 8 chars / 4 + 4 overhead
}
