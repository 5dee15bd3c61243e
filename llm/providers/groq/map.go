package groq

import (
	"github.com/sashabaranov/go-openai"

	"github.com/your-org/swot-reporter/llm/providers/shared"
)

// toGroqRequest converts a unified completion request to the SDK request type.
func toGroqRequest(req *shared.CompletionRequest) (*openai.ChatCompletionRequest, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}

	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	out := &openai.ChatCompletionRequest{
		Model:       req.Options.Model,
		Messages:    messages,
		MaxTokens:   req.Options.MaxTokens,
		Temperature: req.Options.Temperature,
		TopP:        req.Options.TopP,
		Stop:        req.Options.Stop,
	}

	return out, nil
}

// fromGroqResponse converts an SDK response into the unified response type.
func fromGroqResponse(resp openai.ChatCompletionResponse) *shared.CompletionResponse {
	out := &shared.CompletionResponse{
		Usage: shared.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.StopReason = string(resp.Choices[0].FinishReason)
	}

	return out
}
