// Package analyst implements the NLP preprocessing agent. It cleans and
// structures the raw competitor dataset produced by the searcher so the
// comparison and SWOT agents receive consistent, tokenized input.
package analyst

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/providers/shared"
)

// Instructions is the analyst agent's system prompt, one directive per line.
var Instructions = []string{
	"Your task is to preprocess and analyze the competitor data retrieved by the searcher agent.",
	"Carefully read the data and apply natural language processing techniques to extract key insights, such as features, product descriptions, and business strategies.",
	"Ensure the extracted data is clean, tokenized, and ready for further analysis by the feature comparison and SWOT agents.",
	"Provide structured outputs that clearly outline key attributes of each competitor for subsequent tasks.",
}

// AnalystAgent preprocesses searcher output into structured insights
type AnalystAgent struct {
	llm   shared.LLMProvider
	opts  agents.Options
	stats agents.AgentStats
}

// NewAnalystAgent creates a new analyst agent
func NewAnalystAgent(llm shared.LLMProvider, opts agents.Options) *AnalystAgent {
	return &AnalystAgent{
		llm:   llm,
		opts:  opts,
		stats: agents.AgentStats{SuccessRate: 1.0},
	}
}

// Name returns the agent name
func (a *AnalystAgent) Name() string { return "analyst" }

// Description returns the agent description
func (a *AnalystAgent) Description() string {
	return "Preprocesses competitor data and extracts features, descriptions, and strategies"
}

// Instructions returns the agent's system prompt lines
func (a *AnalystAgent) Instructions() []string { return Instructions }

// GetStats returns the agent's statistics
func (a *AnalystAgent) GetStats() agents.AgentStats { return a.stats }

// ValidateInput validates the input according to the agent's contract
func (a *AnalystAgent) ValidateInput(input *agents.AgentInput) error {
	if input == nil || input.Data == nil {
		return agents.NewValidationError("data", "input data is required", "MISSING_REQUIRED_FIELD", nil)
	}
	if sr, ok := input.Data["search_results"].(string); !ok || sr == "" {
		return agents.NewValidationError("search_results", "search_results must be a non-empty string", "MISSING_REQUIRED_FIELD", input.Data["search_results"])
	}
	return nil
}

// Execute preprocesses the searcher output
func (a *AnalystAgent) Execute(ctx context.Context, input *agents.AgentInput) (*agents.AgentResult, error) {
	start := time.Now()

	if err := a.ValidateInput(input); err != nil {
		a.stats.Record(time.Since(start), 0, false)
		return &agents.AgentResult{
			Success:  false,
			Duration: time.Since(start),
			Metadata: map[string]interface{}{"error": err.Error()},
		}, nil
	}

	payload, err := agents.MarshalPayload(map[string]interface{}{
		"search results": input.Data["search_results"],
	})
	if err != nil {
		return nil, err
	}

	resp, err := a.llm.Complete(ctx, &shared.CompletionRequest{
		System: agents.BuildSystemPrompt(Instructions),
		Messages: []shared.Message{
			{Role: shared.RoleUser, Content: payload},
		},
		Options: shared.CompletionOptions{
			Model:       a.opts.Model,
			Temperature: a.opts.Temperature,
			MaxTokens:   a.opts.MaxTokens,
		},
	})
	if err != nil {
		a.stats.Record(time.Since(start), 0, false)
		return &agents.AgentResult{
			Success:  false,
			Duration: time.Since(start),
			Metadata: map[string]interface{}{"error": fmt.Sprintf("LLM completion failed: %v", err)},
		}, err
	}

	a.stats.Record(time.Since(start), resp.Usage.TotalTokens, true)

	return &agents.AgentResult{
		Content:    resp.Content,
		Success:    true,
		TokensUsed: resp.Usage.TotalTokens,
		Duration:   time.Since(start),
	}, nil
}
