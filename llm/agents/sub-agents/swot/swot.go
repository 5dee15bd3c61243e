// Package swot implements the SWOT analysis agent for the startup and its
// top competitors.
package swot

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/providers/shared"
)

// Instructions is the SWOT agent's system prompt, one directive per line.
var Instructions = []string{
	"Your task is to generate a detailed SWOT analysis for the startup and its top 5 competitors.",
	"Carefully review the data provided by the searcher and NLP agents and assess each competitor's strengths, weaknesses, opportunities, and threats.",
	"Synthesize the SWOT analysis into actionable insights, focusing on how the startup can position itself in the market.",
	"Ensure that the SWOT analysis is concise, well-structured, and highlights key strategic recommendations for the startup.",
}

// SWOTAgent produces the SWOT analysis stage of the report
type SWOTAgent struct {
	llm   shared.LLMProvider
	opts  agents.Options
	stats agents.AgentStats
}

// NewSWOTAgent creates a new SWOT agent
func NewSWOTAgent(llm shared.LLMProvider, opts agents.Options) *SWOTAgent {
	return &SWOTAgent{
		llm:   llm,
		opts:  opts,
		stats: agents.AgentStats{SuccessRate: 1.0},
	}
}

// Name returns the agent name
func (s *SWOTAgent) Name() string { return "swot" }

// Description returns the agent description
func (s *SWOTAgent) Description() string {
	return "Generates a SWOT analysis for the startup and its top 5 competitors"
}

// Instructions returns the agent's system prompt lines
func (s *SWOTAgent) Instructions() []string { return Instructions }

// GetStats returns the agent's statistics
func (s *SWOTAgent) GetStats() agents.AgentStats { return s.stats }

// ValidateInput validates the input according to the agent's contract
func (s *SWOTAgent) ValidateInput(input *agents.AgentInput) error {
	if input == nil || input.Data == nil {
		return agents.NewValidationError("data", "input data is required", "MISSING_REQUIRED_FIELD", nil)
	}
	for _, field := range []string{"topic", "search_results", "comparison"} {
		if v, ok := input.Data[field].(string); !ok || v == "" {
			return agents.NewValidationError(field, field+" must be a non-empty string", "MISSING_REQUIRED_FIELD", input.Data[field])
		}
	}
	return nil
}

// Execute generates the SWOT analysis
func (s *SWOTAgent) Execute(ctx context.Context, input *agents.AgentInput) (*agents.AgentResult, error) {
	start := time.Now()

	if err := s.ValidateInput(input); err != nil {
		s.stats.Record(time.Since(start), 0, false)
		return &agents.AgentResult{
			Success:  false,
			Duration: time.Since(start),
			Metadata: map[string]interface{}{"error": err.Error()},
		}, nil
	}

	payload, err := agents.MarshalPayload(map[string]interface{}{
		"topic":          input.Data["topic"],
		"search results": input.Data["search_results"],
		"comparison":     input.Data["comparison"],
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.llm.Complete(ctx, &shared.CompletionRequest{
		System: agents.BuildSystemPrompt(Instructions),
		Messages: []shared.Message{
			{Role: shared.RoleUser, Content: payload},
		},
		Options: shared.CompletionOptions{
			Model:       s.opts.Model,
			Temperature: s.opts.Temperature,
			MaxTokens:   s.opts.MaxTokens,
		},
	})
	if err != nil {
		s.stats.Record(time.Since(start), 0, false)
		return &agents.AgentResult{
			Success:  false,
			Duration: time.Since(start),
			Metadata: map[string]interface{}{"error": fmt.Sprintf("LLM completion failed: %v", err)},
		}, err
	}

	s.stats.Record(time.Since(start), resp.Usage.TotalTokens, true)

	return &agents.AgentResult{
		Content:    resp.Content,
		Success:    true,
		TokensUsed: resp.Usage.TotalTokens,
		Duration:   time.Since(start),
	}, nil
}
