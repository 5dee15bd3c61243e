// Package comparison implements the feature comparison agent. It contrasts
// the startup's product with the competitors identified by the searcher and
// emits a structured comparison summary.
package comparison

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/providers/shared"
)

// Instructions is the comparison agent's system prompt, one directive per line.
var Instructions = []string{
	"Your task is to compare the features of the startup's product/service with the top 5 competitors identified by the searcher agent.",
	"Carefully analyze the data and highlight similarities and differences in product features, pricing, and key differentiators.",
	"Generate a structured feature comparison summary that highlights common features, unique selling points, and potential areas of improvement.",
	"This comparison will feed into the final competitor analysis report and help inform strategic recommendations.",
}

// ExpectedOutput is the output contract appended to the system prompt.
const ExpectedOutput = `An engaging, informative, and well-structured article in the following format:
[
    {
        "text": "Competitor A",
        "keywords": ["innovation", "expensive", "user-friendly"],
        "entities": [["Company X", "ORG"], ["New York", "GPE"], ["global growth", "ORG"]]
    },
    {
        "text": "Competitor B",
        "keywords": ["outdated", "scalable", "market leader"],
        "entities": [["Company Y", "ORG"], ["California", "GPE"], ["rising competition", "ORG"]]
    }
]`

// ComparisonAgent compares the startup's features against its competitors
type ComparisonAgent struct {
	llm   shared.LLMProvider
	opts  agents.Options
	stats agents.AgentStats
}

// NewComparisonAgent creates a new comparison agent
func NewComparisonAgent(llm shared.LLMProvider, opts agents.Options) *ComparisonAgent {
	return &ComparisonAgent{
		llm:   llm,
		opts:  opts,
		stats: agents.AgentStats{SuccessRate: 1.0},
	}
}

// Name returns the agent name
func (c *ComparisonAgent) Name() string { return "comparison" }

// Description returns the agent description
func (c *ComparisonAgent) Description() string {
	return "Compares product features, pricing, and differentiators against the top 5 competitors"
}

// Instructions returns the agent's system prompt lines
func (c *ComparisonAgent) Instructions() []string { return Instructions }

// GetStats returns the agent's statistics
func (c *ComparisonAgent) GetStats() agents.AgentStats { return c.stats }

// ValidateInput validates the input according to the agent's contract
func (c *ComparisonAgent) ValidateInput(input *agents.AgentInput) error {
	if input == nil || input.Data == nil {
		return agents.NewValidationError("data", "input data is required", "MISSING_REQUIRED_FIELD", nil)
	}
	if topic, ok := input.Data["topic"].(string); !ok || topic == "" {
		return agents.NewValidationError("topic", "topic must be a non-empty string", "MISSING_REQUIRED_FIELD", input.Data["topic"])
	}
	if sr, ok := input.Data["search_results"].(string); !ok || sr == "" {
		return agents.NewValidationError("search_results", "search_results must be a non-empty string", "MISSING_REQUIRED_FIELD", input.Data["search_results"])
	}
	return nil
}

// Execute generates the feature comparison summary
func (c *ComparisonAgent) Execute(ctx context.Context, input *agents.AgentInput) (*agents.AgentResult, error) {
	start := time.Now()

	if err := c.ValidateInput(input); err != nil {
		c.stats.Record(time.Since(start), 0, false)
		return &agents.AgentResult{
			Success:  false,
			Duration: time.Since(start),
			Metadata: map[string]interface{}{"error": err.Error()},
		}, nil
	}

	payload, err := agents.MarshalPayload(map[string]interface{}{
		"topic":          input.Data["topic"],
		"search results": input.Data["search_results"],
	})
	if err != nil {
		return nil, err
	}

	system := agents.BuildSystemPrompt(Instructions) + "\n\nExpected output:\n" + ExpectedOutput

	resp, err := c.llm.Complete(ctx, &shared.CompletionRequest{
		System: system,
		Messages: []shared.Message{
			{Role: shared.RoleUser, Content: payload},
		},
		Options: shared.CompletionOptions{
			Model:       c.opts.Model,
			Temperature: c.opts.Temperature,
			MaxTokens:   c.opts.MaxTokens,
		},
	})
	if err != nil {
		c.stats.Record(time.Since(start), 0, false)
		return &agents.AgentResult{
			Success:  false,
			Duration: time.Since(start),
			Metadata: map[string]interface{}{"error": fmt.Sprintf("LLM completion failed: %v", err)},
		}, err
	}

	c.stats.Record(time.Since(start), resp.Usage.TotalTokens, true)

	return &agents.AgentResult{
		Content:    resp.Content,
		Success:    true,
		TokensUsed: resp.Usage.TotalTokens,
		Duration:   time.Since(start),
	}, nil
}
