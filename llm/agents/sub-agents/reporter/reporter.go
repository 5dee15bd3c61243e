// Package reporter implements the final report writing agent. It assembles
// the searcher, comparison, and SWOT outputs into a professional business
// report with an executive summary.
package reporter

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/providers/shared"
)

// Instructions is the report agent's system prompt, one directive per line.
var Instructions = []string{
	"Your task is to generate a comprehensive business report that includes the following sections:",
	"- A detailed SWOT analysis (Strengths, Weaknesses, Opportunities, Threats) for the given company, based on the provided data.",
	"- A comparison of the company's products or services with its competitors, highlighting key differentiators, similarities, and potential competitive advantages.",
	"- Summarize the competitor landscape, including notable strategies, market positioning, and business features.",
	"- Ensure that the report is structured, clear, and professional, with a concise executive summary at the beginning.",
	"- Use formal language and ensure that the data is presented in a logical and easy-to-understand manner.",
}

// ReportAgent writes the final business report
type ReportAgent struct {
	llm   shared.LLMProvider
	opts  agents.Options
	stats agents.AgentStats
}

// NewReportAgent creates a new report agent
func NewReportAgent(llm shared.LLMProvider, opts agents.Options) *ReportAgent {
	return &ReportAgent{
		llm:   llm,
		opts:  opts,
		stats: agents.AgentStats{SuccessRate: 1.0},
	}
}

// Name returns the agent name
func (r *ReportAgent) Name() string { return "reporter" }

// Description returns the agent description
func (r *ReportAgent) Description() string {
	return "Writes the final competitor analysis report with executive summary and SWOT sections"
}

// Instructions returns the agent's system prompt lines
func (r *ReportAgent) Instructions() []string { return Instructions }

// GetStats returns the agent's statistics
func (r *ReportAgent) GetStats() agents.AgentStats { return r.stats }

// ValidateInput validates the input according to the agent's contract
func (r *ReportAgent) ValidateInput(input *agents.AgentInput) error {
	if input == nil || input.Data == nil {
		return agents.NewValidationError("data", "input data is required", "MISSING_REQUIRED_FIELD", nil)
	}
	for _, field := range []string{"topic", "search_results", "comparison", "swot_analysis"} {
		if v, ok := input.Data[field].(string); !ok || v == "" {
			return agents.NewValidationError(field, field+" must be a non-empty string", "MISSING_REQUIRED_FIELD", input.Data[field])
		}
	}
	return nil
}

// Execute writes the final report
func (r *ReportAgent) Execute(ctx context.Context, input *agents.AgentInput) (*agents.AgentResult, error) {
	start := time.Now()

	if err := r.ValidateInput(input); err != nil {
		r.stats.Record(time.Since(start), 0, false)
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
		"SWOT_Analysis":  input.Data["swot_analysis"],
	})
	if err != nil {
		return nil, err
	}

	resp, err := r.llm.Complete(ctx, &shared.CompletionRequest{
		System: agents.BuildSystemPrompt(Instructions),
		Messages: []shared.Message{
			{Role: shared.RoleUser, Content: payload},
		},
		Options: shared.CompletionOptions{
			Model:       r.opts.Model,
			Temperature: r.opts.Temperature,
			MaxTokens:   r.opts.MaxTokens,
		},
	})
	if err != nil {
		r.stats.Record(time.Since(start), 0, false)
		return &agents.AgentResult{
			Success:  false,
			Duration: time.Since(start),
			Metadata: map[string]interface{}{"error": fmt.Sprintf("LLM completion failed: %v", err)},
		}, err
	}

	r.stats.Record(time.Since(start), resp.Usage.TotalTokens, true)

	return &agents.AgentResult{
		Content:    resp.Content,
		Success:    true,
		TokensUsed: resp.Usage.TotalTokens,
		Duration:   time.Since(start),
	}, nil
}
