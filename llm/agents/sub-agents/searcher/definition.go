// Package searcher implements the competitor data gathering agent. It fans a
// topic out into source-qualified web searches (Crunchbase, LinkedIn, Reddit,
// G2, general web), then asks the model to normalize the hits into a
// structured competitor dataset for the downstream agents.
package searcher

import (
	"github.com/rs/zerolog"

	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/providers/shared"
	"github.com/your-org/swot-reporter/llm/tools"
)

// Instructions is the searcher agent's system prompt, one directive per line.
var Instructions = []string{
	"Your task is to retrieve competitor data from multiple sources, including Crunchbase, LinkedIn, Reddit, Google, and G2.",
	"Aggregate the top 5 competitors based on a given startup website or product query.",
	"Ensure the data is normalized and consistent across sources, resolving any missing or conflicting data.",
	"Provide a comprehensive summary of each competitor, including key features, market positioning, and recent activities.",
	"Your output should be a well-structured dataset of competitors that can be used by the other agents for further processing.",
}

// sourceSites are the domains the searcher targets, beyond the open web query.
var sourceSites = []string{
	"crunchbase.com",
	"linkedin.com",
	"reddit.com",
	"g2.com",
}

// SearcherAgent gathers and normalizes competitor data
type SearcherAgent struct {
	llm    shared.LLMProvider
	tools  *tools.Registry
	opts   agents.Options
	logger zerolog.Logger
	stats  agents.AgentStats
}

// NewSearcherAgent creates a new searcher agent
func NewSearcherAgent(llm shared.LLMProvider, toolRegistry *tools.Registry, opts agents.Options, logger zerolog.Logger) *SearcherAgent {
	return &SearcherAgent{
		llm:    llm,
		tools:  toolRegistry,
		opts:   opts,
		logger: logger,
		stats:  agents.AgentStats{SuccessRate: 1.0},
	}
}

// Name returns the agent name
func (s *SearcherAgent) Name() string { return "searcher" }

// Description returns the agent description
func (s *SearcherAgent) Description() string {
	return "Retrieves and normalizes competitor data from Crunchbase, LinkedIn, Reddit, Google, and G2"
}

// Instructions returns the agent's system prompt lines
func (s *SearcherAgent) Instructions() []string { return Instructions }

// GetStats returns the agent's statistics
func (s *SearcherAgent) GetStats() agents.AgentStats { return s.stats }

// ValidateInput validates the input according to the agent's contract
func (s *SearcherAgent) ValidateInput(input *agents.AgentInput) error {
	if input == nil || input.Query == "" {
		return agents.NewValidationError("query", "a topic query is required", "MISSING_REQUIRED_FIELD", nil)
	}
	return nil
}
