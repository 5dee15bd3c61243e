package searcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/providers/shared"
	"github.com/your-org/swot-reporter/llm/tools"
)

// Execute gathers competitor data for the topic in input.Query. It runs one
// open-web search plus one search per target site, then asks the model to
// merge the hits into a normalized competitor dataset. Individual search
// failures are tolerated as long as at least one query returned content.
func (s *SearcherAgent) Execute(ctx context.Context, input *agents.AgentInput) (*agents.AgentResult, error) {
	start := time.Now()

	if err := s.ValidateInput(input); err != nil {
		return s.failure(start, err), nil
	}

	topic := input.Query
	contexts, searched := s.gatherSources(ctx, topic)
	if len(contexts) == 0 {
		err := fmt.Errorf("no search results for topic %q", topic)
		return s.failure(start, err), err
	}

	prompt := s.buildPrompt(topic, contexts)
	resp, err := s.llm.Complete(ctx, &shared.CompletionRequest{
		System: agents.BuildSystemPrompt(Instructions),
		Messages: []shared.Message{
			{Role: shared.RoleUser, Content: prompt},
		},
		Options: shared.CompletionOptions{
			Model:       s.opts.Model,
			Temperature: s.opts.Temperature,
			MaxTokens:   s.opts.MaxTokens,
		},
	})
	if err != nil {
		return s.failure(start, fmt.Errorf("LLM completion failed: %w", err)), err
	}

	s.stats.Record(time.Since(start), resp.Usage.TotalTokens, true)

	return &agents.AgentResult{
		Content:    resp.Content,
		Success:    true,
		TokensUsed: resp.Usage.TotalTokens,
		Duration:   time.Since(start),
		Metadata: map[string]interface{}{
			"topic":            topic,
			"queries_searched": searched,
			"sources_used":     len(contexts),
		},
	}, nil
}

// gatherSources runs the per-site searches and returns the context blocks of
// the queries that succeeded, plus the number of queries attempted.
func (s *SearcherAgent) gatherSources(ctx context.Context, topic string) ([]string, int) {
	queries := sourceQueries(topic)

	contexts := make([]string, 0, len(queries))
	for _, q := range queries {
		result, err := s.tools.Execute(ctx, &tools.ToolInput{
			Name: "tavily_search",
			Data: map[string]interface{}{"query": q},
		})
		if err != nil || !result.Success {
			s.logger.Warn().Str("query", q).Err(err).Msg("search query failed")
			continue
		}
		block, ok := result.Data["context"].(string)
		if !ok || block == "" {
			continue
		}
		contexts = append(contexts, fmt.Sprintf("## Search: %s\n%s", q, block))
	}

	return contexts, len(queries)
}

// sourceQueries builds the query list for a topic: one open query and one
// qualified query per source site.
func sourceQueries(topic string) []string {
	queries := []string{
		fmt.Sprintf("top competitors of %s", topic),
	}
	for _, site := range sourceSites {
		queries = append(queries, fmt.Sprintf("%s competitors site:%s", topic, site))
	}
	return queries
}

// buildPrompt constructs the aggregation prompt over the gathered sources
func (s *SearcherAgent) buildPrompt(topic string, contexts []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Startup or product under analysis: %s\n\n", topic))
	b.WriteString("Search results gathered from Crunchbase, LinkedIn, Reddit, Google, and G2:\n\n")
	for _, c := range contexts {
		b.WriteString(c)
		b.WriteString("\n\n")
	}
	b.WriteString("Aggregate the top 5 competitors from these sources into a well-structured dataset. ")
	b.WriteString("For each competitor include key features, market positioning, and recent activities, ")
	b.WriteString("resolving missing or conflicting data across sources.")

	return b.String()
}

func (s *SearcherAgent) failure(start time.Time, err error) *agents.AgentResult {
	s.stats.Record(time.Since(start), 0, false)
	return &agents.AgentResult{
		Success:  false,
		Duration: time.Since(start),
		Metadata: map[string]interface{}{
			"error": err.Error(),
		},
	}
}
