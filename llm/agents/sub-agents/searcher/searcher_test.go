package searcher

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/swot-reporter/llm/agents"
	providertest "github.com/your-org/swot-reporter/llm/providers/test"
	"github.com/your-org/swot-reporter/llm/tools"
	tooltest "github.com/your-org/swot-reporter/llm/tools/test"
)

func newAgent(searchTool tools.Tool) (*SearcherAgent, *providertest.FakeProvider) {
	llm := providertest.NewFakeProvider()
	registry := tools.NewRegistry()
	registry.Register(searchTool)

	agent := NewSearcherAgent(llm, registry, agents.Options{Model: "llama3-8b-8192"}, zerolog.Nop())
	return agent, llm
}

func TestSearcherValidateInput(t *testing.T) {
	agent, _ := newAgent(tooltest.NewFakeSearchTool("ctx"))

	err := agent.ValidateInput(&agents.AgentInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING_REQUIRED_FIELD")

	assert.NoError(t, agent.ValidateInput(&agents.AgentInput{Query: "Dell"}))
}

func TestSearcherExecute(t *testing.T) {
	searchTool := tooltest.NewFakeSearchTool("Acme raised a Series B.")
	agent, llm := newAgent(searchTool)
	llm.AddTextResponse("Startup or product under analysis: Dell", "competitor dataset")

	result, err := agent.Execute(context.Background(), &agents.AgentInput{Query: "Dell"})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "competitor dataset", result.Content)

	// one open query plus one per source site
	assert.Equal(t, len(sourceSites)+1, searchTool.CallCount())
	queries := searchTool.Queries()
	assert.Equal(t, "top competitors of Dell", queries[0])
	assert.Contains(t, queries[1], "site:crunchbase.com")

	// prompt carries the gathered search context
	req := llm.GetLastRequest()
	require.NotNil(t, req)
	assert.Contains(t, req.Messages[0].Content, "Acme raised a Series B.")
	assert.Contains(t, req.System, "Crunchbase, LinkedIn, Reddit, Google, and G2")
}

func TestSearcherToleratesPartialSearchFailures(t *testing.T) {
	searchTool := tooltest.NewFakeSearchTool("only the last query succeeded")
	searchTool.FailFirst(len(sourceSites), errors.New("rate limited"))
	agent, _ := newAgent(searchTool)

	result, err := agent.Execute(context.Background(), &agents.AgentInput{Query: "Dell"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Metadata["sources_used"])
}

func TestSearcherAllSearchesFail(t *testing.T) {
	searchTool := tooltest.NewFakeSearchTool("")
	searchTool.SetError(errors.New("tavily unavailable"))
	agent, llm := newAgent(searchTool)

	result, err := agent.Execute(context.Background(), &agents.AgentInput{Query: "Dell"})
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 0, llm.GetCallCount(), "no completion without search context")
}

func TestSearcherLLMFailure(t *testing.T) {
	searchTool := tooltest.NewFakeSearchTool("some context")
	agent, llm := newAgent(searchTool)
	llm.AddError("Startup or product under analysis: Dell", errors.New("model overloaded"))

	result, err := agent.Execute(context.Background(), &agents.AgentInput{Query: "Dell"})
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Metadata["error"], "model overloaded")
}
