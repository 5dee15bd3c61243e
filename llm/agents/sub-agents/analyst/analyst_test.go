package analyst

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/swot-reporter/llm/agents"
	providertest "github.com/your-org/swot-reporter/llm/providers/test"
)

func TestAnalystValidateInput(t *testing.T) {
	agent := NewAnalystAgent(providertest.NewFakeProvider(), agents.Options{Model: "m"})

	err := agent.ValidateInput(&agents.AgentInput{})
	require.Error(t, err)

	err = agent.ValidateInput(&agents.AgentInput{Data: map[string]interface{}{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search_results")

	assert.NoError(t, agent.ValidateInput(&agents.AgentInput{
		Data: map[string]interface{}{"search_results": "dataset"},
	}))
}

func TestAnalystExecute(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.AddTextResponse("raw competitor dataset", "structured insights")

	agent := NewAnalystAgent(llm, agents.Options{Model: "llama3-8b-8192", Temperature: 0.3})
	result, err := agent.Execute(context.Background(), &agents.AgentInput{
		Data: map[string]interface{}{"search_results": "raw competitor dataset"},
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "structured insights", result.Content)
	assert.Equal(t, 30, result.TokensUsed)

	req := llm.GetLastRequest()
	assert.Contains(t, req.System, "natural language processing")
	assert.Equal(t, "llama3-8b-8192", req.Options.Model)
}

func TestAnalystExecuteInvalidInput(t *testing.T) {
	agent := NewAnalystAgent(providertest.NewFakeProvider(), agents.Options{Model: "m"})

	result, err := agent.Execute(context.Background(), &agents.AgentInput{})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Metadata["error"], "MISSING_REQUIRED_FIELD")
}

func TestAnalystExecuteLLMError(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.AddError("broken dataset", errors.New("rate limited"))

	agent := NewAnalystAgent(llm, agents.Options{Model: "m"})
	result, err := agent.Execute(context.Background(), &agents.AgentInput{
		Data: map[string]interface{}{"search_results": "broken dataset"},
	})
	require.Error(t, err)
	assert.False(t, result.Success)

	stats := agent.GetStats()
	assert.Equal(t, 1, stats.TotalExecutions)
	assert.InDelta(t, 0.0, stats.SuccessRate, 0.001)
}
