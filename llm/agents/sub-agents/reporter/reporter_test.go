package reporter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/swot-reporter/llm/agents"
	providertest "github.com/your-org/swot-reporter/llm/providers/test"
)

func TestReportValidateInput(t *testing.T) {
	agent := NewReportAgent(providertest.NewFakeProvider(), agents.Options{Model: "m"})

	err := agent.ValidateInput(&agents.AgentInput{
		Data: map[string]interface{}{
			"topic":          "Dell",
			"search_results": "dataset",
			"comparison":     "comparison",
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swot_analysis")
}

func TestReportExecute(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.AddTextResponse(`"SWOT_Analysis"`, "# Executive Summary\n\nDell leads on supply chain.")

	agent := NewReportAgent(llm, agents.Options{Model: "llama3-8b-8192"})
	result, err := agent.Execute(context.Background(), &agents.AgentInput{
		Data: map[string]interface{}{
			"topic":          "Dell",
			"search_results": "dataset",
			"comparison":     "comparison summary",
			"swot_analysis":  "swot summary",
		},
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Contains(t, result.Content, "Executive Summary")

	req := llm.GetLastRequest()
	assert.Contains(t, req.System, "executive summary")
	assert.Contains(t, req.Messages[0].Content, "swot summary")
}
