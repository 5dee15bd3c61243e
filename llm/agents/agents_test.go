package agents

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/swot-reporter/llm/tools"
)

type stubAgent struct {
	name    string
	execErr error
	valErr  error
	calls   int
}

func (s *stubAgent) Name() string           { return s.name }
func (s *stubAgent) Description() string    { return "stub agent" }
func (s *stubAgent) Instructions() []string { return []string{"do the thing"} }
func (s *stubAgent) ValidateInput(input *AgentInput) error {
	return s.valErr
}
func (s *stubAgent) Execute(ctx context.Context, input *AgentInput) (*AgentResult, error) {
	s.calls++
	if s.execErr != nil {
		return nil, s.execErr
	}
	return &AgentResult{Content: "ok", Success: true}, nil
}

func newTestRegistry() *Registry {
	return NewRegistry(tools.NewRegistry(), nil, zerolog.Nop())
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := newTestRegistry()
	r.Register(&stubAgent{name: "searcher"})
	r.Register(&stubAgent{name: "analyst"})

	agent, err := r.Get("searcher")
	require.NoError(t, err)
	assert.Equal(t, "searcher", agent.Name())

	_, err = r.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent not found")
}

func TestRegistryListPreservesOrder(t *testing.T) {
	r := newTestRegistry()
	for _, name := range []string{"searcher", "analyst", "comparison", "swot", "reporter"} {
		r.Register(&stubAgent{name: name})
	}

	list := r.List()
	require.Len(t, list, 5)
	assert.Equal(t, "searcher", list[0].Name())
	assert.Equal(t, "reporter", list[4].Name())
}

func TestRegistryExecuteValidatesFirst(t *testing.T) {
	r := newTestRegistry()
	agent := &stubAgent{
		name:   "searcher",
		valErr: NewValidationError("query", "required", "MISSING_REQUIRED_FIELD", nil),
	}
	r.Register(agent)

	_, err := r.Execute(context.Background(), "searcher", &AgentInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING_REQUIRED_FIELD")
	assert.Equal(t, 0, agent.calls, "execute must not run on invalid input")
}

func TestRegistryExecute(t *testing.T) {
	r := newTestRegistry()
	r.Register(&stubAgent{name: "searcher"})

	result, err := r.Execute(context.Background(), "searcher", &AgentInput{Query: "Dell"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "ok", result.Content)
}

func TestAgentStatsRecord(t *testing.T) {
	var stats AgentStats
	stats.SuccessRate = 1.0

	stats.Record(100*time.Millisecond, 30, true)
	assert.Equal(t, 1, stats.TotalExecutions)
	assert.Equal(t, 30, stats.TotalTokens)
	assert.Equal(t, 100*time.Millisecond, stats.AverageDuration)
	assert.InDelta(t, 1.0, stats.SuccessRate, 0.001)

	stats.Record(300*time.Millisecond, 10, false)
	assert.Equal(t, 2, stats.TotalExecutions)
	assert.Equal(t, 40, stats.TotalTokens)
	assert.Equal(t, 200*time.Millisecond, stats.AverageDuration)
	assert.InDelta(t, 0.5, stats.SuccessRate, 0.001)
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt([]string{"first directive", "second directive"})
	assert.Equal(t, "first directive\nsecond directive", prompt)
}

func TestMarshalPayload(t *testing.T) {
	payload, err := MarshalPayload(map[string]interface{}{
		"topic":          "Dell",
		"search results": "dataset",
	})
	require.NoError(t, err)
	assert.Contains(t, payload, `"topic": "Dell"`)
	assert.Contains(t, payload, `"search results": "dataset"`)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("topic", "topic is required", "MISSING_REQUIRED_FIELD", nil)
	assert.Contains(t, err.Error(), "MISSING_REQUIRED_FIELD")
	assert.Contains(t, err.Error(), "topic")
}
