// Package agents provides the core agent framework and registry.
//
// Each specialized agent lives in its own package under sub-agents/ and
// implements the Agent interface defined here. Agents wrap a system prompt,
// an LLM provider, and optionally tools, and expose a single Execute call.
package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/your-org/swot-reporter/llm/providers/shared"
	"github.com/your-org/swot-reporter/llm/tools"
)

// Agent defines the interface that all agents must implement
type Agent interface {
	Name() string
	Description() string
	Instructions() []string
	ValidateInput(input *AgentInput) error
	Execute(ctx context.Context, input *AgentInput) (*AgentResult, error)
}

// AgentInput represents input data for agent execution
type AgentInput struct {
	Query   string                 `json:"query,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// AgentResult represents the result of agent execution
type AgentResult struct {
	Content    string                 `json:"content"`
	Success    bool                   `json:"success"`
	TokensUsed int                    `json:"tokens_used,omitempty"`
	Duration   time.Duration          `json:"duration"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// AgentStats tracks cumulative execution statistics for an agent
type AgentStats struct {
	TotalExecutions int           `json:"total_executions"`
	TotalTokens     int           `json:"total_tokens"`
	AverageDuration time.Duration `json:"average_duration"`
	SuccessRate     float64       `json:"success_rate"`
}

// Record folds one execution into the cumulative stats
func (s *AgentStats) Record(duration time.Duration, tokens int, success bool) {
	succeeded := s.SuccessRate * float64(s.TotalExecutions)
	if success {
		succeeded++
	}
	s.TotalExecutions++
	s.TotalTokens += tokens
	s.AverageDuration = time.Duration((int64(s.AverageDuration)*int64(s.TotalExecutions-1) + int64(duration)) / int64(s.TotalExecutions))
	s.SuccessRate = succeeded / float64(s.TotalExecutions)
}

// Options holds the completion parameters shared by all agents
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// ValidationError represents an input validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Value   any    `json:"value,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s: %s", e.Code, e.Field, e.Message)
}

// NewValidationError creates a validation error
func NewValidationError(field, message, code string, value any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
		Value:   value,
	}
}

// Registry manages agent registration and lookup
type Registry struct {
	agents map[string]Agent
	order  []string
	tools  *tools.Registry
	llms   shared.LLMProvider
	logger zerolog.Logger
}

// NewRegistry creates a new agent registry
func NewRegistry(toolRegistry *tools.Registry, llm shared.LLMProvider, logger zerolog.Logger) *Registry {
	return &Registry{
		agents: make(map[string]Agent),
		tools:  toolRegistry,
		llms:   llm,
		logger: logger,
	}
}

// Register adds an agent to the registry
func (r *Registry) Register(agent Agent) {
	if _, exists := r.agents[agent.Name()]; !exists {
		r.order = append(r.order, agent.Name())
	}
	r.agents[agent.Name()] = agent
}

// Get retrieves an agent by name
func (r *Registry) Get(name string) (Agent, error) {
	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("agent not found: %s", name)
	}
	return agent, nil
}

// List returns all registered agents in registration order
func (r *Registry) List() []Agent {
	agents := make([]Agent, 0, len(r.agents))
	for _, name := range r.order {
		agents = append(agents, r.agents[name])
	}
	return agents
}

// Execute validates input and runs the named agent
func (r *Registry) Execute(ctx context.Context, name string, input *AgentInput) (*AgentResult, error) {
	agent, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if err := agent.ValidateInput(input); err != nil {
		return nil, err
	}

	r.logger.Debug().Str("agent", name).Msg("executing agent")
	return agent.Execute(ctx, input)
}
