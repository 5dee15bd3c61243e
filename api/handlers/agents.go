package handlers

import (
	"net/http"

	"github.com/your-org/swot-reporter/api"
	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/tools"
)

// AgentHandler serves the agent and tool listings
type AgentHandler struct {
	agents *agents.Registry
	tools  *tools.Registry
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentRegistry *agents.Registry, toolRegistry *tools.Registry) *AgentHandler {
	return &AgentHandler{
		agents: agentRegistry,
		tools:  toolRegistry,
	}
}

// ListAgents handles GET /agents
func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	list := h.agents.List()
	out := make([]api.AgentInfo, 0, len(list))
	for _, agent := range list {
		out = append(out, api.AgentInfo{
			Name:         agent.Name(),
			Description:  agent.Description(),
			Instructions: agent.Instructions(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ListTools handles GET /tools
func (h *AgentHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	out := make([]api.ToolInfo, 0)
	for _, tool := range h.tools.List() {
		out = append(out, api.ToolInfo{
			Name:        tool.Name(),
			Description: tool.Description(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
