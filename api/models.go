// Package api defines the request and response types of the HTTP surface.
package api

// GenerateReportRequest represents a request to generate a report
type GenerateReportRequest struct {
	Topic    string `json:"topic" binding:"required"`
	UseCache *bool  `json:"use_cache,omitempty"`
}

// GenerateReportResponse represents the response from report generation
type GenerateReportResponse struct {
	Success bool   `json:"success"`
	Topic   string `json:"topic,omitempty"`
	Report  string `json:"report,omitempty"`
	Cached  bool   `json:"cached,omitempty"`
	Stats   any    `json:"stats,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AgentInfo describes a registered agent
type AgentInfo struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Instructions []string `json:"instructions"`
}

// ToolInfo describes a registered tool
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse represents a structured API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
