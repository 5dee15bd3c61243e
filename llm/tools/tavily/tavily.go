package tavily

import (
	"context"
	"fmt"
	"strings"

	"github.com/your-org/swot-reporter/llm/tools"
)

// SearchTool exposes the Tavily client through the tool interface
type SearchTool struct {
	client      *Client
	searchDepth string
	maxResults  int
}

// Config holds Tavily tool configuration
type Config struct {
	APIKey      string
	BaseURL     string
	SearchDepth string
	MaxResults  int
}

// NewSearchTool initializes the search tool
func NewSearchTool(cfg Config) *SearchTool {
	opts := []ClientOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	depth := cfg.SearchDepth
	if depth == "" {
		depth = "advanced"
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	return &SearchTool{
		client:      NewClient(cfg.APIKey, opts...),
		searchDepth: depth,
		maxResults:  maxResults,
	}
}

// Name returns the tool name
func (t *SearchTool) Name() string {
	return "tavily_search"
}

// Description returns the tool description
func (t *SearchTool) Description() string {
	return "Searches the web via the Tavily API and returns ranked results with content snippets"
}

// Schema returns the JSON schema for input validation
func (t *SearchTool) Schema() *tools.ToolSchema {
	return &tools.ToolSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The search query",
			},
			"max_results": map[string]interface{}{
				"type":        "integer",
				"description": "Number of results to return",
				"default":     10,
				"minimum":     1,
				"maximum":     20,
			},
		},
		Required: []string{"query"},
	}
}

// Execute performs the search using the tool interface
func (t *SearchTool) Execute(ctx context.Context, input *tools.ToolInput) (*tools.ToolResult, error) {
	query, ok := input.Data["query"].(string)
	if !ok || query == "" {
		return &tools.ToolResult{
			Success: false,
			Error:   "query field is required and must be a string",
		}, nil
	}

	maxResults := t.maxResults
	if raw, exists := input.Data["max_results"]; exists {
		switch v := raw.(type) {
		case int:
			maxResults = v
		case float64:
			maxResults = int(v)
		}
	}

	resp, err := t.client.Search(ctx, SearchRequest{
		Query:         query,
		SearchDepth:   t.searchDepth,
		MaxResults:    maxResults,
		IncludeAnswer: true,
	})
	if err != nil {
		return &tools.ToolResult{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	results := make([]map[string]interface{}, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, map[string]interface{}{
			"title":   r.Title,
			"url":     r.URL,
			"content": r.Content,
			"score":   r.Score,
		})
	}

	return &tools.ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"query":   resp.Query,
			"answer":  resp.Answer,
			"results": results,
			"context": FormatResults(resp),
		},
	}, nil
}

// FormatResults renders a search response as a citation block an agent can
// read and quote from.
func FormatResults(resp *SearchResponse) string {
	var b strings.Builder

	if resp.Answer != "" {
		b.WriteString(fmt.Sprintf("Answer: %s\n\n", resp.Answer))
	}

	for i, r := range resp.Results {
		b.WriteString(fmt.Sprintf("Source %d: %s\n", i+1, r.Title))
		b.WriteString(fmt.Sprintf("URL: %s\n", r.URL))
		b.WriteString(fmt.Sprintf("%s\n\n", r.Content))
	}

	return strings.TrimRight(b.String(), "\n")
}
