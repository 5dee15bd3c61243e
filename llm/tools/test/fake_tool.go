// Package test provides fake tool implementations for use in unit tests.
package test

import (
	"context"
	"sync"

	"github.com/your-org/swot-reporter/llm/tools"
)

// FakeSearchTool implements the tool interface with canned search results.
// It registers under the tavily tool name so agents exercising the search
// path hit the fake instead of the network.
type FakeSearchTool struct {
	mu        sync.Mutex
	context   string
	err       error
	failures  int // fail this many calls before succeeding
	callCount int
	queries   []string
}

// NewFakeSearchTool creates a fake search tool returning the given context block
func NewFakeSearchTool(context string) *FakeSearchTool {
	return &FakeSearchTool{context: context}
}

// SetError makes every call return the given error
func (f *FakeSearchTool) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// FailFirst makes the first n calls fail before calls succeed again
func (f *FakeSearchTool) FailFirst(n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = n
	f.err = err
}

// CallCount returns the number of Execute calls
func (f *FakeSearchTool) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

// Queries returns the queries passed to Execute in order
func (f *FakeSearchTool) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}

// Name returns the tavily tool name
func (f *FakeSearchTool) Name() string { return "tavily_search" }

// Description returns the tool description
func (f *FakeSearchTool) Description() string { return "fake web search for tests" }

// Schema returns a minimal schema
func (f *FakeSearchTool) Schema() *tools.ToolSchema {
	return &tools.ToolSchema{
		Type:       "object",
		Properties: map[string]interface{}{"query": map[string]interface{}{"type": "string"}},
		Required:   []string{"query"},
	}
}

// Execute returns the canned context block
func (f *FakeSearchTool) Execute(ctx context.Context, input *tools.ToolInput) (*tools.ToolResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.callCount++
	if q, ok := input.Data["query"].(string); ok {
		f.queries = append(f.queries, q)
	}

	if f.err != nil && (f.failures == 0 || f.callCount <= f.failures) {
		return &tools.ToolResult{Success: false, Error: f.err.Error()}, f.err
	}

	return &tools.ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"context": f.context,
			"results": []map[string]interface{}{},
		},
	}, nil
}
