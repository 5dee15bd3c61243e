// Package test provides fake implementations of the provider interfaces for
// use in unit tests.
package test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/your-org/swot-reporter/llm/providers/shared"
)

// FakeProvider implements LLMProvider for testing purposes. Canned responses
// and errors are matched against the first user message by substring, so a
// test can key on a marker phrase inside a larger generated prompt.
type FakeProvider struct {
	mu          sync.RWMutex
	responses   map[string]*shared.CompletionResponse
	delays      map[string]time.Duration
	errors      map[string]error
	callCount   int
	lastRequest *shared.CompletionRequest
	requests    []*shared.CompletionRequest
}

// NewFakeProvider creates a new fake provider for testing
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		responses: make(map[string]*shared.CompletionResponse),
		delays:    make(map[string]time.Duration),
		errors:    make(map[string]error),
	}
}

// AddResponse adds a canned response for prompts containing the given marker
func (fp *FakeProvider) AddResponse(marker string, response *shared.CompletionResponse) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.responses[marker] = response
}

// AddTextResponse adds a canned plain-text response for prompts containing the marker
func (fp *FakeProvider) AddTextResponse(marker, content string) {
	fp.AddResponse(marker, &shared.CompletionResponse{
		Content:    content,
		Usage:      shared.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		StopReason: "stop",
	})
}

// AddDelay adds a delay for prompts containing the given marker
func (fp *FakeProvider) AddDelay(marker string, delay time.Duration) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.delays[marker] = delay
}

// AddError adds an error for prompts containing the given marker
func (fp *FakeProvider) AddError(marker string, err error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.errors[marker] = err
}

// GetCallCount returns the number of calls made to the provider
func (fp *FakeProvider) GetCallCount() int {
	fp.mu.RLock()
	defer fp.mu.RUnlock()
	return fp.callCount
}

// GetLastRequest returns the last request made to the provider
func (fp *FakeProvider) GetLastRequest() *shared.CompletionRequest {
	fp.mu.RLock()
	defer fp.mu.RUnlock()
	return fp.lastRequest
}

// GetRequests returns all requests made to the provider in order
func (fp *FakeProvider) GetRequests() []*shared.CompletionRequest {
	fp.mu.RLock()
	defer fp.mu.RUnlock()
	out := make([]*shared.CompletionRequest, len(fp.requests))
	copy(out, fp.requests)
	return out
}

// Name returns the provider name
func (fp *FakeProvider) Name() string { return "fake" }

// GetModelCapabilities returns capabilities for the specified model
func (fp *FakeProvider) GetModelCapabilities(model string) shared.ModelCapabilities {
	return shared.ModelCapabilities{
		Streaming:        true,
		Tools:            true,
		JSONMode:         true,
		SystemMessage:    true,
		MaxContextTokens: 128000,
	}
}

// CountTokens returns a mock token count
func (fp *FakeProvider) CountTokens(messages []shared.Message, model string) (int, error) {
	totalTokens := 0
	for _, msg := range messages {
		totalTokens += len(msg.Content) / 4
		totalTokens += 4 // overhead per message
	}
	return totalTokens, nil
}

// Complete performs a mock completion request
func (fp *FakeProvider) Complete(ctx context.Context, req *shared.CompletionRequest) (*shared.CompletionResponse, error) {
	fp.mu.Lock()
	fp.callCount++
	fp.lastRequest = req
	fp.requests = append(fp.requests, req)
	fp.mu.Unlock()

	// Match against the first user message
	var key string
	for _, msg := range req.Messages {
		if msg.Role == shared.RoleUser && msg.Content != "" {
			key = msg.Content
			break
		}
	}

	fp.mu.RLock()
	defer fp.mu.RUnlock()

	// Check for errors first
	for marker, err := range fp.errors {
		if strings.Contains(key, marker) {
			return nil, err
		}
	}

	// Check for delay
	for marker, delay := range fp.delays {
		if strings.Contains(key, marker) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	// Return canned response if available
	for marker, response := range fp.responses {
		if strings.Contains(key, marker) {
			return response, nil
		}
	}

	// Return default mock response
	return &shared.CompletionResponse{
		Content: fmt.Sprintf("Mock response for: %s", key),
		Usage: shared.TokenUsage{
			PromptTokens:     10,
			CompletionTokens: 20,
			TotalTokens:      30,
		},
		StopReason: "stop",
	}, nil
}
