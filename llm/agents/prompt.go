package agents

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildSystemPrompt joins an agent's instruction list into a single system
// prompt, one instruction per line.
func BuildSystemPrompt(instructions []string) string {
	return strings.Join(instructions, "\n")
}

// MarshalPayload renders a stage payload as indented JSON for inclusion in a
// user message.
func MarshalPayload(payload map[string]interface{}) (string, error) {
	data, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal agent payload: %w", err)
	}
	return string(data), nil
}
