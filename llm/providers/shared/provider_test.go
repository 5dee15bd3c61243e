package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCompletionRequest(t *testing.T) {
	valid := &CompletionRequest{
		Messages: []Message{
			{Role: RoleUser, Content: "hello"},
		},
		Options: CompletionOptions{Model: "llama3-8b-8192"},
	}
	assert.NoError(t, ValidateCompletionRequest(valid))

	tests := []struct {
		name string
		req  *CompletionRequest
		code ErrorCode
	}{
		{"nil request", nil, ErrInvalidRequest},
		{"no messages", &CompletionRequest{Options: CompletionOptions{Model: "m"}}, ErrInvalidRequest},
		{
			"empty role",
			&CompletionRequest{
				Messages: []Message{{Content: "hi"}},
				Options:  CompletionOptions{Model: "m"},
			},
			ErrInvalidRequest,
		},
		{
			"bad role",
			&CompletionRequest{
				Messages: []Message{{Role: "tool", Content: "hi"}},
				Options:  CompletionOptions{Model: "m"},
			},
			ErrInvalidRequest,
		},
		{
			"missing model",
			&CompletionRequest{
				Messages: []Message{{Role: RoleUser, Content: "hi"}},
			},
			ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCompletionRequest(tt.req)
			require.Error(t, err)

			var pe *ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.code, pe.Code)
		})
	}
}

func TestNormalizeError(t *testing.T) {
	assert.Nil(t, NormalizeError(nil))

	pe := &ProviderError{Code: ErrRateLimited, Message: "slow down"}
	assert.Same(t, pe, NormalizeError(pe))

	plain := NormalizeError(errors.New("boom"))
	assert.Equal(t, ErrUnknown, plain.Code)
	assert.Equal(t, "boom", plain.Message)
}
