package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without status",
			err:  NewConfigurationError(CodeMissingCredentials, "awsKey not found"),
			want: "configuration_error: awsKey not found",
		},
		{
			name: "with status",
			err:  NewResponseShapeError(CodeInvalidJSON, "not JSON", 502, []byte("<html>"), nil),
			want: "response_shape_error: not JSON (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "signing_error", ErrSigning.String())
	assert.Equal(t, "network_error", ErrNetwork.String())
	assert.Equal(t, "model_error", ErrModel.String())
	assert.Equal(t, "unknown(42)", ErrorKind(42).String())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("invoking model: %w", NewNetworkError(cause))

	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsKind(err, ErrNetwork))
	assert.False(t, IsKind(err, ErrSigning))
	assert.False(t, IsKind(cause, ErrNetwork))

	var llmErr *Error
	require.True(t, errors.As(err, &llmErr))
	assert.Equal(t, CodeRequestFailed, llmErr.Code)
}

func TestErrEmbeddingUnavailable(t *testing.T) {
	err := NewResponseShapeError(CodeEmbeddingUnavailable, "error retrieving embeddings {}", 200, []byte("{}"), nil)
	assert.True(t, errors.Is(err, ErrEmbeddingUnavailable))
	assert.True(t, errors.Is(fmt.Errorf("batch: %w", err), ErrEmbeddingUnavailable))

	other := NewResponseShapeError(CodeInvalidJSON, "not JSON", 200, nil, nil)
	assert.False(t, errors.Is(other, ErrEmbeddingUnavailable))
}

func TestNewSigningError(t *testing.T) {
	assert.Equal(t, CodeInvalidEndpoint, NewSigningError("empty hostname", nil).Code)

	cause := errors.New("boom")
	err := NewSigningError("sign failed", cause)
	assert.Equal(t, CodeSigningFailed, err.Code)
	assert.True(t, errors.Is(err, cause))
}
