package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	completion := NewCompletion("hi")
	assert.False(t, completion.IsFailure())
	assert.Equal(t, "hi", completion.String())
	assert.NoError(t, completion.Err())

	failure := NewFailure("boom")
	failure.StatusCode = 400
	assert.True(t, failure.IsFailure())
	assert.Equal(t, "ERROR: boom", failure.String())
	assert.Equal(t, "boom", failure.Message)

	err := failure.Err()
	require.Error(t, err)
	var llmErr *Error
	require.True(t, errors.As(err, &llmErr))
	assert.Equal(t, ErrModel, llmErr.Kind)
	assert.Equal(t, CodeModelFailure, llmErr.Code)
	assert.Equal(t, "boom", llmErr.Message)
	assert.Equal(t, 400, llmErr.StatusCode)

	var nilResult *Result
	assert.False(t, nilResult.IsFailure())
	assert.Empty(t, nilResult.String())
}
