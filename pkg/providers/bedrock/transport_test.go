package bedrock

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
)

type fakeRuntime struct {
	inputs []*bedrockruntime.InvokeModelInput
	body   []byte
	err    error
}

func (f *fakeRuntime) InvokeModel(_ context.Context, params *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: f.body, ContentType: aws.String("application/json")}, nil
}

func newRuntimeClient(t *testing.T, runtime *fakeRuntime, config llm.InvocationConfig, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithTransport(NewRuntimeTransport(runtime))}, opts...)
	client, err := NewClient(config, testCredential, opts...)
	require.NoError(t, err)
	return client
}

func TestRuntimeTransport_Completion(t *testing.T) {
	runtime := &fakeRuntime{body: []byte(`{"completion":" Sure."}`)}
	client := newRuntimeClient(t, runtime, testConfig)

	result, err := client.InvokeCompletion(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, llm.ResultCompletion, result.Kind)
	assert.Equal(t, " Sure.", result.Text)
	assert.Equal(t, http.StatusOK, result.StatusCode)

	require.Len(t, runtime.inputs, 1)
	assert.Equal(t, "anthropic.claude-v2", aws.ToString(runtime.inputs[0].ModelId))
	assert.Equal(t, "application/json", aws.ToString(runtime.inputs[0].ContentType))
	assert.Contains(t, string(runtime.inputs[0].Body), `"prompt":"hello"`)
}

func TestRuntimeTransport_ServiceError(t *testing.T) {
	runtime := &fakeRuntime{err: &types.ValidationException{Message: aws.String("The provided model identifier is invalid.")}}
	client := newRuntimeClient(t, runtime, testConfig)

	result, err := client.InvokeCompletion(context.Background(), "hello")
	require.NoError(t, err)
	assert.True(t, result.IsFailure())
	assert.Equal(t, "ERROR: The provided model identifier is invalid.", result.Text)
	assert.Equal(t, "The provided model identifier is invalid.", result.Message)
}

func TestRuntimeTransport_ServiceErrorOnEmbedding(t *testing.T) {
	runtime := &fakeRuntime{err: &types.AccessDeniedException{Message: aws.String("denied")}}
	client := newRuntimeClient(t, runtime, embeddingConfig)

	_, err := client.InvokeEmbedding(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrEmbeddingUnavailable))

	var llmErr *llm.Error
	require.True(t, errors.As(err, &llmErr))
	assert.JSONEq(t, `{"message":"denied"}`, string(llmErr.Raw))
}

func TestRuntimeTransport_NetworkError(t *testing.T) {
	runtime := &fakeRuntime{err: errors.New("dial tcp: connection refused")}
	client := newRuntimeClient(t, runtime, testConfig)

	_, err := client.InvokeCompletion(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, llm.IsKind(err, llm.ErrNetwork))
}
