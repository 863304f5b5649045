package nodes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
	"github.com/inercia/go-llm-bedrock/pkg/providers/bedrock"
)

var testSecrets = StaticCredentials{
	CredentialKeyField: "AKIDEXAMPLE",
	CredentialSecret:   "secret",
}

// bedrockStub records request bodies and answers with a fixed payload
type bedrockStub struct {
	mu     sync.Mutex
	paths  []string
	bodies []map[string]interface{}
}

func newBedrockStub(t *testing.T, payload string) (*bedrockStub, *httptest.Server) {
	t.Helper()
	stub := &bedrockStub{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]interface{}
		_ = sonic.Unmarshal(raw, &body)

		stub.mu.Lock()
		stub.paths = append(stub.paths, r.URL.Path)
		stub.bodies = append(stub.bodies, body)
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, payload)
	}))
	t.Cleanup(srv.Close)
	return stub, srv
}

func testOptions(srv *httptest.Server) InitOptions {
	return InitOptions{
		Credentials: testSecrets,
		HTTPClient:  srv.Client(),
		BaseURL:     srv.URL,
	}
}

func TestRegistry(t *testing.T) {
	names := ListNodes()
	assert.Contains(t, names, LLMNodeName)
	assert.Contains(t, names, EmbeddingsNodeName)

	node, ok := GetNode(LLMNodeName)
	require.True(t, ok)
	assert.Equal(t, "AWS Bedrock", node.Metadata().Label)

	_, ok = GetNode("openai")
	assert.False(t, ok)
}

func TestFactory_UnknownNode(t *testing.T) {
	factory := New(InitOptions{})

	_, err := factory.Init(context.Background(), "nonexistent", NodeData{})
	require.Error(t, err)

	var llmErr *llm.Error
	require.True(t, errors.As(err, &llmErr))
	assert.Equal(t, llm.ErrConfiguration, llmErr.Kind)
	assert.Equal(t, CodeUnknownNode, llmErr.Code)
}

func TestFactory_Metadata(t *testing.T) {
	all := New(InitOptions{}).Metadata()
	require.GreaterOrEqual(t, len(all), 2)

	var categories []string
	for _, m := range all {
		categories = append(categories, m.Category)
	}
	assert.Contains(t, categories, "LLMs")
	assert.Contains(t, categories, "Embeddings")
}

func TestFactory_InitLLM(t *testing.T) {
	stub, srv := newBedrockStub(t, `{"completion":" Why did the chicken cross the road?"}`)
	factory := New(testOptions(srv))

	instance, err := factory.Init(context.Background(), LLMNodeName, NodeData{
		ID: "awsBedrock_0",
		Inputs: map[string]interface{}{
			"region":               "us-west-2",
			"model":                "anthropic.claude-instant-v1",
			"temperature":          "0.2",
			"max_tokens_to_sample": "300",
			"top_p":                0.9,
			"top_k":                float64(25),
		},
	})
	require.NoError(t, err)

	model, ok := instance.(llm.LLM)
	require.True(t, ok)
	assert.Equal(t, bedrock.LLMType, model.Type())

	text, err := model.Call(context.Background(), "Tell me a joke")
	require.NoError(t, err)
	assert.Equal(t, " Why did the chicken cross the road?", text)

	require.Len(t, stub.bodies, 1)
	assert.Equal(t, "/model/anthropic.claude-instant-v1/invoke", stub.paths[0])
	body := stub.bodies[0]
	assert.Equal(t, "Tell me a joke", body["prompt"])
	assert.EqualValues(t, 0.2, body["temperature"])
	assert.EqualValues(t, 300, body["max_tokens_to_sample"])
	assert.EqualValues(t, 0.9, body["top_p"])
	assert.EqualValues(t, 25, body["top_k"])
}

func TestLLMNode_Defaults(t *testing.T) {
	stub, srv := newBedrockStub(t, `{"message":"Too many requests"}`)

	instance, err := NewLLMNode().Init(context.Background(), NodeData{Inputs: map[string]interface{}{"temperature": ""}}, testOptions(srv))
	require.NoError(t, err)

	client := instance.(*bedrock.Client)
	assert.Equal(t, llm.DefaultRegion, client.Config().Region)
	assert.Equal(t, llm.DefaultModel, client.Config().Model)
	assert.Nil(t, client.Config().Temperature)

	text, err := client.Call(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "ERROR: Too many requests", text)

	body := stub.bodies[0]
	assert.EqualValues(t, llm.DefaultTemperature, body["temperature"])
	assert.EqualValues(t, llm.DefaultTopK, body["top_k"])
}

func TestLLMNode_StrictFailures(t *testing.T) {
	_, srv := newBedrockStub(t, `{"message":"Too many requests"}`)
	opts := testOptions(srv)
	opts.ClientOptions = []bedrock.Option{bedrock.WithStrictFailures()}

	instance, err := NewLLMNode().Init(context.Background(), NodeData{}, opts)
	require.NoError(t, err)

	_, err = instance.(llm.LLM).Call(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, llm.IsKind(err, llm.ErrModel))
}

func TestLLMNode_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		inputs map[string]interface{}
	}{
		{name: "temperature not a number", inputs: map[string]interface{}{"temperature": "warm"}},
		{name: "max tokens not a number", inputs: map[string]interface{}{"max_tokens_to_sample": "lots"}},
		{name: "unsupported type", inputs: map[string]interface{}{"top_k": []int{1}}},
		{name: "top_p out of range", inputs: map[string]interface{}{"top_p": "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLLMNode().Init(context.Background(), NodeData{Inputs: tt.inputs}, InitOptions{Credentials: testSecrets})
			require.Error(t, err)
			assert.True(t, llm.IsKind(err, llm.ErrConfiguration), "expected configuration error, got %v", err)
		})
	}
}

type failingResolver struct{}

func (failingResolver) Resolve(context.Context, string) (map[string]string, error) {
	return nil, errors.New("credential store unavailable")
}

func TestResolveCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("from credential record", func(t *testing.T) {
		cred, err := resolveCredential(ctx, NodeData{Credential: "cred-1"}, testSecrets)
		require.NoError(t, err)
		assert.Equal(t, "AKIDEXAMPLE", cred.AccessKeyID)
		assert.Equal(t, "secret", cred.SecretAccessKey)
		assert.Empty(t, cred.SessionToken)
	})

	t.Run("falls back to node inputs", func(t *testing.T) {
		data := NodeData{Inputs: map[string]interface{}{
			CredentialKeyField:  "inline-key",
			CredentialSecret:    "inline-secret",
			CredentialSessionID: "token",
		}}
		cred, err := resolveCredential(ctx, data, nil)
		require.NoError(t, err)
		assert.Equal(t, "inline-key", cred.AccessKeyID)
		assert.Equal(t, "inline-secret", cred.SecretAccessKey)
		assert.Equal(t, "token", cred.SessionToken)
	})

	t.Run("record wins over inputs", func(t *testing.T) {
		data := NodeData{Inputs: map[string]interface{}{CredentialKeyField: "inline-key"}}
		cred, err := resolveCredential(ctx, data, testSecrets)
		require.NoError(t, err)
		assert.Equal(t, "AKIDEXAMPLE", cred.AccessKeyID)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := resolveCredential(ctx, NodeData{}, StaticCredentials{CredentialSecret: "secret"})
		require.Error(t, err)
		assert.True(t, llm.IsKind(err, llm.ErrConfiguration))
		assert.Contains(t, err.Error(), "awsKey not found")
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := resolveCredential(ctx, NodeData{}, StaticCredentials{CredentialKeyField: "key"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "awsSecret not found")
	})

	t.Run("resolver failure", func(t *testing.T) {
		_, err := resolveCredential(ctx, NodeData{Credential: "cred-1"}, failingResolver{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credential store unavailable")
	})
}

func TestEmbeddingsNode_Init(t *testing.T) {
	stub, srv := newBedrockStub(t, `{"embedding":[0.5,0.25]}`)

	instance, err := NewEmbeddingsNode().Init(context.Background(), NodeData{
		Inputs: map[string]interface{}{"region": "eu-west-1"},
	}, testOptions(srv))
	require.NoError(t, err)

	client := instance.(*bedrock.Client)
	assert.Equal(t, "eu-west-1", client.Config().Region)
	assert.Equal(t, llm.DefaultEmbeddingModel, client.Config().Model)

	embeddings, ok := instance.(llm.Embeddings)
	require.True(t, ok)

	vectors, err := embeddings.EmbedDocuments(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 0.25}, {0.5, 0.25}}, vectors)
	assert.Equal(t, "a", stub.bodies[0]["inputText"])
	assert.Equal(t, "b", stub.bodies[1]["inputText"])
}

func TestEmbeddingsNode_MissingCredential(t *testing.T) {
	_, err := NewEmbeddingsNode().Init(context.Background(), NodeData{}, InitOptions{})
	require.Error(t, err)
	assert.True(t, llm.IsKind(err, llm.ErrConfiguration))
}
