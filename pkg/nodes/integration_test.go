package nodes

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
)

// integrationFactory builds a factory from the environment, skipping the test
// unless BEDROCK_INTEGRATION is set and AWS credentials are available
func integrationFactory(t *testing.T) (*Factory, llm.InvocationConfig) {
	t.Helper()

	if os.Getenv("BEDROCK_INTEGRATION") == "" {
		t.Skip("set BEDROCK_INTEGRATION=1 to run against the real Bedrock endpoint")
	}
	cred := llm.CredentialFromEnv()
	if cred.Validate() != nil {
		t.Skip("AWS credentials not configured")
	}

	config := llm.ConfigFromEnv()
	t.Logf("Using region %s with model %s", config.Region, config.Model)

	return New(InitOptions{Credentials: StaticCredentials{
		CredentialKeyField:  cred.AccessKeyID,
		CredentialSecret:    cred.SecretAccessKey,
		CredentialSessionID: cred.SessionToken,
	}}), config
}

func TestIntegrationOverall(t *testing.T) {
	factory, config := integrationFactory(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	t.Run("completion", func(t *testing.T) {
		instance, err := factory.Init(ctx, LLMNodeName, NodeData{Inputs: map[string]interface{}{
			"region": config.Region,
			"model":  config.Model,
		}})
		require.NoError(t, err)

		result, err := instance.(llm.Completer).InvokeCompletion(ctx, `[{"kwargs":{"content":"Reply with the single word: ready"}}]`)
		require.NoError(t, err)
		assert.False(t, result.IsFailure(), "model reported failure: %s", result.Message)
		assert.NotEmpty(t, result.Text)
	})

	t.Run("embeddings", func(t *testing.T) {
		instance, err := factory.Init(ctx, EmbeddingsNodeName, NodeData{Inputs: map[string]interface{}{
			"region": config.Region,
		}})
		require.NoError(t, err)

		vectors, err := instance.(llm.Embeddings).EmbedDocuments(ctx, []string{"hello", "world"})
		require.NoError(t, err)
		require.Len(t, vectors, 2)
		assert.NotEmpty(t, vectors[0])
		assert.Len(t, vectors[1], len(vectors[0]))
	})

	t.Run("list models", func(t *testing.T) {
		options, err := factory.LoadOptions(ctx, LLMNodeName, ListModelsMethod, NodeData{Inputs: map[string]interface{}{
			"region": config.Region,
		}})
		require.NoError(t, err)
		assert.NotEmpty(t, options)
	})
}
