package nodes

import (
	"context"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
	"github.com/inercia/go-llm-bedrock/pkg/providers/bedrock"
)

// EmbeddingsNodeName is the registry name of the Bedrock embeddings node
const EmbeddingsNodeName = "awsBedrockEmbeddings"

// EmbeddingsNode exposes Bedrock embedding models as an Embeddings node
type EmbeddingsNode struct {
	*modelLoader
}

// NewEmbeddingsNode creates the awsBedrockEmbeddings node
func NewEmbeddingsNode() *EmbeddingsNode {
	return &EmbeddingsNode{modelLoader: newModelLoader(bedrock.ModalityEmbedding)}
}

type embeddingsInputs struct {
	Region string `json:"region" title:"Region" default:"us-east-1"`
	Model  string `json:"model" title:"Model Name" default:"amazon.titan-e1t-medium"`
}

// Metadata implements Node
func (n *EmbeddingsNode) Metadata() Metadata {
	cred := credentialParam
	return Metadata{
		Label:       "AWSBedrock Embeddings",
		Name:        EmbeddingsNodeName,
		Version:     1.0,
		Type:        "AWSBedrockEmbeddings",
		Icon:        "awsBedrock.png",
		Category:    "Embeddings",
		Description: "AWSBedrock API to generate embeddings for a given text",
		BaseClasses: []string{"AWSBedrockEmbeddings", "Embeddings"},
		Credential:  &cred,
		Inputs: []Param{
			{Label: "Region", Name: "region", Type: ParamOptions, Options: regionOptions, Default: llm.DefaultRegion},
			{Label: "Model Name", Name: "model", Type: ParamAsyncOpts, Options: embeddingModelOptions, Default: llm.DefaultEmbeddingModel, LoadMethod: ListModelsMethod},
		},
	}
}

// InputsSchema implements SchemaProvider
func (n *EmbeddingsNode) InputsSchema() (map[string]interface{}, error) {
	schema, err := llm.SchemaFromStructAsMap(embeddingsInputs{})
	if err != nil {
		return nil, err
	}
	setEnum(schema, "region", optionNames(regionOptions))
	return schema, nil
}

// Init builds a *bedrock.Client usable as llm.Embeddings. The region input is
// honoured; it defaults to us-east-1.
func (n *EmbeddingsNode) Init(ctx context.Context, data NodeData, opts InitOptions) (interface{}, error) {
	config := llm.InvocationConfig{
		Region: stringInput(data.Inputs, "region", llm.DefaultRegion),
		Model:  stringInput(data.Inputs, "model", llm.DefaultEmbeddingModel),
	}

	cred, err := resolveCredential(ctx, data, opts.Credentials)
	if err != nil {
		return nil, err
	}

	client, err := bedrock.NewClient(config, cred, opts.clientOptions()...)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug().Str("node", data.ID).Str("region", config.Region).Str("model", config.Model).Msg("initialized bedrock embeddings")
	return client, nil
}
