package nodes

import (
	"context"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
	"github.com/inercia/go-llm-bedrock/pkg/providers/bedrock"
)

// LLMNodeName is the registry name of the Bedrock language-model node
const LLMNodeName = "awsBedrock"

// LLMNode exposes Bedrock text-completion models as an LLM node
type LLMNode struct {
	*modelLoader
}

// NewLLMNode creates the awsBedrock node
func NewLLMNode() *LLMNode {
	return &LLMNode{modelLoader: newModelLoader(bedrock.ModalityText)}
}

// llmInputs documents the node inputs for InputsSchema
type llmInputs struct {
	Region      string  `json:"region" title:"Region" default:"us-east-1"`
	Model       string  `json:"model" title:"Model Name" default:"anthropic.claude-v2"`
	Temperature float64 `json:"temperature,omitempty" title:"Temperature" minimum:"0" maximum:"1" default:"0.7"`
	MaxTokens   int     `json:"max_tokens_to_sample,omitempty" title:"Max Tokens to Sample" minimum:"1" default:"200"`
	TopP        float64 `json:"top_p,omitempty" title:"Top Probability" minimum:"0" maximum:"1" default:"0.5"`
	TopK        int     `json:"top_k,omitempty" title:"Top K" minimum:"0" default:"25"`
}

// Metadata implements Node
func (n *LLMNode) Metadata() Metadata {
	cred := credentialParam
	return Metadata{
		Label:       "AWS Bedrock",
		Name:        LLMNodeName,
		Version:     1.1,
		Type:        "AWSBedrock",
		Icon:        "awsBedrock.png",
		Category:    "LLMs",
		Description: "Wrapper around AWS Bedrock large language models",
		BaseClasses: []string{"AWSBedrock", "LLM", "BaseLLM", "BaseLanguageModel"},
		Credential:  &cred,
		Inputs: []Param{
			{Label: "Region", Name: "region", Type: ParamOptions, Options: regionOptions, Default: llm.DefaultRegion},
			{Label: "Model Name", Name: "model", Type: ParamAsyncOpts, Options: textModelOptions, Default: llm.DefaultModel, LoadMethod: ListModelsMethod},
			{Label: "Temperature", Name: "temperature", Type: ParamNumber, Step: 0.1, Default: 0.7, Optional: true},
			{Label: "Max Tokens to Sample", Name: "max_tokens_to_sample", Type: ParamNumber, Step: 10, Default: 200},
			{Label: "Top Probability", Name: "top_p", Type: ParamNumber, Step: 0.1, Default: 0.5, AdditionalParam: true},
			{Label: "Top K", Name: "top_k", Type: ParamNumber, Step: 10, Default: 25},
		},
	}
}

// InputsSchema implements SchemaProvider
func (n *LLMNode) InputsSchema() (map[string]interface{}, error) {
	schema, err := llm.SchemaFromStructAsMap(llmInputs{})
	if err != nil {
		return nil, err
	}
	setEnum(schema, "region", optionNames(regionOptions))
	return schema, nil
}

// Init builds a *bedrock.Client usable as llm.LLM
func (n *LLMNode) Init(ctx context.Context, data NodeData, opts InitOptions) (interface{}, error) {
	config, err := llmConfig(data)
	if err != nil {
		return nil, err
	}

	cred, err := resolveCredential(ctx, data, opts.Credentials)
	if err != nil {
		return nil, err
	}

	client, err := bedrock.NewClient(config, cred, opts.clientOptions()...)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug().Str("node", data.ID).Str("region", config.Region).Str("model", config.Model).Msg("initialized bedrock llm")
	return client, nil
}

func llmConfig(data NodeData) (llm.InvocationConfig, error) {
	config := llm.InvocationConfig{
		Region: stringInput(data.Inputs, "region", llm.DefaultRegion),
		Model:  stringInput(data.Inputs, "model", llm.DefaultModel),
	}

	var err error
	if config.Temperature, err = floatInput(data.Inputs, "temperature"); err != nil {
		return config, invalidInput(err)
	}
	if config.MaxTokens, err = intInput(data.Inputs, "max_tokens_to_sample"); err != nil {
		return config, invalidInput(err)
	}
	if config.TopP, err = floatInput(data.Inputs, "top_p"); err != nil {
		return config, invalidInput(err)
	}
	if config.TopK, err = intInput(data.Inputs, "top_k"); err != nil {
		return config, invalidInput(err)
	}
	return config, nil
}

func invalidInput(err error) error {
	e := llm.NewConfigurationError(llm.CodeInvalidConfig, err.Error())
	e.Cause = err
	return e
}

func setEnum(schema map[string]interface{}, property string, values []string) {
	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		return
	}
	prop, ok := props[property].(map[string]interface{})
	if !ok {
		return
	}
	enum := make([]interface{}, len(values))
	for i, v := range values {
		enum[i] = v
	}
	prop["enum"] = enum
}
