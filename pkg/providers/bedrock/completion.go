package bedrock

import (
	"context"

	"github.com/bytedance/sonic"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
	"github.com/inercia/go-llm-bedrock/pkg/prompt"
)

// completionRequest is the text-completion body accepted by the invoke endpoint.
// Stop sequences are never forwarded from the configuration.
type completionRequest struct {
	Prompt            string   `json:"prompt"`
	MaxTokensToSample int      `json:"max_tokens_to_sample"`
	Temperature       float64  `json:"temperature"`
	TopK              int      `json:"top_k"`
	TopP              float64  `json:"top_p"`
	StopSequences     []string `json:"stop_sequences"`
}

func (c *Client) buildCompletionRequest(text string) ([]byte, error) {
	return sonic.Marshal(completionRequest{
		Prompt:            prompt.Normalize(text),
		MaxTokensToSample: c.config.MaxTokensOrDefault(),
		Temperature:       c.config.TemperatureOrDefault(),
		TopK:              c.config.TopKOrDefault(),
		TopP:              c.config.TopPOrDefault(),
		StopSequences:     []string{},
	})
}

// InvokeCompletion sends the prompt to the model and returns a tagged result.
//
// A response carrying "completion" yields a Completion, one carrying "message"
// a Failure, and anything else the "No result" placeholder. Transport failures
// and non-JSON bodies are returned as errors.
func (c *Client) InvokeCompletion(ctx context.Context, text string) (*llm.Result, error) {
	body, err := c.buildCompletionRequest(text)
	if err != nil {
		return nil, &llm.Error{Kind: llm.ErrConfiguration, Code: llm.CodeInvalidConfig, Message: "failed to encode request", Cause: err}
	}

	resp, err := c.invoke(ctx, llm.OperationCompletion, body)
	if err != nil {
		return nil, err
	}

	return parseCompletion(resp)
}

// Call satisfies llm.LLM. Failures are rendered as "ERROR: <message>" unless
// the client was built WithStrictFailures.
func (c *Client) Call(ctx context.Context, text string) (string, error) {
	result, err := c.InvokeCompletion(ctx, text)
	if err != nil {
		return "", err
	}
	if c.strict && result.IsFailure() {
		return "", result.Err()
	}
	return result.String(), nil
}

func parseCompletion(resp *llm.InvocationResponse) (*llm.Result, error) {
	var payload map[string]interface{}
	if err := sonic.Unmarshal(resp.Body, &payload); err != nil {
		return nil, llm.NewResponseShapeError(llm.CodeInvalidJSON, "completion response is not a JSON object", resp.StatusCode, resp.Body, err)
	}

	// only a non-empty string completion counts; a completion of any other type
	// falls through to the message or to NoResultText
	var result *llm.Result
	if completion, ok := payload["completion"].(string); ok && completion != "" {
		result = llm.NewCompletion(completion)
	} else if message, ok := payload["message"].(string); ok && message != "" {
		result = llm.NewFailure(message)
	} else {
		result = llm.NewCompletion(llm.NoResultText)
	}
	result.StatusCode = resp.StatusCode

	return result, nil
}
