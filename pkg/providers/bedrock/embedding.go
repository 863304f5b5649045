package bedrock

import (
	"context"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/errgroup"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
)

type embeddingRequest struct {
	InputText string `json:"inputText"`
}

type embeddingResponse struct {
	Embedding           *[]float64 `json:"embedding"`
	InputTextTokenCount int        `json:"inputTextTokenCount,omitempty"`
}

// InvokeEmbedding returns the embedding of a single text. A response without
// an "embedding" field fails with an error matching llm.ErrEmbeddingUnavailable
// that carries the raw payload.
func (c *Client) InvokeEmbedding(ctx context.Context, text string) ([]float64, error) {
	body, err := sonic.Marshal(embeddingRequest{InputText: text})
	if err != nil {
		return nil, &llm.Error{Kind: llm.ErrConfiguration, Code: llm.CodeInvalidConfig, Message: "failed to encode request", Cause: err}
	}

	resp, err := c.invoke(ctx, llm.OperationEmbedding, body)
	if err != nil {
		return nil, err
	}

	return parseEmbedding(resp)
}

func parseEmbedding(resp *llm.InvocationResponse) ([]float64, error) {
	var object map[string]interface{}
	if err := sonic.Unmarshal(resp.Body, &object); err != nil {
		return nil, llm.NewResponseShapeError(llm.CodeInvalidJSON, "embedding response is not a JSON object", resp.StatusCode, resp.Body, err)
	}

	// an "embedding" field that is not an array of numbers counts as missing
	var payload embeddingResponse
	if err := sonic.Unmarshal(resp.Body, &payload); err != nil {
		return nil, embeddingUnavailable(resp, err)
	}
	if payload.Embedding == nil {
		return nil, embeddingUnavailable(resp, nil)
	}
	return *payload.Embedding, nil
}

func embeddingUnavailable(resp *llm.InvocationResponse, cause error) error {
	return llm.NewResponseShapeError(llm.CodeEmbeddingUnavailable,
		"error retrieving embeddings "+string(resp.Body), resp.StatusCode, resp.Body, cause)
}

// EmbedQuery satisfies llm.Embeddings
func (c *Client) EmbedQuery(ctx context.Context, text string) ([]float64, error) {
	return c.InvokeEmbedding(ctx, text)
}

// EmbedDocuments embeds every text, preserving input order. The first failure
// aborts the batch and no partial result is returned.
func (c *Client) EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error) {
	c.logger.Debug().Int("texts", len(texts)).Int("concurrency", c.concurrency).Msg("embedding documents")
	if c.concurrency < 2 {
		return c.embedSequential(ctx, texts)
	}
	return c.embedConcurrent(ctx, texts)
}

func (c *Client) embedSequential(ctx context.Context, texts []string) ([][]float64, error) {
	embeddings := make([][]float64, 0, len(texts))
	for _, text := range texts {
		embedding, err := c.InvokeEmbedding(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings = append(embeddings, embedding)
	}
	return embeddings, nil
}

func (c *Client) embedConcurrent(ctx context.Context, texts []string) ([][]float64, error) {
	embeddings := make([][]float64, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			embedding, err := c.InvokeEmbedding(gctx, text)
			if err != nil {
				return err
			}
			embeddings[i] = embedding
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return embeddings, nil
}
