// Client interfaces expected by the host runtime

package llm

import (
	"context"
	"time"
)

// DefaultCatalogRefreshInterval defines how long a model listing is reused
// before the remote catalog is queried again
const DefaultCatalogRefreshInterval = 5 * time.Minute

// LLM is the base contract for language-model instances returned by nodes
type LLM interface {
	// Call sends a prompt and returns the generated text
	Call(ctx context.Context, prompt string) (string, error)

	// Type returns the model type identifier
	Type() string
}

// Embeddings is the base contract for embedding instances returned by nodes
type Embeddings interface {
	// EmbedDocuments returns one vector per text, in input order
	EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error)

	// EmbedQuery returns the vector of a single text
	EmbedQuery(ctx context.Context, text string) ([]float64, error)
}

// Completer is implemented by clients producing tagged results
type Completer interface {
	InvokeCompletion(ctx context.Context, prompt string) (*Result, error)
}

// ModelInfo describes a foundation model available in a region
type ModelInfo struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Provider         string   `json:"provider"`
	InputModalities  []string `json:"input_modalities,omitempty"`
	OutputModalities []string `json:"output_modalities,omitempty"`
	Streaming        bool     `json:"streaming"`
}

// SupportsOutput reports whether the model produces the given modality (TEXT, EMBEDDING, IMAGE)
func (m ModelInfo) SupportsOutput(modality string) bool {
	for _, o := range m.OutputModalities {
		if o == modality {
			return true
		}
	}
	return false
}
