package nodes

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
	"github.com/inercia/go-llm-bedrock/pkg/providers/bedrock"
)

// ParamType is the kind of widget the host renders for an input
type ParamType string

const (
	ParamString     ParamType = "string"
	ParamPassword   ParamType = "password"
	ParamNumber     ParamType = "number"
	ParamOptions    ParamType = "options"
	ParamAsyncOpts  ParamType = "asyncOptions"
	ParamCredential ParamType = "credential"
)

// Option is a selectable value of an options input
type Option struct {
	Label string `json:"label"`
	Name  string `json:"name"`
}

// Param describes one configurable input of a node or credential
type Param struct {
	Label           string      `json:"label"`
	Name            string      `json:"name"`
	Type            ParamType   `json:"type"`
	Default         interface{} `json:"default,omitempty"`
	Step            float64     `json:"step,omitempty"`
	Optional        bool        `json:"optional,omitempty"`
	AdditionalParam bool        `json:"additionalParams,omitempty"`
	Options         []Option    `json:"options,omitempty"`
	LoadMethod      string      `json:"loadMethod,omitempty"`
	CredentialNames []string    `json:"credentialNames,omitempty"`
}

// Metadata is the static description the host uses to list and render a node
type Metadata struct {
	Label       string   `json:"label"`
	Name        string   `json:"name"`
	Version     float64  `json:"version"`
	Type        string   `json:"type"`
	Icon        string   `json:"icon"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	BaseClasses []string `json:"baseClasses"`
	Credential  *Param   `json:"credential,omitempty"`
	Inputs      []Param  `json:"inputs"`
}

// Input returns the input with the given name
func (m Metadata) Input(name string) (Param, bool) {
	for _, p := range m.Inputs {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// NodeData is the per-instance configuration handed over by the host
type NodeData struct {
	ID         string                 `json:"id"`
	Inputs     map[string]interface{} `json:"inputs"`
	Credential string                 `json:"credential,omitempty"`
}

// CredentialResolver looks up a stored credential record by id and returns its
// decrypted fields
type CredentialResolver interface {
	Resolve(ctx context.Context, credentialID string) (map[string]string, error)
}

// StaticCredentials resolves every credential id to the same fields
type StaticCredentials map[string]string

// Resolve implements CredentialResolver
func (s StaticCredentials) Resolve(_ context.Context, _ string) (map[string]string, error) {
	return s, nil
}

// InitOptions carries the host collaborators a node needs at init time
type InitOptions struct {
	Credentials CredentialResolver
	Logger      zerolog.Logger
	HTTPClient  *http.Client

	// BaseURL overrides the Bedrock endpoint, mostly for tests and VPC endpoints
	BaseURL string

	// ClientOptions are appended to the options of every client built by the node
	ClientOptions []bedrock.Option
}

// Node is a plug-in component the host can list and instantiate
type Node interface {
	Metadata() Metadata

	// Init builds the model instance described by data. The returned value
	// satisfies llm.LLM or llm.Embeddings depending on the node category.
	Init(ctx context.Context, data NodeData, opts InitOptions) (interface{}, error)
}

// OptionsLoader is implemented by nodes with inputs whose options are loaded
// at runtime (inputs of type asyncOptions)
type OptionsLoader interface {
	LoadOptions(ctx context.Context, method string, data NodeData, opts InitOptions) ([]Option, error)
}

// SchemaProvider is implemented by nodes publishing a JSON Schema of their inputs
type SchemaProvider interface {
	InputsSchema() (map[string]interface{}, error)
}

func (o InitOptions) clientOptions() []bedrock.Option {
	opts := []bedrock.Option{bedrock.WithLogger(o.Logger)}
	if o.HTTPClient != nil {
		opts = append(opts, bedrock.WithHTTPClient(o.HTTPClient))
	}
	if o.BaseURL != "" {
		opts = append(opts, bedrock.WithBaseURL(o.BaseURL))
	}
	return append(opts, o.ClientOptions...)
}

var (
	_ llm.LLM        = (*bedrock.Client)(nil)
	_ llm.Embeddings = (*bedrock.Client)(nil)
	_ llm.Completer  = (*bedrock.Client)(nil)
)
