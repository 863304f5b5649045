package bedrock

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
	"github.com/inercia/go-llm-bedrock/pkg/signer"
)

// LLMType identifies Bedrock language-model instances
const LLMType = "awsbedrock"

// Client invokes a single Bedrock model with a fixed configuration and credential
type Client struct {
	config      llm.InvocationConfig
	transport   Transport
	chain       *llm.MiddlewareChain
	logger      zerolog.Logger
	concurrency int
	strict      bool
}

type clientOptions struct {
	httpClient  *http.Client
	baseURL     string
	logger      zerolog.Logger
	middlewares []llm.Middleware
	concurrency int
	transport   Transport
	runtime     bool
	signerOpts  []signer.Option
	strict      bool
}

// Option configures a Client
type Option func(*clientOptions)

// WithHTTPClient sets the HTTP client used to reach the endpoint
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithBaseURL overrides https://bedrock.<region>.amazonaws.com
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithMiddleware appends invocation middleware
func WithMiddleware(m ...llm.Middleware) Option {
	return func(o *clientOptions) {
		o.middlewares = append(o.middlewares, m...)
	}
}

// WithConcurrency bounds the number of concurrent invocations used by
// EmbedDocuments. Values below 2 keep the batch sequential.
func WithConcurrency(n int) Option {
	return func(o *clientOptions) {
		o.concurrency = n
	}
}

// WithTransport replaces the transport entirely
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// WithRuntimeTransport sends invocations through the bedrock-runtime SDK client
// instead of signing requests to the bedrock endpoint directly
func WithRuntimeTransport() Option {
	return func(o *clientOptions) {
		o.runtime = true
	}
}

// WithSignerOptions passes options to the request signer
func WithSignerOptions(opts ...signer.Option) Option {
	return func(o *clientOptions) {
		o.signerOpts = append(o.signerOpts, opts...)
	}
}

// WithStrictFailures makes Call return an error for model-reported failures
// instead of the "ERROR: ..." text
func WithStrictFailures() Option {
	return func(o *clientOptions) {
		o.strict = true
	}
}

// NewClient creates a new Bedrock client. Missing credential fields, an empty
// region or an empty model are reported here as configuration errors.
func NewClient(config llm.InvocationConfig, cred llm.Credential, opts ...Option) (*Client, error) {
	o := clientOptions{logger: zerolog.Nop(), concurrency: 1}
	for _, opt := range opts {
		opt(&o)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := cred.Validate(); err != nil {
		return nil, err
	}

	transport := o.transport
	if transport == nil {
		var err error
		transport, err = newTransport(config, cred, o)
		if err != nil {
			return nil, err
		}
	}

	middlewares := append([]llm.Middleware{llm.NewLoggingMiddleware(o.logger)}, o.middlewares...)

	return &Client{
		config:      config,
		transport:   transport,
		chain:       llm.NewMiddlewareChain(middlewares...),
		logger:      o.logger,
		concurrency: o.concurrency,
		strict:      o.strict,
	}, nil
}

func newTransport(config llm.InvocationConfig, cred llm.Credential, o clientOptions) (Transport, error) {
	if o.runtime {
		return NewRuntimeTransportFromCredential(context.Background(), cred, config.Region, o.baseURL, o.httpClient)
	}

	s, err := signer.New(cred, config.Region, o.signerOpts...)
	if err != nil {
		return nil, err
	}
	return NewHTTPTransport(s, o.httpClient, o.baseURL), nil
}

// Config returns the client configuration
func (c *Client) Config() llm.InvocationConfig {
	return c.config
}

// Type returns the model type identifier
func (c *Client) Type() string {
	return LLMType
}

// invoke runs one invocation through the middleware chain and the transport
func (c *Client) invoke(ctx context.Context, op llm.Operation, body []byte) (*llm.InvocationResponse, error) {
	inv := &llm.Invocation{
		ID:        uuid.NewString(),
		Operation: op,
		Region:    c.config.Region,
		Model:     c.config.Model,
		Body:      body,
		StartedAt: time.Now(),
	}

	inv, err := c.chain.ProcessRequest(ctx, inv)
	if err != nil {
		return nil, err
	}

	resp, err := c.transport.Invoke(ctx, inv.Model, inv.Body)
	if resp != nil {
		resp.Duration = time.Since(inv.StartedAt)
	}
	c.chain.ProcessResponse(ctx, inv, resp, err)

	return resp, err
}
