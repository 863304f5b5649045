package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Operation names the kind of invocation
type Operation string

const (
	OperationCompletion Operation = "completion"
	OperationEmbedding  Operation = "embedding"
)

// Invocation is a single request about to be sent to a model endpoint
type Invocation struct {
	ID        string
	Operation Operation
	Region    string
	Model     string
	Body      []byte
	StartedAt time.Time
}

// InvocationResponse is the raw outcome of an invocation
type InvocationResponse struct {
	StatusCode int
	Body       []byte
	Duration   time.Duration
}

// Middleware defines the interface for invocation middleware components
type Middleware interface {
	// Name returns the middleware name for identification
	Name() string

	// ProcessRequest processes the invocation before it is signed and sent
	ProcessRequest(ctx context.Context, inv *Invocation) (*Invocation, error)

	// ProcessResponse observes the raw response (or transport error) of an invocation
	ProcessResponse(ctx context.Context, inv *Invocation, resp *InvocationResponse, err error)
}

// MiddlewareChain manages a chain of invocation middleware
type MiddlewareChain struct {
	mu          sync.RWMutex
	middlewares []Middleware
}

// NewMiddlewareChain creates a new middleware chain
func NewMiddlewareChain(middlewares ...Middleware) *MiddlewareChain {
	chain := &MiddlewareChain{}
	for _, middleware := range middlewares {
		chain.AddMiddleware(middleware)
	}
	return chain
}

// AddMiddleware adds a middleware to the chain
func (c *MiddlewareChain) AddMiddleware(middleware Middleware) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.middlewares = append(c.middlewares, middleware)
}

// RemoveMiddleware removes a middleware by name
func (c *MiddlewareChain) RemoveMiddleware(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, middleware := range c.middlewares {
		if middleware.Name() == name {
			c.middlewares = append(c.middlewares[:i], c.middlewares[i+1:]...)
			return true
		}
	}
	return false
}

func (c *MiddlewareChain) snapshot() []Middleware {
	c.mu.RLock()
	defer c.mu.RUnlock()
	middlewares := make([]Middleware, len(c.middlewares))
	copy(middlewares, c.middlewares)
	return middlewares
}

// ProcessRequest processes the invocation through the middleware chain
func (c *MiddlewareChain) ProcessRequest(ctx context.Context, inv *Invocation) (*Invocation, error) {
	current := inv
	var err error

	for _, middleware := range c.snapshot() {
		current, err = middleware.ProcessRequest(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("middleware %s failed: %w", middleware.Name(), err)
		}
	}

	return current, nil
}

// ProcessResponse passes the response through the middleware chain (in reverse order)
func (c *MiddlewareChain) ProcessResponse(ctx context.Context, inv *Invocation, resp *InvocationResponse, err error) {
	middlewares := c.snapshot()
	for i := len(middlewares) - 1; i >= 0; i-- {
		middlewares[i].ProcessResponse(ctx, inv, resp, err)
	}
}

// GetMiddlewareNames returns the names of all middleware in the chain
func (c *MiddlewareChain) GetMiddlewareNames() []string {
	middlewares := c.snapshot()
	names := make([]string, len(middlewares))
	for i, middleware := range middlewares {
		names[i] = middleware.Name()
	}
	return names
}
