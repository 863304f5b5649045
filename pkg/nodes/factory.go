package nodes

import (
	"context"
	"fmt"

	"github.com/inercia/go-llm-bedrock/pkg/llm"
)

// CodeUnknownNode is returned when a node name is not registered
const CodeUnknownNode = "unknown_node"

// Factory initializes registered nodes with a shared set of host collaborators
type Factory struct {
	opts InitOptions
}

// New creates a new node factory
func New(opts InitOptions) *Factory {
	return &Factory{opts: opts}
}

func (f *Factory) node(name string) (Node, error) {
	node, exists := GetNode(name)
	if !exists {
		return nil, llm.NewConfigurationError(CodeUnknownNode, fmt.Sprintf("unknown node: %s", name))
	}
	return node, nil
}

// Init builds the model instance of the named node
func (f *Factory) Init(ctx context.Context, name string, data NodeData) (interface{}, error) {
	node, err := f.node(name)
	if err != nil {
		return nil, err
	}
	return node.Init(ctx, data, f.opts)
}

// LoadOptions runs a load method of the named node
func (f *Factory) LoadOptions(ctx context.Context, name, method string, data NodeData) ([]Option, error) {
	node, err := f.node(name)
	if err != nil {
		return nil, err
	}
	loader, ok := node.(OptionsLoader)
	if !ok {
		return nil, fmt.Errorf("node %s has no load methods", name)
	}
	return loader.LoadOptions(ctx, method, data, f.opts)
}

// Metadata returns the metadata of every registered node, sorted by name
func (f *Factory) Metadata() []Metadata {
	names := ListNodes()
	all := make([]Metadata, 0, len(names))
	for _, name := range names {
		if node, ok := GetNode(name); ok {
			all = append(all, node.Metadata())
		}
	}
	return all
}
