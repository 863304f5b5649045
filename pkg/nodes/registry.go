package nodes

import (
	"sort"
	"sync"
)

// nodeRegistry holds all registered nodes
type nodeRegistry struct {
	mu    sync.RWMutex
	nodes map[string]Node
}

var globalRegistry = &nodeRegistry{
	nodes: make(map[string]Node),
}

// RegisterNode registers a node under its metadata name
func RegisterNode(node Node) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.nodes[node.Metadata().Name] = node
}

// GetNode returns a node by name
func GetNode(name string) (Node, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	node, exists := globalRegistry.nodes[name]
	return node, exists
}

// ListNodes returns all registered node names, sorted
func ListNodes() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	names := make([]string, 0, len(globalRegistry.nodes))
	for name := range globalRegistry.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
