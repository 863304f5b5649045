// Package nodes provides the Bedrock plug-in nodes of the orchestration host.
//
// This package describes the nodes the host lists in its palette and builds
// model instances from the per-node configuration. When imported, it
// registers the awsBedrock and awsBedrockEmbeddings nodes in the global
// registry.
//
// Key components:
//   - Node metadata (label, category, inputs, credential descriptor)
//   - Credential resolution with fallback to the node inputs
//   - Thread-safe node registry and a factory initializing nodes by name
//   - Model options loaded from the Bedrock foundation-model catalog
//
// Example usage:
//
//	factory := nodes.New(nodes.InitOptions{
//	    Credentials: nodes.StaticCredentials{"awsKey": key, "awsSecret": secret},
//	})
//	instance, err := factory.Init(ctx, nodes.LLMNodeName, nodes.NodeData{
//	    Inputs: map[string]interface{}{"region": "us-west-2", "temperature": "0.2"},
//	})
//	model := instance.(llm.LLM)
package nodes
