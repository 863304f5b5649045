// Package llm provides the shared types used by the Bedrock nodes.
//
// This package defines the contracts that instances returned by nodes must
// satisfy, along with the configuration, result and error types used by the
// signer and the invoker.
//
// The main components include:
//
// - LLM and Embeddings interfaces: what the host execution graph calls
// - Credential and InvocationConfig: validated, immutable client configuration
// - Result: tagged completion/failure outcome of a language-model call
// - Error: classified errors (configuration, signing, network, response shape)
// - Middleware: hooks around every invocation, with logging and metrics built in
//
// Provider implementations are located under /pkg/providers/ and the host
// plug-in adapters under /pkg/nodes/.
package llm
