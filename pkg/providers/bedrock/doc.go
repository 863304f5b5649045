// Package bedrock invokes AWS Bedrock text-completion and embedding models.
//
// A Client is bound to one model, one region and one credential pair. Each
// call builds the model-specific JSON body, signs it with SigV4 for the
// "bedrock" service and posts it to
//
//	https://bedrock.<region>.amazonaws.com/model/<model>/invoke
//
// Language-model responses are mapped into a tagged llm.Result: a
// "completion" field yields a Completion, a "message" field a Failure, and
// anything else the "No result" placeholder. Embedding responses must carry
// an "embedding" field.
//
// Key features:
//   - Prompt normalization of serialized chat histories (see package prompt)
//   - Ordered, all-or-nothing batch embedding, optionally with bounded concurrency
//   - Alternative transport through the bedrock-runtime SDK client
//   - Invocation middleware (logging and Prometheus metrics)
//   - Foundation-model catalog with cached listings
//
// Usage:
//
//	client, err := bedrock.NewClient(llm.InvocationConfig{
//	    Region: "us-east-1",
//	    Model:  "anthropic.claude-v2",
//	}, llm.CredentialFromEnv())
//	text, err := client.Call(ctx, "Tell me a joke")
//
// There is no retry, backoff or rate limiting: errors reach the caller as
// they happen.
package bedrock
