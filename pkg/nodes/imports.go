package nodes

func init() {
	// Register the Bedrock language-model node
	RegisterNode(NewLLMNode())

	// Register the Bedrock embeddings node
	RegisterNode(NewEmbeddingsNode())
}
