package llm

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/swaggest/jsonschema-go"
)

// SchemaFromStruct generates a JSON Schema from a Go struct using the swaggest/jsonschema-go library.
// Nodes use it to publish the schema of their inputs.
//
// Example:
//
//	type Inputs struct {
//	    Region string `json:"region" required:"true" enum:"us-east-1,us-west-2"`
//	    TopK   int    `json:"top_k" minimum:"0" default:"25"`
//	}
//	schema, err := SchemaFromStruct(Inputs{})
func SchemaFromStruct(structType interface{}) (jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{}

	schema, err := reflector.Reflect(structType)
	if err != nil {
		return jsonschema.Schema{}, fmt.Errorf("failed to reflect struct to JSON schema: %w", err)
	}

	return schema, nil
}

// SchemaFromStructAsMap generates a JSON Schema as map[string]interface{} from a Go struct
func SchemaFromStructAsMap(structType interface{}) (map[string]interface{}, error) {
	schema, err := SchemaFromStruct(structType)
	if err != nil {
		return nil, err
	}

	jsonBytes, err := sonic.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}

	var schemaMap map[string]interface{}
	if err := sonic.Unmarshal(jsonBytes, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema JSON to map: %w", err)
	}

	return schemaMap, nil
}
