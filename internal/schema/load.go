package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// registryFileSchema constrains a registry override file before decoding:
// a non-empty array of {name, headers, instructions} entries.
func registryFileSchema() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"name": map[string]any{"type": "string", "minLength": 1},
				"headers": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string", "minLength": 1},
				},
				"instructions": map[string]any{"type": "string"},
			},
			"required": []string{"name", "headers", "instructions"},
		},
	}
}

// LoadFile reads a registry override from a JSON file, validates it
// against the registry file schema, and builds a Registry from it.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", path, err)
	}
	if err := validateRegistryJSON(data); err != nil {
		return nil, fmt.Errorf("registry: %s: %w", path, err)
	}
	var schemas []ArtifactSchema
	if err := json.Unmarshal(data, &schemas); err != nil {
		return nil, fmt.Errorf("registry: decode %s: %w", path, err)
	}
	return NewRegistry(schemas)
}

func validateRegistryJSON(data []byte) error {
	b, err := json.Marshal(registryFileSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("registry.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("registry.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("registry file does not match schema: %w", err)
	}
	return nil
}
