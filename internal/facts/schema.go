package facts

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const catalogSchemaURL = "mathtik://facts/catalog.schema.json"

var catalogSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"required": []any{"facts"},
	"properties": map[string]any{
		"facts": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"id", "op", "a", "b", "answer", "level"},
				"additionalProperties": false,
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"op":     map[string]any{"enum": []any{"mul", "div"}},
					"a":      map[string]any{"type": "integer", "minimum": 0},
					"b":      map[string]any{"type": "integer", "minimum": 1},
					"answer": map[string]any{"type": "integer", "minimum": 0},
					"level":  map[string]any{"type": "integer", "minimum": MinLevel, "maximum": MaxLevel},
				},
			},
		},
	},
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, so round-trip the
		// Go literal through encoding/json first.
		raw, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("unmarshal schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(catalogSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(catalogSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateCatalog checks raw catalog JSON against the catalog schema.
func validateCatalog(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
