// Package validate checks JSON documents against compiled JSON schemas.
package validate

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

// InvalidDocumentError is returned when a document fails to parse or
// does not match its schema.
type InvalidDocumentError struct {
	Schema  string
	Content json.RawMessage
	Err     error
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Schema, e.Err)
}

func (e *InvalidDocumentError) Unwrap() error { return e.Err }

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// JSON validates raw against schema. Returns *InvalidDocumentError on failure.
func JSON(schema *Schema, raw []byte) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidDocumentError{
			Schema:  schema.Name,
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compile(schema)
	if err != nil {
		return &InvalidDocumentError{
			Schema:  schema.Name,
			Content: raw,
			Err:     fmt.Errorf("compile schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &InvalidDocumentError{
			Schema:  schema.Name,
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}

// Value marshals v and validates the result against schema.
func Value(schema *Schema, v any) error {
	if schema == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", schema.Name, err)
	}
	return JSON(schema, raw)
}

// compile returns a cached compiled schema or compiles and caches it.
func compile(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a generic decoded value, not Go maps with typed slices.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
