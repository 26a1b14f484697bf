package ingest

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema gates the wire shape of an import document before any
// per-item rule runs. The per-item taxonomy and answer-shape rules are not
// expressible here; they run afterwards in the bank package.
const documentSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "subject_id", "competency_id", "type", "difficulty", "cognitive_level", "text", "answer"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "subject_id": {"type": "string", "minLength": 1},
      "topic_id": {"type": "string"},
      "competency_id": {"type": "string", "minLength": 1},
      "type": {"type": "string", "minLength": 1},
      "difficulty": {"type": "string", "enum": ["easy", "moderate", "difficult"]},
      "cognitive_level": {"type": "string", "minLength": 1},
      "text": {"type": "string", "minLength": 1},
      "choices": {"type": "array", "items": {"type": "string"}},
      "answer": {},
      "verified": {"type": "boolean"}
    },
    "additionalProperties": false
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the compiled import-document schema, compiling it once.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(documentSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://items.json", parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://items.json")
	})
	return compiledSchema, compileErr
}

// validateDocument checks raw JSON against the import-document schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile import schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
