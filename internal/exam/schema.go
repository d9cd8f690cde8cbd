package exam

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSetSchema defines the JSON shape of a question-set file: an
// array of questions with prompt, type label, options and answer key.
var questionSetSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type": "string",
			},
			"question_images": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"type": map[string]any{
				"type": "string",
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"images": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"text"},
				},
			},
			"answer": map[string]any{
				"oneOf": []any{
					map[string]any{"type": "string", "minLength": 1},
					map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
				},
			},
		},
		"required": []any{"question", "type", "options", "answer"},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileSchema compiles the question-set schema exactly once.
func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(questionSetSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-set.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validateQuestionSet checks raw question-set JSON against the schema.
func validateQuestionSet(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
