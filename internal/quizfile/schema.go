package quizfile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://quizcraft/document.json"

// documentSchema mirrors the model bounds so that file errors are reported
// with a JSON pointer before any question is built.
var documentSchema = map[string]any{
	"$schema":              "https://json-schema.org/draft/2020-12/schema",
	"type":                 "object",
	"required":             []string{"version", "questions"},
	"additionalProperties": false,
	"properties": map[string]any{
		"version": map[string]any{"const": CurrentVersion},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"required":             []string{"title"},
				"additionalProperties": false,
				"properties": map[string]any{
					"title":          map[string]any{"type": "string", "minLength": 1, "maxLength": 200},
					"points":         map[string]any{"type": "integer", "minimum": 1, "maximum": 100},
					"max_selections": map[string]any{"type": "integer", "minimum": 1},
					"choices": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":                 "object",
							"required":             []string{"text"},
							"additionalProperties": false,
							"properties": map[string]any{
								"text":    map[string]any{"type": "string", "minLength": 1, "maxLength": 100},
								"correct": map[string]any{"type": "boolean"},
							},
						},
					},
				},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles documentSchema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not Go
		// maps with typed slices. Round-trip through JSON to get one.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// checkSchema validates a generic JSON value (as produced by json.Unmarshal
// into any) against the document schema.
func checkSchema(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
