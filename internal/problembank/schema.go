package problembank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// importSchemaDef is the JSON schema an import file must satisfy.
var importSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"problems": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string", "minLength": 1},
					"passage":     map[string]any{"type": "string", "minLength": 1},
					"question":    map[string]any{"type": "string", "minLength": 1},
					"grade_level": map[string]any{"type": "integer", "minimum": 0, "maximum": 9},
				},
				"required":             []any{"title", "passage", "question"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"problems"},
	"additionalProperties": false,
}

var (
	importSchemaOnce sync.Once
	importSchema     *jsonschema.Schema
	importSchemaErr  error
)

// compiledImportSchema compiles the import schema on first use.
func compiledImportSchema() (*jsonschema.Schema, error) {
	importSchemaOnce.Do(func() {
		// The jsonschema library wants a parsed value, not a Go map with
		// arbitrary concrete types. Round-trip through JSON to normalize.
		defBytes, err := json.Marshal(importSchemaDef)
		if err != nil {
			importSchemaErr = fmt.Errorf("marshal import schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			importSchemaErr = fmt.Errorf("parse import schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://problem-import.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			importSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		importSchema, importSchemaErr = c.Compile(schemaURL)
	})
	return importSchema, importSchemaErr
}
