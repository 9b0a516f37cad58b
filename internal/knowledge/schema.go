package knowledge

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// treeSchema describes the recursive tree document: every node is
// exactly one of a question (q/yes/no, both branches present) or a
// guess leaf.
var treeSchema = map[string]any{
	"$ref": "#/$defs/node",
	"$defs": map[string]any{
		"node": map[string]any{
			"type": "object",
			"oneOf": []any{
				map[string]any{
					"required": []any{"q", "yes", "no"},
					"properties": map[string]any{
						"q":   map[string]any{"type": "string", "minLength": 1},
						"yes": map[string]any{"$ref": "#/$defs/node"},
						"no":  map[string]any{"$ref": "#/$defs/node"},
					},
					"additionalProperties": false,
				},
				map[string]any{
					"required": []any{"guess"},
					"properties": map[string]any{
						"guess": map[string]any{"type": "string", "minLength": 1},
					},
					"additionalProperties": false,
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledTreeSchema compiles the tree schema once and caches it.
func compiledTreeSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not
		// raw bytes. Marshal then unmarshal the definition to get a
		// clean any representation.
		defBytes, err := json.Marshal(treeSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://kinator-tree.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateTreeDocument checks raw bytes against the tree schema.
// Returns ErrInvalidFormat for non-JSON input and for documents that
// violate the node invariant.
func validateTreeDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: not valid JSON: %v", ErrInvalidFormat, err)
	}

	schema, err := compiledTreeSchema()
	if err != nil {
		return fmt.Errorf("compile tree schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}
