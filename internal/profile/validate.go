package profile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const historySchemaURL = "schema://genesis/history.json"

const historySchema = `{
  "type": "array",
  "maxItems": 1000,
  "items": {
    "type": "object",
    "required": ["beliefKey", "sensation", "latency", "nodeId"],
    "properties": {
      "beliefKey": {"type": "string", "minLength": 1},
      "sensation": {"type": "string", "pattern": "^s[0-9]+$"},
      "latency":   {"type": "number", "minimum": 0},
      "nodeId":    {"type": ["integer", "string"], "pattern": "^[0-9]+$", "minimum": 0},
      "domain":    {"type": "string"}
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidationError is returned when an imported history document does not
// match the expected shape.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid history: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func historyValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(historySchema), &doc); err != nil {
			compileErr = fmt.Errorf("parse history schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(historySchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(historySchemaURL)
	})
	return compiledSchema, compileErr
}

// ParseHistory validates raw JSON against the history schema and decodes it.
// Returns *ValidationError when the document is malformed.
func ParseHistory(raw []byte) (History, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := historyValidator()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ValidationError{Err: err}
	}

	var h History
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, &ValidationError{Err: err}
	}
	return h, nil
}
