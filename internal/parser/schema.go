package parser

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const quizItemSchemaURL = "schema://quiz_item.json"

const quizItemSchema = `{
  "type": "object",
  "required": ["question", "correctAnswer"],
  "properties": {
    "question":         {"type": "string", "minLength": 1},
    "optionA":          {"type": "string"},
    "optionB":          {"type": "string"},
    "optionC":          {"type": "string"},
    "optionD":          {"type": "string"},
    "correctAnswer":    {"type": "string", "minLength": 1},
    "explanation":      {"type": "string"},
    "calculationSteps": {"type": "string"},
    "formula":          {"type": "string"},
    "units":            {"type": "string"},
    "blankAnswer":      {"type": "string"},
    "questionType":     {"type": "string"},
    "showWorkRequired": {"type": "boolean"}
  }
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func quizSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(quizItemSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(quizItemSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(quizItemSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateItem checks one raw array element against the quiz item schema.
func validateItem(raw json.RawMessage) error {
	schema, err := quizSchema()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
