// Package schemas provides JSON Schema validation for model output.
// Each tool's expected output schema is embedded at compile time.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/careerkit/career-tools/internal/tools"
)

//go:embed *.json
var schemaFiles embed.FS

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// schemaFor returns the embedded schema content for a tool.
func schemaFor(tool tools.Kind) (string, error) {
	data, err := schemaFiles.ReadFile(string(tool) + ".json")
	if err != nil {
		return "", fmt.Errorf("no output schema for tool %q: %w", tool, err)
	}
	return string(data), nil
}

// ValidateOutput validates JSON content against the tool's output schema.
// Returns *ValidationError when the content does not conform.
func ValidateOutput(tool tools.Kind, jsonContent string) error {
	schemaContent, err := schemaFor(tool)
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// Document failed to load at all (not valid JSON).
		return &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Message: err.Error(),
		}}}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
