// Package schemas checks analysis results against their JSON Schema before
// they are trusted by the server or the client.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// AnalysisSchema is the contract every analysis result must satisfy.
const AnalysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["globalScore", "globalLabel", "globalAnalysis", "criteria", "roadmap"],
  "properties": {
    "id": {"type": "string"},
    "objective": {"type": "string"},
    "globalScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "globalLabel": {"type": "string", "minLength": 1},
    "globalAnalysis": {"type": "string"},
    "criteria": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "score", "weight", "explanation", "actions"],
        "properties": {
          "key": {"type": "string"},
          "name": {"type": "string", "minLength": 1},
          "score": {"type": "integer", "minimum": 0, "maximum": 100},
          "weight": {"type": "integer", "minimum": 0, "maximum": 100},
          "explanation": {"type": "string"},
          "actions": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "roadmap": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["priority", "title", "description"],
        "properties": {
          "priority": {"type": "integer", "minimum": 1},
          "title": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    }
  }
}`

var analysisSchema = mustCompile(AnalysisSchema)

func mustCompile(schema string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid analysis schema: %v", err))
	}
	return s
}

// ValidationError lists every schema violation of a document.
type ValidationError struct {
	Errors []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, " %d. %s: %s;", i+1, err.Field, err.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateAnalysis checks that data is a JSON document satisfying
// AnalysisSchema. Syntax errors are returned as is, schema violations as
// *ValidationError.
func ValidateAnalysis(data []byte) error {
	result, err := analysisSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
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

// ExtractJSON pulls the outermost JSON object out of model output that may
// be wrapped in markdown fences or surrounded by prose.
func ExtractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}
	return strings.TrimSpace(text)
}
