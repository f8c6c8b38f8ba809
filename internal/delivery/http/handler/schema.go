package handler

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const suggestionRequestSchema = `{
  "type": "object",
  "required": ["interests", "skills", "country"],
  "properties": {
    "interests": {"type": "string", "maxLength": 4000},
    "skills": {"type": "string", "maxLength": 4000},
    "country": {"type": "string", "minLength": 1},
    "is_student": {"type": "boolean"},
    "language": {"type": "string", "enum": ["es", "en", "pt", "it"]},
    "subject_grades": {
      "type": "object",
      "additionalProperties": {"type": "number"}
    }
  },
  "additionalProperties": false
}`

var suggestionSchema = mustSchema(suggestionRequestSchema)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid JSON schema: %v", err))
	}
	return s
}

// validateBody body ni sxemaga tekshiradi, xatolar ro'yxatini qaytaradi
func validateBody(schema *gojsonschema.Schema, body []byte) ([]string, error) {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs, nil
}
