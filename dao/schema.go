package dao

import (
	"fmt"
	"regexp"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	// Field is the offending field, or "(root)" for document-level
	// violations such as a missing required field.
	Field string

	// Description is a human-readable explanation.
	Description string
}

// ValidationResult is the outcome of validating one document.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// compileSchema builds the type-bound document schema. Required fields and
// their shapes are fixed; additional fields are allowed through untouched.
func compileSchema(docType string) (*gojsonschema.Schema, error) {
	raw := map[string]any{
		"type": "object",
		"required": []string{
			FieldID, FieldCreatedBy, FieldCreatedAt, FieldModifiedBy, FieldModifiedAt,
		},
		"properties": map[string]any{
			FieldID: map[string]any{
				"type":    "string",
				"pattern": "^" + regexp.QuoteMeta(docType) + ":",
			},
			FieldRev: map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			FieldCreatedBy: map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			FieldCreatedAt: map[string]any{
				"type": "integer",
			},
			FieldModifiedBy: map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			FieldModifiedAt: map[string]any{
				"type": "integer",
			},
		},
		"additionalProperties": true,
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema for %q: %w", docType, err)
	}
	return schema, nil
}

// Validate runs doc against the DAO's compiled schema. The result lists one
// entry per missing or malformed field; unknown fields never fail validation.
func (d *DAO) Validate(doc Document) (*ValidationResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: doc must be a document", ErrInvalidArgument)
	}

	result, err := d.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, re := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:       re.Field(),
			Description: re.Description(),
		})
	}
	return out, nil
}

// invalidDocument wraps ErrInvalidDocument with a summary of the failures.
func invalidDocument(result *ValidationResult) error {
	summary := ""
	for i, e := range result.Errors {
		if i > 0 {
			summary += "; "
		}
		summary += e.Field + ": " + e.Description
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, summary)
}
