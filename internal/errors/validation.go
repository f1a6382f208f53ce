package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field errors and yields a single
// InvalidArgument error carrying them under "validation_errors".
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// HasErrors reports whether any field failed
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns nil when every field passed
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for name := range vb.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(vb.fields[name], ", ")))
	}
	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta("validation_errors", vb.fields)
}

// ValidateRequired flags blank strings
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange flags values outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateQuantities flags negative quantities in a resource map
func ValidateQuantities(field string, quantities map[string]int, vb *ValidationBuilder) {
	keys := make([]string, 0, len(quantities))
	for k, v := range quantities {
		if v < 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		vb.Fieldf(field, "%s must not be negative", k)
	}
}
