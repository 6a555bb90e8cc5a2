// file: internals/features/people/service/errors.go
package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPersonNotFound   = fmt.Errorf("person %w", ErrNotFound)
	ErrResourceNotFound = fmt.Errorf("resource %w", ErrNotFound)

	// ErrReferentialIntegrity is returned when the store refuses a write that
	// would leave a resource pointing at a missing person.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)

// ValidationError carries per-field problems keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func newValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return &ValidationError{Fields: map[string]string{"_": err.Error()}}
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = describe(fe)
	}
	return &ValidationError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "utf8":
		return "must be valid UTF-8 text"
	default:
		return "failed " + fe.Tag()
	}
}
