package r4

import (
	"errors"
	"fmt"
)

// ErrMissingID is returned when a reference is requested to a resource that has no logical id.
var ErrMissingID = errors.New("resource has no id")

// ErrUnsupportedResourceType is returned (wrapped in a ParseError) by ParseResource for resource types outside this package.
var ErrUnsupportedResourceType = errors.New("unsupported resourceType")

// ParseError is returned when FHIR JSON can't be decoded into a resource:
// malformed JSON, wrong JSON types, unknown codes, missing required fields or a mismatching resourceType.
// A ReferenceKindMismatchError is reported wrapped in a ParseError.
type ParseError struct {
	// ResourceType is the type that was being decoded, if known.
	ResourceType string
	// Field is the JSON field that failed, if known.
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	msg := "parse"
	if e.ResourceType != "" {
		msg += " " + e.ResourceType
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" (field=%s)", e.Field)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReferenceKindMismatchError is returned when a Reference's pointer doesn't target the kind the Reference is declared for.
type ReferenceKindMismatchError struct {
	// Expected is the canonical name of the Reference's kind.
	Expected string
	// Actual is the offending reference string.
	Actual string
}

func (e *ReferenceKindMismatchError) Error() string {
	return fmt.Sprintf("reference %q must target %s (expected %s/<id>)", e.Actual, e.Expected, e.Expected)
}

// parseError wraps err in a ParseError for the given resource type, unless it already is one.
// Nested ParseErrors (e.g. from an embedded backbone element) keep their field but get the outer resource type.
func parseError(resourceType string, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		if pe.ResourceType == "" {
			pe.ResourceType = resourceType
		}
		return pe
	}
	return &ParseError{ResourceType: resourceType, Err: err}
}
