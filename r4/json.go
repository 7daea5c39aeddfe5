package r4

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var errMissingField = errors.New("missing required field")

// presence checks required fields, addressing them by their JSON name.
var presence = newPresenceValidator()

func newPresenceValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRequired decodes data into fields, a named struct of *json.RawMessage tagged `validate:"required"`,
// and returns a ParseError naming the first required field that is absent or null.
func checkRequired(data []byte, fields any) error {
	if err := json.Unmarshal(data, fields); err != nil {
		return err
	}
	err := presence.Struct(fields)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		// Namespace is "<struct>.<path>", drop the struct name
		_, path, _ := strings.Cut(validationErrs[0].Namespace(), ".")
		return &ParseError{Field: path, Err: errMissingField}
	}
	return err
}

// checkResourceType fails if the decoded resourceType is present and differs from the expected one.
func checkResourceType(expected string, actual *string) error {
	if actual != nil && *actual != expected {
		return &ParseError{
			ResourceType: expected,
			Field:        "resourceType",
			Err:          fmt.Errorf("expected %q, got %q", expected, *actual),
		}
	}
	return nil
}

// decodeResource decodes data into target, reporting all failures as a ParseError for resourceType.
func decodeResource(resourceType string, data []byte, target any) error {
	err := json.Unmarshal(data, target)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ParseError{ResourceType: resourceType, Field: typeErr.Field, Err: err}
	}
	return parseError(resourceType, err)
}

// marshalResource encodes the fields of a resource, a value of a type without MarshalJSON,
// and writes resourceType as first member of the object.
func marshalResource(resourceType string, fields any) ([]byte, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	result := []byte(`{"resourceType":` + strconv.Quote(resourceType))
	if len(data) > 2 {
		result = append(result, ',')
	}
	return append(result, data[1:]...), nil
}

// unmarshalResource decodes data into fields, a value of a type without UnmarshalJSON,
// and fails if data holds a resourceType other than the expected one.
func unmarshalResource(resourceType string, data []byte, fields any) error {
	if err := json.Unmarshal(data, fields); err != nil {
		return err
	}
	var header struct {
		ResourceType *string `json:"resourceType"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}
	return checkResourceType(resourceType, header.ResourceType)
}

func toJSON(resource Resource) ([]byte, error) {
	return json.Marshal(resource)
}

func toJSONPretty(resource Resource) ([]byte, error) {
	return json.MarshalIndent(resource, "", "  ")
}
