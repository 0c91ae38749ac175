package books

// validate.go decodes and validates the books API request bodies.
//
// Decoding rejects unknown fields and mismatched JSON types; validation
// enforces the required/positive constraints declared on the request structs.
// Both failure modes surface as 400s with the full list of field messages.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var bookValidator = newValidator()

// newValidator configures a validator that reports fields by their JSON tag
// name so validation messages match the wire format.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		// Strip options like omitempty
		if i := strings.Index(name, ","); i != -1 {
			return name[:i]
		}
		return name
	})

	return v
}

// DecodeRequest decodes the request body into dst.
//
// Unknown fields are rejected (400 validation error naming the field),
// mismatched JSON types are rejected (400 validation error naming the field
// and expected type), and unparseable JSON is rejected (400 malformed
// request).
func DecodeRequest(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			detail := fmt.Sprintf("%s must be of type %s", typeErr.Field, jsonTypeName(typeErr.Type))
			return NewValidationError("validation failed", []string{detail})

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.TrimPrefix(err.Error(), "json: unknown field ")
			detail := fmt.Sprintf("%s is not a valid field", strings.Trim(field, `"`))
			return NewValidationError("validation failed", []string{detail})

		case errors.Is(err, io.EOF):
			return NewMalformedRequestError("request body is empty")

		default:
			return WrapMalformedRequestError(err, "request body is not valid JSON")
		}
	}

	// a second document after the first is a malformed request
	if decoder.More() {
		return NewMalformedRequestError("request body must contain a single JSON object")
	}

	return nil
}

// ValidateRequest validates a decoded request struct and returns a
// validation error carrying one message per failing field.
func ValidateRequest(s any) error {
	err := bookValidator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// InvalidValidationError means s was not a struct - a programming error
		return WrapInternalError(err, "request validation failed")
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fmt.Sprintf("%s %s", fieldErr.Field(), friendlyMessage(fieldErr)))
	}

	return NewValidationError(fmt.Sprintf("validation failed: %d invalid field(s)", len(details)), details)
}

// friendlyMessage converts a validator tag failure into a client message
func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lt":
		return "must be less than " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}

// jsonTypeName names a Go type the way a JSON client would expect to read it
func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return t.Kind().String()
	}
}
