package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// ValidationErrors maps a JSON field name to the failed validation tag.
type ValidationErrors struct {
	Fields map[string]string
	Tags   map[string]string
}

// HasMissing reports whether any field failed a required check.
func (v ValidationErrors) HasMissing() bool {
	for _, tag := range v.Tags {
		if tag == "required" {
			return true
		}
	}
	return false
}

// ValidateStruct runs the struct tags and returns nil when data is valid.
func ValidateStruct(data interface{}) *ValidationErrors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	result := &ValidationErrors{
		Fields: make(map[string]string),
		Tags:   make(map[string]string),
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			result.Fields[fieldErr.Field()] = getErrorMessage(fieldErr)
			result.Tags[fieldErr.Field()] = fieldErr.Tag()
		}
		return result
	}

	result.Fields["body"] = err.Error()
	result.Tags["body"] = "invalid"
	return result
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum value is %s", err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("Maximum length is %s", err.Param())
		}
		return fmt.Sprintf("Maximum value is %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// FormatValidationErrors formats validation errors into a single string,
// ordered by field name
func FormatValidationErrors(errs *ValidationErrors) string {
	if errs == nil {
		return ""
	}

	fields := make([]string, 0, len(errs.Fields))
	for field := range errs.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errs.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}
