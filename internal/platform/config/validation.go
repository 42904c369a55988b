package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var durationType = reflect.TypeFor[time.Duration]()

// validate reports fields by their koanf keys, so messages name the same
// path a user writes in YAML or sets through APP_ variables.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate validates the configuration and returns an error if invalid.
// Both binaries refuse to start on an invalid config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors joins every field error into one message.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		cond, value, _ := strings.Cut(e.Param(), " ")
		return fmt.Sprintf("%s is required when %s is %s", field, strings.ToLower(cond), value)
	case "min", "max":
		return formatBound(field, e)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL, got %q", field, e.Value())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatBound renders min and max errors for durations, lists and numbers.
func formatBound(field string, e validator.FieldError) string {
	bound := "at least"
	if e.Tag() == "max" {
		bound = "at most"
	}

	switch {
	case e.Type() == durationType:
		got, _ := e.Value().(time.Duration)
		return fmt.Sprintf("%s must be a duration of %s %s, got %s", field, bound, e.Param(), got)
	case e.Kind() == reflect.Slice || e.Kind() == reflect.Map:
		return fmt.Sprintf("%s must have %s %s entries", field, bound, e.Param())
	default:
		return fmt.Sprintf("%s must be %s %s", field, bound, e.Param())
	}
}

// formatFieldPath drops the root struct name: "Config.client.retry.max_attempts"
// becomes "client.retry.max_attempts".
func formatFieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}
