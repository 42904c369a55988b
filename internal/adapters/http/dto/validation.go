package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/mental-detox/internal/domain"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
const jsonTagParts = 2

// Validation errors.
var (
	// ErrValidation indicates a validation failure occurred.
	ErrValidation = errors.New("validation failed")

	// ErrBinding indicates query binding failed.
	ErrBinding = errors.New("binding failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Use JSON tag names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}

			return name
		})

	})

	return validate
}

// Validate validates a struct using the validator instance.
func Validate(v any) error {
	err := Validator().Struct(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindQueryAndValidate binds query parameters and validates.
func BindQueryAndValidate(c *gin.Context, v any) error {
	err := c.ShouldBindQuery(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// ValidationErrors extracts field-level error messages from a validator error.
func ValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = validationMessage(fieldErr)
		}
	}

	return fieldErrors
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}

// ToDomainError converts a binding or validation failure into a
// domain.ValidationError naming the first offending field.
func ToDomainError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return domain.NewValidationErrorWithValue(fe.Field(), validationMessage(fe), fe.Value())
	}

	return domain.NewValidationError("", err.Error())
}

// validationMessages maps validation tags to message templates.
// Use {param} as placeholder for the validation parameter.
var validationMessages = map[string]string{
	"required": "is required",
	"url":      "must be a valid URL",
	"oneof":    "must be one of: {param}",
}

func validationMessage(fe validator.FieldError) string {
	tag := fe.Tag()

	if tag == "min" || tag == "max" {
		return minMaxMessage(tag, fe.Param(), fe.Type().Kind())
	}

	if msg, ok := validationMessages[tag]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + tag
}

func minMaxMessage(tag, param string, kind reflect.Kind) string {
	suffix := ""
	if kind == reflect.String {
		suffix = " characters"
	}

	if tag == "min" {
		return "must be at least " + param + suffix
	}

	return "must be at most " + param + suffix
}
