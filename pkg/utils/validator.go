package utils

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/turtacn/h5sign/pkg/errors"
)

// Validator holds the singleton instance of the validator.
var defaultValidator *validator.Validate

var versionPattern = regexp.MustCompile(`^(xcx)?\d+\.\d+\.\d+$`)

func init() {
	defaultValidator = validator.New()
	if err := defaultValidator.RegisterValidation("h5version", validateVersion); err != nil {
		panic(fmt.Sprintf("utils: register h5version validation: %v", err))
	}
}

// ValidateStruct validates a struct using the default validator.
// It returns an invalid_request error with per-field details if validation fails.
func ValidateStruct(s interface{}) errors.SignerError {
	err := defaultValidator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.ErrInvalidRequest(err.Error())
	}
	se := errors.ErrInvalidRequest("request validation failed")
	for _, fe := range validationErrors {
		se = se.WithMetadata(toSnakeCase(fe.Field()), formatValidationError(fe))
	}
	return se
}

// validateVersion accepts dotted protocol revisions such as 4.7.4 or xcx3.1.0.
func validateVersion(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || versionPattern.MatchString(v)
}

// formatValidationError creates a user-friendly error message for a validation error.
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "h5version":
		return "must be a protocol version like 4.7.4"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' tag", fe.Tag())
	}
}

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

// toSnakeCase converts a string from CamelCase to snake_case.
func toSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToLower(snake)
}

// ValidateNotEmpty reports whether s holds anything besides whitespace.
func ValidateNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
