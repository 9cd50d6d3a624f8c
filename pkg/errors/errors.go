// Package errors defines custom error types and error handling utilities for the h5sign service.
// Every failure the signing engine surfaces is one of the structured errors below; none is retried internally.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/turtacn/h5sign/pkg/constants"
)

// ================================================================================
// Base Error Interface
// ================================================================================

// SignerError represents a structured error with additional metadata
type SignerError interface {
	error

	// Code returns the machine readable error code
	Code() constants.ErrorCode

	// HTTPStatus returns the HTTP status code
	HTTPStatus() int

	// Description returns a human-readable description
	Description() string

	// Unwrap returns the underlying error for error chain support
	Unwrap() error

	// WithCause adds a cause error to the error chain
	WithCause(cause error) SignerError

	// WithMetadata adds additional context metadata
	WithMetadata(key string, value interface{}) SignerError

	// Metadata returns all metadata
	Metadata() map[string]interface{}
}

// ================================================================================
// Base Error Implementation
// ================================================================================

// baseError is the internal implementation of SignerError
type baseError struct {
	code        constants.ErrorCode
	httpStatus  int
	description string
	message     string
	cause       error
	metadata    map[string]interface{}
}

// Error implements the error interface
func (e *baseError) Error() string {
	msg := e.message
	if msg == "" {
		msg = e.description
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

func (e *baseError) Code() constants.ErrorCode { return e.code }

func (e *baseError) HTTPStatus() int { return e.httpStatus }

func (e *baseError) Description() string { return e.description }

func (e *baseError) Unwrap() error { return e.cause }

// WithCause adds a cause error to the error chain
func (e *baseError) WithCause(cause error) SignerError {
	e.cause = cause
	return e
}

// WithMetadata adds additional context metadata
func (e *baseError) WithMetadata(key string, value interface{}) SignerError {
	if e.metadata == nil {
		e.metadata = make(map[string]interface{})
	}
	e.metadata[key] = value
	return e
}

func (e *baseError) Metadata() map[string]interface{} { return e.metadata }

// Is matches two signer errors by code so errors.Is works against the sentinels below.
func (e *baseError) Is(target error) bool {
	t, ok := target.(*baseError)
	return ok && t.code == e.code
}

// ================================================================================
// Error Constructor
// ================================================================================

// NewError creates a new SignerError with the specified parameters
func NewError(code constants.ErrorCode, httpStatus int, description string, message string) SignerError {
	return &baseError{
		code:        code,
		httpStatus:  httpStatus,
		description: description,
		message:     message,
		metadata:    make(map[string]interface{}),
	}
}

// Sentinels for errors.Is comparisons. Only the code is compared.
var (
	ErrUnknownVersionKind           = &baseError{code: constants.ErrCodeUnknownVersion}
	ErrValidationKind               = &baseError{code: constants.ErrCodeValidation}
	ErrEnvDecryptKind               = &baseError{code: constants.ErrCodeEnvDecrypt}
	ErrUnsupportedCipherVariantKind = &baseError{code: constants.ErrCodeUnsupportedCipherVariant}
	ErrInvalidCommandKind           = &baseError{code: constants.ErrCodeInvalidCommand}
)

// ================================================================================
// Signing Engine Errors
// ================================================================================

// ErrUnknownVersion is returned when no profile is published for the requested version
func ErrUnknownVersion(version string) SignerError {
	return NewError(
		constants.ErrCodeUnknownVersion,
		http.StatusBadRequest,
		"The requested protocol version is not supported.",
		fmt.Sprintf("unsupported h5st version %q", version),
	).WithMetadata("version", version)
}

// ErrValidation reports parameters that cannot be signed
func ErrValidation(code constants.ValidationCode, message string) SignerError {
	return NewError(
		constants.ErrCodeValidation,
		http.StatusBadRequest,
		"The parameters cannot be signed.",
		message,
	).WithMetadata("err_code", int(code))
}

// ErrEnvDecrypt reports an inbound h5st whose environment field cannot be opened
func ErrEnvDecrypt(cause error) SignerError {
	return NewError(
		constants.ErrCodeEnvDecrypt,
		http.StatusBadRequest,
		"The supplied h5st could not be parsed; make sure it matches the requested version.",
		"h5st environment decrypt failed",
	).WithCause(cause)
}

// ErrUnsupportedCipherVariant is raised by the sign transform for the undefined permutation branch
func ErrUnsupportedCipherVariant(r1, r2, variant int) SignerError {
	return NewError(
		constants.ErrCodeUnsupportedCipherVariant,
		http.StatusInternalServerError,
		"logic not determined",
		fmt.Sprintf("sign cipher variant %d is not defined", variant),
	).WithMetadata("r1", r1).
		WithMetadata("r2", r2)
}

// ================================================================================
// Service Errors
// ================================================================================

// ErrInvalidRequest creates an invalid_request error
func ErrInvalidRequest(message string) SignerError {
	return NewError(
		constants.ErrCodeInvalidRequest,
		http.StatusBadRequest,
		"The request is missing a required parameter, includes an invalid parameter value, or is otherwise malformed.",
		message,
	)
}

// ErrInvalidCommand is returned when a share text contains no exchangeable command
func ErrInvalidCommand(message string) SignerError {
	return NewError(
		constants.ErrCodeInvalidCommand,
		http.StatusBadRequest,
		"The text does not contain a recognised share command.",
		message,
	)
}

// ErrCache wraps a failing cache backend
func ErrCache(op string, cause error) SignerError {
	return NewError(
		constants.ErrCodeCache,
		http.StatusServiceUnavailable,
		"The cache backend is unavailable.",
		fmt.Sprintf("cache %s failed", op),
	).WithCause(cause).
		WithMetadata("operation", op)
}

// ErrInternal creates an internal_error error
func ErrInternal(message string) SignerError {
	return NewError(
		constants.ErrCodeInternal,
		http.StatusInternalServerError,
		"The server encountered an unexpected condition.",
		message,
	)
}

// ErrNotFound creates a not_found error
func ErrNotFound(message string) SignerError {
	return NewError(
		constants.ErrCodeNotFound,
		http.StatusNotFound,
		"The requested resource was not found.",
		message,
	)
}

// ================================================================================
// Error Validation Utilities
// ================================================================================

// AsSignerError finds the first SignerError in err's chain
func AsSignerError(err error) (SignerError, bool) {
	var se SignerError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsCode reports whether err carries the given code
func IsCode(err error, code constants.ErrorCode) bool {
	se, ok := AsSignerError(err)
	return ok && se.Code() == code
}

// WrapError wraps a generic error into a SignerError
func WrapError(err error, code constants.ErrorCode, message string) SignerError {
	var httpStatus int

	switch code {
	case constants.ErrCodeInvalidRequest, constants.ErrCodeValidation,
		constants.ErrCodeUnknownVersion, constants.ErrCodeEnvDecrypt,
		constants.ErrCodeInvalidCommand:
		httpStatus = http.StatusBadRequest
	case constants.ErrCodeNotFound:
		httpStatus = http.StatusNotFound
	case constants.ErrCodeCache:
		httpStatus = http.StatusServiceUnavailable
	default:
		httpStatus = http.StatusInternalServerError
	}

	return NewError(code, httpStatus, err.Error(), message).WithCause(err)
}

// ShouldLogError determines if an error should be logged at error level
func ShouldLogError(err error) bool {
	if se, ok := AsSignerError(err); ok {
		return se.HTTPStatus() >= http.StatusInternalServerError
	}
	return true
}

// ================================================================================
// Error Response Builder
// ================================================================================

// ErrorResponse represents the JSON structure for error responses
type ErrorResponse struct {
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	Description string                 `json:"description,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ToErrorResponse converts a SignerError to an ErrorResponse
func ToErrorResponse(err SignerError) *ErrorResponse {
	resp := &ErrorResponse{
		Code:        string(err.Code()),
		Message:     err.Error(),
		Description: err.Description(),
	}
	if len(err.Metadata()) > 0 {
		resp.Metadata = err.Metadata()
	}
	return resp
}

// ToGenericErrorResponse converts any error to an ErrorResponse
func ToGenericErrorResponse(err error) *ErrorResponse {
	if se, ok := AsSignerError(err); ok {
		return ToErrorResponse(se)
	}

	// Fallback to generic server error
	return &ErrorResponse{
		Code:        string(constants.ErrCodeInternal),
		Message:     "An unexpected error occurred",
		Description: err.Error(),
	}
}

// StatusOf returns the HTTP status to answer err with
func StatusOf(err error) int {
	if se, ok := AsSignerError(err); ok {
		return se.HTTPStatus()
	}
	return http.StatusInternalServerError
}
