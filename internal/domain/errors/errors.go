package errors

import (
	"fmt"
	"net/http"
	"strings"

	"addressconv/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"address not found",
		"",
	)

	ErrAddressAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADDRESS_ALREADY_EXISTS",
		"address already exists",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// FieldViolation describes one field that failed validation.
type FieldViolation struct {
	Field  string // JSON path of the field, e.g. "postal_address.postcode"
	Rule   string // Failed rule, e.g. "required"
	Detail string // Optional free-form explanation
}

func (v FieldViolation) String() string {
	if v.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", v.Field, v.Rule, v.Detail)
	}

	return v.Field + ": " + v.Rule
}

// ValidationError reports malformed or incomplete input in a source format.
// It is raised before any conversion is attempted.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates a validation error from the given violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details()
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Message() string {
	return "invalid address input"
}

func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}

	return strings.Join(parts, ", ")
}

// HasField reports whether the given field is among the violations.
func (e *ValidationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}

	return false
}

// ConversionError reports canonical data that cannot satisfy the target
// format, or a country with no entry in the lookup table.
type ConversionError struct {
	Field  string
	Reason string
}

// NewConversionError creates a conversion error for the given field.
func NewConversionError(field, reason string) *ConversionError {
	return &ConversionError{Field: field, Reason: reason}
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed: %s: %s", e.Field, e.Reason)
}

func (e *ConversionError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *ConversionError) ErrorCode() string {
	return "CONVERSION_FAILED"
}

func (e *ConversionError) Message() string {
	return "address cannot be converted"
}

func (e *ConversionError) Details() string {
	return e.Field + ": " + e.Reason
}

// StorageError is an opaque adapter-level failure (I/O, database, corrupted
// record). The underlying error is kept for errors.Is / errors.As.
type StorageError struct {
	err     error
	details string
}

// NewStorageError wraps an adapter failure.
func NewStorageError(err error, details string) *StorageError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap returns the adapter error.
func (e *StorageError) Unwrap() error {
	return e.err
}

func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILURE"
}

func (e *StorageError) Message() string {
	return "storage failure"
}

func (e *StorageError) Details() string {
	return e.details
}
