package errors

import (
	"net/http"
	"sort"
	"strings"

	"legalsite/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Content service errors
	ErrRemoteUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CONTENT_UNAVAILABLE",
		"content service unavailable",
		"",
	)

	ErrEmptyContent = NewBaseError(
		http.StatusServiceUnavailable,
		"CONTENT_EMPTY",
		"content service returned no entries",
		"",
	)

	// Not-found errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrUnknownLocale = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_LOCALE",
		"unsupported locale",
		"",
	)

	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"service not found",
		"",
	)

	ErrBlogPostNotFound = NewBaseError(
		http.StatusNotFound,
		"BLOG_POST_NOT_FOUND",
		"blog post not found",
		"",
	)

	ErrTeamMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"TEAM_MEMBER_NOT_FOUND",
		"team member not found",
		"",
	)

	ErrContactChannelMissing = NewBaseError(
		http.StatusNotFound,
		"CONTACT_CHANNEL_MISSING",
		"team member has no such contact channel",
		"",
	)

	// Subscription errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrAlreadySubscribed = NewBaseError(
		http.StatusConflict,
		"ALREADY_SUBSCRIBED",
		"email is already subscribed",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"too many requests, please try again later",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// RemoteError represents a failed call to the content service, implementing the AppError interface
type RemoteError struct {
	err     error
	details string
}

// NewRemoteError creates a content-service error wrapping its cause
func NewRemoteError(err error, details string) *RemoteError {
	return &RemoteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	if e.err == nil {
		return ErrRemoteUnavailable.message + ": " + e.details
	}

	return errors.Wrap(e.err, ErrRemoteUnavailable.message+": "+e.details).Error()
}

// Unwrap exposes the underlying cause
func (e *RemoteError) Unwrap() error {
	return e.err
}

// Is reports ErrRemoteUnavailable as a match
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

// HTTPCode returns the HTTP status code
func (e *RemoteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *RemoteError) ErrorCode() string {
	return ErrRemoteUnavailable.errorCode
}

// Message returns the user-friendly error message
func (e *RemoteError) Message() string {
	return ErrRemoteUnavailable.message
}

// Details returns detailed error information
func (e *RemoteError) Details() string {
	return e.details
}

// ValidationError carries per-field messages for inline form display
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from field -> message pairs
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.message + ": " + e.Details()
}

// Is reports ErrValidationFailed as a match
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.errorCode
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.message
}

// Details returns the field messages joined in a stable order
func (e *ValidationError) Details() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}

	return strings.Join(parts, "; ")
}

// Fields returns the message for each offending field
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// Field returns the message for a single field, or "" when it passed
func (e *ValidationError) Field(name string) string {
	return e.fields[name]
}
