package restclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies REST client errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates the per-request deadline elapsed without
	// caller cancellation.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeCanceled indicates a caller-initiated abort.
	ErrCodeCanceled
	// ErrCodeConnection indicates a transport failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeChallenge indicates a matched authenticator could not extract
	// required fields from a challenge header.
	ErrCodeChallenge
	// ErrCodeDeserialization indicates the selected serializer could not
	// decode the response body.
	ErrCodeDeserialization
	// ErrCodeConfiguration indicates a pipeline misconfiguration, raised at
	// construction time only.
	ErrCodeConfiguration
	// ErrCodeAuth indicates an authentication/authorization status (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates rate limiting (429).
	ErrCodeRateLimit
	// ErrCodeValidation indicates a client-side validation error (400).
	ErrCodeValidation
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeCanceled:
		return "canceled"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeChallenge:
		return "challenge"
	case ErrCodeDeserialization:
		return "deserialization"
	case ErrCodeConfiguration:
		return "configuration"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a structured REST client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for non-HTTP errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the raw response body, preserved so callers can inspect it
	// (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("restclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("restclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error, distinct from caller cancellation.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: "request deadline exceeded", Err: err}
}

// NewCanceledError creates a caller-cancellation error.
func NewCanceledError(err error) *Error {
	return &Error{Code: ErrCodeCanceled, Message: "request canceled", Err: err}
}

// NewConnectionError creates a transport-level error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewChallengeError creates a malformed-challenge error.
func NewChallengeError(msg string) *Error {
	return &Error{Code: ErrCodeChallenge, Message: msg}
}

// NewDeserializationError creates a decode error preserving the raw body.
func NewDeserializationError(err error, body []byte) *Error {
	return &Error{Code: ErrCodeDeserialization, Message: err.Error(), Body: body, Err: err}
}

// NewConfigurationError creates a construction-time configuration error.
func NewConfigurationError(msg string) *Error {
	return &Error{Code: ErrCodeConfiguration, Message: msg}
}

// NewValidationError creates a client-side validation error.
func NewValidationError(msg string) *Error {
	return &Error{Code: ErrCodeValidation, Message: msg}
}

// ClassifyStatusCode converts an HTTP status code into a typed error.
// Returns nil for status codes below 400.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	switch {
	case statusCode < 400:
		return nil
	case statusCode == 401 || statusCode == 403:
		return &Error{StatusCode: statusCode, Code: ErrCodeAuth, Message: fmt.Sprintf("HTTP %d", statusCode), Body: body}
	case statusCode == 404:
		return &Error{StatusCode: statusCode, Code: ErrCodeNotFound, Message: "HTTP 404", Body: body}
	case statusCode == 429:
		return &Error{StatusCode: statusCode, Code: ErrCodeRateLimit, Message: "HTTP 429", Body: body}
	case statusCode < 500:
		return &Error{StatusCode: statusCode, Code: ErrCodeValidation, Message: fmt.Sprintf("HTTP %d", statusCode), Body: body}
	default:
		return &Error{StatusCode: statusCode, Code: ErrCodeServer, Message: fmt.Sprintf("HTTP %d", statusCode), Body: body}
	}
}

func is(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsTimeout checks if an error is a per-request timeout.
func IsTimeout(err error) bool { return is(err, ErrCodeTimeout) }

// IsCanceled checks if an error is a caller-initiated cancellation.
func IsCanceled(err error) bool { return is(err, ErrCodeCanceled) }

// IsConnection checks if an error is a transport failure.
func IsConnection(err error) bool { return is(err, ErrCodeConnection) }

// IsChallenge checks if an error is a malformed authentication challenge.
func IsChallenge(err error) bool { return is(err, ErrCodeChallenge) }

// IsDeserialization checks if an error is a response decode failure.
func IsDeserialization(err error) bool { return is(err, ErrCodeDeserialization) }

// IsConfiguration checks if an error is a construction-time configuration error.
func IsConfiguration(err error) bool { return is(err, ErrCodeConfiguration) }

// IsAuth checks if an error reflects a 401/403 status.
func IsAuth(err error) bool { return is(err, ErrCodeAuth) }

// IsNotFound checks if an error reflects a 404 status.
func IsNotFound(err error) bool { return is(err, ErrCodeNotFound) }

// IsServerError checks if an error reflects a 5xx status.
func IsServerError(err error) bool { return is(err, ErrCodeServer) }
