package serializer

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrEncode indicates a serializer failed to encode a value.
	ErrEncode = errors.New("encode failed")

	// ErrDecode indicates a serializer failed to decode a document.
	ErrDecode = errors.New("decode failed")

	// ErrDuplicateContentType indicates two registrations share a content
	// type under case-insensitive comparison.
	ErrDuplicateContentType = errors.New("duplicate content type")
)

// ConfigError reports an invalid Pipeline construction.
type ConfigError struct {
	Err         error  // Underlying sentinel error
	ContentType string // Content type that triggered the error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("serializer: %s: %q", e.Err, e.ContentType)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DecodeError reports a failed decode with the raw document preserved so
// callers can inspect what the server actually sent.
type DecodeError struct {
	Err error  // Underlying decoder error
	Raw string // Document that failed to decode
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("serializer: %s: %v", ErrDecode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports ErrDecode so errors.Is(err, ErrDecode) matches.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
