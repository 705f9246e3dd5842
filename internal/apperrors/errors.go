package apperrors

import (
	"errors"
	"fmt"
)

// These sentinel errors define the conditions callers of the converter can
// observe. They are wrapped with context via Wrap and checked with errors.Is.
var (
	// ErrInvalidConfig indicates a conversion configuration that failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidSerialized indicates a serialized record that cannot be decoded.
	ErrInvalidSerialized = errors.New("invalid serialized input")
	// ErrInvalidInput indicates a size argument that could not be parsed.
	ErrInvalidInput = errors.New("invalid input")
)

// Wrap annotates sentinel with a formatted message and the optional cause.
// Both sentinel and cause remain reachable through errors.Is.
func Wrap(sentinel, cause error, message string, args ...interface{}) error {
	msg := fmt.Sprintf(message, args...)
	if cause == nil {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("%w: %s: %w", sentinel, msg, cause)
}

// IsInvalidConfig checks if the error is or wraps ErrInvalidConfig.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsInvalidSerialized checks if the error is or wraps ErrInvalidSerialized.
func IsInvalidSerialized(err error) bool {
	return errors.Is(err, ErrInvalidSerialized)
}

// IsInvalidInput checks if the error is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
