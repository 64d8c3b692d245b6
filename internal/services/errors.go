package services

import (
	"errors"
	"fmt"
)

// ConfigurationError means no inference credential is configured.
type ConfigurationError struct{ Message string }

func (e *ConfigurationError) Error() string { return e.Message }

// TransportError covers network failures and non-success statuses.
// StatusCode is zero when the request never got a response.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("inference returned %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error { return e.Err }

// FormatError means the inference body did not have the expected shape.
type FormatError struct{ Message string }

func (e *FormatError) Error() string { return e.Message }

// EmptyResultError means the generated text was empty after cleaning.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string { return "Empty model response" }

// fallbackReason maps an advice error to a short label for logs and metrics.
func fallbackReason(err error) string {
	var (
		cfgErr   *ConfigurationError
		transErr *TransportError
		fmtErr   *FormatError
		emptyErr *EmptyResultError
	)
	switch {
	case errors.As(err, &cfgErr):
		return "configuration"
	case errors.As(err, &transErr):
		return "transport"
	case errors.As(err, &fmtErr):
		return "format"
	case errors.As(err, &emptyErr):
		return "empty"
	default:
		return "unknown"
	}
}
