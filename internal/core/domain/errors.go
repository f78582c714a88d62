package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates required settings are missing.
	ErrNotConfigured = errors.New("not configured")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Analysis cannot run without a completion provider.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrRemoteSchema indicates the schema fetch failed. The remote
	// message is surfaced verbatim via RemoteError.
	ErrRemoteSchema = errors.New("schema fetch failed")

	// ErrRemoteWrite indicates a record create or update failed.
	ErrRemoteWrite = errors.New("record write failed")

	// ErrRemoteQuery indicates a duplicate lookup query failed.
	// Callers treat this as advisory; duplicate checks fail open.
	ErrRemoteQuery = errors.New("duplicate query failed")
)

// RemoteError carries the external service's own error message for a
// failed boundary call. It wraps one of the ErrRemote sentinels so
// callers can branch with errors.Is.
type RemoteError struct {
	// Kind is the wrapped sentinel (ErrRemoteSchema, ErrRemoteWrite
	// or ErrRemoteQuery).
	Kind error

	// StatusCode is the HTTP status returned by the service.
	StatusCode int

	// Code is the service's machine-readable error code, if any.
	Code string

	// Message is the service's human-readable message, surfaced verbatim.
	Message string
}

// Error formats the remote failure with its original message.
func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%v: %s (%s, status %d)", e.Kind, e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%v: %s (status %d)", e.Kind, e.Message, e.StatusCode)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *RemoteError) Unwrap() error {
	return e.Kind
}

// Diagnostic is a non-fatal, logged-only notice that a value was
// dropped or corrected during sanitisation or mapping.
type Diagnostic struct {
	// Property is the schema property concerned.
	Property string

	// Message describes what was corrected or discarded.
	Message string
}

// String formats the diagnostic for logging.
func (d Diagnostic) String() string {
	return d.Property + ": " + d.Message
}
