package services

import (
	"errors"
	"fmt"
)

// Kind classifies an error for retry policy and HTTP mapping. Provider clients
// and stage executors return these as values; they become exceptions only at
// the API boundary.
type Kind string

// Error kinds.
const (
	KindValidation      Kind = "validation"       // bad input or forbidden transition; permanent
	KindNotFound        Kind = "not_found"        // missing entity or object; permanent
	KindConflict        Kind = "conflict"         // uniqueness violation, active-job guard
	KindRateLimited     Kind = "rate_limited"     // provider 429 after retry exhaustion
	KindExternalService Kind = "external_service" // provider 4xx/5xx, poll timeout, download error
	KindStorageError    Kind = "storage_error"    // artifact-store transport failure
	KindPipeline        Kind = "pipeline"         // executor contract violation (missing upstream artifact)
	KindInternal        Kind = "internal"         // anything else
)

// Error is the tagged error type used across the core. Its Error() string is
// exactly what lands in job.error_message: "kind: message".
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds a tagged error with a formatted message.
func E(kind Kind, format string, args ...any) *Error {
	var wrapped error
	for _, a := range args {
		if err, ok := a.(error); ok {
			wrapped = err
		}
	}
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: wrapped}
}

// KindOf extracts the kind of err, or KindInternal for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Retryable reports whether a failed job carrying this error is eligible for
// job.retry. Permanent kinds stay failed.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindRateLimited, KindExternalService, KindStorageError:
		return true
	default:
		return false
	}
}
