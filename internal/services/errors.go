package services

import "fmt"

// InvocationError means the external model call itself failed: provider
// unreachable, request timed out, or the call was cancelled. Surfaced to
// the end user as a generic failure.
type InvocationError struct {
	Err error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("model invocation failed: %v", e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// OutputShapeError means the provider call succeeded but its output does
// not conform to the declared output schema, or no structured payload was
// produced at all. User-visible handling matches InvocationError, but it
// is logged distinctly since it indicates a prompt/schema mismatch rather
// than a network fault.
type OutputShapeError struct {
	Err error
}

func (e *OutputShapeError) Error() string {
	return fmt.Sprintf("model output does not match expected shape: %v", e.Err)
}

func (e *OutputShapeError) Unwrap() error {
	return e.Err
}
