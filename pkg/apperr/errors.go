package apperr

import (
	"errors"
	"fmt"
)

// PreconditionError signals that an operation was invoked against a course
// in the wrong lifecycle stage, or that a pipeline stage is missing a
// required input. It is always surfaced to the caller and never retried.
type PreconditionError struct {
	Op       string // the operation or stage that failed
	Current  string // observed state (or "missing" for absent inputs)
	Required string // expected state
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition failed (current: %s, required: %s)", e.Op, e.Current, e.Required)
}

func NewPrecondition(op, current, required string) *PreconditionError {
	return &PreconditionError{Op: op, Current: current, Required: required}
}

// MissingInput marks a pipeline stage that was entered without the output
// of an earlier stage. This should never happen with the fixed stage order
// and indicates a wiring bug, so we fail fast instead of limping on.
func MissingInput(stage, input string) *PreconditionError {
	return &PreconditionError{Op: stage, Current: "missing " + input, Required: input}
}

func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// NotFoundError signals a missing resource: a source file on disk, or a
// record that could not be resolved.
type NotFoundError struct {
	Resource string
	Ref      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Ref)
}

func NewNotFound(resource, ref string) *NotFoundError {
	return &NotFoundError{Resource: resource, Ref: ref}
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// ProviderError wraps a failure from an embedding or chat backend.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProvider(provider, op string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Op: op, Err: err}
}

func IsProvider(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
