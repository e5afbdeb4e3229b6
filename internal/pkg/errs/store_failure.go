package errs

import (
	"errors"
	"fmt"
)

var ErrStoreFailure = errors.New("store failure")

// StoreFailureError wraps an error returned by the record store. It unwraps to both
// ErrStoreFailure and the cause, so callers can still match the underlying problem.
type StoreFailureError struct {
	Operation string
	Cause     error
}

func NewStoreFailureError(operation string, cause error) *StoreFailureError {
	return &StoreFailureError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *StoreFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStoreFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreFailure, e.Operation)
}

func (e *StoreFailureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStoreFailure}
	}
	return []error{ErrStoreFailure, e.Cause}
}
