package errs

import (
	"errors"
	"fmt"
)

var ErrActionIsForbidden = errors.New("action is forbidden")

// ActionIsForbiddenError is deliberately terse: it names the attempted action only and never
// who would have been allowed to perform it.
type ActionIsForbiddenError struct {
	Action string
}

func NewActionIsForbiddenError(action string) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Action: action}
}

func (e *ActionIsForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrActionIsForbidden, e.Action)
}

func (e *ActionIsForbiddenError) Unwrap() error {
	return ErrActionIsForbidden
}
