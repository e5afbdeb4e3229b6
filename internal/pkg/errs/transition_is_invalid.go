package errs

import (
	"errors"
	"fmt"
)

var ErrTransitionIsInvalid = errors.New("transition is invalid")

// TransitionIsInvalidError reports a state change that is not an edge of the lifecycle graph.
type TransitionIsInvalidError struct {
	Entity string
	From   string
	To     string
}

func NewTransitionIsInvalidError(entity, from, to string) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{
		Entity: entity,
		From:   from,
		To:     to,
	}
}

func (e *TransitionIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrTransitionIsInvalid, e.Entity, e.From, e.To)
}

func (e *TransitionIsInvalidError) Unwrap() error {
	return ErrTransitionIsInvalid
}
