package actor

import (
	"fmt"
	"strings"

	"tailoring/internal/pkg/errs"
)

// Role is the closed set of actor kinds. Switches over Role are expected to be exhaustive,
// so adding a role is a compile-time visible change for linters such as exhaustive.
type Role int

const (
	// UnknownRole is the zero value and never valid.
	UnknownRole Role = iota

	// Customer places orders and reads their own orders.
	Customer

	// Admin assigns tailors, approves finished work and manages delivery.
	Admin

	// Tailor progresses the orders assigned to them.
	Tailor
)

// ParseRole accepts "customer", "admin" or "tailor" in any case.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return Customer, nil
	case "admin":
		return Admin, nil
	case "tailor":
		return Tailor, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

func (r Role) Validate() error {
	switch r {
	case Customer, Admin, Tailor:
		return nil
	case UnknownRole:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
}

func (r Role) String() string {
	switch r {
	case Customer:
		return "customer"
	case Admin:
		return "admin"
	case Tailor:
		return "tailor"
	case UnknownRole:
		return "unknown"
	default:
		return "unknown"
	}
}
