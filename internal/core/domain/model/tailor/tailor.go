package tailor

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

const minPhoneDigits = 10

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired        = errs.NewValueIsRequiredError("phone")
	ErrTailorIsNotConstructed = errors.New("Tailor must be created via NewTailor constructor")
)

// Tailor is a member of the tailoring roster.
//
// Business rules:
//   - Tailor must have a valid UUID and a non-blank name
//   - Phone numbers keep their display form but need at least 10 digits
type Tailor struct {
	id    kernel.UUID
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewTailor validates every field and joins all problems into one error.
//
// Example:
//
//	t, err := tailor.NewTailor(kernel.NewUUID(), "Meena", "+91 98765 43212")
//	if err != nil {
//	    return err
//	}
func NewTailor(id kernel.UUID, name, phone string) (*Tailor, error) {
	t := &Tailor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTailor rebuilds a stored tailor. Stored rows go through the same validation as new ones.
func RestoreTailor(id kernel.UUID, name, phone string) (*Tailor, error) {
	return NewTailor(id, name, phone)
}

func (t *Tailor) Validate() error {
	if t == nil {
		return ErrTailorIsNotConstructed
	}
	return t.guard.Validate(ErrTailorIsNotConstructed)
}

func (t *Tailor) IsEqual(other *Tailor) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Tailor) ID() kernel.UUID {
	return t.id
}

func (t *Tailor) Name() string {
	return t.name
}

func (t *Tailor) Phone() string {
	return t.phone
}

func (t *Tailor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tailor) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	t.name = name
	return nil
}

func (t *Tailor) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}

	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == ' ' || r == '-':
		default:
			return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q contains %q", phone, r))
		}
	}
	if digits < minPhoneDigits {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q has fewer than %d digits", phone, minPhoneDigits))
	}

	t.phone = phone
	return nil
}
