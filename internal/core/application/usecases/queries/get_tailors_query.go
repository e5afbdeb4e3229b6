package queries

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/guard"
)

var ErrGetTailorsQueryIsNotConstructed = errors.New("GetTailorsQuery must be created via NewGetTailorsQuery constructor")

// GetTailorsQuery lists the tailor roster for the assignment screen.
type GetTailorsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTailorsQuery() GetTailorsQuery {
	return GetTailorsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTailorsQuery) Validate() error {
	return q.guard.Validate(ErrGetTailorsQueryIsNotConstructed)
}

type TailorView struct {
	ID    kernel.UUID
	Name  string
	Phone string
}
