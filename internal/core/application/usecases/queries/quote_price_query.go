package queries

import (
	"errors"

	"tailoring/internal/core/domain/services"
	"tailoring/internal/pkg/guard"
)

var ErrQuotePriceQueryIsNotConstructed = errors.New("QuotePriceQuery must be created via NewQuotePriceQuery constructor")

// QuotePriceQuery prices a selection without placing an order.
type QuotePriceQuery struct {
	selection services.Selection
	guard     guard.ConstructorGuard
}

func NewQuotePriceQuery(selection services.Selection) QuotePriceQuery {
	selection.AddOnIDs = append([]string(nil), selection.AddOnIDs...)
	return QuotePriceQuery{selection: selection, guard: guard.NewConstructorGuard()}
}

func (q QuotePriceQuery) Validate() error {
	return q.guard.Validate(ErrQuotePriceQueryIsNotConstructed)
}

func (q QuotePriceQuery) Selection() services.Selection {
	return q.selection
}
