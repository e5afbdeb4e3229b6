package pricing

import (
	"fmt"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
)

// Breakdown is the itemised price of an order. Total always equals the sum of the other terms.
type Breakdown struct {
	basePrice          kernel.Money
	designPrice        kernel.Money
	addOnsPrice        kernel.Money
	fastDeliveryCharge kernel.Money
	total              kernel.Money
}

// NewBreakdown derives the total from its parts.
func NewBreakdown(basePrice, designPrice, addOnsPrice, fastDeliveryCharge kernel.Money) Breakdown {
	return Breakdown{
		basePrice:          basePrice,
		designPrice:        designPrice,
		addOnsPrice:        addOnsPrice,
		fastDeliveryCharge: fastDeliveryCharge,
		total:              basePrice.Add(designPrice).Add(addOnsPrice).Add(fastDeliveryCharge),
	}
}

// RestoreBreakdown rebuilds a stored breakdown and rejects rows whose total does not add up.
func RestoreBreakdown(basePrice, designPrice, addOnsPrice, fastDeliveryCharge, total kernel.Money) (Breakdown, error) {
	b := NewBreakdown(basePrice, designPrice, addOnsPrice, fastDeliveryCharge)
	if !b.total.IsEqual(total) {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause(
			"total_price",
			fmt.Errorf("%s does not equal the sum of its parts %s", total, b.total),
		)
	}
	return b, nil
}

func (b Breakdown) BasePrice() kernel.Money {
	return b.basePrice
}

func (b Breakdown) DesignPrice() kernel.Money {
	return b.designPrice
}

func (b Breakdown) AddOnsPrice() kernel.Money {
	return b.addOnsPrice
}

func (b Breakdown) FastDeliveryCharge() kernel.Money {
	return b.fastDeliveryCharge
}

func (b Breakdown) Total() kernel.Money {
	return b.total
}
