package services

import (
	"strings"
	"time"

	"tailoring/internal/core/domain/model/catalog"
	"tailoring/internal/core/domain/model/pricing"
	"tailoring/internal/pkg/errs"
)

// Clock returns the current time. Production code passes time.Now.
type Clock func() time.Time

// Selection is what a customer picked from the catalog, by id.
type Selection struct {
	CategoryID string
	DesignID   string
	AddOnIDs   []string

	// DeliveryDate may be zero, in which case the standard delivery date is used.
	DeliveryDate time.Time
}

// Quote is a priced selection with the catalog entries it resolved to.
type Quote struct {
	Category              catalog.Category
	Design                catalog.Design
	AddOns                []catalog.AddOn
	DeliveryDate          time.Time
	EstimatedDeliveryDate time.Time
	Price                 pricing.Breakdown
}

// PriceCalculator prices selections on the server so clients never send prices.
//
// Example usage:
//
//	calc := services.NewPriceCalculator(catalog.Default(), time.Now)
//	quote, err := calc.Quote(services.Selection{CategoryID: "blouse", DesignID: "high-neck"})
//	if err != nil {
//	    return err
//	}
//	total := quote.Price.Total()
type PriceCalculator struct {
	catalog catalog.Catalog
	clock   Clock
}

func NewPriceCalculator(c catalog.Catalog, clock Clock) *PriceCalculator {
	if clock == nil {
		clock = time.Now
	}
	return &PriceCalculator{catalog: c, clock: clock}
}

// Catalog returns the catalog the calculator resolves ids against.
func (p *PriceCalculator) Catalog() catalog.Catalog {
	return p.catalog
}

// Today is the calendar day prices are computed for.
func (p *PriceCalculator) Today() time.Time {
	return pricing.CalendarDay(p.clock())
}

// Quote resolves every id and returns the breakdown. Unknown ids yield ObjectNotFound, a missing
// category or design yields ValueIsRequired, and a delivery date before today or past the booking
// window yields ValueIsOutOfRange.
func (p *PriceCalculator) Quote(sel Selection) (Quote, error) {
	if strings.TrimSpace(sel.CategoryID) == "" {
		return Quote{}, errs.NewValueIsRequiredError("category")
	}
	if strings.TrimSpace(sel.DesignID) == "" {
		return Quote{}, errs.NewValueIsRequiredError("design")
	}

	category, err := p.catalog.Category(sel.CategoryID)
	if err != nil {
		return Quote{}, err
	}
	design, err := category.Design(sel.DesignID)
	if err != nil {
		return Quote{}, err
	}
	addOns, err := p.catalog.ResolveAddOns(sel.AddOnIDs)
	if err != nil {
		return Quote{}, err
	}

	today := p.Today()
	deliveryDate := sel.DeliveryDate
	if deliveryDate.IsZero() {
		deliveryDate = pricing.StandardDeliveryDate(today)
	}
	if err = validateDeliveryDate(deliveryDate, today); err != nil {
		return Quote{}, err
	}

	return Quote{
		Category:              category,
		Design:                design,
		AddOns:                addOns,
		DeliveryDate:          pricing.CalendarDay(deliveryDate),
		EstimatedDeliveryDate: pricing.StandardDeliveryDate(today),
		Price:                 pricing.Calculate(category, &design, addOns, deliveryDate, today),
	}, nil
}

func validateDeliveryDate(deliveryDate, today time.Time) error {
	latest := pricing.LatestDeliveryDate(today)
	if pricing.DaysBetween(today, deliveryDate) < 0 || pricing.DaysBetween(deliveryDate, latest) < 0 {
		return errs.NewValueIsOutOfRangeError(
			"delivery_date",
			pricing.CalendarDay(deliveryDate).Format(time.DateOnly),
			today.Format(time.DateOnly),
			latest.Format(time.DateOnly),
		)
	}
	return nil
}
