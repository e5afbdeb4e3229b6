package queries

import (
	"context"

	"tailoring/internal/core/domain/services"
)

type QuotePriceQueryHandler struct {
	calculator *services.PriceCalculator
}

func NewQuotePriceQueryHandler(calculator *services.PriceCalculator) QuotePriceQueryHandler {
	return QuotePriceQueryHandler{calculator: calculator}
}

// Handle returns the same breakdown PlaceOrder would store for the selection today.
func (h QuotePriceQueryHandler) Handle(_ context.Context, query QuotePriceQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}
	return h.calculator.Quote(query.Selection())
}
