package queries

import (
	"context"

	"tailoring/internal/core/domain/model/pricing"
	"tailoring/internal/core/domain/services"
)

type GetCatalogQueryHandler struct {
	calculator *services.PriceCalculator
}

func NewGetCatalogQueryHandler(calculator *services.PriceCalculator) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{calculator: calculator}
}

func (h GetCatalogQueryHandler) Handle(_ context.Context, query GetCatalogQuery) (CatalogView, error) {
	if err := query.Validate(); err != nil {
		return CatalogView{}, err
	}

	c := h.calculator.Catalog()
	today := h.calculator.Today()
	return CatalogView{
		Categories:            c.Categories(),
		AddOns:                c.AddOns(),
		Today:                 today,
		StandardDeliveryDate:  pricing.StandardDeliveryDate(today),
		FastDeliveryDailyRate: pricing.FastDeliveryRate,
	}, nil
}
