package queries_test

import (
	"testing"
	"time"

	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/catalog"
	"tailoring/internal/core/domain/services"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCalculator() *services.PriceCalculator {
	return services.NewPriceCalculator(catalog.Default(), func() time.Time { return placedAt })
}

func TestQuotePriceQueryHandler_Handle(t *testing.T) {
	handler := queries.NewQuotePriceQueryHandler(fixedCalculator())

	t.Run("should price a rushed blouse", func(t *testing.T) {
		query := queries.NewQuotePriceQuery(services.Selection{
			CategoryID:   "blouse",
			DesignID:     "high-neck",
			AddOnIDs:     []string{"mirror-work", "lacework"},
			DeliveryDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		})

		quote, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, int64(800), quote.Price.BasePrice().Int64())
		assert.Equal(t, int64(100), quote.Price.DesignPrice().Int64())
		assert.Equal(t, int64(650), quote.Price.AddOnsPrice().Int64())
		assert.Equal(t, int64(300), quote.Price.FastDeliveryCharge().Int64())
		assert.Equal(t, int64(1850), quote.Price.Total().Int64())
		assert.Equal(t, "2025-03-17", quote.EstimatedDeliveryDate.Format(time.DateOnly))
	})

	t.Run("should report unknown catalog ids", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.NewQuotePriceQuery(services.Selection{
			CategoryID: "saree",
			DesignID:   "classic",
		}))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an unconstructed query", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.QuotePriceQuery{})

		require.ErrorIs(t, err, queries.ErrQuotePriceQueryIsNotConstructed)
	})
}

func TestGetCatalogQueryHandler_Handle(t *testing.T) {
	t.Run("should return the catalog with the delivery dates for today", func(t *testing.T) {
		view, err := queries.NewGetCatalogQueryHandler(fixedCalculator()).Handle(t.Context(), queries.NewGetCatalogQuery())

		require.NoError(t, err)
		assert.Len(t, view.Categories, 5)
		assert.Len(t, view.AddOns, 6)
		assert.Equal(t, "2025-03-10", view.Today.Format(time.DateOnly))
		assert.Equal(t, "2025-03-17", view.StandardDeliveryDate.Format(time.DateOnly))
		assert.Equal(t, int64(100), view.FastDeliveryDailyRate)
	})

	t.Run("should reject an unconstructed query", func(t *testing.T) {
		_, err := queries.NewGetCatalogQueryHandler(fixedCalculator()).Handle(t.Context(), queries.GetCatalogQuery{})

		require.ErrorIs(t, err, queries.ErrGetCatalogQueryIsNotConstructed)
	})
}
