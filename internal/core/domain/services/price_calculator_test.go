package services_test

import (
	"testing"
	"time"

	"tailoring/internal/core/domain/model/catalog"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/services"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) services.Clock {
	return func() time.Time { return t }
}

func TestPriceCalculator_Quote(t *testing.T) {
	now := time.Date(2025, time.June, 2, 18, 45, 0, 0, time.UTC)
	calc := services.NewPriceCalculator(catalog.Default(), fixedClock(now))

	t.Run("should price a standard delivery", func(t *testing.T) {
		quote, err := calc.Quote(services.Selection{
			CategoryID:   "blouse",
			DesignID:     "high-neck",
			AddOnIDs:     []string{"computer-embroidery"},
			DeliveryDate: now.AddDate(0, 0, 7),
		})

		require.NoError(t, err)
		assert.Equal(t, "Blouse", quote.Category.Name)
		assert.Equal(t, "High Neck", quote.Design.Name)
		require.Len(t, quote.AddOns, 1)
		assert.Equal(t, int64(800), quote.Price.BasePrice().Int64())
		assert.Equal(t, int64(100), quote.Price.DesignPrice().Int64())
		assert.Equal(t, int64(300), quote.Price.AddOnsPrice().Int64())
		assert.True(t, quote.Price.FastDeliveryCharge().IsZero())
		assert.Equal(t, int64(1200), quote.Price.Total().Int64())
	})

	t.Run("should charge a fast delivery", func(t *testing.T) {
		quote, err := calc.Quote(services.Selection{
			CategoryID:   "blouse",
			DesignID:     "high-neck",
			AddOnIDs:     []string{"computer-embroidery"},
			DeliveryDate: now.AddDate(0, 0, 3),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(400), quote.Price.FastDeliveryCharge().Int64())
		assert.Equal(t, int64(1600), quote.Price.Total().Int64())
	})

	t.Run("should default to the standard delivery date", func(t *testing.T) {
		quote, err := calc.Quote(services.Selection{CategoryID: "lehenga", DesignID: "bridal"})

		require.NoError(t, err)
		expected := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, expected, quote.DeliveryDate)
		assert.Equal(t, expected, quote.EstimatedDeliveryDate)
		assert.Equal(t, int64(3500), quote.Price.Total().Int64())
	})

	t.Run("should require category and design", func(t *testing.T) {
		_, err := calc.Quote(services.Selection{DesignID: "high-neck"})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = calc.Quote(services.Selection{CategoryID: "blouse"})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should report unknown catalog ids", func(t *testing.T) {
		_, err := calc.Quote(services.Selection{CategoryID: "saree", DesignID: "x"})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = calc.Quote(services.Selection{CategoryID: "blouse", DesignID: "anarkali"})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = calc.Quote(services.Selection{CategoryID: "blouse", DesignID: "backless", AddOnIDs: []string{"gold-work"}})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should accept the first and last day of the booking window", func(t *testing.T) {
		sameDay, err := calc.Quote(services.Selection{CategoryID: "blouse", DesignID: "high-neck", DeliveryDate: now})
		require.NoError(t, err)
		assert.Equal(t, int64(700), sameDay.Price.FastDeliveryCharge().Int64())

		lastDay, err := calc.Quote(services.Selection{
			CategoryID: "blouse", DesignID: "high-neck", DeliveryDate: now.AddDate(0, 0, 30),
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC), lastDay.DeliveryDate)
	})

	t.Run("should reject delivery dates outside the booking window", func(t *testing.T) {
		for _, days := range []int{-30, -1, 31, 365} {
			_, err := calc.Quote(services.Selection{
				CategoryID: "blouse", DesignID: "high-neck", DeliveryDate: now.AddDate(0, 0, days),
			})

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "days=%d", days)
			assert.Contains(t, err.Error(), "delivery_date")
		}
	})

	t.Run("should be deterministic for the same clock", func(t *testing.T) {
		sel := services.Selection{CategoryID: "kurti", DesignID: "palazzo", AddOnIDs: []string{"lacework", "thread-work"}}

		first, err := calc.Quote(sel)
		require.NoError(t, err)
		second, err := calc.Quote(sel)
		require.NoError(t, err)

		assert.Equal(t, first.Price, second.Price)
	})
}

func TestPriceCalculator_Today(t *testing.T) {
	t.Run("should drop the time of day", func(t *testing.T) {
		calc := services.NewPriceCalculator(catalog.Default(), fixedClock(time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC)))

		assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), calc.Today())
	})
}

func TestCheckMeasurements(t *testing.T) {
	blouse, err := catalog.Default().Category("blouse")
	require.NoError(t, err)

	t.Run("should accept fields of the category", func(t *testing.T) {
		m, err := order.NewCustomMeasurement(map[string]float64{"bust": 34, "blouse-length": 15}, false)
		require.NoError(t, err)

		require.NoError(t, services.CheckMeasurements(blouse, m))
	})

	t.Run("should reject fields of other categories", func(t *testing.T) {
		m, err := order.NewCustomMeasurement(map[string]float64{"bust": 34, "skirt-length": 40}, false)
		require.NoError(t, err)

		err = services.CheckMeasurements(blouse, m)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "skirt-length is not measured for Blouse")
	})

	t.Run("should ignore sample measurements", func(t *testing.T) {
		m, err := order.NewSampleMeasurement("uploads/blouse.jpg")
		require.NoError(t, err)

		require.NoError(t, services.CheckMeasurements(blouse, m))
	})
}
