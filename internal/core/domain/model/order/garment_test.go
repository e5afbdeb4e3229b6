package order_test

import (
	"testing"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGarment(t *testing.T) {
	lace, _ := order.NewAddOn("lacework", "Lacework", kernel.MustMoney(250))
	mirror, _ := order.NewAddOn("mirror-work", "Mirror Work", kernel.MustMoney(400))

	t.Run("should keep add-ons in order", func(t *testing.T) {
		g, err := order.NewGarment(" Kurti ", "Anarkali", []order.AddOn{mirror, lace})

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.Equal(t, "Kurti", g.Category())
		assert.Equal(t, "Anarkali", g.Design())
		require.Len(t, g.AddOns(), 2)
		assert.Equal(t, "mirror-work", g.AddOns()[0].ID())
		assert.Equal(t, "lacework", g.AddOns()[1].ID())
	})

	t.Run("should require category and design", func(t *testing.T) {
		_, err := order.NewGarment("", " ", nil)

		require.ErrorIs(t, err, order.ErrCategoryIsRequired)
		require.ErrorIs(t, err, order.ErrDesignIsRequired)
	})

	t.Run("should reject duplicate add-ons", func(t *testing.T) {
		_, err := order.NewGarment("Kurti", "Anarkali", []order.AddOn{lace, lace})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "lacework is listed twice")
	})

	t.Run("should reject zero value add-ons", func(t *testing.T) {
		_, err := order.NewGarment("Kurti", "Anarkali", []order.AddOn{{}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAddOnsJSON(t *testing.T) {
	t.Run("should encode the ordered list", func(t *testing.T) {
		sequin, _ := order.NewAddOn("sequin-work", "Sequin Work", kernel.MustMoney(600))
		thread, _ := order.NewAddOn("thread-work", "Thread Work", kernel.MustMoney(350))

		data, err := order.EncodeAddOns([]order.AddOn{sequin, thread})
		require.NoError(t, err)
		assert.JSONEq(t,
			`[{"id":"sequin-work","name":"Sequin Work","price":600},{"id":"thread-work","name":"Thread Work","price":350}]`,
			string(data))

		decoded, err := order.DecodeAddOns(data)
		require.NoError(t, err)
		require.Len(t, decoded, 2)
		assert.Equal(t, "thread-work", decoded[1].ID())
		assert.Equal(t, int64(350), decoded[1].Price().Int64())
	})

	t.Run("should encode no add-ons as an empty list", func(t *testing.T) {
		data, err := order.EncodeAddOns(nil)

		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("should fail fast on malformed lists", func(t *testing.T) {
		cases := map[string]string{
			"object":         `{"id":"lacework"}`,
			"unknown field":  `[{"id":"lacework","name":"Lacework","price":250,"qty":2}]`,
			"missing price":  `[{"id":"lacework","name":"Lacework"}]`,
			"negative price": `[{"id":"lacework","name":"Lacework","price":-1}]`,
			"missing name":   `[{"id":"lacework","price":250}]`,
		}

		for name, doc := range cases {
			_, err := order.DecodeAddOns([]byte(doc))

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}

func TestNewAddresses(t *testing.T) {
	pickup, delivery := kernel.NewUUID(), kernel.NewUUID()

	t.Run("should accept both or neither", func(t *testing.T) {
		both, err := order.NewAddresses(&pickup, &delivery)
		require.NoError(t, err)
		assert.False(t, both.IsEmpty())

		none, err := order.NewAddresses(nil, nil)
		require.NoError(t, err)
		assert.True(t, none.IsEmpty())
		assert.Nil(t, none.PickupID())
		assert.Nil(t, none.DeliveryID())
	})

	t.Run("should reject a single address", func(t *testing.T) {
		_, err := order.NewAddresses(&pickup, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewAddresses(nil, &delivery)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewAddresses(&pickup, &zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
