package errs_test

import (
	"errors"
	"testing"

	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should format the identifier", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "7f1c")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "7f1c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7f1c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("should include param and cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("tailor", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: tailor, ID is: 42 (cause: connection reset)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("should format without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("measurement_data")

		assert.Equal(t, "value is invalid: measurement_data", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("should format with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("Shipped is not a status"))

		assert.Equal(t, "value is invalid: status (cause: Shipped is not a status)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("should describe the range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("amount", -5, 0, "unbounded")

		assert.Equal(t, -5, err.Value)
		assert.Equal(t, "value is out of range: -5 is amount, min value is 0, max value is unbounded", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("should append the cause", func(t *testing.T) {
		cause := errors.New("negative money")
		err := errs.NewValueIsOutOfRangeErrorWithCause("amount", -1, 0, 100, cause)

		assert.Equal(t,
			"value is out of range: -1 is amount, min value is 0, max value is 100 (cause: negative money)",
			err.Error())
	})

	t.Run("should keep the message on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "first\nsecond", 0, 10)

		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("should format without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("category")

		assert.Equal(t, "value is required: category", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("should format with cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("addresses", errors.New("deployment requires addresses"))

		assert.Equal(t, "value is required: addresses (cause: deployment requires addresses)", err.Error())
	})
}

func TestTransitionIsInvalidError(t *testing.T) {
	t.Run("should name both ends of the transition", func(t *testing.T) {
		err := errs.NewTransitionIsInvalidError("order", "Assigned", "Completed")

		assert.Equal(t, "transition is invalid: order cannot move from Assigned to Completed", err.Error())
		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	})
}

func TestActionIsForbiddenError(t *testing.T) {
	t.Run("should only mention the action", func(t *testing.T) {
		err := errs.NewActionIsForbiddenError("start work")

		assert.Equal(t, "action is forbidden: start work", err.Error())
		require.ErrorIs(t, err, errs.ErrActionIsForbidden)
	})
}

func TestStoreFailureError(t *testing.T) {
	t.Run("should unwrap to sentinel and cause", func(t *testing.T) {
		cause := errs.NewValueIsInvalidError("add_ons")
		err := errs.NewStoreFailureError("decode order", cause)

		assert.Equal(t, "store failure: decode order (cause: value is invalid: add_ons)", err.Error())
		require.ErrorIs(t, err, errs.ErrStoreFailure)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should work without a cause", func(t *testing.T) {
		err := errs.NewStoreFailureError("commit", nil)

		assert.Equal(t, "store failure: commit", err.Error())
		require.ErrorIs(t, err, errs.ErrStoreFailure)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("should keep stable messages", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "transition is invalid", errs.ErrTransitionIsInvalid.Error())
		assert.Equal(t, "action is forbidden", errs.ErrActionIsForbidden.Error())
		assert.Equal(t, "store failure", errs.ErrStoreFailure.Error())
	})

	t.Run("should match through errors.Join", func(t *testing.T) {
		joined := errors.Join(
			errs.NewValueIsRequiredError("category"),
			errs.NewValueIsRequiredError("design"),
		)

		require.ErrorIs(t, joined, errs.ErrValueIsRequired)
		assert.Contains(t, joined.Error(), "category")
		assert.Contains(t, joined.Error(), "design")
	})
}
