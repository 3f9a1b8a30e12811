package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"vendorflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("purchaseOrderID", "po-7")

		assert.Equal(t, "purchaseOrderID", err.ParamName)
		assert.Equal(t, "po-7", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: po-7", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("row deleted concurrently")
		err := errs.NewObjectNotFoundErrorWithCause("purchaseOrderID", "po-7", cause)

		assert.Equal(t, "purchaseOrderID", err.ParamName)
		assert.Equal(t, "po-7", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: purchaseOrderID, ID is: po-7 (cause: row deleted concurrently)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("vendorID", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("items")

		assert.Equal(t, "items", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: items", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("at least one item is required")
		err := errs.NewValueIsInvalidErrorWithCause("items", cause)

		assert.Equal(t, "items", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: items (cause: at least one item is required)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -3, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -3, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -3 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("rating below scale")
		err := errs.NewValueIsOutOfRangeErrorWithCause("rating", -5, 0, 100, cause)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is rating, min value is 0, max value is 100 (cause: rating below scale)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("item", "hex\nbolt", 0, 10)
		assert.Contains(t, err.Error(), "hex bolt")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("expectedDeliveryDate")

		assert.Equal(t, "expectedDeliveryDate", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: expectedDeliveryDate", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("acknowledgement without a date")
		err := errs.NewValueIsRequiredErrorWithCause("expectedDeliveryDate", cause)

		assert.Equal(t, "expectedDeliveryDate", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: expectedDeliveryDate (cause: acknowledgement without a date)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("purchase order")

		assert.Equal(t, "purchase order", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: purchase order", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("stale version 3")
		err := errs.NewVersionIsInvalidErrorWithCause("purchase order", cause)

		assert.Equal(t, "purchase order", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: purchase order (cause: stale version 3)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
		require.Error(t, errs.ErrStateConflict)
		require.Error(t, errs.ErrAccessDenied)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "state conflict", errs.ErrStateConflict.Error())
		assert.Equal(t, "access denied", errs.ErrAccessDenied.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("purchaseOrderID", "po-7")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("items")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", -3, 1, 1000)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("expectedDeliveryDate")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		versionInvalidErr := errs.NewVersionIsInvalidError("version")
		require.ErrorIs(t, versionInvalidErr, errs.ErrVersionIsInvalid)

		stateErr := errs.NewStateConflictError("order", "is locked")
		require.ErrorIs(t, stateErr, errs.ErrStateConflict)

		accessErr := errs.NewAccessDeniedError("vendor", "cancel")
		require.ErrorIs(t, accessErr, errs.ErrAccessDenied)
	})
}

func TestStateConflictError(t *testing.T) {
	t.Run("NewStateConflictError", func(t *testing.T) {
		err := errs.NewStateConflictError("purchase order", "is already acknowledged")

		assert.Equal(t, "purchase order", err.Object)
		assert.Equal(t, "is already acknowledged", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "state conflict: purchase order is already acknowledged", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})

	t.Run("NewStateConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is Cancelled")
		err := errs.NewStateConflictErrorWithCause("purchase order", "is not pending", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"state conflict: purchase order is not pending (cause: status is Cancelled)",
			err.Error())
	})

	t.Run("package level sentinel keeps its identity when wrapped", func(t *testing.T) {
		sentinel := errs.NewStateConflictError("purchase order", "is locked")
		wrapped := fmt.Errorf("cancel: %w", sentinel)

		require.ErrorIs(t, wrapped, sentinel)
		require.ErrorIs(t, wrapped, errs.ErrStateConflict)
		require.NotErrorIs(t, wrapped, errs.NewStateConflictError("purchase order", "is locked"))
	})
}

func TestAccessDeniedError(t *testing.T) {
	t.Run("NewAccessDeniedError", func(t *testing.T) {
		err := errs.NewAccessDeniedError("vendor", "cancel a purchase order")

		assert.Equal(t, "vendor", err.Role)
		assert.Equal(t, "cancel a purchase order", err.Action)
		assert.Equal(t, "access denied: vendor cannot cancel a purchase order", err.Error())
		assert.Equal(t, errs.ErrAccessDenied, err.Unwrap())
	})

	t.Run("NewAccessDeniedErrorWithCause", func(t *testing.T) {
		cause := errors.New("role mismatch")
		err := errs.NewAccessDeniedErrorWithCause("admin", "rate", cause)

		assert.Equal(t, "access denied: admin cannot rate (cause: role mismatch)", err.Error())
	})
}
