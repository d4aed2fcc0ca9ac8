package errs_test

import (
	"errors"
	"testing"

	"martdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("martId", "42", cause)

		assert.Equal(t,
			"object not found: param is: martId, ID is: 42 (cause: connection reset)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats numeric bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("lat", 91.5, -90.0, 90.0)

		assert.Equal(t, "value is out of range: lat is 91.5, min value is -90, max value is 90", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("strips newlines from values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredAndInvalidErrors(t *testing.T) {
	required := errs.NewValueIsRequiredError("phone")
	assert.Equal(t, "value is required: phone", required.Error())
	require.ErrorIs(t, required, errs.ErrValueIsRequired)

	invalid := errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("0 is not greater than 0"))
	assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", invalid.Error())
	require.ErrorIs(t, invalid, errs.ErrValueIsInvalid)
}

func TestStorageUnavailableError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := errs.NewStorageUnavailableError("find pending orders", cause)

	assert.Equal(t,
		"storage is unavailable: find pending orders (cause: dial tcp: connection refused)",
		err.Error())
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	require.ErrorIs(t, err, cause)

	var target *errs.StorageUnavailableError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "find pending orders", target.Operation)
}
