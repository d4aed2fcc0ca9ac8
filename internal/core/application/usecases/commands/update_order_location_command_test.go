package commands_test

import (
	"testing"

	"martdelivery/internal/core/application/usecases/commands"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestNewUpdateOrderLocationCommand(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewUpdateOrderLocationCommand(id, ptr(77.6), ptr(12.9))

		require.NoError(t, err)
		assert.Equal(t, id, cmd.OrderID())
		assert.InDelta(t, 77.6, cmd.Location().Lon(), 1e-9)
		assert.InDelta(t, 12.9, cmd.Location().Lat(), 1e-9)
	})

	t.Run("zero coordinates are a real point", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderLocationCommand(kernel.NewUUID(), ptr(0), ptr(0))

		require.NoError(t, err)
		assert.True(t, kernel.IsValidPoint(cmd.Location()))
	})

	t.Run("missing coordinates", func(t *testing.T) {
		_, err := commands.NewUpdateOrderLocationCommand(kernel.NewUUID(), nil, ptr(12.9))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "lng")
		assert.NotContains(t, err.Error(), "lat")
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := commands.NewUpdateOrderLocationCommand(kernel.NewUUID(), ptr(200), ptr(12.9))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
