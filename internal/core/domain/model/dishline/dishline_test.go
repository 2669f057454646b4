package dishline_test

import (
	"testing"

	"foodorders/internal/core/domain/model/dishline"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDishLine(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		dishID := kernel.NewUUID()

		l, err := dishline.NewDishLine(id, orderID, dishID, "Margherita", 2, 45000)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.True(t, l.ID().IsEqual(id))
		assert.True(t, l.OrderID().IsEqual(orderID))
		assert.True(t, l.DishID().IsEqual(dishID))
		assert.Equal(t, "Margherita", l.DishName())
		assert.Equal(t, 2, l.Quantity())
		assert.Equal(t, int64(45000), l.UnitPriceCents())
		assert.Equal(t, int64(90000), l.TotalCents())
	})

	t.Run("invalid_inputs", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		dishID := kernel.NewUUID()

		_, err := dishline.NewDishLine(kernel.UUID{}, orderID, dishID, "Margherita", 1, 100)
		require.Error(t, err)

		_, err = dishline.NewDishLine(id, kernel.UUID{}, dishID, "Margherita", 1, 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = dishline.NewDishLine(id, orderID, kernel.UUID{}, "Margherita", 1, 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = dishline.NewDishLine(id, orderID, dishID, " ", 1, 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = dishline.NewDishLine(id, orderID, dishID, "Margherita", 0, 100)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = dishline.NewDishLine(id, orderID, dishID, "Margherita", 1, -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDishLine_Validate_ZeroValue(t *testing.T) {
	var l dishline.DishLine
	require.Error(t, (&l).Validate())

	var nilLine *dishline.DishLine
	require.Error(t, nilLine.Validate())
}
