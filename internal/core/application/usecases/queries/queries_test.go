package queries_test

import (
	"testing"
	"time"

	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewGetOrderQuery(orderID, true)

		require.NoError(t, err)
		assert.True(t, query.OrderID().IsEqual(orderID))
		assert.True(t, query.WithCoordinates())
		assert.NoError(t, query.Validate())
	})

	t.Run("empty_order_id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{}, false)
		require.Error(t, err)
	})

	t.Run("not_constructed", func(t *testing.T) {
		var query queries.GetOrderQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetOrdersByIDsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
		query, err := queries.NewGetOrdersByIDsQuery(ids)

		require.NoError(t, err)
		assert.Len(t, query.OrderIDs(), 2)
	})

	t.Run("empty_list", func(t *testing.T) {
		_, err := queries.NewGetOrdersByIDsQuery(nil)
		require.ErrorIs(t, err, queries.ErrOrderIDListIsEmpty)
	})

	t.Run("invalid_id_in_list", func(t *testing.T) {
		_, err := queries.NewGetOrdersByIDsQuery([]kernel.UUID{kernel.NewUUID(), {}})
		require.Error(t, err)
	})
}

func TestNewGetUnassignedOrdersQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		query := queries.NewGetUnassignedOrdersQuery(0, 0)

		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 50, query.PageSize())
		assert.Equal(t, 0, query.Offset())
	})

	t.Run("explicit_paging", func(t *testing.T) {
		query := queries.NewGetUnassignedOrdersQuery(3, 20)

		assert.Equal(t, 3, query.Page())
		assert.Equal(t, 20, query.PageSize())
		assert.Equal(t, 40, query.Offset())
	})

	t.Run("page_size_capped", func(t *testing.T) {
		query := queries.NewGetUnassignedOrdersQuery(1, 100000)
		assert.Equal(t, 500, query.PageSize())
	})

	t.Run("negative_paging_falls_back", func(t *testing.T) {
		query := queries.NewGetUnassignedOrdersQuery(-5, -10)
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 50, query.PageSize())
	})
}

func TestNewGetCourierOrdersQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		courierID := kernel.NewUUID()
		query, err := queries.NewGetCourierOrdersQuery(courierID, true, 2, 10)

		require.NoError(t, err)
		assert.True(t, query.CourierID().IsEqual(courierID))
		assert.True(t, query.ActiveOnly())
		assert.Equal(t, 10, query.Offset())
	})

	t.Run("empty_courier_id", func(t *testing.T) {
		_, err := queries.NewGetCourierOrdersQuery(kernel.UUID{}, false, 1, 10)
		require.Error(t, err)
	})

	t.Run("active_view_without_paging_is_unlimited", func(t *testing.T) {
		query, err := queries.NewGetCourierOrdersQuery(kernel.NewUUID(), true, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, query.PageSize())
	})

	t.Run("active_view_keeps_explicit_paging", func(t *testing.T) {
		query, err := queries.NewGetCourierOrdersQuery(kernel.NewUUID(), true, 2, 10)

		require.NoError(t, err)
		assert.Equal(t, 10, query.PageSize())
		assert.Equal(t, 10, query.Offset())
	})

	t.Run("full_view_defaults_to_standard_page", func(t *testing.T) {
		query, err := queries.NewGetCourierOrdersQuery(kernel.NewUUID(), false, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 50, query.PageSize())
	})
}

func TestNewCountOrdersQuery(t *testing.T) {
	actorID := kernel.NewUUID()

	for _, kind := range []queries.ActorKind{
		queries.ActorClient, queries.ActorCourier, queries.ActorEmployee,
	} {
		t.Run(string(kind), func(t *testing.T) {
			query, err := queries.NewCountOrdersQuery(kind, actorID)

			require.NoError(t, err)
			assert.Equal(t, kind, query.ActorKind())
			assert.True(t, query.ActorID().IsEqual(actorID))
		})
	}

	t.Run("unknown_kind", func(t *testing.T) {
		_, err := queries.NewCountOrdersQuery("manager", actorID)
		require.ErrorIs(t, err, queries.ErrActorKindIsInvalid)
	})

	t.Run("empty_actor_id", func(t *testing.T) {
		_, err := queries.NewCountOrdersQuery(queries.ActorClient, kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewSumClientSpendQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		clientID := kernel.NewUUID()
		query, err := queries.NewSumClientSpendQuery(clientID)

		require.NoError(t, err)
		assert.True(t, query.ClientID().IsEqual(clientID))
	})

	t.Run("empty_client_id", func(t *testing.T) {
		_, err := queries.NewSumClientSpendQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewCountOrdersInMonthQuery(t *testing.T) {
	t.Run("explicit_month", func(t *testing.T) {
		query, err := queries.NewCountOrdersInMonthQuery(2026, 2)

		require.NoError(t, err)
		assert.Equal(t, 2026, query.Year())
		assert.Equal(t, time.February, query.Month())

		from, to := query.Interval()
		assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("zero_defaults_to_current_month", func(t *testing.T) {
		now := time.Now().UTC()
		query, err := queries.NewCountOrdersInMonthQuery(0, 0)

		require.NoError(t, err)
		assert.Equal(t, now.Year(), query.Year())
		assert.Equal(t, now.Month(), query.Month())
	})

	t.Run("december_rolls_over_to_january", func(t *testing.T) {
		query, err := queries.NewCountOrdersInMonthQuery(2025, 12)
		require.NoError(t, err)

		from, to := query.Interval()
		assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("month_out_of_range", func(t *testing.T) {
		_, err := queries.NewCountOrdersInMonthQuery(2026, 13)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("year_out_of_range", func(t *testing.T) {
		_, err := queries.NewCountOrdersInMonthQuery(1999, 5)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
