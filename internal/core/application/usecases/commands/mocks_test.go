package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/dishline"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDishLineRepository struct{ mock.Mock }

func (m *MockDishLineRepository) AddAll(ctx context.Context, lines []*dishline.DishLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

func (m *MockDishLineRepository) GetAllByOrderID(
	ctx context.Context, orderID kernel.UUID,
) ([]*dishline.DishLine, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dishline.DishLine), args.Error(1)
}

func (m *MockDishLineRepository) GetAllByOrderIDs(
	ctx context.Context, orderIDs []kernel.UUID,
) ([]*dishline.DishLine, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dishline.DishLine), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) DishLineRepository() ports.DishLineRepository {
	args := m.Called()
	return args.Get(0).(ports.DishLineRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// orderInStatus builds a persisted-looking aggregate advanced to the given
// lifecycle status via its own operations.
func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Tverskaya st. 1", 9900, time.Now())
	require.NoError(t, err)

	if status == order.Cancelled {
		require.NoError(t, o.Cancel("test cancellation"))
		return o
	}

	kitchen := order.KitchenContext{
		BranchID:      kernel.NewUUID(),
		BranchAddress: "Arbat st. 12",
		EmployeeID:    kernel.NewUUID(),
	}
	steps := []func() error{
		func() error { return o.Pay() },
		func() error { return o.StartCooking(time.Now(), kitchen) },
		func() error { return o.MarkCooked(time.Now()) },
		func() error { return o.StartDelivery(time.Now()) },
		func() error { return o.Complete() },
	}
	targets := []order.Status{order.Review, order.Cooking, order.Cooked, order.Delivery, order.Completed}

	for i, step := range steps {
		if o.Status() == status {
			return o
		}
		require.NoError(t, step())
		if targets[i] == status {
			return o
		}
	}
	return o
}
