package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var (
	ErrGetOrdersByIDsQueryIsNotConstructed = errors.New(
		"GetOrdersByIDsQuery must be created via NewGetOrdersByIDsQuery constructor",
	)
	ErrOrderIDListIsEmpty = errors.New("at least one order id is required")
)

// GetOrdersByIDsQuery retrieves a set of orders by their identifiers.
// Unknown ids are silently skipped; the response carries only the orders
// that exist.
type GetOrdersByIDsQuery struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByIDsQuery creates a query for the given order ids.
func NewGetOrdersByIDsQuery(orderIDs []kernel.UUID) (GetOrdersByIDsQuery, error) {
	if len(orderIDs) == 0 {
		return GetOrdersByIDsQuery{}, ErrOrderIDListIsEmpty
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return GetOrdersByIDsQuery{}, err
		}
	}

	return GetOrdersByIDsQuery{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByIDsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByIDsQueryIsNotConstructed)
}

// OrderIDs returns the requested identifiers.
func (q GetOrdersByIDsQuery) OrderIDs() []kernel.UUID {
	return q.orderIDs
}
