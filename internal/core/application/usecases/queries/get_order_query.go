package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its dish lines.
// When withCoordinates is set, the delivery address and the branch address
// (once recorded) are additionally resolved through the geocoder; a geocoding
// failure degrades to a response without that pair instead of failing the
// query.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	withCoordinates bool

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID, withCoordinates bool) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:         orderID,
		withCoordinates: withCoordinates,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// WithCoordinates reports whether the order's addresses should be geocoded.
func (q GetOrderQuery) WithCoordinates() bool {
	return q.withCoordinates
}

// CoordinatesResponse carries one geocoded address.
type CoordinatesResponse struct {
	Latitude  float64
	Longitude float64
}

// GetOrderQueryResponse is the order projection plus the optional geocoded
// pairs. Coordinates holds the delivery address; BranchCoordinates holds the
// branch address and stays nil until the order reached the kitchen.
type GetOrderQueryResponse struct {
	Order             OrderResponse
	Coordinates       *CoordinatesResponse
	BranchCoordinates *CoordinatesResponse
}
