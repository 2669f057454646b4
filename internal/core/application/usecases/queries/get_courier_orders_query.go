package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves the orders assigned to one courier,
// paginated. With activeOnly set, completed orders are filtered out so the
// courier sees only the work still on their hands. The active view is
// unpaginated unless the caller asks for paging explicitly.
type GetCourierOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID  kernel.UUID
	activeOnly bool
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for a courier's orders.
func NewGetCourierOrdersQuery(
	courierID kernel.UUID,
	activeOnly bool,
	page, pageSize int,
) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	size := normalizePageSize(pageSize)
	if activeOnly && pageSize < 1 {
		size = 0
	}

	return GetCourierOrdersQuery{
		courierID:  courierID,
		activeOnly: activeOnly,
		page:       normalizePage(page),
		pageSize:   size,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// ActiveOnly reports whether completed orders are excluded.
func (q GetCourierOrdersQuery) ActiveOnly() bool {
	return q.activeOnly
}

// Page returns the 1-based page number.
func (q GetCourierOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page. Zero means no limit.
func (q GetCourierOrdersQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the row offset matching Page and PageSize.
func (q GetCourierOrdersQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}
