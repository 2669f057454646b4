package queries

import (
	"errors"

	"foodorders/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 500
)

// GetUnassignedOrdersQuery retrieves cooking or cooked orders that have no
// courier yet, paginated.
type GetUnassignedOrdersQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query for courier-less orders.
// Non-positive page arguments fall back to the defaults; the page size is
// capped at maxPageSize.
func NewGetUnassignedOrdersQuery(page, pageSize int) GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{
		page:     normalizePage(page),
		pageSize: normalizePageSize(pageSize),
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetUnassignedOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q GetUnassignedOrdersQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the row offset matching Page and PageSize.
func (q GetUnassignedOrdersQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}

func normalizePage(page int) int {
	if page < 1 {
		return defaultPage
	}
	return page
}

func normalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return defaultPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}
