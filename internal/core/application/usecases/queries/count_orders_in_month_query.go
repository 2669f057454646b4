package queries

import (
	"errors"
	"time"

	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var ErrCountOrdersInMonthQueryIsNotConstructed = errors.New(
	"CountOrdersInMonthQuery must be created via NewCountOrdersInMonthQuery constructor",
)

// CountOrdersInMonthQuery counts the orders created within one calendar
// month. Zero year and month default to the current month in UTC.
type CountOrdersInMonthQuery struct {
	year  int
	month time.Month

	guard guard.ConstructorGuard
}

// NewCountOrdersInMonthQuery creates a per-month order count query.
func NewCountOrdersInMonthQuery(year, month int) (CountOrdersInMonthQuery, error) {
	now := time.Now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	if year < 2000 || year > 9999 {
		return CountOrdersInMonthQuery{}, errs.NewValueIsOutOfRangeError("year", year, 2000, 9999)
	}
	if month < 1 || month > 12 {
		return CountOrdersInMonthQuery{}, errs.NewValueIsOutOfRangeError("month", month, 1, 12)
	}

	return CountOrdersInMonthQuery{
		year:  year,
		month: time.Month(month),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersInMonthQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersInMonthQueryIsNotConstructed)
}

// Year returns the calendar year being counted.
func (q CountOrdersInMonthQuery) Year() int {
	return q.year
}

// Month returns the calendar month being counted.
func (q CountOrdersInMonthQuery) Month() time.Month {
	return q.month
}

// Interval returns the UTC half-open interval [from, to) of the month.
func (q CountOrdersInMonthQuery) Interval() (from, to time.Time) {
	from = time.Date(q.year, q.month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
