package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOrdersInMonthQueryHandler counts orders created in one calendar month.
type CountOrdersInMonthQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersInMonthQueryHandler creates a handler for per-month counts.
func NewCountOrdersInMonthQueryHandler(db *gorm.DB) CountOrdersInMonthQueryHandler {
	return CountOrdersInMonthQueryHandler{db: db}
}

// Handle executes the per-month count query.
func (h CountOrdersInMonthQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersInMonthQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	from, to := query.Interval()

	var count int64
	err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM orders WHERE created_at >= ? AND created_at < ?`,
		from, to,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
