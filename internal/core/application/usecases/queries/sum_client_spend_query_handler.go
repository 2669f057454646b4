package queries

import (
	"context"

	"gorm.io/gorm"
)

// SumClientSpendQueryHandler totals a client's order prices in cents.
type SumClientSpendQueryHandler struct {
	db *gorm.DB
}

// NewSumClientSpendQueryHandler creates a handler for client spend queries.
func NewSumClientSpendQueryHandler(db *gorm.DB) SumClientSpendQueryHandler {
	return SumClientSpendQueryHandler{db: db}
}

// Handle executes the spend total query.
func (h SumClientSpendQueryHandler) Handle(ctx context.Context, query SumClientSpendQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var totalCents int64
	err := h.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(total_price_cents), 0) FROM orders WHERE client_id = ?`,
		query.ClientID().Bytes(),
	).Scan(&totalCents).Error
	if err != nil {
		return 0, err
	}

	return totalCents, nil
}
