package queries

import (
	"context"
	"log/slog"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection and optionally
// geocodes its delivery address.
type GetOrderQueryHandler struct {
	db       *gorm.DB
	geocoder ports.Geocoder
	logger   *slog.Logger
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB, geocoder ports.Geocoder, logger *slog.Logger) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, geocoder: geocoder, logger: logger}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no order
// matches. The delivery address and, once recorded, the branch address are
// geocoded independently; a failed lookup is logged and leaves that pair nil.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(orders) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	if err = attachLines(ctx, h.db, orders); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{Order: orders[0]}

	if query.WithCoordinates() {
		resp.Coordinates = h.resolveAddress(ctx, resp.Order.ID, "delivery", resp.Order.DeliveryAddress)
		if resp.Order.BranchAddress != nil {
			resp.BranchCoordinates = h.resolveAddress(ctx, resp.Order.ID, "branch", *resp.Order.BranchAddress)
		}
	}

	return resp, nil
}

// resolveAddress geocodes one address, degrading to nil on failure.
func (h GetOrderQueryHandler) resolveAddress(
	ctx context.Context,
	orderID kernel.UUID,
	kind, address string,
) *CoordinatesResponse {
	coords, err := h.geocoder.Resolve(ctx, address)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to geocode address",
			"orderId", orderID.String(),
			"address", kind,
			"error", err,
		)
		return nil
	}

	return &CoordinatesResponse{
		Latitude:  coords.Latitude(),
		Longitude: coords.Longitude(),
	}
}
