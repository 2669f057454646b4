// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, returning plain response structs.
package queries

import (
	"context"
	"database/sql"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OrderLineResponse is one dish position of an order projection.
type OrderLineResponse struct {
	ID             kernel.UUID
	DishID         kernel.UUID
	DishName       string
	Quantity       int
	UnitPriceCents int64
}

// OrderResponse is the full order projection shared by the order queries.
// Optional fields are nil until the corresponding lifecycle stage is reached.
type OrderResponse struct {
	ID              kernel.UUID
	ClientID        kernel.UUID
	CourierID       *kernel.UUID
	BranchID        *kernel.UUID
	BranchAddress   *string
	EmployeeID      *kernel.UUID
	DeliveryAddress string
	TotalPriceCents int64
	Status          string
	CreatedAt       time.Time
	StartCookingAt  *time.Time
	EndCookingAt    *time.Time
	DeliveryAt      *time.Time
	RefusalReason   *string
	Lines           []OrderLineResponse
}

const orderColumns = `
	id,
	client_id,
	courier_id,
	branch_id,
	branch_address,
	employee_id,
	delivery_address,
	total_price_cents,
	status,
	created_at,
	start_cooking_at,
	end_cooking_at,
	delivery_at,
	refusal_reason
`

// scanOrderRows drains rows produced by a SELECT over orderColumns.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id, clientID                        uuid.UUID
			courierID, branchID, employeeID     uuid.NullUUID
			branchAddress, refusalReason        sql.NullString
			deliveryAddress                     string
			totalPriceCents                     int64
			status                              int
			createdAt                           time.Time
			startCookingAt, endCookingAt        sql.NullTime
			deliveryAt                          sql.NullTime
		)

		err := rows.Scan(
			&id,
			&clientID,
			&courierID,
			&branchID,
			&branchAddress,
			&employeeID,
			&deliveryAddress,
			&totalPriceCents,
			&status,
			&createdAt,
			&startCookingAt,
			&endCookingAt,
			&deliveryAt,
			&refusalReason,
		)
		if err != nil {
			return nil, err
		}

		resp := OrderResponse{
			DeliveryAddress: deliveryAddress,
			TotalPriceCents: totalPriceCents,
			Status:          order.Status(status).String(),
			CreatedAt:       createdAt,
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if resp.CourierID, err = optionalUUID(courierID); err != nil {
			return nil, err
		}
		if resp.BranchID, err = optionalUUID(branchID); err != nil {
			return nil, err
		}
		if resp.EmployeeID, err = optionalUUID(employeeID); err != nil {
			return nil, err
		}
		resp.BranchAddress = optionalString(branchAddress)
		resp.RefusalReason = optionalString(refusalReason)
		resp.StartCookingAt = optionalTime(startCookingAt)
		resp.EndCookingAt = optionalTime(endCookingAt)
		resp.DeliveryAt = optionalTime(deliveryAt)

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLines fetches the dish lines of all given orders in one round trip
// and distributes them over the responses.
func attachLines(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID.String())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			dish_id,
			dish_name,
			quantity,
			unit_price_cents
		FROM dish_lines
		WHERE order_id = ANY(?)
		ORDER BY order_id, id
	`, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	linesByOrder := make(map[kernel.UUID][]OrderLineResponse)
	for rows.Next() {
		var (
			id, orderID, dishID uuid.UUID
			dishName            string
			quantity            int
			unitPriceCents      int64
		)
		if err = rows.Scan(&id, &orderID, &dishID, &dishName, &quantity, &unitPriceCents); err != nil {
			return err
		}

		var line OrderLineResponse
		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if line.DishID, err = kernel.UUIDFromBytes(dishID[:]); err != nil {
			return err
		}
		line.DishName = dishName
		line.Quantity = quantity
		line.UnitPriceCents = unitPriceCents

		key, keyErr := kernel.UUIDFromBytes(orderID[:])
		if keyErr != nil {
			return keyErr
		}
		linesByOrder[key] = append(linesByOrder[key], line)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		orders[i].Lines = linesByOrder[orders[i].ID]
	}

	return nil
}

func optionalUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func optionalTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
