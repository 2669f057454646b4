package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a customer order. It owns the lifecycle
// state machine and the timestamps stamped by its transitions.
//
// Invariants:
//   - status moves only along the transition table in Status (no regressions)
//   - start-cooking, end-cooking, and delivery timestamps are set exactly
//     once, by the corresponding transition, and never overwritten
//   - refusal reason is non-empty if and only if status is Cancelled
//   - version is the optimistic-concurrency token the aggregate was loaded
//     with; every persist is a compare-and-swap against it
type Order struct {
	id              kernel.UUID
	clientID        kernel.UUID
	courierID       *kernel.UUID
	branchID        *kernel.UUID
	branchAddress   *string
	employeeID      *kernel.UUID
	deliveryAddress string
	totalPriceCents int64
	status          Status
	createdAt       time.Time
	startCookingAt  *time.Time
	endCookingAt    *time.Time
	deliveryAt      *time.Time
	refusalReason   *string
	version         int64

	isConstructed bool
}

// KitchenContext is the branch/employee snapshot a restaurant supplies with
// the transition to Cooking. The snapshot comes from the transition request,
// never from the order's prior state.
type KitchenContext struct {
	BranchID      kernel.UUID
	BranchAddress string
	EmployeeID    kernel.UUID
}

// Validate checks the snapshot required by the Cooking transition.
func (c KitchenContext) Validate() error {
	if err := c.BranchID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("branchId", err)
	}
	if strings.TrimSpace(c.BranchAddress) == "" {
		return errs.NewValueIsRequiredError("branchAddress")
	}
	if err := c.EmployeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}
	return nil
}

// NewOrder creates a fresh order in Created status with version 1.
// The creation timestamp is supplied by the caller so command handlers stay
// deterministic under test.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	deliveryAddress string,
	totalPriceCents int64,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := clientID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if totalPriceCents < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalPriceCents",
			fmt.Errorf("%d is negative", totalPriceCents),
		)
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Order{
		id:              id,
		clientID:        clientID,
		deliveryAddress: deliveryAddress,
		totalPriceCents: totalPriceCents,
		status:          Created,
		createdAt:       createdAt,
		version:         1,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without replaying its
// history. The repository is trusted to hand back a consistent snapshot.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	courierID *kernel.UUID,
	branchID *kernel.UUID,
	branchAddress *string,
	employeeID *kernel.UUID,
	deliveryAddress string,
	totalPriceCents int64,
	status Status,
	createdAt time.Time,
	startCookingAt, endCookingAt, deliveryAt *time.Time,
	refusalReason *string,
	version int64,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version", fmt.Errorf("%d is less than 1", version))
	}

	return &Order{
		id:              id,
		clientID:        clientID,
		courierID:       courierID,
		branchID:        branchID,
		branchAddress:   branchAddress,
		employeeID:      employeeID,
		deliveryAddress: deliveryAddress,
		totalPriceCents: totalPriceCents,
		status:          status,
		createdAt:       createdAt,
		startCookingAt:  startCookingAt,
		endCookingAt:    endCookingAt,
		deliveryAt:      deliveryAt,
		refusalReason:   refusalReason,
		version:         version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) ClientID() kernel.UUID        { return o.clientID }
func (o *Order) CourierID() *kernel.UUID      { return o.courierID }
func (o *Order) BranchID() *kernel.UUID       { return o.branchID }
func (o *Order) BranchAddress() *string       { return o.branchAddress }
func (o *Order) EmployeeID() *kernel.UUID     { return o.employeeID }
func (o *Order) DeliveryAddress() string      { return o.deliveryAddress }
func (o *Order) TotalPriceCents() int64       { return o.totalPriceCents }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) StartCookingAt() *time.Time   { return o.startCookingAt }
func (o *Order) EndCookingAt() *time.Time     { return o.endCookingAt }
func (o *Order) DeliveryAt() *time.Time       { return o.deliveryAt }
func (o *Order) RefusalReason() *string       { return o.refusalReason }
func (o *Order) Version() int64               { return o.version }

// Pay moves the order into the restaurant review queue after payment.
func (o *Order) Pay() error {
	newStatus, err := o.status.TransitionTo(Review)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartCooking transitions to Cooking, stamps the start-cooking time, and
// records the branch/employee snapshot from the transition request.
func (o *Order) StartCooking(now time.Time, kitchen KitchenContext) error {
	if err := kitchen.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Cooking)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.startCookingAt = stampOnce(o.startCookingAt, now)
	branchID := kitchen.BranchID
	branchAddress := kitchen.BranchAddress
	employeeID := kitchen.EmployeeID
	o.branchID = &branchID
	o.branchAddress = &branchAddress
	o.employeeID = &employeeID
	return nil
}

// MarkCooked transitions to Cooked and stamps the end-cooking time.
func (o *Order) MarkCooked(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Cooked)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.endCookingAt = stampOnce(o.endCookingAt, now)
	return nil
}

// StartDelivery transitions to Delivery and stamps the delivery time.
func (o *Order) StartDelivery(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Delivery)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryAt = stampOnce(o.deliveryAt, now)
	return nil
}

// Complete marks the order as delivered. Terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel refuses the order with a reason, from any non-terminal state.
func (o *Order) Cancel(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("refusalReason")
	}

	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.refusalReason = &reason
	return nil
}

// AssignCourier records the courier picking up this order. The write is a
// single foreign-key assignment; terminal orders reject it.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot take a courier", o.status),
		)
	}

	o.courierID = &courierID
	return nil
}

// SyncVersion records the version the repository persisted, keeping the
// in-memory aggregate usable for a further update in the same unit of work.
func (o *Order) SyncVersion(version int64) {
	o.version = version
}

// stampOnce preserves an already-set timestamp so a transition on a restored
// aggregate never overwrites it.
func stampOnce(current *time.Time, now time.Time) *time.Time {
	if current != nil {
		return current
	}
	return &now
}
