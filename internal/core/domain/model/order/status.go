package order

import (
	"fmt"

	"foodorders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Transitions follow the
// forward path below, with Cancelled reachable from any non-terminal state:
//
//	Created ──> Review ──> Cooking ──> Cooked ──> Delivery ──> Completed
//	    │          │           │           │           │
//	    └──────────┴───────────┴───────────┴───────────┴──────> Cancelled
//
// Completed and Cancelled are terminal. Any transition outside the table is
// rejected with a typed error instead of being applied blindly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned by the creation path,
	// before the client has paid.
	Created

	// Review means payment was accepted and the order sits in the
	// restaurant's review queue.
	Review

	// Cooking means a restaurant employee started preparing the order.
	Cooking

	// Cooked means preparation finished and the order awaits a courier.
	Cooked

	// Delivery means a courier picked the order up and is delivering it.
	Delivery

	// Completed means the order was delivered. Terminal.
	Completed

	// Cancelled means the order was refused with a recorded reason,
	// from any non-terminal state. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Review:    "REVIEW",
		Cooking:   "COOKING",
		Cooked:    "COOKED",
		Delivery:  "DELIVERY",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// transitions is the explicit table of allowed forward steps.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Created:  {Review, Cancelled},
		Review:   {Cooking, Cancelled},
		Cooking:  {Cooked, Cancelled},
		Cooked:   {Delivery, Cancelled},
		Delivery: {Completed, Cancelled},
	}
}

// ParseStatus converts the wire representation (e.g. "COOKING") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", s),
	)
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether target is a legal next state.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the step against the transition table and returns
// the target status, or a typed error for illegal transitions.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status transition",
			fmt.Errorf("%s -> %s is not allowed", s, target),
		)
	}
	return target, nil
}
