package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var (
	ErrCountOrdersQueryIsNotConstructed = errors.New(
		"CountOrdersQuery must be created via NewCountOrdersQuery constructor",
	)
	ErrActorKindIsInvalid = errors.New("actor kind must be client, courier or employee")
)

// ActorKind selects which participant the order count is grouped by.
type ActorKind string

const (
	ActorClient   ActorKind = "client"
	ActorCourier  ActorKind = "courier"
	ActorEmployee ActorKind = "employee"
)

// column returns the orders column holding the actor's identifier.
func (k ActorKind) column() (string, error) {
	switch k {
	case ActorClient:
		return "client_id", nil
	case ActorCourier:
		return "courier_id", nil
	case ActorEmployee:
		return "employee_id", nil
	default:
		return "", ErrActorKindIsInvalid
	}
}

// CountOrdersQuery counts the orders a client placed, a courier delivered,
// or a restaurant employee processed.
type CountOrdersQuery struct {
	actorKind ActorKind
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCountOrdersQuery creates an order count query for the given actor.
func NewCountOrdersQuery(actorKind ActorKind, actorID kernel.UUID) (CountOrdersQuery, error) {
	if _, err := actorKind.column(); err != nil {
		return CountOrdersQuery{}, err
	}
	if err := actorID.Validate(); err != nil {
		return CountOrdersQuery{}, err
	}

	return CountOrdersQuery{
		actorKind: actorKind,
		actorID:   actorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersQueryIsNotConstructed)
}

// ActorKind returns the participant kind being counted.
func (q CountOrdersQuery) ActorKind() ActorKind {
	return q.actorKind
}

// ActorID returns the participant identifier.
func (q CountOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}
