package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrSumClientSpendQueryIsNotConstructed = errors.New(
	"SumClientSpendQuery must be created via NewSumClientSpendQuery constructor",
)

// SumClientSpendQuery totals the prices of all orders a client has placed.
// A client with no orders totals to zero.
type SumClientSpendQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSumClientSpendQuery creates a spend total query for the given client.
func NewSumClientSpendQuery(clientID kernel.UUID) (SumClientSpendQuery, error) {
	if err := clientID.Validate(); err != nil {
		return SumClientSpendQuery{}, err
	}

	return SumClientSpendQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SumClientSpendQuery) Validate() error {
	return q.guard.Validate(ErrSumClientSpendQueryIsNotConstructed)
}

// ClientID returns the client identifier.
func (q SumClientSpendQuery) ClientID() kernel.UUID {
	return q.clientID
}
