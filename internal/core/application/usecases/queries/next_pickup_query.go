package queries

import (
	"errors"

	"orderchat/internal/pkg/guard"
)

var ErrNextPickupQueryIsNotConstructed = errors.New(
	"NextPickupQuery must be created via NewNextPickupQuery constructor",
)

// NextPickupQuery retrieves the upcoming pickup: the open order with the
// earliest scheduled pickup time. Orders that are cancelled, shipped, or
// delivered no longer need a pickup and are excluded.
type NextPickupQuery struct {
	guard guard.ConstructorGuard
}

// NewNextPickupQuery creates a query for the upcoming pickup.
// This is a parameterless query.
func NewNextPickupQuery() NextPickupQuery {
	return NextPickupQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q NextPickupQuery) Validate() error {
	return q.guard.Validate(ErrNextPickupQueryIsNotConstructed)
}
