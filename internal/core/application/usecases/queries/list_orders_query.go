package queries

import (
	"errors"

	"orderchat/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// RecentOrdersLimit caps how many orders a listing returns. Conversational
// replies stay readable when the list is short; older orders are reachable by
// tracking id.
const RecentOrdersLimit = 10

// ListOrdersQuery retrieves the most recent orders, newest first.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the recent-orders listing.
// This is a parameterless query.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
