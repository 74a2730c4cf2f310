package queries

import (
	"errors"
	"strings"

	"orderchat/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// TrackOrderQuery looks up a single order by the identifier token the user
// supplied. The token is kept raw: tokens that are not valid tracking ids
// simply match nothing, which the handler reports as not found.
type TrackOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to look up one order.
func NewTrackOrderQuery(orderID string) (TrackOrderQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return TrackOrderQuery{}, ErrOrderIDIsRequired
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the raw identifier token.
func (q TrackOrderQuery) OrderID() string {
	return q.orderID
}
