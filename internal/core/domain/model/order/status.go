package order

import "orderchat/internal/pkg/errs"

// Status represents the lifecycle state of an order.
//
// The nominal set is created, processing, shipped, delivered, cancelled, with
// assigned and pending additionally appearing on orders written by external
// channels. The set is deliberately advisory: conversational updates may write
// any status keyword the user supplied, and no transition graph is enforced.
// IsKnown reports membership in the nominal set for display purposes only.
type Status string

const (
	// StatusCreated is the initial status when an order is first created.
	StatusCreated Status = "created"

	// StatusProcessing indicates the order is being prepared.
	StatusProcessing Status = "processing"

	// StatusShipped indicates the order has left for delivery.
	StatusShipped Status = "shipped"

	// StatusDelivered indicates the order reached the customer.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the order was cancelled and will not be delivered.
	StatusCancelled Status = "cancelled"

	// StatusAssigned indicates the order is assigned to a courier by an external channel.
	StatusAssigned Status = "assigned"

	// StatusPending indicates the order is queued by an external channel.
	StatusPending Status = "pending"
)

// getKnownStatuses returns the statuses this service itself ever writes or filters on.
func getKnownStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusCreated:    {},
		StatusProcessing: {},
		StatusShipped:    {},
		StatusDelivered:  {},
		StatusCancelled:  {},
		StatusAssigned:   {},
		StatusPending:    {},
	}
}

// Validate checks that the status carries a value. Any non-empty string is
// accepted; only the empty string is rejected.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// IsKnown reports whether the status belongs to the nominal status set.
func (s Status) IsKnown() bool {
	_, ok := getKnownStatuses()[s]
	return ok
}

// String returns the raw status value.
func (s Status) String() string {
	return string(s)
}
