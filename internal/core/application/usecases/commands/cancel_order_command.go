package commands

import (
	"errors"
	"strings"

	"orderchat/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// CancelOrderCommand represents a request to cancel an order. The identifier is
// kept as the raw token the user supplied: malformed tokens are resolved by the
// handler as a lookup miss rather than rejected upfront.
type CancelOrderCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID string) (CancelOrderCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return CancelOrderCommand{}, ErrOrderIDIsRequired
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the raw order identifier token.
func (c CancelOrderCommand) OrderID() string {
	return c.orderID
}
