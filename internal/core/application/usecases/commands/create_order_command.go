package commands

import (
	"errors"

	"orderchat/internal/core/domain/model/order"
	"orderchat/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemIsRequired = errors.New("item is required")
)

// CreateOrderCommand represents a request to create a new delivery order from
// extracted fields. The fields arrive from either the model-assisted extractor
// or its deterministic fallback; the command itself only insists on an item.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Details{
//	    Item: "bread, juice",
//	    Qty:  2,
//	    Metadata: order.Metadata{CreatedBy: "user-1", Channel: "chat"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct {
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that an item is present; all other fields are optional and default
// downstream.
func NewCreateOrderCommand(details order.Details) (CreateOrderCommand, error) {
	if details.Item == "" {
		return CreateOrderCommand{}, ErrItemIsRequired
	}

	return CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the extracted order fields.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}
