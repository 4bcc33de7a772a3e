package commands

import (
	"errors"

	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/pkg/guard"
)

var ErrProcessOrderCommandIsNotConstructed = errors.New(
	"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
)

// ProcessOrderCommand represents a request to advance an order through the
// underwriting pipeline. It is typically produced from a processing-topic
// outbox message and may be delivered more than once.
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command to process an order.
// Validates that the order ID is a constructed UUID.
func NewProcessOrderCommand(orderID kernel.UUID) (ProcessOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ProcessOrderCommand{}, err
	}

	return ProcessOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrderCommandIsNotConstructed if validation fails.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to process.
func (c ProcessOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
