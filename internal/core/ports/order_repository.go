package ports

import (
	"context"

	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying insurance purchase
// orders together with their status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The stored row must still carry the version the aggregate was loaded
	// with; a concurrent modification yields errs.ErrVersionConflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders of a customer, newest first.
	GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)
}
