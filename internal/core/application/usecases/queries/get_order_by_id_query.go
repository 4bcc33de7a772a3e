package queries

import (
	"errors"

	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single purchase order with its full lifecycle
// history.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", view.ID, view.Status)
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query to retrieve an order by its identifier.
// Validates that the order ID is a constructed UUID.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the unique identifier of the order to retrieve.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}
