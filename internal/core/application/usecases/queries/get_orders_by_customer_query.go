package queries

import (
	"errors"

	"secureorder/internal/pkg/guard"
)

var (
	ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
		"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// GetOrdersByCustomerQuery retrieves every purchase order of one customer.
//
// Example:
//
//	query, err := NewGetOrdersByCustomerQuery("customer-1")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersByCustomerQueryHandler(db)
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Customer has %d orders\n", len(views))
type GetOrdersByCustomerQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query to list a customer's orders.
// Validates that the customer id is not empty.
func NewGetOrdersByCustomerQuery(customerID string) (GetOrdersByCustomerQuery, error) {
	if customerID == "" {
		return GetOrdersByCustomerQuery{}, ErrCustomerIDIsRequired
	}

	return GetOrdersByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByCustomerQueryIsNotConstructed if validation fails.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders to list.
func (q GetOrdersByCustomerQuery) CustomerID() string {
	return q.customerID
}
