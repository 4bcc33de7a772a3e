package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler lists a customer's orders from the database.
type GetOrdersByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db}
}

// Handle executes the query and returns the customer's orders, newest first.
// A customer without orders yields an empty slice, not an error.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
