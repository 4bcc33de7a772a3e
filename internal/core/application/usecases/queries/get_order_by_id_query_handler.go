package queries

import (
	"context"

	"gorm.io/gorm"

	"secureorder/internal/pkg/errs"
)

// GetOrderByIDQueryHandler retrieves a single order row from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query and returns the order view.
// Returns errs.ErrObjectNotFound when no order with the given id exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	view, err := scanOrderView(rows)
	if err != nil {
		return OrderView{}, err
	}

	return view, rows.Err()
}
