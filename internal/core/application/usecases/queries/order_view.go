// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"secureorder/internal/core/domain/model/kernel"
)

// StatusChangeView is one entry of an order's lifecycle history as exposed to
// read clients.
type StatusChangeView struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderView is the read model of a purchase order. It mirrors the stored row
// rather than the aggregate, so queries stay independent of domain behavior.
type OrderView struct {
	ID            kernel.UUID
	CustomerID    string
	ProductID     string
	Category      string
	SalesChannel  string
	PaymentMethod string

	TotalMonthlyPremiumAmount decimal.Decimal
	InsuredAmount             *decimal.Decimal
	Coverages                 map[string]decimal.Decimal
	Assistances               []string

	Status     string
	CreatedAt  time.Time
	FinishedAt *time.Time
	History    []StatusChangeView
}

// orderViewColumns is the column list every order view query selects, in the
// order scanOrderView expects.
const orderViewColumns = `
	id,
	customer_id,
	product_id,
	category,
	sales_channel,
	payment_method,
	total_monthly_premium_amount,
	insured_amount,
	coverages,
	assistances,
	status,
	created_at,
	finished_at,
	history
`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		view          OrderView
		id            uuid.UUID
		insuredAmount decimal.NullDecimal
		coverages     []byte
		assistances   []byte
		finishedAt    sql.NullTime
		history       []byte
	)

	err := rows.Scan(
		&id,
		&view.CustomerID,
		&view.ProductID,
		&view.Category,
		&view.SalesChannel,
		&view.PaymentMethod,
		&view.TotalMonthlyPremiumAmount,
		&insuredAmount,
		&coverages,
		&assistances,
		&view.Status,
		&view.CreatedAt,
		&finishedAt,
		&history,
	)
	if err != nil {
		return OrderView{}, err
	}

	view.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}

	if insuredAmount.Valid {
		view.InsuredAmount = &insuredAmount.Decimal
	}
	if finishedAt.Valid {
		view.FinishedAt = &finishedAt.Time
	}

	if len(coverages) > 0 {
		if err = json.Unmarshal(coverages, &view.Coverages); err != nil {
			return OrderView{}, err
		}
	}
	if len(assistances) > 0 {
		if err = json.Unmarshal(assistances, &view.Assistances); err != nil {
			return OrderView{}, err
		}
	}
	if err = json.Unmarshal(history, &view.History); err != nil {
		return OrderView{}, err
	}

	return view, nil
}
