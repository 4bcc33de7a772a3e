// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Coverages, assistances, and the status history are stored as JSON columns;
// the version column backs optimistic concurrency control.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    string    `gorm:"index"`
	ProductID     string
	Category      string
	SalesChannel  string
	PaymentMethod string

	TotalMonthlyPremiumAmount decimal.Decimal     `gorm:"type:numeric(14,2)"`
	InsuredAmount             decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Coverages                 datatypes.JSON
	Assistances               datatypes.JSON

	Status     string `gorm:"type:varchar(16);index"`
	CreatedAt  time.Time
	FinishedAt *time.Time
	History    datatypes.JSON
	Version    int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// historyEntryDTO is the JSON shape of one status history entry.
type historyEntryDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Serializes coverages, assistances, and history into JSON columns.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var insuredAmount decimal.NullDecimal
	if v := aggregate.InsuredAmount(); v != nil {
		insuredAmount = decimal.NewNullDecimal(*v)
	}

	coverages, err := json.Marshal(aggregate.Coverages())
	if err != nil {
		return OrderDTO{}, err
	}

	assistances, err := json.Marshal(aggregate.Assistances())
	if err != nil {
		return OrderDTO{}, err
	}

	entries := aggregate.History()
	historyDTOs := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		historyDTOs = append(historyDTOs, historyEntryDTO{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		})
	}

	history, err := json.Marshal(historyDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID(),
		ProductID:     aggregate.ProductID(),
		Category:      aggregate.Category(),
		SalesChannel:  aggregate.SalesChannel(),
		PaymentMethod: aggregate.PaymentMethod(),

		TotalMonthlyPremiumAmount: aggregate.TotalMonthlyPremiumAmount(),
		InsuredAmount:             insuredAmount,
		Coverages:                 datatypes.JSON(coverages),
		Assistances:               datatypes.JSON(assistances),

		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		FinishedAt: aggregate.FinishedAt(),
		History:    datatypes.JSON(history),
		Version:    aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var insuredAmount *decimal.Decimal
	if dto.InsuredAmount.Valid {
		insuredAmount = &dto.InsuredAmount.Decimal
	}

	var coverages map[string]decimal.Decimal
	if len(dto.Coverages) > 0 {
		if err = json.Unmarshal(dto.Coverages, &coverages); err != nil {
			return nil, err
		}
	}

	var assistances []string
	if len(dto.Assistances) > 0 {
		if err = json.Unmarshal(dto.Assistances, &assistances); err != nil {
			return nil, err
		}
	}

	var historyDTOs []historyEntryDTO
	if err = json.Unmarshal(dto.History, &historyDTOs); err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(historyDTOs))
	for _, entry := range historyDTOs {
		entryStatus, statusErr := order.StatusFromString(entry.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history = append(history, order.HistoryEntry{
			Status:    entryStatus,
			Timestamp: entry.Timestamp,
		})
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		dto.ProductID,
		dto.Category,
		dto.SalesChannel,
		dto.PaymentMethod,
		dto.TotalMonthlyPremiumAmount,
		insuredAmount,
		coverages,
		assistances,
		status,
		dto.CreatedAt,
		dto.FinishedAt,
		history,
		dto.Version,
	)
}
