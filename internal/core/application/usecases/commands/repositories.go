// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"secureorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OutboxRepoFactory provides access to outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands modify order aggregates without emitting events.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderOutboxUoW manages transactions that change an order and emit
	// lifecycle events. The order change and its outbox messages commit
	// together or not at all.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   outboxRepo := uow.OutboxRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderOutboxUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// OrderOutboxUoWFactory creates new unit of work instances for commands
	// that persist order changes together with outbox messages.
	OrderOutboxUoWFactory interface {
		Create() OrderOutboxUoW
	}
)
