package ports

import (
	"context"
	"time"

	"secureorder/internal/core/domain/model/kernel"
)

// OutboxMessage is an integration event stored in the same transaction as the
// aggregate change that produced it. A dispatch job later delivers pending
// messages per topic, which gives at-least-once semantics: consumers must
// tolerate redelivery.
type OutboxMessage struct {
	ID        kernel.UUID
	Topic     string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository defines the persistence contract for outbox messages.
type OutboxRepository interface {
	// Add stores a new pending message. It must be called inside the same
	// transaction as the aggregate change the message announces.
	Add(ctx context.Context, message OutboxMessage) error

	// GetPending retrieves up to limit undelivered messages for a topic,
	// oldest first.
	GetPending(ctx context.Context, topic string, limit int) ([]OutboxMessage, error)

	// MarkDispatched marks a message as delivered so it is not picked up again.
	MarkDispatched(ctx context.Context, id kernel.UUID) error
}
