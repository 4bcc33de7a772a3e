package commands

import (
	"context"
	"encoding/json"
	"time"

	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/domain/model/order"
	"secureorder/internal/core/ports"
)

// publishStatusEvent stores an order lifecycle event in the outbox. The event
// reaches its topic only if the surrounding transaction commits.
func publishStatusEvent(ctx context.Context, outboxRepo ports.OutboxRepository, aggregate *order.Order, topic string) error {
	now := time.Now().UTC()

	payload, err := json.Marshal(ports.OrderStatusEvent{
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		OccurredAt: now,
	})
	if err != nil {
		return err
	}

	return outboxRepo.Add(ctx, ports.OutboxMessage{
		ID:        kernel.NewTimeOrderedUUID(),
		Topic:     topic,
		Payload:   payload,
		CreatedAt: now,
	})
}
