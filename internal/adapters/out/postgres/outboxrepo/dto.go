// Package outboxrepo persists outbox messages: integration events written in
// the same transaction as the aggregate change that produced them. A dispatch
// job polls for pending messages per topic, which gives the pipeline
// at-least-once delivery without a message broker.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/ports"
)

// MessageDTO represents the database structure for outbox messages.
// A message is pending while dispatched_at is null.
type MessageDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Topic        string    `gorm:"index:idx_outbox_pending"`
	Payload      datatypes.JSON
	CreatedAt    time.Time
	DispatchedAt *time.Time `gorm:"index:idx_outbox_pending"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromPort(message ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		ID:        message.ID.Bytes(),
		Topic:     message.Topic,
		Payload:   datatypes.JSON(message.Payload),
		CreatedAt: message.CreatedAt,
	}
}

func toPort(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:        id,
		Topic:     dto.Topic,
		Payload:   []byte(dto.Payload),
		CreatedAt: dto.CreatedAt,
	}, nil
}
