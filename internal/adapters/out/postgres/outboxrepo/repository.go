package outboxrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/ports"
	"secureorder/internal/pkg/errs"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores a new pending message.
func (r *GormOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	if err := message.ID.Validate(); err != nil {
		return err
	}
	if message.Topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}

	dto := fromPort(message)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending retrieves up to limit undelivered messages for a topic, oldest first.
func (r *GormOutboxRepository) GetPending(ctx context.Context, topic string, limit int) ([]ports.OutboxMessage, error) {
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("topic = ? AND dispatched_at IS NULL", topic).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		message, portErr := toPort(dto)
		if portErr != nil {
			return nil, portErr
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// MarkDispatched marks a message as delivered.
func (r *GormOutboxRepository) MarkDispatched(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ? AND dispatched_at IS NULL", id.Bytes()).
		Update("dispatched_at", &now)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}

	return nil
}
