package commands

import (
	"context"

	"secureorder/internal/core/domain/model/order"
	"secureorder/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates new orders in "received" status and enqueues them for the
// underwriting pipeline.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("customer-1", "product-1", "AUTO", "WEB",
//	    "PIX", premium, &insuredAmount, nil, nil)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
//	// created is now persisted and will be picked up by the processing job
type CreateOrderCommandHandler struct {
	uowFactory OrderOutboxUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires an OrderOutboxUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderOutboxUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command.
// Creates the order in "received" status and stores a processing event in the
// outbox within the same transaction, so the underwriting pipeline is
// guaranteed to see every accepted order. Returns the created aggregate.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.CustomerID(),
		cmd.ProductID(),
		cmd.Category(),
		cmd.SalesChannel(),
		cmd.PaymentMethod(),
		cmd.TotalMonthlyPremiumAmount(),
		cmd.InsuredAmount(),
		cmd.Coverages(),
		cmd.Assistances(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = publishStatusEvent(ctx, uow.OutboxRepository(), aggregate, ports.TopicOrderProcessing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
