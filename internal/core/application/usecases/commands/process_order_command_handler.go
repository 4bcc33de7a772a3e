package commands

import (
	"context"
	"log/slog"

	"secureorder/internal/core/domain/model/fraud"
	"secureorder/internal/core/domain/model/order"
	"secureorder/internal/core/ports"
	"secureorder/internal/pkg/errs"
)

// ProcessOrderCommandHandler drives an order through the underwriting
// pipeline. A single invocation advances the order as far as it can go:
// fraud screening, underwriting rules, and payment settlement run back to
// back until the order reaches a terminal status or an external call fails.
//
// The handler is safe to invoke repeatedly for the same order. A terminal
// order is left untouched, a half-processed order resumes from its current
// status, and a concurrent modification surfaces as a version conflict that
// rolls the whole pass back for redelivery.
type ProcessOrderCommandHandler struct {
	uowFactory     OrderOutboxUoWFactory
	fraudChecker   ports.FraudChecker
	paymentGateway ports.PaymentGateway
	logger         *slog.Logger
}

// NewProcessOrderCommandHandler creates a handler for pipeline processing.
// Requires a unit of work factory, the fraud checker, and the payment gateway.
func NewProcessOrderCommandHandler(
	uowFactory OrderOutboxUoWFactory,
	fraudChecker ports.FraudChecker,
	paymentGateway ports.PaymentGateway,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory:     uowFactory,
		fraudChecker:   fraudChecker,
		paymentGateway: paymentGateway,
		logger:         logger.With("component", "process_order_command_handler"),
	}
}

// Handle advances the order identified by the command.
// All status changes of one pass commit in a single transaction together with
// the outbox messages they produce. Any error leaves the database untouched
// so the triggering message stays pending and gets redelivered.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status().IsTerminal() {
		// Redelivered message for a settled order.
		return uow.Commit(ctx)
	}

	if err = h.advance(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// advance runs pipeline steps until the order settles. The fraud result is
// fetched at most once per pass and reused when validation flows straight
// into underwriting.
func (h *ProcessOrderCommandHandler) advance(ctx context.Context, uow OrderOutboxUoW, aggregate *order.Order) error {
	var fraudResult *fraud.Result

	for !aggregate.Status().IsTerminal() {
		switch aggregate.Status() {
		case order.StatusReceived:
			result, err := h.fraudChecker.CheckFraud(ctx, aggregate.ID(), aggregate.CustomerID())
			if err != nil {
				return err
			}
			fraudResult = result

			if err = aggregate.MoveToValidate(fraudResult); err != nil {
				return err
			}

		case order.StatusValidated:
			if fraudResult == nil {
				// Resuming an order that was already validated in an
				// earlier pass; the classification must be fetched again.
				result, err := h.fraudChecker.CheckFraud(ctx, aggregate.ID(), aggregate.CustomerID())
				if err != nil {
					return err
				}
				fraudResult = result
			}

			reason, err := aggregate.MoveToPending(fraudResult)
			if err != nil {
				return err
			}

			if reason != "" {
				h.logger.InfoContext(ctx, "Order rejected by underwriting",
					"order_id", aggregate.ID().String(), "reason", reason)
				continue
			}

			if err = publishStatusEvent(ctx, uow.OutboxRepository(), aggregate, ports.TopicOrderPaymentSubscription); err != nil {
				return err
			}

		case order.StatusPending:
			payment, subscription, err := h.paymentGateway.Authorize(ctx, aggregate.ID())
			if err != nil {
				return err
			}

			if err = aggregate.MoveToApprove(payment, subscription); err != nil {
				return err
			}

		default:
			return errs.NewIllegalTransitionError(aggregate.Status().String(), "process")
		}
	}

	h.logger.InfoContext(ctx, "Order settled",
		"order_id", aggregate.ID().String(), "status", aggregate.Status().String())

	return nil
}
