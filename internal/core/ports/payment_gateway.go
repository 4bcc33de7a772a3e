package ports

import (
	"context"

	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/domain/model/order"
)

// PaymentGateway obtains the payment confirmation and subscription
// authorization for an order awaiting approval. Both outcomes come back
// together because the payment platform settles them as one request.
type PaymentGateway interface {
	Authorize(ctx context.Context, orderID kernel.UUID) (order.PaymentConfirmation, order.SubscriptionAuthorization, error)
}
