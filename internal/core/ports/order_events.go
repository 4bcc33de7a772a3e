package ports

import "time"

// Outbox topics for order lifecycle events.
const (
	// TopicOrderProcessing carries orders that need another pass through the
	// underwriting pipeline. The in-process dispatch job consumes it.
	TopicOrderProcessing = "order.secure.status.processing"

	// TopicOrderPaymentSubscription announces orders waiting on payment
	// confirmation and subscription authorization. Reserved for the payment
	// platform; nothing in this service consumes it.
	TopicOrderPaymentSubscription = "order.secure.status.pending-payment-subscription"
)

// OrderStatusEvent is the payload of order lifecycle outbox messages.
type OrderStatusEvent struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
