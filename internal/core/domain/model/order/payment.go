package order

// PaymentConfirmation is the payment outcome reported by the downstream
// payment system for an order.
type PaymentConfirmation struct {
	Confirmed bool
}

// SubscriptionAuthorization is the underwriting-subscription outcome reported
// by the downstream subscription system for an order.
type SubscriptionAuthorization struct {
	Authorized bool
}
