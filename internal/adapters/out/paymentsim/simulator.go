// Package paymentsim simulates the downstream payment and subscription
// platforms. There is no real payment integration in this service, so pending
// orders are settled against a randomized outcome source with a fixed joint
// distribution.
package paymentsim

import (
	"context"
	"math/rand/v2"

	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/domain/model/order"
)

// Simulator implements ports.PaymentGateway with randomized outcomes.
//
// The joint distribution of one Authorize call:
//
//	60% payment confirmed and subscription authorized
//	15% payment denied only
//	15% subscription denied only
//	10% both denied
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator creates a simulator seeded from the global random source.
func NewSimulator() *Simulator {
	return NewSimulatorWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSimulatorWithSource creates a simulator over the given random source.
// Tests pass a fixed-seed source to make outcomes reproducible.
func NewSimulatorWithSource(source rand.Source) *Simulator {
	return &Simulator{rng: rand.New(source)}
}

// Authorize draws the payment and subscription outcome for an order.
// It never fails; a denied outcome is a valid business answer, not an error.
func (s *Simulator) Authorize(
	_ context.Context,
	_ kernel.UUID,
) (order.PaymentConfirmation, order.SubscriptionAuthorization, error) {
	draw := s.rng.IntN(100)

	switch {
	case draw < 60:
		return order.PaymentConfirmation{Confirmed: true},
			order.SubscriptionAuthorization{Authorized: true}, nil
	case draw < 75:
		return order.PaymentConfirmation{Confirmed: false},
			order.SubscriptionAuthorization{Authorized: true}, nil
	case draw < 90:
		return order.PaymentConfirmation{Confirmed: true},
			order.SubscriptionAuthorization{Authorized: false}, nil
	default:
		return order.PaymentConfirmation{Confirmed: false},
			order.SubscriptionAuthorization{Authorized: false}, nil
	}
}
