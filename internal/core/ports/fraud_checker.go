package ports

import (
	"context"

	"secureorder/internal/core/domain/model/fraud"
	"secureorder/internal/core/domain/model/kernel"
)

// FraudChecker screens an order against the external anti-fraud service.
//
// A transport or availability failure is returned as an error and the caller
// must leave the order untouched for a retry. A successful call may still
// produce an inconclusive result; interpreting that is the aggregate's job.
type FraudChecker interface {
	CheckFraud(ctx context.Context, orderID kernel.UUID, customerID string) (*fraud.Result, error)
}
