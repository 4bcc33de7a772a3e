// Package fraud holds the result types returned by the external fraud-scoring
// service. The core reads them but never produces or mutates them.
package fraud

import (
	"strings"
	"time"
)

// Result is the outcome of a fraud analysis for one order/customer pair.
// Only Classification drives lifecycle decisions; the occurrence list is
// carried through for audit purposes.
type Result struct {
	OrderID        string       `json:"orderId"`
	CustomerID     string       `json:"customerId"`
	AnalyzedAt     time.Time    `json:"analyzedAt"`
	Classification string       `json:"classification"`
	Occurrences    []Occurrence `json:"occurrences"`
}

// Occurrence is a single fraud-related event recorded against the customer.
type Occurrence struct {
	ID          string    `json:"id"`
	ProductID   int64     `json:"productId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsInconclusive reports whether the result cannot support a lifecycle
// decision. A nil result or a blank classification screens as inconclusive
// and is treated downstream as a conservative rejection, not an error.
func (r *Result) IsInconclusive() bool {
	return r == nil || strings.TrimSpace(r.Classification) == ""
}
