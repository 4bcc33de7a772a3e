package order

import (
	"errors"
	"fmt"
	"time"

	"secureorder/internal/core/domain/model/fraud"
	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/domain/underwriting"
	"secureorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// HistoryEntry is one step of the order's lifecycle audit trail.
type HistoryEntry struct {
	Status    Status
	Timestamp time.Time
}

// Order represents an insurance purchase order moving through the
// underwriting pipeline. It is the aggregate root that owns the order's
// attributes and its status history.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and non-empty customer and product ids
//   - History is never empty; the first entry is StatusReceived at creation time
//   - The current status always equals the status of the last history entry
//   - Once a terminal status is reached, no transition operation succeeds
//   - The completion timestamp is set exactly when a terminal status is reached
//
// The struct uses private fields; status changes only through the five
// transition operations, never by direct assignment.
type Order struct {
	id kernel.UUID

	customerID    string
	productID     string
	category      string
	salesChannel  string
	paymentMethod string

	totalMonthlyPremiumAmount decimal.Decimal
	insuredAmount             *decimal.Decimal
	coverages                 map[string]decimal.Decimal
	assistances               []string

	status     Status
	createdAt  time.Time
	finishedAt *time.Time
	history    []HistoryEntry

	// version supports optimistic concurrency at the store boundary.
	version int

	isConstructed bool
}

// NewOrder creates a new Order in StatusReceived with a time-ordered
// identifier and a single seeded history entry stamped at creation time.
//
// The category is kept as free text; it is classified on demand during
// underwriting. The insured amount may be nil, in which case underwriting
// rejects the order later rather than creation failing here.
func NewOrder(
	customerID string,
	productID string,
	category string,
	salesChannel string,
	paymentMethod string,
	totalMonthlyPremiumAmount decimal.Decimal,
	insuredAmount *decimal.Decimal,
	coverages map[string]decimal.Decimal,
	assistances []string,
) (*Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productId")
	}
	if totalMonthlyPremiumAmount.IsNegative() || totalMonthlyPremiumAmount.IsZero() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalMonthlyPremiumAmount",
			fmt.Errorf("%s is not greater than 0", totalMonthlyPremiumAmount),
		)
	}

	now := time.Now().UTC()
	o := &Order{
		id:                        kernel.NewTimeOrderedUUID(),
		customerID:                customerID,
		productID:                 productID,
		category:                  category,
		salesChannel:              salesChannel,
		paymentMethod:             paymentMethod,
		totalMonthlyPremiumAmount: totalMonthlyPremiumAmount,
		insuredAmount:             insuredAmount,
		coverages:                 coverages,
		assistances:               assistances,
		createdAt:                 now,
		isConstructed:             true,
	}
	o.setStatus(StatusReceived, now)

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence and revalidates its
// invariants. It is the only constructor allowed to accept an existing
// status, history, and version.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	productID string,
	category string,
	salesChannel string,
	paymentMethod string,
	totalMonthlyPremiumAmount decimal.Decimal,
	insuredAmount *decimal.Decimal,
	coverages map[string]decimal.Decimal,
	assistances []string,
	status Status,
	createdAt time.Time,
	finishedAt *time.Time,
	history []HistoryEntry,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("history")
	}
	if last := history[len(history)-1].Status; last != status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("status %s does not match last history entry %s", status, last),
		)
	}

	return &Order{
		id:                        id,
		customerID:                customerID,
		productID:                 productID,
		category:                  category,
		salesChannel:              salesChannel,
		paymentMethod:             paymentMethod,
		totalMonthlyPremiumAmount: totalMonthlyPremiumAmount,
		insuredAmount:             insuredAmount,
		coverages:                 coverages,
		assistances:               assistances,
		status:                    status,
		createdAt:                 createdAt,
		finishedAt:                finishedAt,
		history:                   history,
		version:                   version,
		isConstructed:             true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through one of
// the factory functions. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the purchasing customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// ProductID returns the identifier of the insurance product.
func (o *Order) ProductID() string {
	return o.productID
}

// Category returns the free-text insurance category as received.
// Use underwriting.CategoryFromText to classify it.
func (o *Order) Category() string {
	return o.category
}

// SalesChannel returns the channel the order was sold through.
func (o *Order) SalesChannel() string {
	return o.salesChannel
}

// PaymentMethod returns the customer's chosen payment method.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// TotalMonthlyPremiumAmount returns the monthly premium.
func (o *Order) TotalMonthlyPremiumAmount() decimal.Decimal {
	return o.totalMonthlyPremiumAmount
}

// InsuredAmount returns the capital amount to be insured.
// Returns nil when the order was created without one.
func (o *Order) InsuredAmount() *decimal.Decimal {
	return o.insuredAmount
}

// Coverages returns the mapping of coverage name to sub-limit amount.
func (o *Order) Coverages() map[string]decimal.Decimal {
	coverages := make(map[string]decimal.Decimal, len(o.coverages))
	for name, amount := range o.coverages {
		coverages[name] = amount
	}
	return coverages
}

// Assistances returns the names of the contracted assistance services.
func (o *Order) Assistances() []string {
	return append([]string(nil), o.assistances...)
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// FinishedAt returns the completion timestamp, set when a terminal status was
// reached. Returns nil while the order is still in flight.
func (o *Order) FinishedAt() *time.Time {
	return o.finishedAt
}

// History returns the append-only list of (status, timestamp) entries,
// oldest first. The returned slice is a copy.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// Version returns the persistence version used for optimistic concurrency.
func (o *Order) Version() int {
	return o.version
}

// MoveToValidate evaluates the fraud screening outcome for an order in
// StatusReceived. An absent result or a blank classification is inconclusive
// and rejects the order conservatively; any actual classification moves the
// order to StatusValidated, deferring interpretation to underwriting.
func (o *Order) MoveToValidate(result *fraud.Result) error {
	if o.status != StatusReceived {
		if o.status == StatusValidated {
			return errs.NewIllegalTransitionErrorWithDetail(
				o.status.String(), "moveToValidate", "order is already VALIDATED")
		}
		return o.status.illegal("moveToValidate")
	}

	if result.IsInconclusive() {
		o.setStatus(StatusRejected, time.Time{})
		return nil
	}

	o.setStatus(StatusValidated, time.Time{})
	return nil
}

// MoveToPending runs the underwriting rule engine for an order in
// StatusValidated. The fraud classification is resolved to a risk profile;
// an unknown profile or a missing insured amount rejects the order, otherwise
// the capital-limit rules decide between StatusPending and StatusRejected.
//
// The returned reason is non-empty when underwriting failed and names the
// violated limit; it is informational, not an error.
func (o *Order) MoveToPending(result *fraud.Result) (string, error) {
	if o.status != StatusValidated {
		return "", o.status.illegal("moveToPending")
	}

	var classification string
	if result != nil {
		classification = result.Classification
	}

	profile := underwriting.RiskProfileFromText(classification)
	if profile == underwriting.ProfileUnknown {
		o.setStatus(StatusRejected, time.Time{})
		return fmt.Sprintf("risk classification %q resolved to UNKNOWN profile", classification), nil
	}

	if o.insuredAmount == nil {
		o.setStatus(StatusRejected, time.Time{})
		return "insured amount not specified", nil
	}

	passed, reason := underwriting.NewEngine().Evaluate(profile, o.category, o.insuredAmount)
	if !passed {
		o.setStatus(StatusRejected, time.Time{})
		return reason, nil
	}

	o.setStatus(StatusPending, time.Time{})
	return "", nil
}

// MoveToApprove evaluates the payment and subscription outcomes for an order
// in StatusPending. Both flags are checked independently; the order is
// approved only when payment is confirmed and the subscription is authorized,
// and rejected otherwise.
func (o *Order) MoveToApprove(payment PaymentConfirmation, subscription SubscriptionAuthorization) error {
	if o.status != StatusPending {
		return o.status.illegal("moveToApprove")
	}

	paymentDenied := !payment.Confirmed
	subscriptionDenied := !subscription.Authorized

	if paymentDenied || subscriptionDenied {
		o.setStatus(StatusRejected, time.Time{})
		return nil
	}

	o.setStatus(StatusApproved, time.Time{})
	return nil
}

// MoveToReject rejects an order that has not reached a terminal status.
func (o *Order) MoveToReject() error {
	if o.status.IsTerminal() {
		return o.status.illegal("moveToReject")
	}
	if err := o.status.Validate(); err != nil {
		return err
	}

	o.setStatus(StatusRejected, time.Time{})
	return nil
}

// MoveToCancel cancels an order that has not reached a terminal status.
// An approved order can never be cancelled; the error names that case
// explicitly so callers can surface it.
func (o *Order) MoveToCancel() error {
	if o.status == StatusApproved {
		return errs.NewIllegalTransitionErrorWithDetail(
			o.status.String(), "moveToCancel", "order is APPROVED and cannot be cancelled")
	}
	if o.status.IsTerminal() {
		return o.status.illegal("moveToCancel")
	}
	if err := o.status.Validate(); err != nil {
		return err
	}

	o.setStatus(StatusCancelled, time.Time{})
	return nil
}

// setStatus appends a history entry and updates the current status.
// A zero timestamp defaults to now. Reaching a terminal status stamps the
// completion timestamp.
func (o *Order) setStatus(newStatus Status, at time.Time) {
	if at.IsZero() {
		at = time.Now().UTC()
	}

	o.history = append(o.history, HistoryEntry{Status: newStatus, Timestamp: at})
	o.status = newStatus

	if newStatus.IsTerminal() {
		finishedAt := at
		o.finishedAt = &finishedAt
	}
}
