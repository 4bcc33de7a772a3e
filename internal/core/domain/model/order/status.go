package order

import (
	"fmt"

	"secureorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an insurance purchase order.
//
// State transitions:
//
//	RECEIVED ──> VALIDATED ──> PENDING ──> APPROVED
//	    │             │            │
//	    └─────────────┴────────────┴──> REJECTED / CANCELLED
//
// APPROVED, REJECTED, and CANCELLED are terminal. The transition operations
// on Order enforce the legality table; Status itself only knows the
// enumeration, its names, and which states are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusReceived is the initial status assigned at creation.
	StatusReceived

	// StatusValidated indicates the fraud screening produced a usable
	// classification and underwriting can proceed.
	StatusValidated

	// StatusPending indicates the underwriting rules passed and the order
	// awaits payment confirmation and subscription authorization.
	StatusPending

	// StatusApproved is the successful terminal status.
	StatusApproved

	// StatusRejected is the terminal status for any failed screening,
	// underwriting, or confirmation step.
	StatusRejected

	// StatusCancelled is the terminal status for customer-initiated
	// cancellation before approval.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusReceived:  "RECEIVED",
		StatusValidated: "VALIDATED",
		StatusPending:   "PENDING",
		StatusApproved:  "APPROVED",
		StatusRejected:  "REJECTED",
		StatusCancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusReceived:  "RECEIVED",
		StatusValidated: "VALIDATED",
		StatusPending:   "PENDING",
		StatusApproved:  "APPROVED",
		StatusRejected:  "REJECTED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses a status name as stored in history entries and
// events. Returns an error for unknown names; StatusUnknown never parses.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the name of the status. It implements fmt.Stringer and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status ends the order lifecycle.
// No transition operation succeeds on an order in a terminal status.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// illegal builds the sequencing error returned when an operation is invoked
// against a status that does not support it.
func (s Status) illegal(operation string) error {
	if s.IsTerminal() {
		return errs.NewIllegalTransitionErrorWithDetail(
			s.String(), operation,
			fmt.Sprintf("order is in terminal status %s and cannot be modified", s),
		)
	}
	return errs.NewIllegalTransitionError(s.String(), operation)
}
