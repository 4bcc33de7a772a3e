// Package order provides the domain entity and business logic for insurance
// purchase orders. It implements the Order aggregate root with its lifecycle
// state machine and the per-state transition rules.
//
// The package includes:
//   - Order: The aggregate root owning identity, attributes, and status history
//   - Status: The six-state lifecycle enumeration with its legality rules
//   - The five transition operations that are the only way to mutate status
//
// Key business rules:
//   - Every order starts in StatusReceived with one seeded history entry
//   - The current status always equals the most recent history entry
//   - StatusApproved, StatusRejected, and StatusCancelled are terminal; no
//     transition succeeds from them
//   - An approved order can never be cancelled
//
// The state machine is a pure decision layer. It performs no I/O; external
// facts (fraud result, payment and subscription confirmation) are passed in
// by the caller.
package order
