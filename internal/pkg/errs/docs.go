// Package errs provides standardized error types for the secure-order application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - IllegalTransitionError: For lifecycle operations invoked in the wrong status
//   - VersionConflictError: For optimistic-concurrency failures at the store boundary
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The taxonomy matters to callers: illegal transitions and not-found conditions
// are surfaced to the entry point as sequencing errors, while version conflicts
// and remote failures are retryable through event redelivery.
package errs
