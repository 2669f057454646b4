// Package errs provides the standardized error types used across the order
// management backend.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// The taxonomy maps onto the API surface as follows: ObjectNotFoundError for
// absent order ids, ValueIsInvalidError/ValueIsRequiredError for rejected
// input (including illegal status transitions), and VersionConflictError for
// optimistic-concurrency failures on order updates. Store-level errors are
// not wrapped here and propagate as-is.
package errs
