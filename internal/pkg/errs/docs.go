// Package errs provides the standardized error types of the tailoring service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct type carrying the details (ParamName, Cause, ...)
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The sentinels double as the error taxonomy of the order workflow:
// ErrValueIsRequired / ErrValueIsInvalid / ErrValueIsOutOfRange are validation failures,
// ErrTransitionIsInvalid rejects non-adjacent status changes, ErrActionIsForbidden rejects
// actors without the right role or ownership, ErrObjectNotFound reports missing records and
// ErrStoreFailure wraps persistence problems.
package errs
