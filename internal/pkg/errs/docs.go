// Package errs provides the generic error kinds shared by the domain, application
// and adapter layers.
//
// Every kind follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel
//
// Domain-specific rejections (illegal transitions, authorization failures, stock
// shortages) are declared next to the code that produces them; this package only
// covers validation and lookup failures.
package errs
