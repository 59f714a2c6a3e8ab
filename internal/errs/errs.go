// Package errs holds the error kinds shared across bounded contexts.
// Call sites wrap these with fmt.Errorf("...: %w", kind) so callers can
// match the kind with errors.Is while keeping a descriptive message.
package errs

import "errors"

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidState        = errors.New("invalid state")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
