package domain

import "errors"

// Sentinel errors for ledger-level rejections. Every rejection is local
// to the offending transaction: callers are expected to report it and
// keep processing the stream. The handler layer maps these to HTTP
// status codes.
var (
	ErrInsufficientFunds  = errors.New("insufficient_funds")
	ErrUnknownTransaction = errors.New("unknown_transaction")
	ErrAlreadyDisputed    = errors.New("already_disputed")
	ErrNotDisputed        = errors.New("not_disputed")
	ErrAccountFrozen      = errors.New("account_frozen")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
