package models

import "errors"

// Domain error kinds. Handlers discriminate them with errors.Is and map them
// to HTTP status codes; the messages are safe to return to callers.
var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAccountType  = errors.New("invalid account type")
)
