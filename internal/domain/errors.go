package domain

import "errors"

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidRate      = errors.New("exchange rate must be a positive number")
	ErrUnknownField     = errors.New("field must be source or destination")
	ErrOwnerRequired    = errors.New("owner is required")
	ErrNegativeBalance  = errors.New("balances must not be negative")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionRejected  = errors.New("session was not stored")
	ErrNotConnected     = errors.New("wallet is not connected")
	ErrSwapNotSupported = errors.New("swap submission is not supported")
)
