package domain

import "errors"

var (
	// Vault errors
	ErrVaultNotFound            = errors.New("vault not found")
	ErrInsufficientVaultFunds   = errors.New("withdrawal exceeds vault balance")
	ErrInvalidAmount            = errors.New("amount must be positive")
	ErrAmountDenominationsDrift = errors.New("amount does not match denomination total")

	// Client errors
	ErrClientNotFound = errors.New("client account not found")

	// Cash count errors
	ErrCashCountNotFound        = errors.New("cash count not found")
	ErrCashCountAlreadyReceived = errors.New("cash count already received into vault")
	ErrNegativeDenomination     = errors.New("denomination count cannot be negative")

	// Processing errors
	ErrProcessingNotFound = errors.New("cash processing record not found")
	ErrReceiveFailed      = errors.New("processing record created but vault receive failed; do not resubmit")

	// Certificate errors
	ErrInvalidDate = errors.New("invalid calendar date")

	// Auth errors
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrSessionExpired = errors.New("session expired due to inactivity")
)
