package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents one recorded movement against a vault or client
// balance. Exactly one of AmountIn/AmountOut is expected to be positive.
// Listings from the repository come back newest-first.
type LedgerEntry struct {
	ID            string
	VaultID       string
	ClientID      *string
	BranchID      *string
	TeamID        *string
	ATMID         *string
	AmountIn      decimal.Decimal
	AmountOut     decimal.Decimal
	NewBalance    decimal.Decimal
	Denominations DenominationVector
	Comment       string
	OccurredAt    time.Time
}

// IsCredit reports whether the entry moved cash into the account.
func (e *LedgerEntry) IsCredit() bool {
	return e.AmountIn.IsPositive()
}

// IsDebit reports whether the entry moved cash out of the account.
func (e *LedgerEntry) IsDebit() bool {
	return e.AmountOut.IsPositive()
}

// Day returns the UTC calendar day the entry occurred on.
func (e *LedgerEntry) Day() CalendarDate {
	return DateOf(e.OccurredAt)
}
