package domain

import "time"

// CashCountStatus is the lifecycle state of a cash count.
type CashCountStatus string

const (
	CashCountPending  CashCountStatus = "pending"
	CashCountReceived CashCountStatus = "received"
)

// CashCount is the expected denomination breakdown reported by a crew for a
// delivery request. It transitions to received exactly once, when the
// processed amount lands in the vault.
type CashCount struct {
	ID            string
	RequestID     string
	ClientID      *string
	BranchID      *string
	TeamID        *string
	Denominations DenominationVector
	Status        CashCountStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the count is well formed for persistence.
func (c *CashCount) Validate() error {
	return c.Denominations.Validate()
}

// MarkReceived transitions the count to received. The transition is one-way;
// a repeat attempt is an error so a double receive cannot slip through.
func (c *CashCount) MarkReceived() error {
	if c.Status == CashCountReceived {
		return ErrCashCountAlreadyReceived
	}
	c.Status = CashCountReceived
	return nil
}
