package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vault represents a physical cash vault: the live balance and the live
// denomination holding it is made up of.
type Vault struct {
	ID            string
	Name          string
	Balance       decimal.Decimal
	Denominations DenominationVector
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidateWithdrawal checks that the vault can cover a debit of amount.
func (v *Vault) ValidateWithdrawal(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if v.Balance.Sub(amount).IsNegative() {
		return ErrInsufficientVaultFunds
	}
	return nil
}

// ApplyReceipt returns the balance and denomination vector after a credit.
func (v *Vault) ApplyReceipt(amount decimal.Decimal, denoms DenominationVector) (decimal.Decimal, DenominationVector) {
	return v.Balance.Add(amount), v.Denominations.Add(denoms)
}

// ApplyWithdrawal returns the balance and denomination vector after a debit.
func (v *Vault) ApplyWithdrawal(amount decimal.Decimal, denoms DenominationVector) (decimal.Decimal, DenominationVector) {
	return v.Balance.Sub(amount), v.Denominations.Sub(denoms)
}

// ClientAccount represents a client's balance held on their behalf, with its
// own denomination holding and ledger history.
type ClientAccount struct {
	ID            string
	Name          string
	BranchID      *string
	Balance       decimal.Decimal
	Denominations DenominationVector
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
