package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/usecase"
)

// ReceiveAmountRequest represents a request to credit a vault.
type ReceiveAmountRequest struct {
	Amount        decimal.Decimal           `json:"amount"`
	Denominations domain.DenominationVector `json:"denominations"`
	Comment       string                    `json:"comment,omitempty"`
	ClientID      *string                   `json:"client_id,omitempty"`
	BranchID      *string                   `json:"branch_id,omitempty"`
	TeamID        *string                   `json:"team_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ReceiveAmountRequest) ToUseCaseInput(vaultID string) usecase.MovementInput {
	return usecase.MovementInput{
		VaultID:       vaultID,
		Amount:        r.Amount,
		Denominations: r.Denominations,
		Comment:       r.Comment,
		ClientID:      r.ClientID,
		BranchID:      r.BranchID,
		TeamID:        r.TeamID,
	}
}

// WithdrawAmountRequest represents a request to debit a vault.
type WithdrawAmountRequest struct {
	Amount        decimal.Decimal           `json:"amount"`
	Denominations domain.DenominationVector `json:"denominations"`
	Comment       string                    `json:"comment,omitempty"`
	ClientID      *string                   `json:"client_id,omitempty"`
	BranchID      *string                   `json:"branch_id,omitempty"`
	TeamID        *string                   `json:"team_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *WithdrawAmountRequest) ToUseCaseInput(vaultID string) usecase.MovementInput {
	return usecase.MovementInput{
		VaultID:       vaultID,
		Amount:        r.Amount,
		Denominations: r.Denominations,
		Comment:       r.Comment,
		ClientID:      r.ClientID,
		BranchID:      r.BranchID,
		TeamID:        r.TeamID,
	}
}

// CreateCashCountRequest represents a crew's reported cash count for a
// delivery request.
type CreateCashCountRequest struct {
	RequestID     string                    `json:"request_id"`
	ClientID      *string                   `json:"client_id,omitempty"`
	BranchID      *string                   `json:"branch_id,omitempty"`
	TeamID        *string                   `json:"team_id,omitempty"`
	Denominations domain.DenominationVector `json:"denominations"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCashCountRequest) ToUseCaseInput() usecase.CreateCashCountInput {
	return usecase.CreateCashCountInput{
		RequestID:     r.RequestID,
		ClientID:      r.ClientID,
		BranchID:      r.BranchID,
		TeamID:        r.TeamID,
		Denominations: r.Denominations,
	}
}

// ReconcileRequest represents a dry-run reconciliation of processed
// denominations against a cash count.
type ReconcileRequest struct {
	Processed domain.DenominationVector `json:"processed"`
}

// ProcessCashRequest represents a confirmed cash-processing submission.
type ProcessCashRequest struct {
	VaultID             string                    `json:"vault_id"`
	Processed           domain.DenominationVector `json:"processed"`
	Comment             string                    `json:"comment,omitempty"`
	OverrideMateriality bool                      `json:"override_materiality,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ProcessCashRequest) ToUseCaseInput(cashCountID string) usecase.ProcessInput {
	return usecase.ProcessInput{
		CashCountID:         cashCountID,
		VaultID:             r.VaultID,
		Processed:           r.Processed,
		Comment:             r.Comment,
		OverrideMateriality: r.OverrideMateriality,
	}
}
