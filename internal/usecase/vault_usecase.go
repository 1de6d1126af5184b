package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/metrics"
)

// VaultUseCase handles vault balance movements and history.
type VaultUseCase struct {
	txManager  TransactionManager
	vaultRepo  VaultRepository
	entryRepo  EntryRepository
	outboxRepo OutboxRepository
	idGen      IDGenerator
	clock      Clock
	metrics    *metrics.Metrics
}

// NewVaultUseCase creates a new VaultUseCase.
func NewVaultUseCase(
	txManager TransactionManager,
	vaultRepo VaultRepository,
	entryRepo EntryRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	clock Clock,
	metrics *metrics.Metrics,
) *VaultUseCase {
	return &VaultUseCase{
		txManager:  txManager,
		vaultRepo:  vaultRepo,
		entryRepo:  entryRepo,
		outboxRepo: outboxRepo,
		idGen:      idGen,
		clock:      clock,
		metrics:    metrics,
	}
}

// GetVault retrieves a vault's live balance and denomination holding.
func (uc *VaultUseCase) GetVault(ctx context.Context, id string) (*domain.Vault, error) {
	return uc.vaultRepo.GetByID(ctx, id)
}

// ListVaults lists vaults with pagination.
func (uc *VaultUseCase) ListVaults(ctx context.Context, limit, offset int) ([]*domain.Vault, error) {
	limit, offset = clampPage(limit, offset)
	return uc.vaultRepo.List(ctx, limit, offset)
}

// ListVaultUpdates lists a vault's ledger history, newest-first.
func (uc *VaultUseCase) ListVaultUpdates(ctx context.Context, vaultID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	limit, offset = clampPage(limit, offset)
	return uc.entryRepo.ListByVault(ctx, vaultID, limit, offset)
}

// MovementInput represents a receive or withdraw request against a vault.
type MovementInput struct {
	VaultID       string
	Amount        decimal.Decimal
	Denominations domain.DenominationVector
	Comment       string
	ClientID      *string
	BranchID      *string
	TeamID        *string
	CashCountID   *string
}

func (in *MovementInput) validate() error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if err := in.Denominations.Validate(); err != nil {
		return err
	}
	// A movement may omit the breakdown entirely, but a supplied one must
	// account for the full amount.
	if !in.Denominations.IsZero() && !in.Denominations.Total().Equal(in.Amount) {
		return fmt.Errorf("%w: amount %s, denominations total %s",
			domain.ErrAmountDenominationsDrift, in.Amount, in.Denominations.Total())
	}
	return nil
}

// ReceiveAmount credits a vault: locks the vault row, applies the new balance
// and denomination holding, appends the ledger entry and writes an outbox
// event, all in one transaction.
func (uc *VaultUseCase) ReceiveAmount(ctx context.Context, input MovementInput) (*domain.LedgerEntry, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	err := uc.inTx(ctx, func(tx Transaction) error {
		vault, err := uc.vaultRepo.GetByIDForUpdate(ctx, tx, input.VaultID)
		if err != nil {
			return err
		}

		now := uc.clock.Now().UTC()
		newBalance, newDenoms := vault.ApplyReceipt(input.Amount, input.Denominations)

		entry = &domain.LedgerEntry{
			ID:            uc.idGen.Generate(),
			VaultID:       vault.ID,
			ClientID:      input.ClientID,
			BranchID:      input.BranchID,
			TeamID:        input.TeamID,
			AmountIn:      input.Amount,
			AmountOut:     decimal.Zero,
			NewBalance:    newBalance,
			Denominations: input.Denominations,
			Comment:       input.Comment,
			OccurredAt:    now,
		}

		if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
		if err := uc.vaultRepo.UpdateBalance(ctx, tx, vault.ID, newBalance, newDenoms, now); err != nil {
			return err
		}

		return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   vault.ID,
			AggregateType: domain.AggregateTypeVault,
			EventType:     domain.EventTypeAmountReceived,
			Payload: map[string]any{
				"vault_id":    vault.ID,
				"entry_id":    entry.ID,
				"amount":      input.Amount.String(),
				"new_balance": newBalance.String(),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.VaultReceipts.Inc()
		uc.metrics.VaultBalance.WithLabelValues(input.VaultID).Set(entry.NewBalance.InexactFloat64())
	}

	return entry, nil
}

// WithdrawAmount debits a vault under the same transactional discipline as
// ReceiveAmount. The vault balance may not go negative.
func (uc *VaultUseCase) WithdrawAmount(ctx context.Context, input MovementInput) (*domain.LedgerEntry, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	err := uc.inTx(ctx, func(tx Transaction) error {
		vault, err := uc.vaultRepo.GetByIDForUpdate(ctx, tx, input.VaultID)
		if err != nil {
			return err
		}
		if err := vault.ValidateWithdrawal(input.Amount); err != nil {
			return err
		}

		now := uc.clock.Now().UTC()
		newBalance, newDenoms := vault.ApplyWithdrawal(input.Amount, input.Denominations)

		entry = &domain.LedgerEntry{
			ID:            uc.idGen.Generate(),
			VaultID:       vault.ID,
			ClientID:      input.ClientID,
			BranchID:      input.BranchID,
			TeamID:        input.TeamID,
			AmountIn:      decimal.Zero,
			AmountOut:     input.Amount,
			NewBalance:    newBalance,
			Denominations: input.Denominations,
			Comment:       input.Comment,
			OccurredAt:    now,
		}

		if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
		if err := uc.vaultRepo.UpdateBalance(ctx, tx, vault.ID, newBalance, newDenoms, now); err != nil {
			return err
		}

		return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   vault.ID,
			AggregateType: domain.AggregateTypeVault,
			EventType:     domain.EventTypeAmountWithdrawn,
			Payload: map[string]any{
				"vault_id":    vault.ID,
				"entry_id":    entry.ID,
				"amount":      input.Amount.String(),
				"new_balance": newBalance.String(),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.VaultWithdrawals.Inc()
		uc.metrics.VaultBalance.WithLabelValues(input.VaultID).Set(entry.NewBalance.InexactFloat64())
	}

	return entry, nil
}

func (uc *VaultUseCase) inTx(ctx context.Context, fn func(tx Transaction) error) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}
