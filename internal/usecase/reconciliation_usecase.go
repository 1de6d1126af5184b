package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/metrics"
)

// ReconciliationUseCase compares processed cash against the expected count
// and runs the processing-then-receive flow.
type ReconciliationUseCase struct {
	txManager      TransactionManager
	cashCountRepo  CashCountRepository
	processingRepo CashProcessingRepository
	vaultRepo      VaultRepository
	entryRepo      EntryRepository
	outboxRepo     OutboxRepository
	idGen          IDGenerator
	clock          Clock
	logger         zerolog.Logger
	metrics        *metrics.Metrics
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(
	txManager TransactionManager,
	cashCountRepo CashCountRepository,
	processingRepo CashProcessingRepository,
	vaultRepo VaultRepository,
	entryRepo EntryRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	clock Clock,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		txManager:      txManager,
		cashCountRepo:  cashCountRepo,
		processingRepo: processingRepo,
		vaultRepo:      vaultRepo,
		entryRepo:      entryRepo,
		outboxRepo:     outboxRepo,
		idGen:          idGen,
		clock:          clock,
		logger:         logger,
		metrics:        metrics,
	}
}

// Preview reconciles operator-counted denominations against a cash count
// without writing anything.
func (uc *ReconciliationUseCase) Preview(ctx context.Context, cashCountID string, processed domain.DenominationVector) (*domain.ReconciliationResult, error) {
	count, err := uc.cashCountRepo.GetByID(ctx, cashCountID)
	if err != nil {
		return nil, err
	}
	if count.Status == domain.CashCountReceived {
		return nil, domain.ErrCashCountAlreadyReceived
	}
	if err := processed.Validate(); err != nil {
		return nil, err
	}

	result := domain.Reconcile(count.Denominations, processed)
	return &result, nil
}

// ProcessStatus tags the outcome of ProcessAndReceive.
type ProcessStatus string

const (
	// ProcessCompleted: processing record written and amount received.
	ProcessCompleted ProcessStatus = "completed"

	// ProcessConfirmationRequired: the discrepancy crosses the materiality
	// threshold and the caller did not override; nothing was written.
	ProcessConfirmationRequired ProcessStatus = "confirmation_required"

	// ProcessPartialFailure: the processing record was written but the
	// vault receive failed. The record id is in the outcome; resubmitting
	// would duplicate it.
	ProcessPartialFailure ProcessStatus = "partial_failure"
)

// ProcessInput represents a confirmed reconciliation to apply.
type ProcessInput struct {
	CashCountID         string
	VaultID             string
	Processed           domain.DenominationVector
	Comment             string
	OverrideMateriality bool
}

// ProcessOutcome is the tagged result of the two-step flow.
type ProcessOutcome struct {
	Status       ProcessStatus
	Result       domain.ReconciliationResult
	ProcessingID string
	Receipt      *domain.LedgerEntry
}

// ProcessAndReceive runs the reconciliation flow for a pending cash count:
//
//  1. write the CashProcessing audit record;
//  2. receive the processed total into the vault and mark the count received.
//
// The two steps are deliberately not one transaction: the audit record is
// the record of what the operator counted, and it stands even if the receive
// fails. On a step-2 failure the outcome is tagged ProcessPartialFailure and
// carries the orphaned record's id so the operator is warned off a blind
// resubmit, which would duplicate the record.
func (uc *ReconciliationUseCase) ProcessAndReceive(ctx context.Context, input ProcessInput) (*ProcessOutcome, error) {
	count, err := uc.cashCountRepo.GetByID(ctx, input.CashCountID)
	if err != nil {
		return nil, err
	}
	if count.Status == domain.CashCountReceived {
		return nil, domain.ErrCashCountAlreadyReceived
	}
	if err := input.Processed.Validate(); err != nil {
		return nil, err
	}

	result := domain.Reconcile(count.Denominations, input.Processed)

	if result.RequiresConfirmation() && !input.OverrideMateriality {
		uc.observeOutcome(ProcessConfirmationRequired, result)
		return &ProcessOutcome{
			Status: ProcessConfirmationRequired,
			Result: result,
		}, nil
	}

	now := uc.clock.Now().UTC()
	record := &domain.CashProcessing{
		ID:             uc.idGen.Generate(),
		CashCountID:    count.ID,
		RequestID:      count.RequestID,
		Expected:       result.Expected,
		Processed:      result.Processed,
		ExpectedTotal:  result.ExpectedTotal,
		ProcessedTotal: result.ProcessedTotal,
		Difference:     result.Difference,
		Matched:        result.Matched,
		Comment:        input.Comment,
		CreatedAt:      now,
	}

	if err := uc.processingRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create processing record: %w", err)
	}

	receipt, err := uc.receive(ctx, count, record, input.VaultID)
	if err != nil {
		uc.logger.Error().Err(err).
			Str("cash_count_id", count.ID).
			Str("processing_id", record.ID).
			Msg("vault receive failed after processing record was written")

		uc.observeOutcome(ProcessPartialFailure, result)
		return &ProcessOutcome{
			Status:       ProcessPartialFailure,
			Result:       result,
			ProcessingID: record.ID,
		}, fmt.Errorf("%w: %v", domain.ErrReceiveFailed, err)
	}

	uc.observeOutcome(ProcessCompleted, result)
	return &ProcessOutcome{
		Status:       ProcessCompleted,
		Result:       result,
		ProcessingID: record.ID,
		Receipt:      receipt,
	}, nil
}

func (uc *ReconciliationUseCase) observeOutcome(status ProcessStatus, result domain.ReconciliationResult) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.ReconciliationsPerformed.WithLabelValues(string(status)).Inc()
	uc.metrics.ReconciliationDifference.Observe(result.Difference.Abs().InexactFloat64())
}

// receive credits the processed total into the vault, marks the cash count
// received and writes the outbox event, in one transaction.
func (uc *ReconciliationUseCase) receive(ctx context.Context, count *domain.CashCount, record *domain.CashProcessing, vaultID string) (*domain.LedgerEntry, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := uc.receiveInTx(ctx, tx, count, record, vaultID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *ReconciliationUseCase) receiveInTx(ctx context.Context, tx Transaction, count *domain.CashCount, record *domain.CashProcessing, vaultID string) (*domain.LedgerEntry, error) {
	vault, err := uc.vaultRepo.GetByIDForUpdate(ctx, tx, vaultID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()
	newBalance, newDenoms := vault.ApplyReceipt(record.ProcessedTotal, record.Processed)

	entry := &domain.LedgerEntry{
		ID:            uc.idGen.Generate(),
		VaultID:       vault.ID,
		ClientID:      count.ClientID,
		BranchID:      count.BranchID,
		TeamID:        count.TeamID,
		AmountIn:      record.ProcessedTotal,
		AmountOut:     decimal.Zero,
		NewBalance:    newBalance,
		Denominations: record.Processed,
		Comment:       fmt.Sprintf("Cash count received for request %s", count.RequestID),
		OccurredAt:    now,
	}

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := uc.vaultRepo.UpdateBalance(ctx, tx, vault.ID, newBalance, newDenoms, now); err != nil {
		return nil, err
	}
	if err := uc.cashCountRepo.UpdateStatus(ctx, tx, count.ID, domain.CashCountReceived, now); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   count.ID,
		AggregateType: domain.AggregateTypeCashCount,
		EventType:     domain.EventTypeCashCountReceived,
		Payload: map[string]any{
			"cash_count_id":   count.ID,
			"request_id":      count.RequestID,
			"processing_id":   record.ID,
			"processed_total": record.ProcessedTotal.String(),
			"matched":         record.Matched,
		},
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListProcessingHistory lists reconciliation audit records, newest-first.
func (uc *ReconciliationUseCase) ListProcessingHistory(ctx context.Context, limit, offset int) ([]*domain.CashProcessing, error) {
	limit, offset = clampPage(limit, offset)
	return uc.processingRepo.List(ctx, limit, offset)
}
