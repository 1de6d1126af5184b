package usecase

import (
	"context"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/metrics"
)

// CashCountUseCase handles crew-reported cash counts.
type CashCountUseCase struct {
	cashCountRepo CashCountRepository
	idGen         IDGenerator
	clock         Clock
	metrics       *metrics.Metrics
}

// NewCashCountUseCase creates a new CashCountUseCase.
func NewCashCountUseCase(cashCountRepo CashCountRepository, idGen IDGenerator, clock Clock, metrics *metrics.Metrics) *CashCountUseCase {
	return &CashCountUseCase{
		cashCountRepo: cashCountRepo,
		idGen:         idGen,
		clock:         clock,
		metrics:       metrics,
	}
}

// CreateCashCountInput represents a crew's reported cash contents for a
// delivery request.
type CreateCashCountInput struct {
	RequestID     string
	ClientID      *string
	BranchID      *string
	TeamID        *string
	Denominations domain.DenominationVector
}

// CreateCashCount records the expected denominations for a request.
func (uc *CashCountUseCase) CreateCashCount(ctx context.Context, input CreateCashCountInput) (*domain.CashCount, error) {
	now := uc.clock.Now().UTC()

	count := &domain.CashCount{
		ID:            uc.idGen.Generate(),
		RequestID:     input.RequestID,
		ClientID:      input.ClientID,
		BranchID:      input.BranchID,
		TeamID:        input.TeamID,
		Denominations: input.Denominations,
		Status:        domain.CashCountPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := count.Validate(); err != nil {
		return nil, err
	}

	if err := uc.cashCountRepo.Create(ctx, count); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CashCountsCreated.Inc()
	}

	return count, nil
}

// GetCashCount retrieves a cash count by ID.
func (uc *CashCountUseCase) GetCashCount(ctx context.Context, id string) (*domain.CashCount, error) {
	return uc.cashCountRepo.GetByID(ctx, id)
}

// ListCashCounts lists cash counts, optionally filtered by status.
func (uc *CashCountUseCase) ListCashCounts(ctx context.Context, status domain.CashCountStatus, limit, offset int) ([]*domain.CashCount, error) {
	limit, offset = clampPage(limit, offset)
	return uc.cashCountRepo.List(ctx, status, limit, offset)
}

// DeleteCashCount removes a pending cash count. Received counts are part of
// the audit trail and stay put.
func (uc *CashCountUseCase) DeleteCashCount(ctx context.Context, id string) error {
	count, err := uc.cashCountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if count.Status == domain.CashCountReceived {
		return domain.ErrCashCountAlreadyReceived
	}
	if err := uc.cashCountRepo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.CashCountsDeleted.Inc()
	}

	return nil
}
