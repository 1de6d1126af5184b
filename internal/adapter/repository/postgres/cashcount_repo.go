package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/postgres/generated"
	"github.com/kioko/vaultledger/internal/usecase"
)

// CashCountRepository implements usecase.CashCountRepository.
type CashCountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewCashCountRepository creates a new CashCountRepository.
func NewCashCountRepository(pool *pgxpool.Pool) *CashCountRepository {
	return &CashCountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new cash count.
func (r *CashCountRepository) Create(ctx context.Context, count *domain.CashCount) error {
	_, err := r.queries.CreateCashCount(ctx, generated.CreateCashCountParams{
		ID:            count.ID,
		RequestID:     count.RequestID,
		ClientID:      ptrToText(count.ClientID),
		BranchID:      ptrToText(count.BranchID),
		TeamID:        ptrToText(count.TeamID),
		Denominations: denomsToJSON(count.Denominations),
		Status:        string(count.Status),
		CreatedAt:     timeToPgTimestamptz(count.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(count.UpdatedAt),
	})

	return err
}

// GetByID retrieves a cash count by ID.
func (r *CashCountRepository) GetByID(ctx context.Context, id string) (*domain.CashCount, error) {
	row, err := r.queries.GetCashCountByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCashCountNotFound
		}

		return nil, err
	}

	return rowToCashCount(row), nil
}

// List lists cash counts in the given status, newest first.
func (r *CashCountRepository) List(ctx context.Context, status domain.CashCountStatus, limit, offset int) ([]*domain.CashCount, error) {
	rows, err := r.queries.ListCashCountsByStatus(ctx, generated.ListCashCountsByStatusParams{
		Status: string(status),
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	counts := make([]*domain.CashCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, rowToCashCount(row))
	}

	return counts, nil
}

// UpdateStatus updates the status of a cash count within a transaction.
func (r *CashCountRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.CashCountStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateCashCountStatus(ctx, generated.UpdateCashCountStatusParams{
		ID:        id,
		Status:    string(status),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

// Delete deletes a cash count.
func (r *CashCountRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteCashCount(ctx, id)
}

func rowToCashCount(row generated.CashCount) *domain.CashCount {
	return &domain.CashCount{
		ID:            row.ID,
		RequestID:     row.RequestID,
		ClientID:      textToPtr(row.ClientID),
		BranchID:      textToPtr(row.BranchID),
		TeamID:        textToPtr(row.TeamID),
		Denominations: jsonToDenoms(row.Denominations),
		Status:        domain.CashCountStatus(row.Status),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
