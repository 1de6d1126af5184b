package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/postgres/generated"
)

// CashProcessingRepository implements usecase.CashProcessingRepository.
// Records are append-only; there is no update path.
type CashProcessingRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewCashProcessingRepository creates a new CashProcessingRepository.
func NewCashProcessingRepository(pool *pgxpool.Pool) *CashProcessingRepository {
	return &CashProcessingRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a reconciliation record.
func (r *CashProcessingRepository) Create(ctx context.Context, record *domain.CashProcessing) error {
	_, err := r.queries.CreateCashProcessing(ctx, generated.CreateCashProcessingParams{
		ID:             record.ID,
		CashCountID:    record.CashCountID,
		RequestID:      record.RequestID,
		Expected:       denomsToJSON(record.Expected),
		Processed:      denomsToJSON(record.Processed),
		ExpectedTotal:  decimalToNumeric(record.ExpectedTotal),
		ProcessedTotal: decimalToNumeric(record.ProcessedTotal),
		Difference:     decimalToNumeric(record.Difference),
		Matched:        record.Matched,
		Comment:        record.Comment,
		CreatedAt:      timeToPgTimestamptz(record.CreatedAt),
	})

	return err
}

// GetByCashCount retrieves the latest record for a cash count.
func (r *CashProcessingRepository) GetByCashCount(ctx context.Context, cashCountID string) (*domain.CashProcessing, error) {
	row, err := r.queries.GetCashProcessingByCashCount(ctx, cashCountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProcessingNotFound
		}

		return nil, err
	}

	return rowToCashProcessing(row), nil
}

// List lists reconciliation records, newest first.
func (r *CashProcessingRepository) List(ctx context.Context, limit, offset int) ([]*domain.CashProcessing, error) {
	rows, err := r.queries.ListCashProcessing(ctx, generated.ListCashProcessingParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	records := make([]*domain.CashProcessing, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToCashProcessing(row))
	}

	return records, nil
}

func rowToCashProcessing(row generated.CashProcessing) *domain.CashProcessing {
	return &domain.CashProcessing{
		ID:             row.ID,
		CashCountID:    row.CashCountID,
		RequestID:      row.RequestID,
		Expected:       jsonToDenoms(row.Expected),
		Processed:      jsonToDenoms(row.Processed),
		ExpectedTotal:  numericToDecimal(row.ExpectedTotal),
		ProcessedTotal: numericToDecimal(row.ProcessedTotal),
		Difference:     numericToDecimal(row.Difference),
		Matched:        row.Matched,
		Comment:        row.Comment,
		CreatedAt:      row.CreatedAt.Time,
	}
}
