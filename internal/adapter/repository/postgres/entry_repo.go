package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/postgres/generated"
	"github.com/kioko/vaultledger/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a ledger entry within a transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateLedgerEntry(ctx, generated.CreateLedgerEntryParams{
		ID:            entry.ID,
		VaultID:       entry.VaultID,
		ClientID:      ptrToText(entry.ClientID),
		BranchID:      ptrToText(entry.BranchID),
		TeamID:        ptrToText(entry.TeamID),
		AtmID:         ptrToText(entry.ATMID),
		AmountIn:      decimalToNumeric(entry.AmountIn),
		AmountOut:     decimalToNumeric(entry.AmountOut),
		NewBalance:    decimalToNumeric(entry.NewBalance),
		Denominations: denomsToJSON(entry.Denominations),
		Comment:       entry.Comment,
		OccurredAt:    timeToPgTimestamptz(entry.OccurredAt),
	})

	return err
}

// ListByVault lists entries for a vault, newest first.
func (r *EntryRepository) ListByVault(ctx context.Context, vaultID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.GetEntriesByVault(ctx, generated.GetEntriesByVaultParams{
		VaultID: vaultID,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToEntries(rows), nil
}

// ListByClient lists entries for a client account, newest first.
func (r *EntryRepository) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.GetEntriesByClient(ctx, generated.GetEntriesByClientParams{
		ClientID: pgtype.Text{String: clientID, Valid: true},
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToEntries(rows), nil
}

func rowsToEntries(rows []generated.LedgerEntry) []*domain.LedgerEntry {
	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries
}

func rowToEntry(row generated.LedgerEntry) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:            row.ID,
		VaultID:       row.VaultID,
		ClientID:      textToPtr(row.ClientID),
		BranchID:      textToPtr(row.BranchID),
		TeamID:        textToPtr(row.TeamID),
		ATMID:         textToPtr(row.AtmID),
		AmountIn:      numericToDecimal(row.AmountIn),
		AmountOut:     numericToDecimal(row.AmountOut),
		NewBalance:    numericToDecimal(row.NewBalance),
		Denominations: jsonToDenoms(row.Denominations),
		Comment:       row.Comment,
		OccurredAt:    row.OccurredAt.Time,
	}
}
