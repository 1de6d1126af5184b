package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/postgres/generated"
	"github.com/kioko/vaultledger/internal/usecase"
)

// VaultRepository implements usecase.VaultRepository.
type VaultRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewVaultRepository creates a new VaultRepository.
func NewVaultRepository(pool *pgxpool.Pool) *VaultRepository {
	return &VaultRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new vault.
func (r *VaultRepository) Create(ctx context.Context, vault *domain.Vault) error {
	_, err := r.queries.CreateVault(ctx, generated.CreateVaultParams{
		ID:            vault.ID,
		Name:          vault.Name,
		Balance:       decimalToNumeric(vault.Balance),
		Denominations: denomsToJSON(vault.Denominations),
		CreatedAt:     timeToPgTimestamptz(vault.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(vault.UpdatedAt),
	})

	return err
}

// GetByID retrieves a vault by ID.
func (r *VaultRepository) GetByID(ctx context.Context, id string) (*domain.Vault, error) {
	row, err := r.queries.GetVaultByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVaultNotFound
		}

		return nil, err
	}

	return rowToVault(row), nil
}

// GetByIDForUpdate retrieves a vault by ID with a FOR UPDATE lock.
func (r *VaultRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Vault, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetVaultByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVaultNotFound
		}

		return nil, err
	}

	return rowToVault(row), nil
}

// UpdateBalance updates the balance and denomination breakdown of a vault.
func (r *VaultRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, denoms domain.DenominationVector, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateVaultBalance(ctx, generated.UpdateVaultBalanceParams{
		ID:            id,
		Balance:       decimalToNumeric(balance),
		Denominations: denomsToJSON(denoms),
		UpdatedAt:     timeToPgTimestamptz(updatedAt),
	})
}

// List lists vaults with pagination.
func (r *VaultRepository) List(ctx context.Context, limit, offset int) ([]*domain.Vault, error) {
	rows, err := r.queries.ListVaults(ctx, generated.ListVaultsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	vaults := make([]*domain.Vault, 0, len(rows))
	for _, row := range rows {
		vaults = append(vaults, rowToVault(row))
	}

	return vaults, nil
}

func rowToVault(row generated.Vault) *domain.Vault {
	return &domain.Vault{
		ID:            row.ID,
		Name:          row.Name,
		Balance:       numericToDecimal(row.Balance),
		Denominations: jsonToDenoms(row.Denominations),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// Denomination vectors are stored as JSONB so the ten buckets stay one column.
func denomsToJSON(v domain.DenominationVector) []byte {
	b, _ := json.Marshal(v)
	return b
}

func jsonToDenoms(b []byte) domain.DenominationVector {
	var v domain.DenominationVector
	if len(b) > 0 {
		_ = json.Unmarshal(b, &v)
	}
	return v
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
