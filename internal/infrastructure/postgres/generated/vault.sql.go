
package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countVaults = `-- name: CountVaults :one
SELECT COUNT(*) FROM vaults
`

func (q *Queries) CountVaults(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countVaults)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createVault = `-- name: CreateVault :one
INSERT INTO vaults (id, name, balance, denominations, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, balance, denominations, created_at, updated_at
`

type CreateVaultParams struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Balance       pgtype.Numeric     `json:"balance"`
	Denominations []byte             `json:"denominations"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateVault(ctx context.Context, arg CreateVaultParams) (Vault, error) {
	row := q.db.QueryRow(ctx, createVault,
		arg.ID,
		arg.Name,
		arg.Balance,
		arg.Denominations,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Vault
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Balance,
		&i.Denominations,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getVaultByID = `-- name: GetVaultByID :one
SELECT id, name, balance, denominations, created_at, updated_at FROM vaults WHERE id = $1
`

func (q *Queries) GetVaultByID(ctx context.Context, id string) (Vault, error) {
	row := q.db.QueryRow(ctx, getVaultByID, id)
	var i Vault
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Balance,
		&i.Denominations,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getVaultByIDForUpdate = `-- name: GetVaultByIDForUpdate :one
SELECT id, name, balance, denominations, created_at, updated_at FROM vaults WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetVaultByIDForUpdate(ctx context.Context, id string) (Vault, error) {
	row := q.db.QueryRow(ctx, getVaultByIDForUpdate, id)
	var i Vault
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Balance,
		&i.Denominations,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listVaults = `-- name: ListVaults :many
SELECT id, name, balance, denominations, created_at, updated_at FROM vaults ORDER BY created_at DESC LIMIT $1 OFFSET $2
`

type ListVaultsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListVaults(ctx context.Context, arg ListVaultsParams) ([]Vault, error) {
	rows, err := q.db.Query(ctx, listVaults, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Vault{}
	for rows.Next() {
		var i Vault
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Balance,
			&i.Denominations,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateVaultBalance = `-- name: UpdateVaultBalance :exec
UPDATE vaults
SET balance = $2, denominations = $3, updated_at = $4
WHERE id = $1
`

type UpdateVaultBalanceParams struct {
	ID            string             `json:"id"`
	Balance       pgtype.Numeric     `json:"balance"`
	Denominations []byte             `json:"denominations"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateVaultBalance(ctx context.Context, arg UpdateVaultBalanceParams) error {
	_, err := q.db.Exec(ctx, updateVaultBalance,
		arg.ID,
		arg.Balance,
		arg.Denominations,
		arg.UpdatedAt,
	)
	return err
}
