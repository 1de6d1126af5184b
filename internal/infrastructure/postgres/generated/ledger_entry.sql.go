
package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createLedgerEntry = `-- name: CreateLedgerEntry :one
INSERT INTO ledger_entries (id, vault_id, client_id, branch_id, team_id, atm_id, amount_in, amount_out, new_balance, denominations, comment, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, vault_id, client_id, branch_id, team_id, atm_id, amount_in, amount_out, new_balance, denominations, comment, occurred_at
`

type CreateLedgerEntryParams struct {
	ID            string             `json:"id"`
	VaultID       string             `json:"vault_id"`
	ClientID      pgtype.Text        `json:"client_id"`
	BranchID      pgtype.Text        `json:"branch_id"`
	TeamID        pgtype.Text        `json:"team_id"`
	AtmID         pgtype.Text        `json:"atm_id"`
	AmountIn      pgtype.Numeric     `json:"amount_in"`
	AmountOut     pgtype.Numeric     `json:"amount_out"`
	NewBalance    pgtype.Numeric     `json:"new_balance"`
	Denominations []byte             `json:"denominations"`
	Comment       string             `json:"comment"`
	OccurredAt    pgtype.Timestamptz `json:"occurred_at"`
}

func (q *Queries) CreateLedgerEntry(ctx context.Context, arg CreateLedgerEntryParams) (LedgerEntry, error) {
	row := q.db.QueryRow(ctx, createLedgerEntry,
		arg.ID,
		arg.VaultID,
		arg.ClientID,
		arg.BranchID,
		arg.TeamID,
		arg.AtmID,
		arg.AmountIn,
		arg.AmountOut,
		arg.NewBalance,
		arg.Denominations,
		arg.Comment,
		arg.OccurredAt,
	)
	var i LedgerEntry
	err := row.Scan(
		&i.ID,
		&i.VaultID,
		&i.ClientID,
		&i.BranchID,
		&i.TeamID,
		&i.AtmID,
		&i.AmountIn,
		&i.AmountOut,
		&i.NewBalance,
		&i.Denominations,
		&i.Comment,
		&i.OccurredAt,
	)
	return i, err
}

const getEntriesByClient = `-- name: GetEntriesByClient :many
SELECT id, vault_id, client_id, branch_id, team_id, atm_id, amount_in, amount_out, new_balance, denominations, comment, occurred_at FROM ledger_entries
WHERE client_id = $1
ORDER BY occurred_at DESC, id DESC
LIMIT $2 OFFSET $3
`

type GetEntriesByClientParams struct {
	ClientID pgtype.Text `json:"client_id"`
	Limit    int32       `json:"limit"`
	Offset   int32       `json:"offset"`
}

func (q *Queries) GetEntriesByClient(ctx context.Context, arg GetEntriesByClientParams) ([]LedgerEntry, error) {
	rows, err := q.db.Query(ctx, getEntriesByClient, arg.ClientID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []LedgerEntry{}
	for rows.Next() {
		var i LedgerEntry
		if err := rows.Scan(
			&i.ID,
			&i.VaultID,
			&i.ClientID,
			&i.BranchID,
			&i.TeamID,
			&i.AtmID,
			&i.AmountIn,
			&i.AmountOut,
			&i.NewBalance,
			&i.Denominations,
			&i.Comment,
			&i.OccurredAt,
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

const getEntriesByVault = `-- name: GetEntriesByVault :many
SELECT id, vault_id, client_id, branch_id, team_id, atm_id, amount_in, amount_out, new_balance, denominations, comment, occurred_at FROM ledger_entries
WHERE vault_id = $1
ORDER BY occurred_at DESC, id DESC
LIMIT $2 OFFSET $3
`

type GetEntriesByVaultParams struct {
	VaultID string `json:"vault_id"`
	Limit   int32  `json:"limit"`
	Offset  int32  `json:"offset"`
}

func (q *Queries) GetEntriesByVault(ctx context.Context, arg GetEntriesByVaultParams) ([]LedgerEntry, error) {
	rows, err := q.db.Query(ctx, getEntriesByVault, arg.VaultID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []LedgerEntry{}
	for rows.Next() {
		var i LedgerEntry
		if err := rows.Scan(
			&i.ID,
			&i.VaultID,
			&i.ClientID,
			&i.BranchID,
			&i.TeamID,
			&i.AtmID,
			&i.AmountIn,
			&i.AmountOut,
			&i.NewBalance,
			&i.Denominations,
			&i.Comment,
			&i.OccurredAt,
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
