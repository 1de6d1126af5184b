
package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createClient = `-- name: CreateClient :one
INSERT INTO clients (id, name, branch_id, balance, denominations, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, branch_id, balance, denominations, created_at, updated_at
`

type CreateClientParams struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	BranchID      pgtype.Text        `json:"branch_id"`
	Balance       pgtype.Numeric     `json:"balance"`
	Denominations []byte             `json:"denominations"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateClient(ctx context.Context, arg CreateClientParams) (Client, error) {
	row := q.db.QueryRow(ctx, createClient,
		arg.ID,
		arg.Name,
		arg.BranchID,
		arg.Balance,
		arg.Denominations,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Client
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.BranchID,
		&i.Balance,
		&i.Denominations,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getClientByID = `-- name: GetClientByID :one
SELECT id, name, branch_id, balance, denominations, created_at, updated_at FROM clients WHERE id = $1
`

func (q *Queries) GetClientByID(ctx context.Context, id string) (Client, error) {
	row := q.db.QueryRow(ctx, getClientByID, id)
	var i Client
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.BranchID,
		&i.Balance,
		&i.Denominations,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listClients = `-- name: ListClients :many
SELECT id, name, branch_id, balance, denominations, created_at, updated_at FROM clients ORDER BY created_at DESC LIMIT $1 OFFSET $2
`

type ListClientsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListClients(ctx context.Context, arg ListClientsParams) ([]Client, error) {
	rows, err := q.db.Query(ctx, listClients, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Client{}
	for rows.Next() {
		var i Client
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.BranchID,
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
