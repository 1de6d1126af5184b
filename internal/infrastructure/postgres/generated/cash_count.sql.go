
package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createCashCount = `-- name: CreateCashCount :one
INSERT INTO cash_counts (id, request_id, client_id, branch_id, team_id, denominations, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, request_id, client_id, branch_id, team_id, denominations, status, created_at, updated_at
`

type CreateCashCountParams struct {
	ID            string             `json:"id"`
	RequestID     string             `json:"request_id"`
	ClientID      pgtype.Text        `json:"client_id"`
	BranchID      pgtype.Text        `json:"branch_id"`
	TeamID        pgtype.Text        `json:"team_id"`
	Denominations []byte             `json:"denominations"`
	Status        string             `json:"status"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateCashCount(ctx context.Context, arg CreateCashCountParams) (CashCount, error) {
	row := q.db.QueryRow(ctx, createCashCount,
		arg.ID,
		arg.RequestID,
		arg.ClientID,
		arg.BranchID,
		arg.TeamID,
		arg.Denominations,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i CashCount
	err := row.Scan(
		&i.ID,
		&i.RequestID,
		&i.ClientID,
		&i.BranchID,
		&i.TeamID,
		&i.Denominations,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteCashCount = `-- name: DeleteCashCount :exec
DELETE FROM cash_counts WHERE id = $1
`

func (q *Queries) DeleteCashCount(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, deleteCashCount, id)
	return err
}

const getCashCountByID = `-- name: GetCashCountByID :one
SELECT id, request_id, client_id, branch_id, team_id, denominations, status, created_at, updated_at FROM cash_counts WHERE id = $1
`

func (q *Queries) GetCashCountByID(ctx context.Context, id string) (CashCount, error) {
	row := q.db.QueryRow(ctx, getCashCountByID, id)
	var i CashCount
	err := row.Scan(
		&i.ID,
		&i.RequestID,
		&i.ClientID,
		&i.BranchID,
		&i.TeamID,
		&i.Denominations,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listCashCountsByStatus = `-- name: ListCashCountsByStatus :many
SELECT id, request_id, client_id, branch_id, team_id, denominations, status, created_at, updated_at FROM cash_counts
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListCashCountsByStatusParams struct {
	Status string `json:"status"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

func (q *Queries) ListCashCountsByStatus(ctx context.Context, arg ListCashCountsByStatusParams) ([]CashCount, error) {
	rows, err := q.db.Query(ctx, listCashCountsByStatus, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CashCount{}
	for rows.Next() {
		var i CashCount
		if err := rows.Scan(
			&i.ID,
			&i.RequestID,
			&i.ClientID,
			&i.BranchID,
			&i.TeamID,
			&i.Denominations,
			&i.Status,
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

const updateCashCountStatus = `-- name: UpdateCashCountStatus :exec
UPDATE cash_counts
SET status = $2, updated_at = $3
WHERE id = $1
`

type UpdateCashCountStatusParams struct {
	ID        string             `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateCashCountStatus(ctx context.Context, arg UpdateCashCountStatusParams) error {
	_, err := q.db.Exec(ctx, updateCashCountStatus, arg.ID, arg.Status, arg.UpdatedAt)
	return err
}
