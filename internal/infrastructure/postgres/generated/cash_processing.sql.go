
package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createCashProcessing = `-- name: CreateCashProcessing :one
INSERT INTO cash_processing (id, cash_count_id, request_id, expected, processed, expected_total, processed_total, difference, matched, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, cash_count_id, request_id, expected, processed, expected_total, processed_total, difference, matched, comment, created_at
`

type CreateCashProcessingParams struct {
	ID             string             `json:"id"`
	CashCountID    string             `json:"cash_count_id"`
	RequestID      string             `json:"request_id"`
	Expected       []byte             `json:"expected"`
	Processed      []byte             `json:"processed"`
	ExpectedTotal  pgtype.Numeric     `json:"expected_total"`
	ProcessedTotal pgtype.Numeric     `json:"processed_total"`
	Difference     pgtype.Numeric     `json:"difference"`
	Matched        bool               `json:"matched"`
	Comment        string             `json:"comment"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateCashProcessing(ctx context.Context, arg CreateCashProcessingParams) (CashProcessing, error) {
	row := q.db.QueryRow(ctx, createCashProcessing,
		arg.ID,
		arg.CashCountID,
		arg.RequestID,
		arg.Expected,
		arg.Processed,
		arg.ExpectedTotal,
		arg.ProcessedTotal,
		arg.Difference,
		arg.Matched,
		arg.Comment,
		arg.CreatedAt,
	)
	var i CashProcessing
	err := row.Scan(
		&i.ID,
		&i.CashCountID,
		&i.RequestID,
		&i.Expected,
		&i.Processed,
		&i.ExpectedTotal,
		&i.ProcessedTotal,
		&i.Difference,
		&i.Matched,
		&i.Comment,
		&i.CreatedAt,
	)
	return i, err
}

const getCashProcessingByCashCount = `-- name: GetCashProcessingByCashCount :one
SELECT id, cash_count_id, request_id, expected, processed, expected_total, processed_total, difference, matched, comment, created_at FROM cash_processing
WHERE cash_count_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1
`

func (q *Queries) GetCashProcessingByCashCount(ctx context.Context, cashCountID string) (CashProcessing, error) {
	row := q.db.QueryRow(ctx, getCashProcessingByCashCount, cashCountID)
	var i CashProcessing
	err := row.Scan(
		&i.ID,
		&i.CashCountID,
		&i.RequestID,
		&i.Expected,
		&i.Processed,
		&i.ExpectedTotal,
		&i.ProcessedTotal,
		&i.Difference,
		&i.Matched,
		&i.Comment,
		&i.CreatedAt,
	)
	return i, err
}

const listCashProcessing = `-- name: ListCashProcessing :many
SELECT id, cash_count_id, request_id, expected, processed, expected_total, processed_total, difference, matched, comment, created_at FROM cash_processing
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2
`

type ListCashProcessingParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListCashProcessing(ctx context.Context, arg ListCashProcessingParams) ([]CashProcessing, error) {
	rows, err := q.db.Query(ctx, listCashProcessing, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CashProcessing{}
	for rows.Next() {
		var i CashProcessing
		if err := rows.Scan(
			&i.ID,
			&i.CashCountID,
			&i.RequestID,
			&i.Expected,
			&i.Processed,
			&i.ExpectedTotal,
			&i.ProcessedTotal,
			&i.Difference,
			&i.Matched,
			&i.Comment,
			&i.CreatedAt,
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
