package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type CashCount struct {
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

type CashProcessing struct {
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

type Client struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	BranchID      pgtype.Text        `json:"branch_id"`
	Balance       pgtype.Numeric     `json:"balance"`
	Denominations []byte             `json:"denominations"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type LedgerEntry struct {
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

type OutboxEvent struct {
	ID            string             `json:"id"`
	AggregateID   string             `json:"aggregate_id"`
	AggregateType string             `json:"aggregate_type"`
	EventType     string             `json:"event_type"`
	Payload       []byte             `json:"payload"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	PublishedAt   pgtype.Timestamptz `json:"published_at"`
	Published     bool               `json:"published"`
}

type Vault struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Balance       pgtype.Numeric     `json:"balance"`
	Denominations []byte             `json:"denominations"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}
