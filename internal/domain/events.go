package domain

import "time"

// Event types
const (
	EventTypeAmountReceived    = "vault.amount_received"
	EventTypeAmountWithdrawn   = "vault.amount_withdrawn"
	EventTypeCashCountReceived = "cash_count.received"
)

// Aggregate types
const (
	AggregateTypeVault     = "vault"
	AggregateTypeCashCount = "cash_count"
)

// OutboxEvent represents an event to be published to downstream consumers.
// It is written in the same transaction as the movement it describes.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// AmountReceivedEvent payload
type AmountReceivedEvent struct {
	VaultID    string `json:"vault_id"`
	EntryID    string `json:"entry_id"`
	Amount     string `json:"amount"`
	NewBalance string `json:"new_balance"`
}

// AmountWithdrawnEvent payload
type AmountWithdrawnEvent struct {
	VaultID    string `json:"vault_id"`
	EntryID    string `json:"entry_id"`
	Amount     string `json:"amount"`
	NewBalance string `json:"new_balance"`
}

// CashCountReceivedEvent payload
type CashCountReceivedEvent struct {
	CashCountID    string `json:"cash_count_id"`
	RequestID      string `json:"request_id"`
	ProcessingID   string `json:"processing_id"`
	ProcessedTotal string `json:"processed_total"`
	Matched        bool   `json:"matched"`
}
