package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kioko/vaultledger/internal/domain"
)

// VaultRepository defines data access for vaults.
type VaultRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vault, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Vault, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, denoms domain.DenominationVector, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Vault, error)
}

// ClientRepository defines data access for client accounts.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ClientAccount, error)
	List(ctx context.Context, limit, offset int) ([]*domain.ClientAccount, error)
}

// EntryRepository defines data access for ledger entries. Listings return
// entries newest-first.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	ListByVault(ctx context.Context, vaultID string, limit, offset int) ([]*domain.LedgerEntry, error)
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]*domain.LedgerEntry, error)
}

// CashCountRepository defines data access for cash counts.
type CashCountRepository interface {
	Create(ctx context.Context, count *domain.CashCount) error
	GetByID(ctx context.Context, id string) (*domain.CashCount, error)
	List(ctx context.Context, status domain.CashCountStatus, limit, offset int) ([]*domain.CashCount, error)
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.CashCountStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// CashProcessingRepository defines data access for reconciliation audit
// records. Records are append-only; there is no update.
type CashProcessingRepository interface {
	Create(ctx context.Context, record *domain.CashProcessing) error
	GetByCashCount(ctx context.Context, cashCountID string) (*domain.CashProcessing, error)
	List(ctx context.Context, limit, offset int) ([]*domain.CashProcessing, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock abstracts wall time so session expiry and record timestamps are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-time Clock used outside tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
