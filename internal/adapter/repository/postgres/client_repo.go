package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/postgres/generated"
)

// ClientRepository implements usecase.ClientRepository.
type ClientRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new client account.
func (r *ClientRepository) Create(ctx context.Context, client *domain.ClientAccount) error {
	_, err := r.queries.CreateClient(ctx, generated.CreateClientParams{
		ID:            client.ID,
		Name:          client.Name,
		BranchID:      ptrToText(client.BranchID),
		Balance:       decimalToNumeric(client.Balance),
		Denominations: denomsToJSON(client.Denominations),
		CreatedAt:     timeToPgTimestamptz(client.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(client.UpdatedAt),
	})

	return err
}

// GetByID retrieves a client account by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.ClientAccount, error) {
	row, err := r.queries.GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}

		return nil, err
	}

	return rowToClient(row), nil
}

// List lists client accounts with pagination.
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.ClientAccount, error) {
	rows, err := r.queries.ListClients(ctx, generated.ListClientsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	clients := make([]*domain.ClientAccount, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, rowToClient(row))
	}

	return clients, nil
}

func rowToClient(row generated.Client) *domain.ClientAccount {
	return &domain.ClientAccount{
		ID:            row.ID,
		Name:          row.Name,
		BranchID:      textToPtr(row.BranchID),
		Balance:       numericToDecimal(row.Balance),
		Denominations: jsonToDenoms(row.Denominations),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
