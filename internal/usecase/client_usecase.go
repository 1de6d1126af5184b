package usecase

import (
	"context"

	"github.com/kioko/vaultledger/internal/domain"
)

// ClientUseCase exposes client accounts and their ledger history.
type ClientUseCase struct {
	clientRepo ClientRepository
	entryRepo  EntryRepository
}

// NewClientUseCase creates a new ClientUseCase.
func NewClientUseCase(clientRepo ClientRepository, entryRepo EntryRepository) *ClientUseCase {
	return &ClientUseCase{
		clientRepo: clientRepo,
		entryRepo:  entryRepo,
	}
}

// GetClient retrieves a client account by ID.
func (uc *ClientUseCase) GetClient(ctx context.Context, id string) (*domain.ClientAccount, error) {
	return uc.clientRepo.GetByID(ctx, id)
}

// ListClients lists client accounts with pagination.
func (uc *ClientUseCase) ListClients(ctx context.Context, limit, offset int) ([]*domain.ClientAccount, error) {
	limit, offset = clampPage(limit, offset)
	return uc.clientRepo.List(ctx, limit, offset)
}

// ListClientUpdates lists a client's ledger history, newest-first.
func (uc *ClientUseCase) ListClientUpdates(ctx context.Context, clientID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	limit, offset = clampPage(limit, offset)
	return uc.entryRepo.ListByClient(ctx, clientID, limit, offset)
}
