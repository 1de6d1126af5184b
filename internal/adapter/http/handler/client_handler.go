package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kioko/vaultledger/internal/adapter/http/dto"
	"github.com/kioko/vaultledger/internal/domain"
)

// ClientService defines the behavior needed by ClientHandler.
type ClientService interface {
	GetClient(ctx context.Context, id string) (*domain.ClientAccount, error)
	ListClients(ctx context.Context, limit, offset int) ([]*domain.ClientAccount, error)
	ListClientUpdates(ctx context.Context, clientID string, limit, offset int) ([]*domain.LedgerEntry, error)
}

// ClientHandler handles client-account HTTP requests.
type ClientHandler struct {
	clientUC ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientUC ClientService) *ClientHandler {
	return &ClientHandler{clientUC: clientUC}
}

// Get retrieves a client account by ID.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	client, err := h.clientUC.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get client", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClientFromDomain(client))
}

// List lists client accounts.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	clients, err := h.clientUC.ListClients(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListClientsResponse{
		Clients: dto.ClientsFromDomain(clients),
		Total:   int64(len(clients)),
	})
}

// ListUpdates lists a client's ledger history, newest-first.
func (h *ClientHandler) ListUpdates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	entries, err := h.clientUC.ListClientUpdates(r.Context(), id, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list client updates", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}
