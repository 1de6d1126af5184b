package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kioko/vaultledger/internal/adapter/http/dto"
	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/usecase"
)

// VaultService defines the behavior needed by VaultHandler.
type VaultService interface {
	GetVault(ctx context.Context, id string) (*domain.Vault, error)
	ListVaults(ctx context.Context, limit, offset int) ([]*domain.Vault, error)
	ListVaultUpdates(ctx context.Context, vaultID string, limit, offset int) ([]*domain.LedgerEntry, error)
	ReceiveAmount(ctx context.Context, input usecase.MovementInput) (*domain.LedgerEntry, error)
	WithdrawAmount(ctx context.Context, input usecase.MovementInput) (*domain.LedgerEntry, error)
}

// VaultHandler handles vault-related HTTP requests.
type VaultHandler struct {
	vaultUC VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(vaultUC VaultService) *VaultHandler {
	return &VaultHandler{vaultUC: vaultUC}
}

// Get retrieves a vault by ID.
func (h *VaultHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing vault ID", "")
		return
	}

	vault, err := h.vaultUC.GetVault(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get vault", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VaultFromDomain(vault))
}

// List lists vaults.
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	vaults, err := h.vaultUC.ListVaults(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list vaults", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListVaultsResponse{
		Vaults: dto.VaultsFromDomain(vaults),
		Total:  int64(len(vaults)),
	})
}

// ListUpdates lists a vault's ledger history, newest-first.
func (h *VaultHandler) ListUpdates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing vault ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	entries, err := h.vaultUC.ListVaultUpdates(r.Context(), id, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list vault updates", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}

// Receive credits an amount into a vault.
func (h *VaultHandler) Receive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing vault ID", "")
		return
	}

	var req dto.ReceiveAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.vaultUC.ReceiveAmount(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to receive amount", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Withdraw debits an amount from a vault.
func (h *VaultHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing vault ID", "")
		return
	}

	var req dto.WithdrawAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.vaultUC.WithdrawAmount(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to withdraw amount", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}
