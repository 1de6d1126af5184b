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

// CashCountService defines the behavior needed by CashCountHandler.
type CashCountService interface {
	CreateCashCount(ctx context.Context, input usecase.CreateCashCountInput) (*domain.CashCount, error)
	GetCashCount(ctx context.Context, id string) (*domain.CashCount, error)
	ListCashCounts(ctx context.Context, status domain.CashCountStatus, limit, offset int) ([]*domain.CashCount, error)
	DeleteCashCount(ctx context.Context, id string) error
}

// CashCountHandler handles cash-count HTTP requests.
type CashCountHandler struct {
	cashCountUC CashCountService
}

// NewCashCountHandler creates a new CashCountHandler.
func NewCashCountHandler(cashCountUC CashCountService) *CashCountHandler {
	return &CashCountHandler{cashCountUC: cashCountUC}
}

// Create records a crew's cash count.
func (h *CashCountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCashCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.RequestID == "" {
		writeError(w, http.StatusBadRequest, "missing request_id", "")
		return
	}

	count, err := h.cashCountUC.CreateCashCount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create cash count", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CashCountFromDomain(count))
}

// Get retrieves a cash count by ID.
func (h *CashCountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cash count ID", "")
		return
	}

	count, err := h.cashCountUC.GetCashCount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get cash count", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashCountFromDomain(count))
}

// List lists cash counts, optionally filtered by status.
func (h *CashCountHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)
	status := domain.CashCountStatus(r.URL.Query().Get("status"))

	counts, err := h.cashCountUC.ListCashCounts(r.Context(), status, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list cash counts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCashCountsResponse{
		CashCounts: dto.CashCountsFromDomain(counts),
		Total:      int64(len(counts)),
	})
}

// Delete removes a pending cash count.
func (h *CashCountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cash count ID", "")
		return
	}

	if err := h.cashCountUC.DeleteCashCount(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete cash count", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
