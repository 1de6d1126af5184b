package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kioko/vaultledger/internal/adapter/http/dto"
	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/usecase"
)

// ReconciliationService defines the behavior needed by ReconciliationHandler.
type ReconciliationService interface {
	Preview(ctx context.Context, cashCountID string, processed domain.DenominationVector) (*domain.ReconciliationResult, error)
	ProcessAndReceive(ctx context.Context, input usecase.ProcessInput) (*usecase.ProcessOutcome, error)
	ListProcessingHistory(ctx context.Context, limit, offset int) ([]*domain.CashProcessing, error)
}

// ReconciliationHandler handles cash-processing HTTP requests.
type ReconciliationHandler struct {
	reconciliationUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// Reconcile previews processed denominations against a cash count without
// writing anything.
func (h *ReconciliationHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cash count ID", "")
		return
	}

	var req dto.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.reconciliationUC.Preview(r.Context(), id, req.Processed)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reconcile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromDomain(result))
}

// Process runs the confirmed processing-then-receive flow.
//
// A materiality stop returns 200 with status confirmation_required and no
// writes. A partial failure returns 500 with the outcome in the body so the
// caller has the orphaned processing record's id.
func (h *ReconciliationHandler) Process(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cash count ID", "")
		return
	}

	var req dto.ProcessCashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.VaultID == "" {
		writeError(w, http.StatusBadRequest, "missing vault_id", "")
		return
	}

	outcome, err := h.reconciliationUC.ProcessAndReceive(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		if errors.Is(err, domain.ErrReceiveFailed) && outcome != nil {
			writeJSON(w, http.StatusInternalServerError, dto.ProcessOutcomeFromUseCase(outcome))
			return
		}
		writeError(w, mapDomainError(err), "failed to process cash count", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProcessOutcomeFromUseCase(outcome))
}

// ListHistory lists reconciliation audit records, newest-first.
func (h *ReconciliationHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	records, err := h.reconciliationUC.ListProcessingHistory(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list processing history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCashProcessingResponse{
		Records: dto.CashProcessingsFromDomain(records),
		Total:   int64(len(records)),
	})
}
