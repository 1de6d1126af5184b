package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kioko/vaultledger/internal/adapter/http/dto"
	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/usecase"
)

// CertificateService defines the behavior needed by CertificateHandler.
type CertificateService interface {
	VaultCertificate(ctx context.Context, vaultID string, day domain.CalendarDate) (*domain.CertificateView, error)
	ClientCertificate(ctx context.Context, clientID string, day domain.CalendarDate) (*domain.CertificateView, error)
}

// CertificateHandler serves balance certificates. The date query parameter
// selects the day; without it the certificate is for today.
type CertificateHandler struct {
	certificateUC CertificateService
	clock         usecase.Clock
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(certificateUC CertificateService, clock usecase.Clock) *CertificateHandler {
	return &CertificateHandler{
		certificateUC: certificateUC,
		clock:         clock,
	}
}

// Vault serves the balance certificate for a vault.
func (h *CertificateHandler) Vault(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing vault ID", "")
		return
	}

	day, err := h.selectedDay(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	view, err := h.certificateUC.VaultCertificate(r.Context(), id, day)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build certificate", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CertificateFromDomain(view))
}

// Client serves the balance certificate for a client account.
func (h *CertificateHandler) Client(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	day, err := h.selectedDay(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	view, err := h.certificateUC.ClientCertificate(r.Context(), id, day)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build certificate", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CertificateFromDomain(view))
}

func (h *CertificateHandler) selectedDay(r *http.Request) (domain.CalendarDate, error) {
	day, ok, err := parseDateQuery(r)
	if err != nil {
		return domain.CalendarDate{}, err
	}
	if !ok {
		return domain.DateOf(h.clock.Now()), nil
	}
	return day, nil
}
