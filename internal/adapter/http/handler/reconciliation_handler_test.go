package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kioko/vaultledger/internal/adapter/http/dto"
	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/usecase"
)

type reconciliationServiceStub struct {
	previewFn func(ctx context.Context, cashCountID string, processed domain.DenominationVector) (*domain.ReconciliationResult, error)
	processFn func(ctx context.Context, input usecase.ProcessInput) (*usecase.ProcessOutcome, error)
	listFn    func(ctx context.Context, limit, offset int) ([]*domain.CashProcessing, error)
}

func (s *reconciliationServiceStub) Preview(ctx context.Context, cashCountID string, processed domain.DenominationVector) (*domain.ReconciliationResult, error) {
	return s.previewFn(ctx, cashCountID, processed)
}

func (s *reconciliationServiceStub) ProcessAndReceive(ctx context.Context, input usecase.ProcessInput) (*usecase.ProcessOutcome, error) {
	return s.processFn(ctx, input)
}

func (s *reconciliationServiceStub) ListProcessingHistory(ctx context.Context, limit, offset int) ([]*domain.CashProcessing, error) {
	return s.listFn(ctx, limit, offset)
}

func TestReconciliationHandler_Reconcile(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		previewFn: func(ctx context.Context, cashCountID string, processed domain.DenominationVector) (*domain.ReconciliationResult, error) {
			result := domain.Reconcile(domain.DenominationVector{Thousands: 10}, processed)
			return &result, nil
		},
	})

	body, _ := json.Marshal(dto.ReconcileRequest{
		Processed: domain.DenominationVector{Thousands: 8},
	})

	req := httptest.NewRequest(http.MethodPost, "/cash-counts/count-1/reconcile", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "count-1")
	rec := httptest.NewRecorder()

	handler.Reconcile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ReconciliationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Matched {
		t.Fatal("expected a mismatch")
	}
	if !resp.Difference.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected difference 2000, got %s", resp.Difference)
	}
	if diff := resp.PerBucket["thousands"]; diff.Value != -2 || !diff.IsNegative {
		t.Fatalf("expected thousands short by 2, got %+v", diff)
	}
}

func TestReconciliationHandler_Process_ConfirmationRequired(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		processFn: func(ctx context.Context, input usecase.ProcessInput) (*usecase.ProcessOutcome, error) {
			return &usecase.ProcessOutcome{
				Status: usecase.ProcessConfirmationRequired,
				Result: domain.Reconcile(domain.DenominationVector{Thousands: 10}, input.Processed),
			}, nil
		},
	})

	body, _ := json.Marshal(dto.ProcessCashRequest{
		VaultID:   "vault-1",
		Processed: domain.DenominationVector{Thousands: 5},
	})

	req := httptest.NewRequest(http.MethodPost, "/cash-counts/count-1/process", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "count-1")
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ProcessOutcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "confirmation_required" {
		t.Fatalf("expected confirmation_required, got %s", resp.Status)
	}
}

func TestReconciliationHandler_Process_PartialFailure(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		processFn: func(ctx context.Context, input usecase.ProcessInput) (*usecase.ProcessOutcome, error) {
			return &usecase.ProcessOutcome{
					Status:       usecase.ProcessPartialFailure,
					Result:       domain.Reconcile(input.Processed, input.Processed),
					ProcessingID: "proc-1",
				}, fmt.Errorf("%w: connection reset", domain.ErrReceiveFailed)
		},
	})

	body, _ := json.Marshal(dto.ProcessCashRequest{
		VaultID:   "vault-1",
		Processed: domain.DenominationVector{Thousands: 5},
	})

	req := httptest.NewRequest(http.MethodPost, "/cash-counts/count-1/process", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "count-1")
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp dto.ProcessOutcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "partial_failure" {
		t.Fatalf("expected partial_failure, got %s", resp.Status)
	}
	if resp.ProcessingID != "proc-1" {
		t.Fatalf("expected orphaned processing id in the body, got %q", resp.ProcessingID)
	}
}

func TestReconciliationHandler_Process_MissingVaultID(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		processFn: func(ctx context.Context, input usecase.ProcessInput) (*usecase.ProcessOutcome, error) {
			t.Fatal("ProcessAndReceive should not be called without vault_id")
			return nil, nil
		},
	})

	body, _ := json.Marshal(dto.ProcessCashRequest{
		Processed: domain.DenominationVector{Thousands: 5},
	})

	req := httptest.NewRequest(http.MethodPost, "/cash-counts/count-1/process", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "count-1")
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReconciliationHandler_Reconcile_AlreadyReceived(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		previewFn: func(ctx context.Context, cashCountID string, processed domain.DenominationVector) (*domain.ReconciliationResult, error) {
			return nil, domain.ErrCashCountAlreadyReceived
		},
	})

	body, _ := json.Marshal(dto.ReconcileRequest{Processed: domain.DenominationVector{Thousands: 1}})

	req := httptest.NewRequest(http.MethodPost, "/cash-counts/count-1/reconcile", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "count-1")
	rec := httptest.NewRecorder()

	handler.Reconcile(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
