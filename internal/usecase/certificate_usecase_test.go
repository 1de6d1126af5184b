package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/usecase"
	"github.com/kioko/vaultledger/internal/usecase/mocks"
)

func mustDate(t *testing.T, s string) domain.CalendarDate {
	t.Helper()
	day, err := domain.ParseCalendarDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return day
}

func TestCertificateUseCase_VaultCertificate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vaultRepo := mocks.NewMockVaultRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	entryRepo := mocks.NewMockEntryRepository(ctrl)

	live := domain.DenominationVector{Hundreds: 150}
	vaultRepo.EXPECT().GetByID(gomock.Any(), "vault-1").Return(&domain.Vault{
		ID:            "vault-1",
		Balance:       decimal.NewFromInt(15000),
		Denominations: live,
	}, nil)
	entryRepo.EXPECT().ListByVault(gomock.Any(), "vault-1", 10000, 0).Return([]*domain.LedgerEntry{
		{
			ID:            "e2",
			VaultID:       "vault-1",
			AmountIn:      decimal.NewFromInt(5000),
			NewBalance:    decimal.NewFromInt(15000),
			Denominations: domain.DenominationVector{Hundreds: 50},
			OccurredAt:    time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:            "e1",
			VaultID:       "vault-1",
			AmountIn:      decimal.NewFromInt(10000),
			NewBalance:    decimal.NewFromInt(10000),
			Denominations: domain.DenominationVector{Hundreds: 100},
			OccurredAt:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		},
	}, nil)

	uc := usecase.NewCertificateUseCase(vaultRepo, clientRepo, entryRepo, nil, domain.ReverseAfterDate, zerolog.Nop(), nil)

	view, err := uc.VaultCertificate(context.Background(), "vault-1", mustDate(t, "2024-01-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The Jan 2 credit of 50 hundreds is reversed out of the live holding.
	if view.Closing.Hundreds != 100 {
		t.Errorf("expected closing hundreds 100, got %d", view.Closing.Hundreds)
	}
	if !view.ClosingBalance.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("expected closing balance 10000, got %s", view.ClosingBalance)
	}
	if view.DayCredits.Hundreds != 100 {
		t.Errorf("expected day credits of 100 hundreds, got %+v", view.DayCredits)
	}
	if !view.DayDebits.IsZero() {
		t.Errorf("expected no day debits, got %+v", view.DayDebits)
	}
}

func TestCertificateUseCase_VaultCertificate_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vaultRepo := mocks.NewMockVaultRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	entryRepo := mocks.NewMockEntryRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)

	cached := domain.CertificateView{
		Date:           mustDate(t, "2024-01-01"),
		ClosingBalance: decimal.NewFromInt(777),
	}
	raw, err := json.Marshal(&cached)
	if err != nil {
		t.Fatal(err)
	}
	cache.EXPECT().Get(gomock.Any(), "certificate:vault:vault-1:2024-01-01").Return(string(raw), nil)

	uc := usecase.NewCertificateUseCase(vaultRepo, clientRepo, entryRepo, cache, domain.ReverseAfterDate, zerolog.Nop(), nil)

	// No repository expectations: a hit must not touch the database.
	view, err := uc.VaultCertificate(context.Background(), "vault-1", mustDate(t, "2024-01-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.ClosingBalance.Equal(decimal.NewFromInt(777)) {
		t.Errorf("expected cached balance 777, got %s", view.ClosingBalance)
	}
}

func TestCertificateUseCase_VaultCertificate_CacheMissStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vaultRepo := mocks.NewMockVaultRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	entryRepo := mocks.NewMockEntryRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", nil)
	vaultRepo.EXPECT().GetByID(gomock.Any(), "vault-1").Return(&domain.Vault{
		ID:      "vault-1",
		Balance: decimal.NewFromInt(5000),
	}, nil)
	entryRepo.EXPECT().ListByVault(gomock.Any(), "vault-1", 10000, 0).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), "certificate:vault:vault-1:2024-01-01", gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewCertificateUseCase(vaultRepo, clientRepo, entryRepo, cache, domain.ReverseAfterDate, zerolog.Nop(), nil)

	view, err := uc.VaultCertificate(context.Background(), "vault-1", mustDate(t, "2024-01-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No history: brought-forward and closing both fall back to the live balance.
	if !view.BroughtForwardBalance.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected brought-forward 5000, got %s", view.BroughtForwardBalance)
	}
	if !view.ClosingBalance.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected closing 5000, got %s", view.ClosingBalance)
	}
}

func TestCertificateUseCase_ClientCertificate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vaultRepo := mocks.NewMockVaultRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	entryRepo := mocks.NewMockEntryRepository(ctrl)

	clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(&domain.ClientAccount{
		ID:            "client-1",
		Balance:       decimal.NewFromInt(2000),
		Denominations: domain.DenominationVector{Thousands: 2},
	}, nil)
	entryRepo.EXPECT().ListByClient(gomock.Any(), "client-1", 10000, 0).Return(nil, nil)

	uc := usecase.NewCertificateUseCase(vaultRepo, clientRepo, entryRepo, nil, domain.ReverseAfterDate, zerolog.Nop(), nil)

	view, err := uc.ClientCertificate(context.Background(), "client-1", mustDate(t, "2024-06-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Closing.Thousands != 2 {
		t.Errorf("expected closing thousands 2, got %d", view.Closing.Thousands)
	}
}

func TestCertificateUseCase_ClientCertificate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vaultRepo := mocks.NewMockVaultRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	entryRepo := mocks.NewMockEntryRepository(ctrl)

	clientRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, domain.ErrClientNotFound)

	uc := usecase.NewCertificateUseCase(vaultRepo, clientRepo, entryRepo, nil, domain.ReverseAfterDate, zerolog.Nop(), nil)

	if _, err := uc.ClientCertificate(context.Background(), "ghost", mustDate(t, "2024-06-01")); err != domain.ErrClientNotFound {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}
