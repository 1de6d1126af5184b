package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/usecase"
	"github.com/kioko/vaultledger/internal/usecase/mocks"
)

func TestCashCountUseCase_CreateCashCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCashCountRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	clock := mocks.NewMockClock(ctrl)

	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	idGen.EXPECT().Generate().Return("count-1")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, count *domain.CashCount) error {
			if count.Status != domain.CashCountPending {
				t.Errorf("expected pending status, got %s", count.Status)
			}
			return nil
		})

	uc := usecase.NewCashCountUseCase(repo, idGen, clock, nil)

	clientID := "client-1"
	count, err := uc.CreateCashCount(context.Background(), usecase.CreateCashCountInput{
		RequestID:     "req-1",
		ClientID:      &clientID,
		Denominations: domain.DenominationVector{Thousands: 5, Fifties: 20},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.ID != "count-1" {
		t.Errorf("expected id count-1, got %q", count.ID)
	}
	if count.CreatedAt != now {
		t.Errorf("expected created at %s, got %s", now, count.CreatedAt)
	}
}

func TestCashCountUseCase_CreateCashCount_NegativeCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCashCountRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	clock := mocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(time.Now())
	idGen.EXPECT().Generate().Return("count-1")

	uc := usecase.NewCashCountUseCase(repo, idGen, clock, nil)

	_, err := uc.CreateCashCount(context.Background(), usecase.CreateCashCountInput{
		RequestID:     "req-1",
		Denominations: domain.DenominationVector{Thousands: -5},
	})
	if !errors.Is(err, domain.ErrNegativeDenomination) {
		t.Errorf("expected ErrNegativeDenomination, got %v", err)
	}
}

func TestCashCountUseCase_DeleteCashCount(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.CashCountStatus
		deletes bool
		wantErr error
	}{
		{
			name:    "pending count is deleted",
			status:  domain.CashCountPending,
			deletes: true,
		},
		{
			name:    "received count stays",
			status:  domain.CashCountReceived,
			wantErr: domain.ErrCashCountAlreadyReceived,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCashCountRepository(ctrl)
			idGen := mocks.NewMockIDGenerator(ctrl)
			clock := mocks.NewMockClock(ctrl)

			repo.EXPECT().GetByID(gomock.Any(), "count-1").Return(&domain.CashCount{
				ID:     "count-1",
				Status: tt.status,
			}, nil)
			if tt.deletes {
				repo.EXPECT().Delete(gomock.Any(), "count-1").Return(nil)
			}

			uc := usecase.NewCashCountUseCase(repo, idGen, clock, nil)

			err := uc.DeleteCashCount(context.Background(), "count-1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCashCountUseCase_ListCashCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCashCountRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	clock := mocks.NewMockClock(ctrl)

	repo.EXPECT().List(gomock.Any(), domain.CashCountPending, 20, 0).Return([]*domain.CashCount{
		{ID: "c1"}, {ID: "c2"},
	}, nil)

	uc := usecase.NewCashCountUseCase(repo, idGen, clock, nil)

	counts, err := uc.ListCashCounts(context.Background(), domain.CashCountPending, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 2 {
		t.Errorf("expected 2 counts, got %d", len(counts))
	}
}
