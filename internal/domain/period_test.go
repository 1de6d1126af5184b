package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func entryAt(ts string, in, out int64, denoms DenominationVector, balance int64) *LedgerEntry {
	at, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return &LedgerEntry{
		ID:            ts,
		VaultID:       "vault-1",
		AmountIn:      decimal.NewFromInt(in),
		AmountOut:     decimal.NewFromInt(out),
		NewBalance:    decimal.NewFromInt(balance),
		Denominations: denoms,
		OccurredAt:    at,
	}
}

func TestBroughtForward(t *testing.T) {
	entries := []*LedgerEntry{
		entryAt("2024-01-03T09:00:00Z", 1000, 0, DenominationVector{Thousands: 1}, 16000),
		entryAt("2024-01-02T16:00:00Z", 5000, 0, DenominationVector{Hundreds: 50}, 15000),
		entryAt("2024-01-02T08:00:00Z", 2000, 0, DenominationVector{Hundreds: 20}, 10000),
		entryAt("2024-01-01T10:00:00Z", 8000, 0, DenominationVector{FiveHundreds: 16}, 8000),
	}

	bf, ok := BroughtForward(entries, NewCalendarDate(2024, time.January, 3))
	if !ok {
		t.Fatal("expected a brought-forward entry")
	}
	// Latest entry on or before Jan 2 is the 16:00 one.
	if !bf.NewBalance.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("brought-forward balance = %s, want 15000", bf.NewBalance)
	}

	if _, ok := BroughtForward(entries, NewCalendarDate(2024, time.January, 1)); ok {
		t.Error("expected no brought-forward entry before first day of history")
	}
}

func TestBroughtForward_OrderIndependent(t *testing.T) {
	newestFirst := []*LedgerEntry{
		entryAt("2024-01-02T16:00:00Z", 100, 0, DenominationVector{}, 300),
		entryAt("2024-01-02T08:00:00Z", 100, 0, DenominationVector{}, 200),
		entryAt("2024-01-01T08:00:00Z", 100, 0, DenominationVector{}, 100),
	}
	oldestFirst := []*LedgerEntry{newestFirst[2], newestFirst[1], newestFirst[0]}

	day := NewCalendarDate(2024, time.January, 3)

	a, _ := BroughtForward(newestFirst, day)
	b, _ := BroughtForward(oldestFirst, day)

	if !a.NewBalance.Equal(b.NewBalance) {
		t.Errorf("order-dependent result: %s vs %s", a.NewBalance, b.NewBalance)
	}
}

func TestEntriesOn(t *testing.T) {
	entries := []*LedgerEntry{
		entryAt("2024-01-02T10:00:00Z", 5000, 0, DenominationVector{Hundreds: 50}, 15000),
		entryAt("2024-01-02T14:00:00Z", 0, 2000, DenominationVector{Hundreds: 20}, 13000),
		entryAt("2024-01-01T10:00:00Z", 1000, 0, DenominationVector{Thousands: 1}, 10000),
	}

	credits, debits := EntriesOn(entries, NewCalendarDate(2024, time.January, 2))

	if len(credits) != 1 || len(debits) != 1 {
		t.Fatalf("expected 1 credit and 1 debit, got %d and %d", len(credits), len(debits))
	}
	if !credits[0].AmountIn.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("credit amount = %s, want 5000", credits[0].AmountIn)
	}
	if !debits[0].AmountOut.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("debit amount = %s, want 2000", debits[0].AmountOut)
	}
}

func TestSumDenominations(t *testing.T) {
	entries := []*LedgerEntry{
		entryAt("2024-01-02T10:00:00Z", 100, 0, DenominationVector{Fifties: 2}, 0),
		entryAt("2024-01-02T11:00:00Z", 140, 0, DenominationVector{Hundreds: 1, Forties: 1}, 0),
	}

	sum := SumDenominations(entries)
	want := DenominationVector{Fifties: 2, Hundreds: 1, Forties: 1}
	if sum != want {
		t.Errorf("SumDenominations = %+v, want %+v", sum, want)
	}

	if got := SumDenominations(nil); !got.IsZero() {
		t.Errorf("SumDenominations(nil) = %+v, want zero", got)
	}
}
