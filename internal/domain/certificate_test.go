package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// Mirrors the canonical two-entry scenario: a credit on Jan 2 reversed out of
// the live vector when certifying Jan 1.
func TestBuildCertificate(t *testing.T) {
	entries := []*LedgerEntry{
		entryAt("2024-01-02T10:00:00Z", 5000, 0, DenominationVector{Hundreds: 50}, 15000),
		entryAt("2024-01-01T10:00:00Z", 0, 2000, DenominationVector{Hundreds: 20}, 10000),
	}
	live := DenominationVector{Hundreds: 150}
	liveBalance := decimal.NewFromInt(30000)

	view := BuildCertificate(entries, NewCalendarDate(2024, time.January, 1), live, liveBalance, ReverseAfterDate)

	if !view.BroughtForward.IsZero() {
		t.Errorf("brought-forward vector = %+v, want zero", view.BroughtForward)
	}
	if !view.BroughtForwardBalance.IsZero() {
		t.Errorf("brought-forward balance = %s, want 0", view.BroughtForwardBalance)
	}
	if !view.DayCredits.IsZero() {
		t.Errorf("day credits = %+v, want zero", view.DayCredits)
	}
	if want := (DenominationVector{Hundreds: 20}); view.DayDebits != want {
		t.Errorf("day debits = %+v, want %+v", view.DayDebits, want)
	}
	if !view.ClosingBalance.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("closing balance = %s, want 10000", view.ClosingBalance)
	}
	// Live 150 hundreds minus the Jan 2 credit of 50 hundreds.
	if want := (DenominationVector{Hundreds: 100}); view.Closing != want {
		t.Errorf("closing denominations = %+v, want %+v", view.Closing, want)
	}
}

func TestBuildCertificate_FutureDateClosingEqualsLive(t *testing.T) {
	entries := []*LedgerEntry{
		entryAt("2024-01-02T10:00:00Z", 5000, 0, DenominationVector{Hundreds: 50}, 15000),
	}
	live := DenominationVector{Hundreds: 150}

	view := BuildCertificate(entries, NewCalendarDate(2024, time.June, 1), live, decimal.NewFromInt(30000), ReverseAfterDate)

	if view.Closing != live {
		t.Errorf("closing = %+v, want live vector %+v", view.Closing, live)
	}
	if !view.ClosingBalance.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("closing balance = %s, want 15000 from latest entry", view.ClosingBalance)
	}
}

func TestBuildCertificate_NoHistoryFallsBackToLiveBalance(t *testing.T) {
	live := DenominationVector{Thousands: 5}
	liveBalance := decimal.NewFromInt(5000)

	view := BuildCertificate(nil, NewCalendarDate(2024, time.January, 1), live, liveBalance, ReverseAfterDate)

	if !view.BroughtForwardBalance.Equal(liveBalance) {
		t.Errorf("brought-forward balance = %s, want live %s", view.BroughtForwardBalance, liveBalance)
	}
	if !view.BroughtForward.IsZero() {
		t.Errorf("brought-forward vector = %+v, want zero", view.BroughtForward)
	}
	if !view.ClosingBalance.Equal(liveBalance) {
		t.Errorf("closing balance = %s, want live %s", view.ClosingBalance, liveBalance)
	}
	if view.Closing != live {
		t.Errorf("closing = %+v, want live vector", view.Closing)
	}
}

func TestBuildCertificate_DebitsAddedBackOnReversal(t *testing.T) {
	// A future withdrawal must be added back to reconstruct the older position.
	entries := []*LedgerEntry{
		entryAt("2024-01-03T10:00:00Z", 0, 4000, DenominationVector{Thousands: 4}, 6000),
		entryAt("2024-01-01T10:00:00Z", 10000, 0, DenominationVector{Thousands: 10}, 10000),
	}
	live := DenominationVector{Thousands: 6}

	view := BuildCertificate(entries, NewCalendarDate(2024, time.January, 1), live, decimal.NewFromInt(6000), ReverseAfterDate)

	if want := (DenominationVector{Thousands: 10}); view.Closing != want {
		t.Errorf("closing = %+v, want %+v", view.Closing, want)
	}
	if !view.ClosingBalance.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("closing balance = %s, want 10000", view.ClosingBalance)
	}
}

func TestBuildCertificate_SameDayPolicy(t *testing.T) {
	entries := []*LedgerEntry{
		entryAt("2024-01-02T10:00:00Z", 5000, 0, DenominationVector{Hundreds: 50}, 15000),
	}
	live := DenominationVector{Hundreds: 150}
	day := NewCalendarDate(2024, time.January, 2)

	afterDate := BuildCertificate(entries, day, live, decimal.NewFromInt(15000), ReverseAfterDate)
	if afterDate.Closing != live {
		t.Errorf("after-date policy: closing = %+v, want live vector", afterDate.Closing)
	}

	sameDay := BuildCertificate(entries, day, live, decimal.NewFromInt(15000), ReverseSameDay)
	if want := (DenominationVector{Hundreds: 100}); sameDay.Closing != want {
		t.Errorf("same-day policy: closing = %+v, want %+v", sameDay.Closing, want)
	}
}

func TestBuildCertificate_Deterministic(t *testing.T) {
	entries := []*LedgerEntry{
		entryAt("2024-01-02T10:00:00Z", 5000, 0, DenominationVector{Hundreds: 50}, 15000),
		entryAt("2024-01-01T10:00:00Z", 0, 2000, DenominationVector{Hundreds: 20}, 10000),
	}
	live := DenominationVector{Hundreds: 150}
	day := NewCalendarDate(2024, time.January, 1)

	first := BuildCertificate(entries, day, live, decimal.NewFromInt(30000), ReverseAfterDate)
	second := BuildCertificate(entries, day, live, decimal.NewFromInt(30000), ReverseAfterDate)

	if first.Closing != second.Closing || !first.ClosingBalance.Equal(second.ClosingBalance) {
		t.Error("BuildCertificate is not deterministic for identical inputs")
	}
}

func TestParseReversalPolicy(t *testing.T) {
	if ParseReversalPolicy("same-day") != ReverseSameDay {
		t.Error(`expected "same-day" to parse to ReverseSameDay`)
	}
	if ParseReversalPolicy("after-date") != ReverseAfterDate {
		t.Error(`expected "after-date" to parse to ReverseAfterDate`)
	}
	if ParseReversalPolicy("") != ReverseAfterDate {
		t.Error("expected empty string to default to ReverseAfterDate")
	}
}
