package domain

import "github.com/shopspring/decimal"

// ReversalPolicy controls how entries dated on the certificate day itself are
// treated when walking the ledger backward from the live position. The
// original back office resolved same-day ties by list order only, so the
// choice is explicit here rather than implied.
type ReversalPolicy int

const (
	// ReverseAfterDate undoes only entries on days strictly after the
	// certificate date. Same-day entries count toward the closing position.
	// This is the default.
	ReverseAfterDate ReversalPolicy = iota

	// ReverseSameDay also undoes entries dated on the certificate day,
	// producing the position as of the start of that day.
	ReverseSameDay
)

// ParseReversalPolicy maps a config string to a policy.
func ParseReversalPolicy(s string) ReversalPolicy {
	if s == "same-day" {
		return ReverseSameDay
	}
	return ReverseAfterDate
}

// CertificateView is the derived read model for a balance certificate: a
// pure function of the entry list, the selected date and the live position.
// It has no lifecycle of its own and is recomputed on every request.
type CertificateView struct {
	Date                  CalendarDate
	BroughtForward        DenominationVector
	BroughtForwardBalance decimal.Decimal
	DayCredits            DenominationVector
	DayDebits             DenominationVector
	Closing               DenominationVector
	ClosingBalance        decimal.Decimal
}

// BuildCertificate assembles a balance certificate for day.
//
// Brought forward is the snapshot of the most recent entry on or before the
// prior day. With no qualifying entry it degrades to zero; with no history at
// all it falls back to the live balance (zero vector) rather than reporting a
// vault as empty.
//
// The closing balance is the recorded balance of the latest entry on or
// before day, else the live balance. Closing denominations start from the
// live vector and undo every later movement: credits are subtracted back out,
// debits added back in. Intermediate counts may go negative; nothing clamps
// them, or the rollback would silently corrupt.
func BuildCertificate(entries []*LedgerEntry, day CalendarDate, live DenominationVector, liveBalance decimal.Decimal, policy ReversalPolicy) CertificateView {
	view := CertificateView{Date: day}

	if bf, ok := BroughtForward(entries, day); ok {
		view.BroughtForward = bf.Denominations
		view.BroughtForwardBalance = bf.NewBalance
	} else if len(entries) == 0 {
		view.BroughtForwardBalance = liveBalance
	} else {
		view.BroughtForwardBalance = decimal.Zero
	}

	credits, debits := EntriesOn(entries, day)
	view.DayCredits = SumDenominations(credits)
	view.DayDebits = SumDenominations(debits)

	if latest, ok := LatestOnOrBefore(entries, day); ok {
		view.ClosingBalance = latest.NewBalance
	} else {
		view.ClosingBalance = liveBalance
	}

	view.Closing = closingDenominations(entries, day, live, policy)

	return view
}

// closingDenominations walks every entry later than day and reverses its
// effect on the live vector.
func closingDenominations(entries []*LedgerEntry, day CalendarDate, live DenominationVector, policy ReversalPolicy) DenominationVector {
	closing := live
	for _, e := range entries {
		if !reversible(e, day, policy) {
			continue
		}
		switch {
		case e.IsCredit():
			closing = closing.Sub(e.Denominations)
		case e.IsDebit():
			closing = closing.Add(e.Denominations)
		}
	}
	return closing
}

func reversible(e *LedgerEntry, day CalendarDate, policy ReversalPolicy) bool {
	if policy == ReverseSameDay {
		return !e.Day().Before(day)
	}
	return e.Day().After(day)
}
