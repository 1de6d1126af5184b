package domain

// Entry partitioning for balance certificates. All functions are pure and
// order-independent: where "latest" matters they scan for the maximum
// timestamp instead of trusting list order, so callers may pass repository
// results (newest-first) or anything else.

// BroughtForward returns the most recent entry on or before the day prior to
// day. Its balance and denomination delta are the brought-forward snapshot
// for a certificate. The second return is false when no entry qualifies.
func BroughtForward(entries []*LedgerEntry, day CalendarDate) (*LedgerEntry, bool) {
	return LatestOnOrBefore(entries, day.Prev())
}

// LatestOnOrBefore returns the entry with the greatest timestamp whose
// calendar day is on or before day.
func LatestOnOrBefore(entries []*LedgerEntry, day CalendarDate) (*LedgerEntry, bool) {
	var latest *LedgerEntry
	for _, e := range entries {
		if e.Day().After(day) {
			continue
		}
		if latest == nil || e.OccurredAt.After(latest.OccurredAt) {
			latest = e
		}
	}
	return latest, latest != nil
}

// EntriesOn returns the entries that occurred on day, split into credits
// (amount in positive) and debits (amount out positive).
func EntriesOn(entries []*LedgerEntry, day CalendarDate) (credits, debits []*LedgerEntry) {
	for _, e := range entries {
		if !e.Day().Equal(day) {
			continue
		}
		switch {
		case e.IsCredit():
			credits = append(credits, e)
		case e.IsDebit():
			debits = append(debits, e)
		}
	}
	return credits, debits
}

// SumDenominations adds up the denomination deltas of a group of entries.
func SumDenominations(entries []*LedgerEntry) DenominationVector {
	var sum DenominationVector
	for _, e := range entries {
		sum = sum.Add(e.Denominations)
	}
	return sum
}
