package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Materiality thresholds for reconciliation discrepancies. Business policy
// constants: a difference above 1000 KES, or above 1% of the expected total,
// needs explicit operator confirmation before the processed amount is
// accepted.
var (
	MaterialityAmount  = decimal.NewFromInt(1000)
	MaterialityPercent = decimal.NewFromInt(1)
)

// ReconciliationResult compares an expected cash count against the amount an
// operator actually processed.
type ReconciliationResult struct {
	Expected       DenominationVector
	Processed      DenominationVector
	ExpectedTotal  decimal.Decimal
	ProcessedTotal decimal.Decimal
	Difference     decimal.Decimal
	Matched        bool
	PerBucket      map[Bucket]BucketDiff
}

// Reconcile computes the reconciliation of processed against expected.
// Matched is exact equality of totals; there is no tolerance.
func Reconcile(expected, processed DenominationVector) ReconciliationResult {
	expectedTotal := expected.Total()
	processedTotal := processed.Total()
	difference := processedTotal.Sub(expectedTotal).Abs()

	return ReconciliationResult{
		Expected:       expected,
		Processed:      processed,
		ExpectedTotal:  expectedTotal,
		ProcessedTotal: processedTotal,
		Difference:     difference,
		Matched:        difference.IsZero(),
		PerBucket:      Diff(expected, processed),
	}
}

// RequiresConfirmation reports whether the discrepancy crosses the
// materiality threshold. A zero expected total with any processed cash always
// requires confirmation; the percentage check would otherwise divide by zero.
func (r ReconciliationResult) RequiresConfirmation() bool {
	if r.Difference.GreaterThan(MaterialityAmount) {
		return true
	}
	if r.ExpectedTotal.IsZero() {
		return r.ProcessedTotal.IsPositive()
	}
	percent := r.Difference.Div(r.ExpectedTotal).Mul(decimal.NewFromInt(100))
	return percent.GreaterThan(MaterialityPercent)
}

// CashProcessing is the append-only audit record of one reconciliation.
// Written once per cash-count receipt; never mutated afterward.
type CashProcessing struct {
	ID             string
	CashCountID    string
	RequestID      string
	Expected       DenominationVector
	Processed      DenominationVector
	ExpectedTotal  decimal.Decimal
	ProcessedTotal decimal.Decimal
	Difference     decimal.Decimal
	Matched        bool
	Comment        string
	CreatedAt      time.Time
}
