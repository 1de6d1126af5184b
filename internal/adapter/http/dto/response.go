package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/usecase"
)

// VaultResponse represents a vault in API responses.
type VaultResponse struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	Balance       decimal.Decimal           `json:"balance"`
	Denominations domain.DenominationVector `json:"denominations"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

// VaultFromDomain converts a domain vault to a response.
func VaultFromDomain(v *domain.Vault) *VaultResponse {
	return &VaultResponse{
		ID:            v.ID,
		Name:          v.Name,
		Balance:       v.Balance,
		Denominations: v.Denominations,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// VaultsFromDomain converts domain vaults to responses.
func VaultsFromDomain(vaults []*domain.Vault) []*VaultResponse {
	result := make([]*VaultResponse, len(vaults))
	for i, v := range vaults {
		result[i] = VaultFromDomain(v)
	}
	return result
}

// ClientResponse represents a client account in API responses.
type ClientResponse struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	BranchID      *string                   `json:"branch_id,omitempty"`
	Balance       decimal.Decimal           `json:"balance"`
	Denominations domain.DenominationVector `json:"denominations"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

// ClientFromDomain converts a domain client account to a response.
func ClientFromDomain(c *domain.ClientAccount) *ClientResponse {
	return &ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		BranchID:      c.BranchID,
		Balance:       c.Balance,
		Denominations: c.Denominations,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ClientsFromDomain converts domain client accounts to responses.
func ClientsFromDomain(clients []*domain.ClientAccount) []*ClientResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = ClientFromDomain(c)
	}
	return result
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID            string                    `json:"id"`
	VaultID       string                    `json:"vault_id"`
	ClientID      *string                   `json:"client_id,omitempty"`
	BranchID      *string                   `json:"branch_id,omitempty"`
	TeamID        *string                   `json:"team_id,omitempty"`
	AmountIn      decimal.Decimal           `json:"amount_in"`
	AmountOut     decimal.Decimal           `json:"amount_out"`
	NewBalance    decimal.Decimal           `json:"new_balance"`
	Denominations domain.DenominationVector `json:"denominations"`
	Comment       string                    `json:"comment,omitempty"`
	OccurredAt    time.Time                 `json:"occurred_at"`
}

// EntryFromDomain converts a domain ledger entry to a response.
func EntryFromDomain(e *domain.LedgerEntry) *EntryResponse {
	return &EntryResponse{
		ID:            e.ID,
		VaultID:       e.VaultID,
		ClientID:      e.ClientID,
		BranchID:      e.BranchID,
		TeamID:        e.TeamID,
		AmountIn:      e.AmountIn,
		AmountOut:     e.AmountOut,
		NewBalance:    e.NewBalance,
		Denominations: e.Denominations,
		Comment:       e.Comment,
		OccurredAt:    e.OccurredAt,
	}
}

// EntriesFromDomain converts domain ledger entries to responses.
func EntriesFromDomain(entries []*domain.LedgerEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// CashCountResponse represents a cash count in API responses.
type CashCountResponse struct {
	ID            string                    `json:"id"`
	RequestID     string                    `json:"request_id"`
	ClientID      *string                   `json:"client_id,omitempty"`
	BranchID      *string                   `json:"branch_id,omitempty"`
	TeamID        *string                   `json:"team_id,omitempty"`
	Denominations domain.DenominationVector `json:"denominations"`
	Total         decimal.Decimal           `json:"total"`
	Status        string                    `json:"status"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

// CashCountFromDomain converts a domain cash count to a response.
func CashCountFromDomain(c *domain.CashCount) *CashCountResponse {
	return &CashCountResponse{
		ID:            c.ID,
		RequestID:     c.RequestID,
		ClientID:      c.ClientID,
		BranchID:      c.BranchID,
		TeamID:        c.TeamID,
		Denominations: c.Denominations,
		Total:         c.Denominations.Total(),
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CashCountsFromDomain converts domain cash counts to responses.
func CashCountsFromDomain(counts []*domain.CashCount) []*CashCountResponse {
	result := make([]*CashCountResponse, len(counts))
	for i, c := range counts {
		result[i] = CashCountFromDomain(c)
	}
	return result
}

// BucketDiffResponse represents one bucket of a reconciliation difference.
type BucketDiffResponse struct {
	Value      int64 `json:"value"`
	IsPositive bool  `json:"is_positive"`
	IsNegative bool  `json:"is_negative"`
	IsZero     bool  `json:"is_zero"`
}

// ReconciliationResponse represents a reconciliation result.
type ReconciliationResponse struct {
	Expected       domain.DenominationVector     `json:"expected"`
	Processed      domain.DenominationVector     `json:"processed"`
	ExpectedTotal  decimal.Decimal               `json:"expected_total"`
	ProcessedTotal decimal.Decimal               `json:"processed_total"`
	Difference     decimal.Decimal               `json:"difference"`
	Matched        bool                          `json:"matched"`
	PerBucket      map[string]BucketDiffResponse `json:"per_bucket"`
}

// ReconciliationFromDomain converts a domain reconciliation result to a
// response.
func ReconciliationFromDomain(r *domain.ReconciliationResult) *ReconciliationResponse {
	perBucket := make(map[string]BucketDiffResponse, len(r.PerBucket))
	for bucket, diff := range r.PerBucket {
		perBucket[string(bucket)] = BucketDiffResponse{
			Value:      diff.Value,
			IsPositive: diff.IsPositive,
			IsNegative: diff.IsNegative,
			IsZero:     diff.IsZero,
		}
	}
	return &ReconciliationResponse{
		Expected:       r.Expected,
		Processed:      r.Processed,
		ExpectedTotal:  r.ExpectedTotal,
		ProcessedTotal: r.ProcessedTotal,
		Difference:     r.Difference,
		Matched:        r.Matched,
		PerBucket:      perBucket,
	}
}

// ProcessOutcomeResponse represents the result of a cash-processing
// submission, including the partial-failure case where the audit record was
// written but the vault receive did not land.
type ProcessOutcomeResponse struct {
	Status         string                  `json:"status"`
	Reconciliation *ReconciliationResponse `json:"reconciliation"`
	ProcessingID   string                  `json:"processing_id,omitempty"`
	Receipt        *EntryResponse          `json:"receipt,omitempty"`
}

// ProcessOutcomeFromUseCase converts a use case outcome to a response.
func ProcessOutcomeFromUseCase(o *usecase.ProcessOutcome) *ProcessOutcomeResponse {
	resp := &ProcessOutcomeResponse{
		Status:         string(o.Status),
		Reconciliation: ReconciliationFromDomain(&o.Result),
		ProcessingID:   o.ProcessingID,
	}
	if o.Receipt != nil {
		resp.Receipt = EntryFromDomain(o.Receipt)
	}
	return resp
}

// CashProcessingResponse represents a reconciliation audit record.
type CashProcessingResponse struct {
	ID             string                    `json:"id"`
	CashCountID    string                    `json:"cash_count_id"`
	RequestID      string                    `json:"request_id"`
	Expected       domain.DenominationVector `json:"expected"`
	Processed      domain.DenominationVector `json:"processed"`
	ExpectedTotal  decimal.Decimal           `json:"expected_total"`
	ProcessedTotal decimal.Decimal           `json:"processed_total"`
	Difference     decimal.Decimal           `json:"difference"`
	Matched        bool                      `json:"matched"`
	Comment        string                    `json:"comment,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
}

// CashProcessingFromDomain converts a domain processing record to a response.
func CashProcessingFromDomain(p *domain.CashProcessing) *CashProcessingResponse {
	return &CashProcessingResponse{
		ID:             p.ID,
		CashCountID:    p.CashCountID,
		RequestID:      p.RequestID,
		Expected:       p.Expected,
		Processed:      p.Processed,
		ExpectedTotal:  p.ExpectedTotal,
		ProcessedTotal: p.ProcessedTotal,
		Difference:     p.Difference,
		Matched:        p.Matched,
		Comment:        p.Comment,
		CreatedAt:      p.CreatedAt,
	}
}

// CashProcessingsFromDomain converts domain processing records to responses.
func CashProcessingsFromDomain(records []*domain.CashProcessing) []*CashProcessingResponse {
	result := make([]*CashProcessingResponse, len(records))
	for i, p := range records {
		result[i] = CashProcessingFromDomain(p)
	}
	return result
}

// CertificateResponse represents a balance certificate.
type CertificateResponse struct {
	Date                  domain.CalendarDate       `json:"date"`
	BroughtForward        domain.DenominationVector `json:"brought_forward"`
	BroughtForwardBalance decimal.Decimal           `json:"brought_forward_balance"`
	DayCredits            domain.DenominationVector `json:"day_credits"`
	DayDebits             domain.DenominationVector `json:"day_debits"`
	Closing               domain.DenominationVector `json:"closing"`
	ClosingBalance        decimal.Decimal           `json:"closing_balance"`
}

// CertificateFromDomain converts a domain certificate view to a response.
func CertificateFromDomain(v *domain.CertificateView) *CertificateResponse {
	return &CertificateResponse{
		Date:                  v.Date,
		BroughtForward:        v.BroughtForward,
		BroughtForwardBalance: v.BroughtForwardBalance,
		DayCredits:            v.DayCredits,
		DayDebits:             v.DayDebits,
		Closing:               v.Closing,
		ClosingBalance:        v.ClosingBalance,
	}
}

// ListVaultsResponse wraps a vault listing.
type ListVaultsResponse struct {
	Vaults []*VaultResponse `json:"vaults"`
	Total  int64            `json:"total"`
}

// ListClientsResponse wraps a client listing.
type ListClientsResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int64             `json:"total"`
}

// ListEntriesResponse wraps a ledger-entry listing.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}

// ListCashCountsResponse wraps a cash-count listing.
type ListCashCountsResponse struct {
	CashCounts []*CashCountResponse `json:"cash_counts"`
	Total      int64                `json:"total"`
}

// ListCashProcessingResponse wraps a processing-history listing.
type ListCashProcessingResponse struct {
	Records []*CashProcessingResponse `json:"records"`
	Total   int64                     `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
