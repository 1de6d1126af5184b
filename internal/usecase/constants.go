package usecase

import "time"

const (
	// historyFetchLimit bounds how much ledger history a certificate build
	// pulls in one go. Vault histories are a few entries per day.
	historyFetchLimit = 10000

	// certificateCacheTTL is how long built certificates stay cached.
	// Certificates for past days are stable; the live day changes as
	// movements post, so the window stays short.
	certificateCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	defaultPageSize = 20
	maxPageSize     = 100
)

// clampPage normalizes pagination parameters.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
