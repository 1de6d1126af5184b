package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/infrastructure/metrics"
)

// CertificateUseCase builds balance certificates for vaults and client
// accounts. The computation itself is pure (domain.BuildCertificate); this
// layer fetches the inputs and caches the result per (account, date).
type CertificateUseCase struct {
	vaultRepo  VaultRepository
	clientRepo ClientRepository
	entryRepo  EntryRepository
	cache      Cache
	policy     domain.ReversalPolicy
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewCertificateUseCase creates a new CertificateUseCase. cache may be nil.
func NewCertificateUseCase(
	vaultRepo VaultRepository,
	clientRepo ClientRepository,
	entryRepo EntryRepository,
	cache Cache,
	policy domain.ReversalPolicy,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *CertificateUseCase {
	return &CertificateUseCase{
		vaultRepo:  vaultRepo,
		clientRepo: clientRepo,
		entryRepo:  entryRepo,
		cache:      cache,
		policy:     policy,
		logger:     logger,
		metrics:    metrics,
	}
}

// VaultCertificate builds the balance certificate for a vault as of day.
func (uc *CertificateUseCase) VaultCertificate(ctx context.Context, vaultID string, day domain.CalendarDate) (*domain.CertificateView, error) {
	cacheKey := fmt.Sprintf("certificate:vault:%s:%s", vaultID, day)
	if view, ok := uc.cached(ctx, cacheKey); ok {
		return view, nil
	}

	vault, err := uc.vaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListByVault(ctx, vaultID, historyFetchLimit, 0)
	if err != nil {
		return nil, err
	}

	view := domain.BuildCertificate(entries, day, vault.Denominations, vault.Balance, uc.policy)
	uc.store(ctx, cacheKey, &view)

	if uc.metrics != nil {
		uc.metrics.CertificatesBuilt.WithLabelValues("vault").Inc()
	}

	return &view, nil
}

// ClientCertificate builds the balance certificate for a client account as of
// day, from the client-scoped ledger.
func (uc *CertificateUseCase) ClientCertificate(ctx context.Context, clientID string, day domain.CalendarDate) (*domain.CertificateView, error) {
	cacheKey := fmt.Sprintf("certificate:client:%s:%s", clientID, day)
	if view, ok := uc.cached(ctx, cacheKey); ok {
		return view, nil
	}

	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListByClient(ctx, clientID, historyFetchLimit, 0)
	if err != nil {
		return nil, err
	}

	view := domain.BuildCertificate(entries, day, client.Denominations, client.Balance, uc.policy)
	uc.store(ctx, cacheKey, &view)

	if uc.metrics != nil {
		uc.metrics.CertificatesBuilt.WithLabelValues("client").Inc()
	}

	return &view, nil
}

func (uc *CertificateUseCase) cached(ctx context.Context, key string) (*domain.CertificateView, bool) {
	if uc.cache == nil {
		return nil, false
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil || raw == "" {
		if uc.metrics != nil {
			uc.metrics.CertificateCacheMisses.Inc()
		}
		return nil, false
	}

	var view domain.CertificateView
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("dropping undecodable cached certificate")
		_ = uc.cache.Delete(ctx, key)
		return nil, false
	}

	if uc.metrics != nil {
		uc.metrics.CertificateCacheHits.Inc()
	}

	return &view, true
}

func (uc *CertificateUseCase) store(ctx context.Context, key string, view *domain.CertificateView) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, string(raw), certificateCacheTTL); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("certificate cache write failed")
	}
}
