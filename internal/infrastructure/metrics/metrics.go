package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Cash count metrics
	CashCountsCreated prometheus.Counter
	CashCountsDeleted prometheus.Counter

	// Reconciliation metrics
	ReconciliationsPerformed *prometheus.CounterVec
	ReconciliationDifference prometheus.Histogram

	// Vault metrics
	VaultReceipts    prometheus.Counter
	VaultWithdrawals prometheus.Counter
	VaultBalance     *prometheus.GaugeVec

	// Certificate metrics
	CertificatesBuilt      *prometheus.CounterVec
	CertificateCacheHits   prometheus.Counter
	CertificateCacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Cash count metrics
		CashCountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vaultledger_cash_counts_created_total",
			Help: "Total number of cash counts registered",
		}),
		CashCountsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vaultledger_cash_counts_deleted_total",
			Help: "Total number of pending cash counts deleted",
		}),

		// Reconciliation metrics
		ReconciliationsPerformed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vaultledger_reconciliations_total",
				Help: "Total reconciliations by outcome status",
			},
			[]string{"status"},
		),
		ReconciliationDifference: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vaultledger_reconciliation_difference",
			Help:    "Absolute difference between processed and expected totals",
			Buckets: []float64{0, 50, 100, 500, 1000, 5000, 10000, 100000},
		}),

		// Vault metrics
		VaultReceipts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vaultledger_vault_receipts_total",
			Help: "Total number of vault receipts",
		}),
		VaultWithdrawals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vaultledger_vault_withdrawals_total",
			Help: "Total number of vault withdrawals",
		}),
		VaultBalance: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vaultledger_vault_balance",
				Help: "Current vault balance",
			},
			[]string{"vault_id"},
		),

		// Certificate metrics
		CertificatesBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vaultledger_certificates_built_total",
				Help: "Total balance certificates built by scope",
			},
			[]string{"scope"},
		),
		CertificateCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vaultledger_certificate_cache_hits_total",
			Help: "Total certificate cache hits",
		}),
		CertificateCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vaultledger_certificate_cache_misses_total",
			Help: "Total certificate cache misses",
		}),
	}
}
