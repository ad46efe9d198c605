package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's Prometheus metrics.
type Metrics struct {
	// Payment metrics
	PaymentsCreated prometheus.Counter
	PaymentsUpdated prometheus.Counter
	PaymentsDeleted prometheus.Counter
	PaymentAmount   prometheus.Histogram
	PaymentErrors   *prometheus.CounterVec

	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountsDeleted   prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Dashboard metrics
	DashboardCacheHits   prometheus.Counter
	DashboardCacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		PaymentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payledger_payments_created_total",
			Help: "Total number of payments created",
		}),
		PaymentsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payledger_payments_updated_total",
			Help: "Total number of payments updated",
		}),
		PaymentsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payledger_payments_deleted_total",
			Help: "Total number of payments deleted",
		}),
		PaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payledger_payment_amount",
			Help:    "Payment amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		PaymentErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payledger_payment_errors_total",
				Help: "Total number of payment errors by type",
			},
			[]string{"error_type"},
		),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payledger_accounts_deleted_total",
			Help: "Total number of accounts deleted",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payledger_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		DashboardCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payledger_dashboard_cache_hits_total",
			Help: "Dashboard summary cache hits",
		}),
		DashboardCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payledger_dashboard_cache_misses_total",
			Help: "Dashboard summary cache misses",
		}),
	}
}
