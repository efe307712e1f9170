package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ActionMetrics holds all Prometheus metrics for the action service.
type ActionMetrics struct {
	ActionsTotal    *prometheus.CounterVec
	AuthTotal       *prometheus.CounterVec
	PageCacheHits   prometheus.Counter
	PageCacheMisses prometheus.Counter
}

// NewActionMetrics initializes and registers the Prometheus metrics.
func NewActionMetrics() *ActionMetrics {
	return &ActionMetrics{
		ActionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "invoicer",
			Subsystem: "actions",
			Name:      "invoice_actions_total",
			Help:      "Total number of invoice form actions by action and outcome.",
		}, []string{"action", "outcome"}), // outcome: success, rejected, db_error
		AuthTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "invoicer",
			Subsystem: "auth",
			Name:      "sign_in_total",
			Help:      "Total number of credential sign-in attempts by outcome.",
		}, []string{"outcome"}), // outcome: success, invalid_credentials, error
		PageCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "invoicer",
			Subsystem: "cache",
			Name:      "page_cache_hits_total",
			Help:      "Total number of page cache hits.",
		}),
		PageCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "invoicer",
			Subsystem: "cache",
			Name:      "page_cache_misses_total",
			Help:      "Total number of page cache misses.",
		}),
	}
}
