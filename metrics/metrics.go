package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the domain counters exported on /metrics.
type Metrics struct {
	EntriesLogged  prometheus.Counter
	EntriesRemoved prometheus.Counter
	NormsComputed  *prometheus.CounterVec
	HTTPRequests   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EntriesLogged: f.NewCounter(prometheus.CounterOpts{
			Namespace: "nutrilog",
			Name:      "eaten_products_logged_total",
			Help:      "Eaten product entries created.",
		}),
		EntriesRemoved: f.NewCounter(prometheus.CounterOpts{
			Namespace: "nutrilog",
			Name:      "eaten_products_removed_total",
			Help:      "Eaten product entries removed by their owner.",
		}),
		NormsComputed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nutrilog",
			Name:      "daily_norms_computed_total",
			Help:      "Daily calorie norms computed, by mode.",
		}, []string{"mode"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nutrilog",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status.",
		}, []string{"method", "route", "status"}),
	}
}
