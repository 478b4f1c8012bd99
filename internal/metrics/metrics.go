package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SelectionsTotal   *prometheus.CounterVec
	SelectionAttempts prometheus.Histogram
	OracleErrors      prometheus.Counter
	RequestSeconds    *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		SelectionsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "target_selections_total",
			Help: "Total number of completed target selections, by outcome.",
		}, []string{"outcome"}),
		SelectionAttempts: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "target_selection_attempts",
			Help:    "Number of sampling attempts spent per selection.",
			Buckets: prometheus.LinearBuckets(1, 1, 15),
		}),
		OracleErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "target_selection_oracle_errors_total",
			Help: "Total number of errors received from the reverse-geocoding provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "target_selection_oracle_request_duration_seconds",
			Help:    "Duration of requests to the reverse-geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}
}
