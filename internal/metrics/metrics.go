package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AdviceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advice_requests_total",
			Help: "Total number of advice requests answered, by language and origin",
		},
		[]string{"language", "origin"},
	)

	AdviceFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advice_fallbacks_total",
			Help: "Total number of fallback substitutions, by reason",
		},
		[]string{"reason"},
	)

	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inference_request_duration_seconds",
			Help:    "Duration of outbound inference calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"provider"},
	)
)
