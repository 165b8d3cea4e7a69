package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotaDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dreamvault_quota_denials_total",
		Help: "Quota checks rejected because the monthly allowance was spent.",
	}, []string{"feature", "plan"})

	QuotaConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dreamvault_quota_consumed_total",
		Help: "Successfully consumed quota units.",
	}, []string{"feature", "plan"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dreamvault_rate_limited_total",
		Help: "Requests rejected by the fixed-window rate limiter.",
	}, []string{"route"})

	ProviderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dreamvault_provider_request_duration_seconds",
		Help:    "Latency of completion-provider calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider", "feature"})

	ProviderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dreamvault_provider_errors_total",
		Help: "Failed completion-provider calls.",
	}, []string{"provider", "feature"})
)
