package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeConfirmed = "confirmed"
	OutcomeFailed    = "failed"
	OutcomeInvalid   = "invalid"
)

var (
	AccountSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "corebank_client",
			Name:      "account_submissions_total",
			Help:      "Create-account submissions by terminal outcome",
		},
		[]string{"outcome"},
	)

	TransactionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "corebank_client",
			Name:      "transactions_recorded_total",
			Help:      "Transactions applied to the local stores",
		},
		[]string{"kind"},
	)

	TransactionsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "corebank_client",
			Name:      "transactions_rejected_total",
			Help:      "Transaction intents rejected by validation",
		},
	)

	RemoteCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "corebank_client",
			Name:      "remote_call_duration_seconds",
			Help:      "Round-trip latency of calls to the remote banking service",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	InflightSubmissions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "corebank_client",
			Name:      "inflight_submissions",
			Help:      "Create-account submissions currently waiting on the remote service",
		},
	)
)
