// Package metrics declares the Prometheus collectors of the bonus ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "keytoheart"

// LedgerMutations counts committed balance changes by direction (credit, debit).
var LedgerMutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "mutations_total",
	Help:      "Committed balance mutations by direction",
}, []string{"direction"})

// LedgerVolume sums the absolute points moved by direction.
var LedgerVolume = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "points_total",
	Help:      "Bonus points moved by direction",
}, []string{"direction"})

// LedgerRejections counts mutations refused before or at commit.
var LedgerRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "rejections_total",
	Help:      "Balance mutations rejected by reason",
}, []string{"reason"})

var OrderAccruals = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "orders",
	Name:      "accruals_total",
	Help:      "Order status trigger outcomes for delivered orders",
}, []string{"outcome"})

var OrderReversals = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "orders",
	Name:      "reversals_total",
	Help:      "Accrual reversals for canceled or deleted orders",
}, []string{"outcome"})

var VerificationCodes = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "auth",
	Name:      "verification_codes_total",
	Help:      "Phone verification code events",
}, []string{"event"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method and status",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "status"})

const (
	DirectionCredit = "credit"
	DirectionDebit  = "debit"
)

func Direction(delta int64) string {
	if delta < 0 {
		return DirectionDebit
	}
	return DirectionCredit
}
