// Package metrics registers the wallet's Prometheus collectors, served on
// the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PurchasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinledger",
		Name:      "purchases_total",
		Help:      "Purchase requests resolved with access, by access type.",
	}, []string{"access_type"})

	PurchaseFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinledger",
		Name:      "purchase_failures_total",
		Help:      "Purchase requests rejected before commit, by reason.",
	}, []string{"reason"})

	WithdrawalTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinledger",
		Name:      "withdrawal_transitions_total",
		Help:      "Withdrawal state machine transitions, by target status.",
	}, []string{"to"})

	NotifierDeliveriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coinledger",
		Name:      "notifier_deliveries_total",
		Help:      "Balance snapshots delivered to subscribers.",
	})

	NotifierPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coinledger",
		Name:      "notifier_panics_total",
		Help:      "Subscriber callbacks recovered from a panic.",
	})
)
