package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics. HTTP-level metrics live in the HTTP middleware.
var (
	TransactionsPosted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rollinpos_transactions_posted_total",
			Help: "Total number of transactions posted, by kind",
		},
		[]string{"kind"},
	)

	TransfersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollinpos_transfers_created_total",
		Help: "Total number of completed transfers",
	})

	TransferCompensations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rollinpos_transfer_compensations_total",
			Help: "Total number of transfer rollbacks, by failed step",
		},
		[]string{"step"},
	)

	// BalanceDrift counts balance-ledger updates that failed after the
	// owning posting had already committed. Non-zero values mean stored
	// balances no longer match the transaction log.
	BalanceDrift = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rollinpos_balance_drift_total",
			Help: "Total number of uncompensated balance update failures, by source",
		},
		[]string{"source"},
	)

	SnapshotsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollinpos_snapshots_computed_total",
		Help: "Total number of daily cash snapshots computed",
	})
)
