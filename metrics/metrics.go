// Package metrics defines the prometheus collectors shared by the database
// layer. Services importing carddb get query metrics for free through the
// pool's tracer; anything HTTP-facing registers its own collectors elsewhere.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DBQueryDuration tracks query latency in seconds by statement kind
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks failed queries by statement kind
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total failed database queries",
		},
		[]string{"query"},
	)

	// DBConnectionsCurrent tracks pool connections by state (idle/acquired/constructing)
	DBConnectionsCurrent = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_pool_connections_current",
			Help: "Current database pool connections by state",
		},
		[]string{"state"},
	)
)
