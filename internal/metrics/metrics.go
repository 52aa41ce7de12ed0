// Package metrics registers the prometheus collectors exposed on the
// private listener.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_http_requests_total",
		Help: "Handled HTTP requests by method and status code.",
	}, []string{"method", "status"})

	// NotesCreatedTotal counts successful note inserts.
	NotesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notes_created_total",
		Help: "Notes successfully created.",
	})

	// NotesTotal tracks the current row count, refreshed by the stats task.
	NotesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "notes_total",
		Help: "Current number of persisted notes.",
	})
)
