// Package metrics defines and registers the custom Prometheus metrics for
// the schedule tracker. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the default
// registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "schedule"

// StatusTransitionsTotal counts persisted schedule status changes.
// Labels:
//   - from: previous status (e.g. "pending")
//   - to: new status ("in_progress", "completed", ...)
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of schedule status transitions written to storage.",
	},
	[]string{"from", "to"},
)

// GridBuildDuration measures how long a calendar grid build takes, including
// the status-refresh pass over the filtered schedule set.
// Label:
//   - scope: "month" or "week"
var GridBuildDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "grid_build_duration_seconds",
		Help:      "Duration of calendar grid construction.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"scope"},
)

// ProjectCompletionsTotal counts project completion toggles.
// Label:
//   - result: "completed", "reopened" or "blocked"
var ProjectCompletionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_completions_total",
		Help:      "Total number of project completion toggles, by outcome.",
	},
	[]string{"result"},
)

// HolidayLookupErrorsTotal counts holiday oracle failures. Failed lookups are
// treated as "not a holiday", so this counter is the only signal that the
// oracle is unhealthy.
var HolidayLookupErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "holiday_lookup_errors_total",
		Help:      "Total number of failed holiday oracle lookups.",
	},
)
