// Package metrics holds the service's prometheus collectors
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var LedgerCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "raidplanner_ledger_calculations_total",
	Help: "Resource requirement calculations by outcome",
}, []string{"outcome"})

var ObtainedUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "raidplanner_obtained_updates_total",
	Help: "Obtained resource updates by outcome",
}, []string{"outcome"})

var PriorityPasses = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "raidplanner_priority_passes_total",
	Help: "Priority ranking passes by outcome",
}, []string{"outcome"})

var PriorityPassMembers = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "raidplanner_priority_pass_members",
	Help:    "Number of member ledgers in a priority pass",
	Buckets: []float64{1, 2, 4, 8, 16, 24, 32},
})

var SchedulesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "raidplanner_schedules_created_total",
	Help: "Schedules created by recurrence type",
}, []string{"recurrence"})

var OccurrencesGenerated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "raidplanner_occurrences_generated_total",
	Help: "Recurring occurrences generated from templates",
})

var RequestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "raidplanner_rpc_requests_total",
	Help: "RPC requests by method and status code",
}, []string{"method", "code"})

var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "raidplanner_rpc_duration_seconds",
	Help: "Duration of RPC handling",
}, []string{"method"})

var RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "raidplanner_rpc_rate_limited_total",
	Help: "RPC requests rejected by the rate limiter",
}, []string{"method"})

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Outcome returns the outcome label for err
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
