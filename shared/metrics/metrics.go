package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	BookingTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chefbook_booking_transitions_total",
			Help: "Booking lifecycle transitions by action and outcome",
		},
		[]string{"action", "result"},
	)

	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chefbook_bookings_created_total",
			Help: "Bookings created in pending state",
		},
	)

	WizardCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chefbook_wizard_completions_total",
			Help: "Wizard sessions that reached their completion handler",
		},
		[]string{"flow", "result"},
	)

	WizardSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chefbook_wizard_sessions_active",
			Help: "Wizard sessions currently held in memory",
		},
	)

	NotificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chefbook_notifications_dispatched_total",
			Help: "Notification dispatch attempts by kind and outcome",
		},
		[]string{"kind", "result"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chefbook_http_requests_total",
			Help: "HTTP requests by method, route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chefbook_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}

	return ResultSuccess
}
