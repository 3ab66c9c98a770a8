package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	statusUpdatesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pharmacy_service",
			Subsystem: "kafka_consumer",
			Name:      "status_updates_processed_total",
			Help:      "Total number of successfully applied order status updates",
		},
	)

	statusUpdatesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pharmacy_service",
			Subsystem: "kafka_consumer",
			Name:      "status_updates_failed_total",
			Help:      "Total number of failed order status updates",
		},
	)

	statusUpdatesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pharmacy_service",
			Subsystem: "kafka_consumer",
			Name:      "status_updates_dlq_total",
			Help:      "Total number of status updates written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pharmacy_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	statusUpdateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pharmacy_service",
			Subsystem: "kafka_consumer",
			Name:      "status_update_duration_seconds",
			Help:      "Histogram of status update processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	statusUpdatesInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pharmacy_service",
			Subsystem: "kafka_consumer",
			Name:      "status_updates_in_progress",
			Help:      "Number of status updates currently being processed",
		},
	)
)

var (
	trackingRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pharmacy_service",
			Subsystem: "http",
			Name:      "tracking_requests_total",
			Help:      "Total number of order tracking requests",
		},
		[]string{"status"},
	)

	trackingRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pharmacy_service",
			Subsystem: "http",
			Name:      "tracking_request_duration_seconds",
			Help:      "Histogram of order tracking request durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	trackingRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pharmacy_service",
			Subsystem: "http",
			Name:      "tracking_requests_in_progress",
			Help:      "Number of in-progress order tracking requests",
		},
	)
)

var (
	checkoutTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pharmacy_service",
			Subsystem: "checkout",
			Name:      "transitions_total",
			Help:      "Total number of checkout steps reached through continue",
		},
		[]string{"step"},
	)

	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pharmacy_service",
			Subsystem: "checkout",
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed through checkout or reorder",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		statusUpdatesProcessed,
		statusUpdatesFailed,
		statusUpdatesDLQ,
		commitErrors,
		statusUpdateDuration,
		statusUpdatesInProgress,

		trackingRequestTotal,
		trackingRequestDuration,
		trackingRequestsInProgress,

		checkoutTransitions,
		ordersPlaced,
	)
}
