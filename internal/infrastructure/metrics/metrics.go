// Package metrics registers the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Transfer metrics
	TransfersExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paycore_transfers_executed_total",
		Help: "Total number of transfers executed successfully",
	})
	TransfersReplayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paycore_transfers_replayed_total",
		Help: "Total number of transfer requests rejected as already processed",
	})
	TransferErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paycore_transfer_errors_total",
		Help: "Total number of failed transfers by reason",
	}, []string{"reason"})
	TransferDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "paycore_transfer_duration_seconds",
		Help:    "Transfer execution duration in seconds",
		Buckets: prometheus.DefBuckets,
	})
	VersionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paycore_version_conflicts_total",
		Help: "Total number of optimistic locking conflicts observed",
	})

	// Account metrics
	AccountsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paycore_accounts_created_total",
		Help: "Total number of accounts created",
	})
	DepositsExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paycore_deposits_executed_total",
		Help: "Total number of deposits executed",
	})

	// Outbox metrics
	OutboxMessagesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paycore_outbox_messages_published_total",
		Help: "Total number of outbox messages published to the broker",
	})
	OutboxPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paycore_outbox_publish_failures_total",
		Help: "Total number of outbox publish attempts that failed",
	})

	// API metrics
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paycore_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paycore_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
