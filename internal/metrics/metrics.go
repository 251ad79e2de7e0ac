package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gestorai",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gestorai",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gestorai",
			Subsystem: "chat",
			Name:      "completions_total",
			Help:      "Completion provider calls by outcome",
		},
		[]string{"model", "outcome"},
	)

	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gestorai",
			Subsystem: "chat",
			Name:      "completion_duration_seconds",
			Help:      "Completion provider latency",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"model"},
	)

	ConversationsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gestorai",
			Subsystem: "chat",
			Name:      "conversations_created_total",
			Help:      "Conversations created by origin",
		},
		[]string{"origin"},
	)

	AuthRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gestorai",
			Subsystem: "auth",
			Name:      "requests_total",
			Help:      "Register and login attempts by outcome",
		},
		[]string{"action", "outcome"},
	)

	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gestorai",
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Inbound webhook events by platform and outcome",
		},
		[]string{"platform", "outcome"},
	)

	TasksImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gestorai",
			Subsystem: "tasks",
			Name:      "imported_total",
			Help:      "Tasks created through CSV import",
		},
	)
)

// Completion outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

func RecordRequest(method, route, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordCompletion(model, outcome string, duration time.Duration) {
	CompletionsTotal.WithLabelValues(model, outcome).Inc()
	CompletionDuration.WithLabelValues(model).Observe(duration.Seconds())
}

func RecordConversationCreated(origin string) {
	ConversationsCreatedTotal.WithLabelValues(origin).Inc()
}

func RecordAuth(action, outcome string) {
	AuthRequestsTotal.WithLabelValues(action, outcome).Inc()
}

func RecordWebhook(platform, outcome string) {
	WebhookEventsTotal.WithLabelValues(platform, outcome).Inc()
}

func RecordTasksImported(n int) {
	TasksImportedTotal.Add(float64(n))
}
