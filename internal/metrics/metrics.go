package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contact submission outcomes.
const (
	ResultAccepted    = "accepted"
	ResultSpam        = "spam"
	ResultInvalid     = "invalid"
	ResultRateLimited = "rate_limited"
	ResultError       = "error"
)

// Email delivery outcomes.
const (
	StatusSent    = "sent"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
	StatusDropped = "dropped"
)

var (
	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by outcome",
		},
		[]string{"result"},
	)

	NotificationEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_total",
			Help: "Owner notification emails by delivery status",
		},
		[]string{"status"},
	)

	ReplyEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reply_emails_total",
			Help: "Operator reply emails by delivery status",
		},
		[]string{"status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)
)

func IncContactSubmission(result string) {
	ContactSubmissions.WithLabelValues(result).Inc()
}

func IncNotificationEmail(status string) {
	NotificationEmails.WithLabelValues(status).Inc()
}

func IncReplyEmail(status string) {
	ReplyEmails.WithLabelValues(status).Inc()
}

// RecordHTTPRequest observes one request; route should be the mux pattern, not the raw path.
func RecordHTTPRequest(method, route, status string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
