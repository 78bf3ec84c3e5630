package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncContactSubmission(t *testing.T) {
	before := testutil.ToFloat64(ContactSubmissions.WithLabelValues(ResultSpam))
	IncContactSubmission(ResultSpam)
	after := testutil.ToFloat64(ContactSubmissions.WithLabelValues(ResultSpam))

	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestIncNotificationEmail(t *testing.T) {
	before := testutil.ToFloat64(NotificationEmails.WithLabelValues(StatusSkipped))
	IncNotificationEmail(StatusSkipped)
	IncNotificationEmail(StatusSkipped)
	after := testutil.ToFloat64(NotificationEmails.WithLabelValues(StatusSkipped))

	if after-before != 2 {
		t.Errorf("expected counter to increase by 2, got %v", after-before)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	RecordHTTPRequest("GET", "GET /api/health", "200", 3*time.Millisecond)

	if n := testutil.CollectAndCount(HTTPRequestDuration); n == 0 {
		t.Error("expected at least one histogram series")
	}
}
