package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// Computation describes one call into the scale engine
type Computation struct {
	Operation string // letters, shifted, chords, modes
	Key       string
	ScaleType string
	Shifts    []int
	Letters   int
	Success   bool
}

// RecordComputation records a scale engine call as a child span of the request
func (m *SentryMetrics) RecordComputation(ctx context.Context, c Computation, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "scales."+c.Operation)
	defer span.Finish()

	span.SetTag("key", c.Key)
	span.SetTag("scale_type", c.ScaleType)
	span.SetTag("success", fmt.Sprintf("%t", c.Success))

	span.SetData("duration_us", duration.Microseconds())
	span.SetData("letters", c.Letters)
	if len(c.Shifts) > 0 {
		span.SetData("shifts", c.Shifts)
	}

	if c.Success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusNotFound
	}

	span.Description = fmt.Sprintf("%s %s %s", c.Operation, c.Key, c.ScaleType)
}
