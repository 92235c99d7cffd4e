package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DisabledOutsideProduction(t *testing.T) {
	client, err := NewClient(context.Background(), "development", "")
	require.NoError(t, err)
	assert.False(t, client.Enabled())
	assert.Equal(t, defaultNamespace, client.namespace)

	// No-ops when disabled
	client.RecordAPIRequest("/api/v1/letters", 200, time.Millisecond)
	client.RecordComputation("letters", "major", 8)
	client.RecordLookupFailure("scale_type")
	assert.NoError(t, client.putMetric(context.Background(), "x", 1, "Count", nil))
}

func TestClient_NilIsDisabled(t *testing.T) {
	var client *Client
	assert.False(t, client.Enabled())
	client.RecordLookupFailure("key")
}

func TestSentryMetrics_WithoutClient(t *testing.T) {
	m := NewSentryMetrics()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordAPIRequest(ctx, "/api/v1/chords", 404, 2*time.Millisecond)
		m.RecordComputation(ctx, Computation{
			Operation: "chords",
			Key:       "C",
			ScaleType: "major",
			Shifts:    []int{0, 2, 4},
			Letters:   24,
			Success:   true,
		}, time.Microsecond)
	})
}
