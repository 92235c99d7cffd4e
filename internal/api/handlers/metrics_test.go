package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "1.50s", formatUptime(1500*time.Millisecond))
	assert.Equal(t, "2m3.00s", formatUptime(2*time.Minute+3*time.Second))
	assert.Equal(t, "1h0m5.00s", formatUptime(time.Hour+5*time.Second))
}

func TestGetMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewMetricsHandler("v1.2.3", nil)

	router := gin.New()
	router.GET("/api/metrics", h.GetMetrics)
	router.GET("/health", HealthCheck)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp MetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v1.2.3", resp.Version)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, float64(19), resp.API["scale_types"])
	assert.Equal(t, map[string]interface{}{"enabled": false}, resp.API["cloudwatch"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","catalog":{"scale_types":19}}`, w.Body.String())
}
