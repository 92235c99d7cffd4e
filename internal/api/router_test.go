package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Conceptual-Machines/magda-scales/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment:      "test",
		DefaultKey:       "C",
		DefaultScaleType: "major",
		DefaultExtra:     1,
		LetterStyle:      config.LetterStyleUnicode,
	}
	return SetupRouter(cfg, nil, "test")
}

func TestSetupRouter_Health(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_Preflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/letters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
}

func TestSetupRouter_Routes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/api/metrics", http.StatusOK},
		{"/api/v1/scales", http.StatusOK},
		{"/api/v1/scales/dorian", http.StatusOK},
		{"/api/v1/scales/major/modes/3", http.StatusOK},
		{"/api/v1/chromatic", http.StatusOK},
		{"/api/v1/letters?key=Bb&type=minor", http.StatusOK},
		{"/api/v1/shifted?key=E&shift=-5", http.StatusOK},
		{"/api/v1/chords?key=G&shifts=0,2,4,6", http.StatusOK},
		{"/api/v1/classify?s=C%23", http.StatusOK},
		{"/api/v1/respell?letter=Bb&sharp=true", http.StatusOK},
		{"/api/v1/shifted?shift=-9223372036854775808", http.StatusOK},
		{"/api/v1/letters?key=Q", http.StatusBadRequest},
		{"/api/v1/scales/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}
