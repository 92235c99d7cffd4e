package logger

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestFormatFields(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
	assert.Equal(t, "{a=1, b=x, c=0.50}", formatFields(Fields{"c": 0.5, "b": "x", "a": 1}))
}

func TestLevels(t *testing.T) {
	buf := captureLog(t)

	Info("computed", Fields{"key": "F"})
	Warn("scale type not found", Fields{"name": "nope"})
	Debug("debugging", nil)
	Error("failed", errors.New("boom"), Fields{"request_id": "r1"})

	out := buf.String()
	assert.Contains(t, out, "[INFO] computed {key=F}")
	assert.Contains(t, out, "[WARN] scale type not found {name=nope}")
	assert.Contains(t, out, "[DEBUG] debugging")
	assert.Contains(t, out, "[ERROR] failed: boom {request_id=r1}")
}

func TestWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/letters?key=F&type=major", nil)
	c.Set("request_id", "abc")

	fields := WithContext(c)
	assert.Equal(t, "abc", fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/v1/letters", fields["path"])
	assert.Equal(t, "F", fields["key"])
	assert.Equal(t, "major", fields["scale_type"])
}
