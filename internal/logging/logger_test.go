package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func TestNew_LevelFallback(t *testing.T) {
	if got := New("debug", nil).Level; got != logrus.DebugLevel {
		t.Errorf("expected debug, got %s", got)
	}
	if got := New("nonsense", nil).Level; got != logrus.InfoLevel {
		t.Errorf("expected info fallback, got %s", got)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := New("info", &buf)

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ok", func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Status(http.StatusOK)
	})
	r.GET("/fail", func(c *gin.Context) {
		c.Error(errors.New("boom"))
		c.Status(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	if line["message"] != "request complete" {
		t.Errorf("expected message 'request complete', got %v", line["message"])
	}
	if line["severity"] != "info" {
		t.Errorf("expected severity info, got %v", line["severity"])
	}
	if line["user_id"] != "user-1" {
		t.Errorf("expected user_id user-1, got %v", line["user_id"])
	}

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	line = nil
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	if line["severity"] != "error" {
		t.Errorf("expected severity error, got %v", line["severity"])
	}
}
