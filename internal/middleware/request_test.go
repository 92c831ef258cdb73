package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/genenet/internal/middleware"
)

func TestRequestID_AlwaysServerGenerated(t *testing.T) {
	var seen, clientSeen string

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/test", func(c *gin.Context) {
		seen = c.GetString(middleware.RequestIDKey)
		clientSeen = c.GetString("client_request_id")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("request id %q is not a UUID", seen)
	}

	if w.Header().Get(middleware.RequestIDHeader) != seen {
		t.Errorf("header = %q, want %q", w.Header().Get(middleware.RequestIDHeader), seen)
	}

	if clientSeen != "client-supplied" {
		t.Errorf("client_request_id = %q", clientSeen)
	}
}

func TestLogger_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer

	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log))
	r.GET("/ok", func(c *gin.Context) {
		c.Set(middleware.RunIDKey, "run-1")
		c.Status(http.StatusOK)
	})
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}

	var first, second map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}

	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}

	if first["level"] != "info" || first["run_id"] != "run-1" || first["request_id"] == nil {
		t.Errorf("first line = %v", first)
	}

	if second["level"] != "error" {
		t.Errorf("second line level = %v, want error", second["level"])
	}
}

func TestMaxBodySize_RejectsDeclaredLength(t *testing.T) {
	r := gin.New()
	r.Use(middleware.MaxBodySize(8))
	r.POST("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("0123456789")))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("0123")))

	if w.Code != http.StatusOK {
		t.Errorf("small body status = %d, want 200", w.Code)
	}
}
