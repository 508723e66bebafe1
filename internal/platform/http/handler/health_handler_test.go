package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter() *gin.Engine {
	r := gin.New()
	r.GET("/healthz", Health)
	r.HEAD("/healthz", Health)
	r.OPTIONS("/healthz", Health)
	r.POST("/healthz", Health)
	return r
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method     string
		wantStatus int
		wantBody   bool
	}{
		{http.MethodGet, http.StatusOK, true},
		{http.MethodHead, http.StatusOK, false},
		{http.MethodOptions, http.StatusNoContent, false},
		{http.MethodPost, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			setupRouter().ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if w.Header().Get("Cache-Control") != "no-store" {
				t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
			}
			if !tt.wantBody {
				if w.Body.Len() != 0 {
					t.Errorf("expected empty body, got %d bytes", w.Body.Len())
				}
				return
			}
			var response map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response["status"] != "ok" {
				t.Errorf("expected status 'ok', got %q", response["status"])
			}
		})
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 3, 6, 15, 4, 5, 0, time.FixedZone("CET", 3600))
	r := gin.New()
	r.GET("/health", Status(func() time.Time { return fixed }))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	want := `{"status":"ok","timestamp":"2024-03-06T14:04:05Z"}`
	if got := w.Body.String(); got != want {
		t.Errorf("expected body %s, got %s", want, got)
	}
}
