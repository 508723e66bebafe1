package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_dashboard/internal/feature/admin/transport/handler"
)

type mockCacheAdmin struct {
	PurgeFunc func(ctx context.Context, prefix string) (int64, error)
}

func (m *mockCacheAdmin) Purge(ctx context.Context, prefix string) (int64, error) {
	return m.PurgeFunc(ctx, prefix)
}

func TestAdminHandler_PurgeCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		purge          func(ctx context.Context, prefix string) (int64, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "purge by prefix",
			url:  "/admin/cache?prefix=eu-quote:",
			purge: func(ctx context.Context, prefix string) (int64, error) {
				if prefix != "eu-quote:" {
					return 0, errors.New("unexpected prefix")
				}
				return 12, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"prefix":"eu-quote:","deleted":12}`,
		},
		{
			name:           "purge everything",
			url:            "/admin/cache",
			purge:          func(ctx context.Context, prefix string) (int64, error) { return 3, nil },
			expectedStatus: http.StatusOK,
			expectedBody:   `{"prefix":"","deleted":3}`,
		},
		{
			name:           "store failure",
			url:            "/admin/cache?prefix=fx:",
			purge:          func(ctx context.Context, prefix string) (int64, error) { return 0, errors.New("redis down") },
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"cache purge failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewAdminHandler(&mockCacheAdmin{PurgeFunc: tt.purge})

			router := gin.New()
			router.DELETE("/admin/cache", h.PurgeCache)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodDelete, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
