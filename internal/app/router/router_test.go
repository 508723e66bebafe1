package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/di"
	adminhandler "stock_dashboard/internal/feature/admin/transport/handler"
	adminusecase "stock_dashboard/internal/feature/admin/usecase"
	eudomain "stock_dashboard/internal/feature/eulisting/domain"
	euhandler "stock_dashboard/internal/feature/eulisting/transport/handler"
	euusecase "stock_dashboard/internal/feature/eulisting/usecase"
	mhhandler "stock_dashboard/internal/feature/markethours/transport/handler"
	mhusecase "stock_dashboard/internal/feature/markethours/usecase"
	qentity "stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/platform/cache"
	jwtmw "stock_dashboard/internal/platform/jwt"
)

const testSecret = "router-test-secret"

// noListings は常に空の結果を返すQuoteLookupです。
type noListings struct{}

func (noListings) CheckConfig() error { return nil }

func (noListings) GetQuotes(context.Context, []string, string) ([]qentity.Quote, error) {
	return nil, nil
}

func (noListings) Search(context.Context, string, string) ([]qentity.SearchHit, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, cfg config.Config) (*gin.Engine, *cache.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := cache.NewMemoryStore(0)
	euUC := euusecase.NewEUQuoteUsecase(euusecase.NewResolver(noListings{}, eudomain.DefaultMappings, time.Second), cache.NewCodec(store))
	h := di.Handlers{
		EUQuote:     euhandler.NewEUQuoteHandler(euUC),
		MarketHours: mhhandler.NewMarketHoursHandler(mhusecase.NewMarketHoursUsecase(mhusecase.DefaultSchedules(), nil)),
		Admin:       adminhandler.NewAdminHandler(adminusecase.NewCacheAdminUsecase(store)),
	}
	return NewRouter(cfg, h, testSecret), store
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, _, err := jwtmw.NewGenerator(testSecret, time.Hour).GenerateToken("admin")
	require.NoError(t, err)
	return tok
}

func TestRouter_Health(t *testing.T) {
	r, _ := newTestRouter(t, config.Config{CORSAllowedOrigins: []string{"*"}})

	w := do(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRouter_RequestID(t *testing.T) {
	r, _ := newTestRouter(t, config.Config{CORSAllowedOrigins: []string{"*"}})

	w := do(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36, "generated ids are UUIDs")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = do(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestRouter_CORS(t *testing.T) {
	r, _ := newTestRouter(t, config.Config{CORSAllowedOrigins: []string{"https://dash.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/eu-quote", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := do(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://dash.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = do(r, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_EUQuoteNotFound(t *testing.T) {
	r, _ := newTestRouter(t, config.Config{CORSAllowedOrigins: []string{"*"}})

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/eu-quote?symbol=BABA", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body struct {
		NotFound bool     `json:"notFound"`
		Tried    []string `json:"tried"`
		Error    string   `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.NotFound)
	assert.Equal(t, []string{"AHLA.DE", "AHLA.F"}, body.Tried[:2])
	assert.Equal(t, "No EU listing found", body.Error)
}

func TestRouter_MarketHours(t *testing.T) {
	r, _ := newTestRouter(t, config.Config{CORSAllowedOrigins: []string{"*"}})

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/market-hours?exchange=XETRA", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/market-hours?exchange=LSE", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	r, store := newTestRouter(t, config.Config{CORSAllowedOrigins: []string{"*"}})
	require.NoError(t, store.Set(context.Background(), "eu-quote:AAPL", []byte("x"), time.Minute))

	w := do(r, httptest.NewRequest(http.MethodGet, "/admin/eu-mappings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, httptest.NewRequest(http.MethodDelete, "/admin/cache?prefix=eu-quote:", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 1, store.Len(), "unauthenticated purge must not touch the cache")

	req := httptest.NewRequest(http.MethodGet, "/admin/eu-mappings", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w = do(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var mappings []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mappings))
	assert.Len(t, mappings, eudomain.DefaultMappings.Len())

	req = httptest.NewRequest(http.MethodDelete, "/admin/cache?prefix=eu-quote:", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w = do(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"prefix":"eu-quote:","deleted":1}`, w.Body.String())
	assert.Zero(t, store.Len())
}
