//go:build integration
// +build integration

package integration_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/adapter/http/handler"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/adapter/http/middleware"
	redisAdapter "github.com/egorsokolov/mortgage-miniapp-api/internal/adapter/storage/redis"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/adapter/upstream/salebot"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/calculate"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/check_rate_limit"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/forward_lead"
)

const allowedOrigin = "https://egorsokolov.ru"

// newAPIServer assembles the full pipeline against the test Redis and a
// stub CRM, exactly as cmd/server wires it.
func newAPIServer(t *testing.T, redisClient *goredis.Client, crmURL string, rateLimit int) *httptest.Server {
	t.Helper()

	storage := redisAdapter.NewRedisStorage(redisClient)
	upstream := salebot.NewClient(crmURL, "test-key", 5*time.Second, 10*time.Second)

	forwardUC := forward_lead.NewUseCase(upstream, forward_lead.Credentials{
		APIKey:  "test-key",
		GroupID: "777",
	})

	trustGate := middleware.NewTrustGate([]string{allowedOrigin})
	methodGate := middleware.NewMethodGate(trustGate)
	admission := middleware.NewAdmission(16384)
	rateLimiterMW := middleware.NewRateLimiterMiddleware(
		check_rate_limit.NewUseCase(storage), rateLimit, time.Minute)

	upstreamLog := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	api := chi.NewRouter()
	api.Use(methodGate.Handle)
	api.Use(admission.Handle)
	api.Use(rateLimiterMW.Handle)
	api.Use(trustGate.Handle)
	api.Post("/lead", handler.NewRelayHandler(forwardUC, 16384, upstreamLog).ServeHTTP)
	api.Post("/calculate", handler.NewCalculateHandler(calculate.NewUseCase()).ServeHTTP)
	r.Mount("/api", api)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", allowedOrigin)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestE2E_LeadRelayedToCRM(t *testing.T) {
	redisClient := setupRedis(t)

	var gotPath string
	var gotBody []byte
	crm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"queued"}`))
	}))
	defer crm.Close()

	srv := newAPIServer(t, redisClient, crm.URL, 10)

	resp := postJSON(t, srv.URL+"/api/lead", `{"user_id":42,"message":"lead from widget"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"status":"queued"}`, string(body))

	assert.Equal(t, "/api/test-key/tg_callback", gotPath)
	// The server injects its own group id.
	assert.Contains(t, string(gotBody), `"group_id":"777"`)
}

func TestE2E_RateLimitAcrossPipeline(t *testing.T) {
	redisClient := setupRedis(t)
	crm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer crm.Close()

	srv := newAPIServer(t, redisClient, crm.URL, 3)

	for i := 1; i <= 3; i++ {
		resp := postJSON(t, srv.URL+"/api/lead", `{"user_id":1,"message":"m"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "Request %d should be allowed", i)
	}

	resp := postJSON(t, srv.URL+"/api/lead", `{"user_id":1,"message":"m"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
}

func TestE2E_MethodAndPreflight(t *testing.T) {
	redisClient := setupRedis(t)
	srv := newAPIServer(t, redisClient, "http://unused.invalid", 10)

	// GET is rejected before anything else runs.
	resp, err := http.Get(srv.URL + "/api/lead")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	// OPTIONS preflight is answered with CORS headers and no body gates.
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/lead", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", allowedOrigin)

	preflight, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer preflight.Body.Close()
	assert.Equal(t, http.StatusOK, preflight.StatusCode)
	assert.Equal(t, allowedOrigin, preflight.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", preflight.Header.Get("Access-Control-Allow-Methods"))
}

func TestE2E_UntrustedOriginRejected(t *testing.T) {
	redisClient := setupRedis(t)
	srv := newAPIServer(t, redisClient, "http://unused.invalid", 10)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/lead",
		strings.NewReader(`{"user_id":1,"message":"m"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("User-Agent", "curl/8.0")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestE2E_CalculateEndpoint(t *testing.T) {
	redisClient := setupRedis(t)
	srv := newAPIServer(t, redisClient, "http://unused.invalid", 10)

	resp := postJSON(t, srv.URL+"/api/calculate",
		`{"apartment_price":10000000,"down_payment_percent":20,"income":150000,"expenses":80000,"savings":500000}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"target":2000000`)
	assert.Contains(t, string(body), `"scenario_type":"normal"`)
}
