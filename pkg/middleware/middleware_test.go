package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"business-directory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok")
})

func TestRequestID_Generates(t *testing.T) {
	t.Parallel()

	var seen string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	t.Parallel()

	var seen string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestLogger_RecordsStatus(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "missing")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/businesses/9", nil))

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, "/businesses/9", fields["path"])
}

func TestLogger_ServerErrorsAtErrorLevel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseInternalError(w)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestRecover_WritesJSONError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	handler := Recover(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
	assert.Equal(t, 1, logs.FilterMessage("PANIC recovered").Len())
}

func TestRateLimiter_PerClient(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(1, 1, zap.NewNop())
	handler := limiter.Handler(okHandler)

	request := func(remoteAddr string) int {
		r := httptest.NewRequest("GET", "/businesses", nil)
		r.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1:5001"))
	assert.Equal(t, http.StatusOK, request("10.0.0.2:5000"))
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	t.Parallel()

	now := time.Unix(0, 0)
	limiter := NewRateLimiter(1, 1, zap.NewNop())
	limiter.now = func() time.Time { return now }

	limiter.getLimiter("10.0.0.1")
	now = now.Add(limiter.idle + time.Second)
	limiter.getLimiter("10.0.0.2")

	limiter.Cleanup()

	assert.NotContains(t, limiter.limiters, "10.0.0.1")
	assert.Contains(t, limiter.limiters, "10.0.0.2")
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"https://app.example.com"})(okHandler)

	r := httptest.NewRequest(http.MethodOptions, "/businesses", nil)
	r.Header.Set("Origin", "https://app.example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	r = httptest.NewRequest(http.MethodGet, "/businesses", nil)
	r.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	router := chi.NewRouter()
	router.Use(metrics.Handler)
	router.Get("/businesses/{id}", okHandler)

	for _, path := range []string{"/businesses/1", "/businesses/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	w := httptest.NewRecorder()
	metrics.Exporter().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(),
		`business_directory_http_requests_total{method="GET",route="/businesses/{id}",status="200"} 2`)
	assert.NotContains(t, w.Body.String(), `route="/businesses/1"`)
}
