package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCORS(t *testing.T, allowed []string, method, origin, requestMethod string) *httptest.ResponseRecorder {
	t.Helper()

	handler := CORS(allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/api/treatments", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if requestMethod != "" {
		req.Header.Set("Access-Control-Request-Method", requestMethod)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORSAllowlistedOrigin(t *testing.T) {
	rec := runCORS(t, []string{"https://niramaya.com"}, http.MethodGet, "https://niramaya.com", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://niramaya.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSUnknownOriginGetsNoHeaders(t *testing.T) {
	rec := runCORS(t, []string{"https://niramaya.com"}, http.MethodGet, "https://evil.example.com", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSEmptyAllowlistEchoesAnyOrigin(t *testing.T) {
	rec := runCORS(t, nil, http.MethodGet, "http://localhost:3000", "")

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	rec := runCORS(t, nil, http.MethodOptions, "http://localhost:3000", http.MethodPost)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSNoOriginHeader(t *testing.T) {
	rec := runCORS(t, nil, http.MethodGet, "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
