package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRateLimiter_Limit(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Hour, time.Minute)
	current := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	call := func(remoteAddr string) int {
		req := httptest.NewRequest("POST", "/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusCreated, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusCreated, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"), "burst exhausted")
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1003"), "ip is blocked")
	assert.Equal(t, http.StatusCreated, call("10.0.0.2:1000"), "other ips are unaffected")

	current = current.Add(2 * time.Minute)
	assert.Equal(t, http.StatusCreated, call("10.0.0.1:1004"), "block expired and limiter reset")
}
