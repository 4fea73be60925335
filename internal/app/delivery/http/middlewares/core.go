package middlewares

import (
	"context"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logging writes one record per request once the handler returns. Server
// errors log at error level and client errors at warn.
func (m *Middlewares) Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			fromClient, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			fields := []zap.Field{
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Bool(constvars.LoggingClientIDKey, fromClient),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRouteKey, routePattern(r)),
				zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
				zap.Int(constvars.LoggingStatusCodeKey, status),
				zap.Int(constvars.LoggingBytesKey, ww.BytesWritten()),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("API request completed", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("API request completed", fields...)
			default:
				logger.Info("API request completed", fields...)
			}
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one, and
// echoes it back on the response.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := true

		if requestID == "" {
			requestID = utils.GenerateRequestID()
			isClientRequestID = false
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestTimeout bounds every downstream call with the configured deadline.
func (m *Middlewares) RequestTimeout(next http.Handler) http.Handler {
	timeout := time.Duration(m.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
