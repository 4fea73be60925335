package middlewares

import (
	"context"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// APIKeyAuth is optional: requests without x-api-key pass untouched, a wrong
// key is rejected, and a matching key marks the context.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if m.InternalConfig.App.SuperadminAPIKey == "" || apiKey != m.InternalConfig.App.SuperadminAPIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH, true)

		m.Log.Info("API Key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String("endpoint", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("user_agent", r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
