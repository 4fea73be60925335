package middlewares

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ResolveIdentity decodes the caller from the Authorization bearer token.
// When the header is missing or does not verify, the accessToken cookie is
// tried next. Nil means no usable identity.
func (m *Middlewares) ResolveIdentity(r *http.Request) *models.AuthUser {
	if user := m.identityFromToken(bearerToken(r)); user != nil {
		return user
	}
	cookie, err := r.Cookie(constvars.CookieAccessToken)
	if err != nil {
		return nil
	}
	return m.identityFromToken(cookie.Value)
}

func (m *Middlewares) identityFromToken(token string) *models.AuthUser {
	if token == "" {
		return nil
	}
	claims, err := utils.ParseJWT(token, m.InternalConfig.JWT.AccessSecret)
	if err != nil {
		return nil
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil
	}
	return &models.AuthUser{Email: email, Role: role}
}

// RequireAuth returns the caller only when their role is one of roles.
func (m *Middlewares) RequireAuth(r *http.Request, roles ...string) *models.AuthUser {
	user := m.ResolveIdentity(r)
	if !user.HasRole(roles...) {
		return nil
	}
	return user
}

func (m *Middlewares) Authenticate(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := m.RequireAuth(r, roles...)
			if user == nil {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Info("Request rejected by role guard",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Strings("allowed_roles", roles),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(nil))
				return
			}

			ctx := context.WithValue(r.Context(), constvars.CONTEXT_AUTH_USER_KEY, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthenticateOrAPIKey lets a request through when APIKeyAuth already
// accepted the superadmin key, otherwise it behaves like Authenticate.
func (m *Middlewares) AuthenticateOrAPIKey(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		guarded := m.Authenticate(roles...)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH).(bool); ok && apiKeyAuth {
				next.ServeHTTP(w, r)
				return
			}
			guarded.ServeHTTP(w, r)
		})
	}
}

// AuthUserFromContext returns the identity stored by Authenticate.
func AuthUserFromContext(ctx context.Context) *models.AuthUser {
	user, _ := ctx.Value(constvars.CONTEXT_AUTH_USER_KEY).(*models.AuthUser)
	return user
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
}
