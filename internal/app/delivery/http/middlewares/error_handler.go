package middlewares

import (
	"doccare-service/internal/pkg/utils"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in any downstream handler into a 500 envelope.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				m.Log.Error("Recovered from panic",
					zap.String("endpoint", r.URL.Path),
					zap.Error(err),
				)
				utils.BuildErrorResponse(m.Log, w, err)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
