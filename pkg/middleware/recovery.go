package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	apperrors "turfly/pkg/errors"
	httputil "turfly/pkg/http"
	"turfly/pkg/logger"
)

// Recovery turns a handler panic into a 500 envelope. The stack goes to the
// log only.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				log.Error("Panic recovered",
					"request_id", RequestIDFromContext(r.Context()),
					"panic", fmt.Sprint(p),
					"route", RouteLabel(r.URL.Path),
					"method", r.Method,
					"stack", string(debug.Stack()),
				)
				_ = httputil.WriteError(w, apperrors.Internal("Internal server error", fmt.Errorf("panic: %v", p)))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
