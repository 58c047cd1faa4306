package middleware

import (
	"net/http"
	"strings"
	apperrors "turfly/pkg/errors"
	httputil "turfly/pkg/http"
	"turfly/pkg/logger"
	"turfly/pkg/model"
)

type TokenParser interface {
	ParseOpaqueToken(token string) (*model.Claims, error)
}

// Authenticate attaches the caller's claims to the request context. Requests
// without an Authorization header continue anonymously; a header carrying a
// bad token is rejected outright.
func Authenticate(parser TokenParser, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				rejectUnauthorized(w, log, r, "malformed authorization header")
				return
			}

			claims, err := parser.ParseOpaqueToken(strings.TrimSpace(token))
			if err != nil {
				rejectUnauthorized(w, log, r, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func rejectUnauthorized(w http.ResponseWriter, log *logger.Logger, r *http.Request, reason string) {
	log.Warn("Authentication failed",
		"request_id", RequestIDFromContext(r.Context()),
		"reason", reason,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
	)

	_ = httputil.WriteError(w, apperrors.Unauthorized("Invalid or expired token"))
}
