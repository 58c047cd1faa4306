package middleware

import (
	"net/http"
	"strings"
	"time"
	"turfly/pkg/metrics"
)

// Metrics records request counts and latency per route.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			m.ObserveHTTP(r.Method, RouteLabel(r.URL.Path), wrapped.statusCode, time.Since(start))
		})
	}
}

// RouteLabel collapses path identifiers so label cardinality stays bounded:
// "/api/v1/bookings/id/abc/confirm" becomes "/api/v1/bookings/id/:id/confirm".
func RouteLabel(path string) string {
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		if parts[i-1] == "id" && parts[i] != "" {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}
