package middlewares

import (
	"net/http"
)

// BodyLimit caps the request body so a runaway client cannot buffer an
// arbitrarily large notification payload into memory.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
