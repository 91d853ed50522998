package middleware

import (
	"net/http"
	"runtime/debug"
)

// Recover turns a panic into a 500 response and reports it. The response is
// written first, then the error is logged with its stack; the panic never
// propagates past this handler.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"message":"Internal Server Error"}`))

				m.log.Error().
					Interface("error", err).
					Str("stack", string(debug.Stack())).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Msg("panic recovered")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
