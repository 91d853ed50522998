package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// maxLogLineLength caps API log lines so response previews stay readable.
const maxLogLineLength = 80

// responseWriter wraps http.ResponseWriter to capture the status code and,
// for API routes, a copy of the response body for the log preview.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	captureBody bool
	body        bytes.Buffer
}

func newResponseWriter(w http.ResponseWriter, captureBody bool) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK, captureBody: captureBody}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.captureBody {
		rw.body.Write(b)
	}
	return rw.ResponseWriter.Write(b)
}

// Logger logs HTTP requests. API requests get a compact line with a preview
// of the JSON response; everything else (static assets, health checks) is
// logged through the standard request fields.
func (m *Middleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		isAPI := strings.HasPrefix(r.URL.Path, "/api")
		wrapped := newResponseWriter(w, isAPI)

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		if isAPI {
			m.log.Info().Msg(apiLogLine(r.Method, r.URL.Path, wrapped.statusCode, duration, wrapped.body.Bytes()))
			return
		}

		clientIP := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			clientIP = forwarded
		}
		m.log.HTTPRequest(r.Method, r.URL.Path, wrapped.statusCode, duration, clientIP)
	})
}

// apiLogLine renders "METHOD /path status in Nms :: {response}" truncated to
// maxLogLineLength characters.
func apiLogLine(method, path string, status int, duration time.Duration, body []byte) string {
	line := fmt.Sprintf("%s %s %d in %dms", method, path, status, duration.Milliseconds())
	if preview := strings.TrimSpace(string(body)); preview != "" {
		line += " :: " + preview
	}
	if runes := []rune(line); len(runes) > maxLogLineLength {
		line = string(runes[:maxLogLineLength-1]) + "…"
	}
	return line
}
