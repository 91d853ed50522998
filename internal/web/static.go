// Package web serves the frontend. In development it proxies to the frontend
// dev server; in production it serves the built assets with an SPA fallback
// to index.html so client-side routes resolve.
package web

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/softwarepar/softwarepar/internal/config"
	"github.com/softwarepar/softwarepar/internal/logger"
)

// New returns the handler that serves the frontend for the given environment.
func New(cfg config.StaticConfig, environment string, log *logger.Logger) (http.Handler, error) {
	if environment == "development" {
		return newDevProxy(cfg.DevServerURL, log)
	}
	return newStaticHandler(cfg.Dir), nil
}

// newDevProxy forwards non-API requests to the frontend dev server.
func newDevProxy(devServerURL string, log *logger.Logger) (http.Handler, error) {
	target, err := url.Parse(devServerURL)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("dev server proxy error")
		http.Error(w, "frontend dev server unavailable", http.StatusBadGateway)
	}
	return proxy, nil
}

// staticHandler serves built frontend assets. Unknown paths fall back to
// index.html.
type staticHandler struct {
	dir string
	fs  http.Handler
}

func newStaticHandler(dir string) *staticHandler {
	return &staticHandler{
		dir: dir,
		fs:  http.FileServer(http.Dir(dir)),
	}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.Clean("/"+r.URL.Path))

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		h.fs.ServeHTTP(w, r)
		return
	}

	// SPA fallback: let the client router handle the path
	if !strings.HasPrefix(r.URL.Path, "/api") {
		http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
		return
	}

	http.NotFound(w, r)
}
