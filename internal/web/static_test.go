package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softwarepar/softwarepar/internal/config"
	"github.com/softwarepar/softwarepar/internal/logger"
)

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestStaticHandler_ServesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "index.html", "<html>home</html>")
	writeAsset(t, dir, "app.js", "console.log(1)")

	h := newStaticHandler(dir)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())
}

func TestStaticHandler_SPAFallback(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "index.html", "<html>home</html>")

	h := newStaticHandler(dir)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/partners/dashboard", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>home</html>", rec.Body.String())
}

func TestDevProxy_ForwardsToDevServer(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dev:" + r.URL.Path))
	}))
	defer backend.Close()

	h, err := New(config.StaticConfig{DevServerURL: backend.URL}, "development", logger.New("error", "json"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/src/main.tsx", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev:/src/main.tsx", rec.Body.String())
}

func TestDevProxy_BadGatewayWhenDevServerDown(t *testing.T) {
	h, err := New(config.StaticConfig{DevServerURL: "http://127.0.0.1:1"}, "development", logger.New("error", "json"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
