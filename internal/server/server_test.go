package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/pkg/cache"
	"github.com/FACorreiaa/go-nextapp/internal/pkg/config"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	r := SetupRouter("nextapp-test", cache.NewPageCache(time.Minute, nil), zap.NewNop())
	SetupAssets(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRouterServesPages(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		target string
		status int
		want   string
	}{
		{"/", http.StatusOK, `data-testid="hero-title"`},
		{"/about", http.StatusOK, "About NextApp"},
		{"/?menu_toggles=1", http.StatusOK, `data-testid="mobile-menu"`},
		{"/missing", http.StatusNotFound, "Page not found"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, r, tt.target)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		})
	}
}

func TestRouterEchoesRequestID(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-Id"))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["pages"])
}

func TestAssetsServeStylesheet(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/assets/css/site.css")
	require.Equal(t, http.StatusOK, w.Code)
	css, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(css), "@media (min-width:768px)"))
	assert.Contains(t, string(css), `.md\:hidden{display:none}`)
}

func TestSecurityHeaders(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/")
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "script-src 'none'")
}

func TestVerifyPages(t *testing.T) {
	assert.NoError(t, VerifyPages(newTestRouter(t), zap.NewNop()))
}

func TestHTTPServerUsesConfiguredPort(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Port: "9999"}}
	s := New(cfg, zap.NewNop())
	s.SetRouter(http.NotFoundHandler())

	srv := s.HTTPServer()
	assert.Equal(t, ":9999", srv.Addr)
	assert.NotNil(t, srv.Handler)
	s.Close()
}
