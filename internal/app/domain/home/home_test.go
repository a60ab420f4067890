package home

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/app/domain"
	"github.com/FACorreiaa/go-nextapp/internal/pkg/cache"
)

func serve(t *testing.T, h *HomeHandlers, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var err error
	c.Request, err = http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)

	h.ShowHomePage(c)
	return w
}

func TestShowHomePage(t *testing.T) {
	h := NewHomeHandlers(domain.NewBaseHandler(zap.NewNop(), nil))

	w := serve(t, h, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find(`[data-testid="hero-title"]`).Length())
	assert.Equal(t, 0, doc.Find(`[data-testid="mobile-menu"]`).Length())
}

func TestShowHomePageWithMenuOpen(t *testing.T) {
	h := NewHomeHandlers(domain.NewBaseHandler(zap.NewNop(), nil))

	w := serve(t, h, "/?menu_toggles=1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-testid="mobile-menu"`)

	w = serve(t, h, "/?menu_toggles=2")
	assert.NotContains(t, w.Body.String(), `data-testid="mobile-menu"`)
}

func TestShowHomePageIgnoresMalformedToggles(t *testing.T) {
	h := NewHomeHandlers(domain.NewBaseHandler(zap.NewNop(), nil))

	w := serve(t, h, "/?menu_toggles=lots")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `data-testid="mobile-menu"`)
}

func TestShowHomePageUsesCache(t *testing.T) {
	pageCache := cache.NewPageCache(time.Minute, nil)
	h := NewHomeHandlers(domain.NewBaseHandler(zap.NewNop(), pageCache))

	first := serve(t, h, "/")
	second := serve(t, h, "/")

	assert.Equal(t, first.Body.String(), second.Body.String())
	m := pageCache.GetMetrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
}
