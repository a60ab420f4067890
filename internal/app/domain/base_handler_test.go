package domain

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/app/models"
)

func newContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var err error
	c.Request, err = http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	return c, w
}

func TestShowAboutPage(t *testing.T) {
	h := NewBaseHandler(zap.NewNop(), nil)
	c, w := newContext(t, "/about")

	h.ShowAboutPage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "About NextApp")
	assert.Contains(t, w.Body.String(), `data-testid="about-cta-btn"`)
	assert.Contains(t, w.Body.String(), `action="/about"`)
}

func TestRenderPageUnknownRoute(t *testing.T) {
	h := NewBaseHandler(zap.NewNop(), nil)
	c, w := newContext(t, "/pricing")

	h.RenderPage(c, models.Route("/pricing"), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
	assert.Contains(t, w.Body.String(), `data-testid="navbar-logo"`)
}
