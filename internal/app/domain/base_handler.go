package domain

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/app/content"
	"github.com/FACorreiaa/go-nextapp/internal/app/models"
	"github.com/FACorreiaa/go-nextapp/internal/app/navbar"
	"github.com/FACorreiaa/go-nextapp/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-nextapp/internal/app/pages"
	"github.com/FACorreiaa/go-nextapp/internal/pkg/cache"
)

const htmlContentType = "text/html; charset=utf-8"

type BaseHandler struct {
	Logger *zap.Logger
	Cache  *cache.PageCache
}

func NewBaseHandler(logger *zap.Logger, pageCache *cache.PageCache) *BaseHandler {
	return &BaseHandler{Logger: logger, Cache: pageCache}
}

// navbarFor rebuilds the request's navbar by replaying the clicks it carries.
// A malformed count is treated as no clicks.
func (h *BaseHandler) navbarFor(c *gin.Context) *navbar.Navbar {
	count, err := navbar.ParseToggles(c.Query(navbar.TogglesParam))
	if err != nil {
		h.Logger.Debug("Ignoring menu toggle count", zap.Error(err))
		return navbar.New()
	}
	n := navbar.Replay(count)
	if n.Toggles() > 0 {
		metrics.Get().MenuTogglesTotal.Add(c.Request.Context(), 1)
	}
	return n
}

func (h *BaseHandler) newLayoutData(c *gin.Context, title, activeNav string, n *navbar.Navbar, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:     title,
		ActiveNav: activeNav,
		Navbar:    pages.Navbar(n, c.Request.URL.Path, activeNav),
		Content:   content,
	}
}

func (h *BaseHandler) render(ctx context.Context, component templ.Component) ([]byte, error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}
	metrics.Get().TemplateRenderDuration.Record(ctx, time.Since(start).Seconds())
	return buf.Bytes(), nil
}

// RenderPage serves the page registered for route inside the site layout.
func (h *BaseHandler) RenderPage(c *gin.Context, route models.Route, activeNav string) {
	page, ok := content.Lookup(route)
	if !ok {
		h.ShowNotFound(c)
		return
	}

	ctx := c.Request.Context()
	n := h.navbarFor(c)
	key := cache.Key(c.Request.URL.Path, n.State()+"-"+strconv.Itoa(n.Toggles()))
	attrs := metric.WithAttributes(attribute.String("route", string(route)))
	metrics.Get().PageViewsTotal.Add(ctx, 1, attrs)

	if h.Cache != nil {
		if body, hit := h.Cache.Get(key); hit {
			metrics.Get().RenderCacheHitsTotal.Add(ctx, 1, attrs)
			c.Data(http.StatusOK, htmlContentType, body)
			return
		}
		metrics.Get().RenderCacheMissesTotal.Add(ctx, 1, attrs)
	}

	layout := h.newLayoutData(c, page.Title, activeNav, n, pages.PageContent(page))
	body, err := h.render(ctx, pages.LayoutPage(layout))
	if err != nil {
		h.Logger.Error("Failed to render page", zap.String("route", string(route)), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	if h.Cache != nil {
		h.Cache.Set(key, body)
	}
	c.Data(http.StatusOK, htmlContentType, body)
}

func (h *BaseHandler) ShowAboutPage(c *gin.Context) {
	h.RenderPage(c, models.RouteAbout, "About")
}

// ShowNotFound answers unknown routes with the not-found page.
func (h *BaseHandler) ShowNotFound(c *gin.Context) {
	layout := h.newLayoutData(c, "Not Found - "+content.SiteName(), "", h.navbarFor(c), pages.NotFoundContent())
	body, err := h.render(c.Request.Context(), pages.LayoutPage(layout))
	if err != nil {
		h.Logger.Error("Failed to render not found page", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.Data(http.StatusNotFound, htmlContentType, body)
}
