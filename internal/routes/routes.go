package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/app/content"
	"github.com/FACorreiaa/go-nextapp/internal/app/domain"
	"github.com/FACorreiaa/go-nextapp/internal/app/domain/home"
	"github.com/FACorreiaa/go-nextapp/internal/pkg/cache"
)

type AppHandlers struct {
	Home        *home.HomeHandlers
	StaticPages *domain.BaseHandler
}

func Setup(r *gin.Engine, log *zap.Logger, pageCache *cache.PageCache) {
	handlers := setupDependencies(log, pageCache)
	setupRouter(r, handlers, log)
}

func setupDependencies(log *zap.Logger, pageCache *cache.PageCache) *AppHandlers {
	baseHandler := domain.NewBaseHandler(log, pageCache)
	return &AppHandlers{
		Home:        home.NewHomeHandlers(baseHandler),
		StaticPages: baseHandler,
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	public := r.Group("/")
	{
		public.GET("/", h.Home.ShowHomePage)
		public.GET("/about", h.StaticPages.ShowAboutPage)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"site":   content.SiteName(),
			"pages":  len(content.Routes()),
		})
	})

	// 404 handler - must be last
	r.NoRoute(func(c *gin.Context) {
		log.Info("404 - Page not found",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("ip", c.ClientIP()),
		)
		h.StaticPages.ShowNotFound(c)
	})
}
